// Package billing wraps the Stripe SDK behind the three operations this
// service performs: resolving a customer by email, issuing a SetupIntent
// for off-session use, and attaching a tokenized payment method as the
// customer's default for invoices.
//
// Stripe's store is the only source of truth. Nothing in this package
// caches or persists customer or payment-method state.
package billing

import (
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

type Service struct {
	api *client.API
}

// NewService wraps an initialized Stripe client. One client is constructed
// per process and passed in; nothing here reads global SDK state.
func NewService(api *client.API) *Service {
	return &Service{api: api}
}

// NewClient builds the process-wide Stripe client. Network retries are
// disabled: every failure in this system is surfaced to the user for an
// explicit resubmit instead of being retried behind their back.
func NewClient(secretKey string) *client.API {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	})

	api := &client.API{}
	api.Init(secretKey, &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})

	return api
}
