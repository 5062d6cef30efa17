package billing

import (
	"context"

	"github.com/stripe/stripe-go/v82"

	"widgion.com/billing/internal/logger"
)

// CreateSetupIntent creates a SetupIntent authorizing a future off-session
// charge. With a customer ID the intent is bound to that customer; with an
// empty ID it is anonymous. Only the client secret is returned: the
// browser needs it to confirm the card, nothing else leaves the server.
func (s *Service) CreateSetupIntent(ctx context.Context, customerID string) (string, error) {
	params := &stripe.SetupIntentParams{
		Params: stripe.Params{Context: ctx},
		Usage:  stripe.String(string(stripe.SetupIntentUsageOffSession)),
	}
	if customerID != "" {
		params.Customer = stripe.String(customerID)
	}

	intent, err := s.api.SetupIntents.New(params)
	if err != nil {
		return "", providerError("create setup intent", err)
	}

	logger.Info("Setup intent created", map[string]interface{}{
		"setup_intent_id": intent.ID,
		"customer_id":     customerID,
	})

	return intent.ClientSecret, nil
}

// IssueSetupIntent resolves the customer for email and creates a
// SetupIntent bound to it. This is the identified mode used by the public
// endpoint: issuing an intent for an unknown email creates the customer.
func (s *Service) IssueSetupIntent(ctx context.Context, email, company string) (string, error) {
	customer, err := s.ResolveCustomer(ctx, email, company)
	if err != nil {
		return "", err
	}

	return s.CreateSetupIntent(ctx, customer.ID)
}
