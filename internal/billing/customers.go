package billing

import (
	"context"

	"github.com/stripe/stripe-go/v82"

	"widgion.com/billing/internal/logger"
)

// ResolveCustomer finds the Stripe customer for email, creating one when
// none exists. A new customer gets the company as its display name and a
// company metadata entry. Re-resolving with a different company does not
// touch the existing record: the first-created company name sticks.
//
// When Stripe holds more than one customer for the email, the first record
// in Stripe's listing wins. Listing order is Stripe's, inherited as-is.
func (s *Service) ResolveCustomer(ctx context.Context, email, company string) (*stripe.Customer, error) {
	if email == "" {
		return nil, validationError("resolve customer", "email is required")
	}

	listParams := &stripe.CustomerListParams{
		ListParams: stripe.ListParams{
			Context: ctx,
			Limit:   stripe.Int64(1),
		},
		Email: stripe.String(email),
	}

	iter := s.api.Customers.List(listParams)
	if iter.Next() {
		existing := iter.Customer()
		logger.Debug("Existing customer resolved", map[string]interface{}{
			"customer_id":    existing.ID,
			"customer_email": email,
		})

		return existing, nil
	}

	if err := iter.Err(); err != nil {
		return nil, providerError("list customers", err)
	}

	params := &stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		Email:  stripe.String(email),
		Name:   stripe.String(company),
	}
	params.AddMetadata("company", company)

	created, err := s.api.Customers.New(params)
	if err != nil {
		return nil, providerError("create customer", err)
	}

	logger.Info("New customer created", map[string]interface{}{
		"customer_id":    created.ID,
		"customer_email": email,
		"company":        company,
	})

	return created, nil
}
