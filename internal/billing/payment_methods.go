package billing

import (
	"context"

	"github.com/stripe/stripe-go/v82"

	"widgion.com/billing/internal/logger"
)

// Saga step names, used in error reporting and logs.
const (
	stepResolveCustomer = "resolve customer"
	stepAttachMethod    = "attach payment method"
	stepSetDefault      = "set default payment method"
)

// AttachPaymentMethod runs the attach saga: resolve the customer for
// email, attach the tokenized payment method to it, then mark the method
// as the customer's default for invoices. The steps run strictly in that
// order.
//
// There is no rollback. If the attach succeeds and setting the default
// fails, the failure is reported but the method stays attached; the next
// successful submission repairs the default. Attaching an already-attached
// method and re-setting the same default are no-ops on Stripe's side, so
// replaying the saga is safe.
//
// The resolved customer is returned on success for the caller's logs.
func (s *Service) AttachPaymentMethod(ctx context.Context, email, company, paymentMethodID string) (*stripe.Customer, error) {
	if paymentMethodID == "" {
		return nil, validationError(stepAttachMethod, "paymentMethodId is required")
	}

	customer, err := s.ResolveCustomer(ctx, email, company)
	if err != nil {
		return nil, err
	}

	attachParams := &stripe.PaymentMethodAttachParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(customer.ID),
	}

	if _, err := s.api.PaymentMethods.Attach(paymentMethodID, attachParams); err != nil {
		return nil, providerError(stepAttachMethod, err)
	}

	updateParams := &stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(paymentMethodID),
		},
	}

	if _, err := s.api.Customers.Update(customer.ID, updateParams); err != nil {
		logger.Warn("Payment method attached but not set as default", map[string]interface{}{
			"customer_id":    customer.ID,
			"payment_method": paymentMethodID,
		})

		return nil, providerError(stepSetDefault, err)
	}

	logger.Info("Default payment method saved", map[string]interface{}{
		"customer_id":    customer.ID,
		"payment_method": paymentMethodID,
	})

	return customer, nil
}
