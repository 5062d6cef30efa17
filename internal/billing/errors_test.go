package billing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stripe/stripe-go/v82"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"validation", validationError("resolve customer", "email is required"), KindValidation},
		{"provider", providerError("attach payment method", errors.New("boom")), KindProvider},
		{"wrapped provider", fmt.Errorf("saga: %w", providerError("set default payment method", errors.New("boom"))), KindProvider},
		{"foreign error", errors.New("something else"), KindUnknown},
		{"nil-ish", fmt.Errorf("plain"), KindUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.expected {
				t.Errorf("Expected kind %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestMessage_StripeTextPreserved(t *testing.T) {
	stripeErr := &stripe.Error{
		Type: stripe.ErrorTypeInvalidRequest,
		Code: stripe.ErrorCodeResourceMissing,
		Msg:  "No such PaymentMethod: 'pm_bad'",
	}

	err := providerError("attach payment method", stripeErr)

	if Message(err) != "No such PaymentMethod: 'pm_bad'" {
		t.Errorf("Expected stripe message verbatim, got %q", Message(err))
	}
}

func TestMessage_GenericForUnknown(t *testing.T) {
	if Message(errors.New("panic-ish")) != GenericErrorMessage {
		t.Errorf("Expected generic message for foreign errors, got %q", Message(errors.New("panic-ish")))
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := providerError("list customers", cause)

	if !errors.Is(err, cause) {
		t.Errorf("Expected wrapped cause to be reachable via errors.Is")
	}
}
