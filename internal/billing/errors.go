package billing

import (
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v82"
)

// Kind is the closed set of failure classes this service produces. Every
// error leaving the package carries exactly one of these, so handlers can
// switch exhaustively instead of sniffing error types.
type Kind int

const (
	// KindUnknown covers anything that is neither a rejected input nor a
	// Stripe failure. Callers surface a fixed generic message for it.
	KindUnknown Kind = iota

	// KindValidation marks a request rejected before any Stripe call.
	KindValidation

	// KindProvider marks a failure communicating with or reported by
	// Stripe. The Stripe message is preserved for display.
	KindProvider
)

const GenericErrorMessage = "Unexpected error occurred"

type Error struct {
	Kind Kind
	Op   string // operation or saga step that failed
	Msg  string // user-facing message
	Err  error  // underlying cause, nil for validation errors
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf classifies any error returned by this package. Errors from
// elsewhere classify as KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Message returns the user-facing text for err: validation and provider
// errors speak for themselves, everything else gets the generic message.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Msg != "" {
		return e.Msg
	}
	return GenericErrorMessage
}

func validationError(op, msg string) *Error {
	return &Error{Kind: KindValidation, Op: op, Msg: msg}
}

// providerError wraps a Stripe failure, keeping Stripe's own message text
// when there is one so the user sees it verbatim.
func providerError(op string, err error) *Error {
	msg := err.Error()

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		msg = stripeErr.Msg
	}

	return &Error{Kind: KindProvider, Op: op, Msg: msg, Err: err}
}
