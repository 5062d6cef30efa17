// Package validate holds the form validation rules shared between the
// hosted payment page and its tests. The served page is rendered with these
// exact values, so the browser and the server never disagree about what a
// valid submission looks like.
package validate

import (
	"fmt"
	"regexp"

	"github.com/hashicorp/go-multierror"
)

// BusinessEmailPattern accepts only business-looking addresses: the TLD must
// be on a fixed allow-list. Addresses that are otherwise valid but end in
// another TLD are rejected on purpose.
const BusinessEmailPattern = `^[A-Za-z0-9._%+-]+@([A-Za-z0-9.-]+\.)+(com|org|net|edu|gov)$`

const (
	EmailErrorMessage   = "Please enter a valid business email."
	CompanyErrorMessage = "Company name is required."
)

var businessEmailRe = regexp.MustCompile(BusinessEmailPattern)

// FieldError reports a validation failure for a single form field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// BusinessEmail reports whether email matches the business-email shape.
func BusinessEmail(email string) error {
	if !businessEmailRe.MatchString(email) {
		return &FieldError{Field: "email", Message: EmailErrorMessage}
	}
	return nil
}

// Company requires a non-empty company name. The value is not trimmed first,
// so an all-whitespace name passes. That matches the upstream behavior and
// is kept until product confirms it should change.
func Company(name string) error {
	if name == "" {
		return &FieldError{Field: "company", Message: CompanyErrorMessage}
	}
	return nil
}

// Form checks both fields independently and returns every failure, so the
// caller can surface all field errors at once.
func Form(email, company string) error {
	var result *multierror.Error

	if err := BusinessEmail(email); err != nil {
		result = multierror.Append(result, err)
	}
	if err := Company(company); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}
