package domain

import (
	"errors"
	"strings"

	"go.uber.org/multierr"
)

// ErrInvalidInput is matched by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single rejected form field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Message
}

// InvalidInputError carries every field error found while validating a form.
// It matches ErrInvalidInput with errors.Is, and each *FieldError is
// reachable with errors.As.
type InvalidInputError struct {
	errs error
}

func newInvalidInputError(errs error) error {
	if errs == nil {
		return nil
	}
	return &InvalidInputError{errs: errs}
}

func (e *InvalidInputError) Error() string {
	parts := make([]string, 0, 2)
	for _, err := range multierr.Errors(e.errs) {
		parts = append(parts, err.Error())
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func (e *InvalidInputError) Unwrap() []error {
	return multierr.Errors(e.errs)
}

// Fields returns the names of the rejected fields in validation order.
func (e *InvalidInputError) Fields() []string {
	var fields []string
	for _, err := range multierr.Errors(e.errs) {
		var fe *FieldError
		if errors.As(err, &fe) {
			fields = append(fields, fe.Field)
		}
	}
	return fields
}

// InvalidFields returns the rejected field names carried by err, or nil
// when err is not a validation failure.
func InvalidFields(err error) []string {
	var ie *InvalidInputError
	if errors.As(err, &ie) {
		return ie.Fields()
	}
	return nil
}

func fieldErr(field, msg string) error {
	return &FieldError{Field: field, Message: msg}
}
