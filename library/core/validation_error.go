package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDueDate is wrapped when a due date can not be parsed.
	ErrInvalidDueDate = errors.New("due date is not a valid ISO 8601 timestamp")

	// ErrMissingDueDate is wrapped when an open loan has no due date.
	ErrMissingDueDate = errors.New("due date is missing")

	// ErrNegativeAmount is wrapped when a fee amount is below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrInvalidAmount is wrapped when a fee amount can not be parsed.
	ErrInvalidAmount = errors.New("amount is not a valid decimal number")
)

// ValidationError reports malformed input. It wraps one of the sentinel errors above.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func newValidationError(field string, value string, err error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Err: err}
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("validation failed for %s: %v", e.Field, e.Err)
	}

	return fmt.Sprintf("validation failed for %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
