package modarith

import (
	"errors"
	"fmt"
)

// Domain errors for arithmetic operations.
var (
	// ErrInvalidModulus indicates a modulus that is not a positive integer.
	ErrInvalidModulus = errors.New("modarith: modulus must be at least 1")

	// ErrInvalidInput indicates a non-numeric or out-of-range value.
	ErrInvalidInput = errors.New("modarith: invalid input")
)

// InputError wraps an error with the field and raw value that caused it.
type InputError struct {
	Field   string
	Value   string
	Wrapped error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: '%s' must be a 0+ number", e.Field, e.Value)
}

func (e *InputError) Unwrap() error {
	return e.Wrapped
}
