package freefall

import (
	"errors"
	"fmt"
)

// Input domain errors. The computational operations never return these;
// hosts call Validate before handing values to the model.
var (
	// ErrNegativeHeight indicates an initial height below zero.
	ErrNegativeHeight = errors.New("freefall: initial height must be non-negative")

	// ErrNegativeTime indicates an elapsed time below zero.
	ErrNegativeTime = errors.New("freefall: elapsed time must be non-negative")

	// ErrNegativeMass indicates a mass below zero.
	ErrNegativeMass = errors.New("freefall: mass must be non-negative")

	// ErrNonFinite indicates a NaN or infinite input.
	ErrNonFinite = errors.New("freefall: value is NaN or Inf")

	// ErrInvalidGravity indicates a gravity value that is not positive and finite.
	ErrInvalidGravity = errors.New("freefall: gravity must be positive and finite")
)

// InputError wraps a domain error with the offending field.
type InputError struct {
	Field   string
	Value   float64
	Wrapped error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s=%g: %v", e.Field, e.Value, e.Wrapped)
}

func (e *InputError) Unwrap() error {
	return e.Wrapped
}
