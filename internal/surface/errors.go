package surface

import (
	"errors"
	"fmt"
)

// Input errors for surface construction.
var (
	// ErrInvalidOrder indicates a root order below 2.
	ErrInvalidOrder = errors.New("surface: invalid order (must be an integer >= 2)")

	// ErrInvalidResolution indicates fewer than two samples along an axis.
	ErrInvalidResolution = errors.New("surface: invalid resolution (need at least 2 samples per axis)")

	// ErrInvalidDomain indicates a non-positive radius or an unusable gap/offset.
	ErrInvalidDomain = errors.New("surface: invalid sampling domain")
)

// ValidationError names the option that failed validation.
type ValidationError struct {
	Field   string
	Value   any
	Wrapped error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s=%v", e.Wrapped, e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

func invalid(field string, value any, err error) error {
	return &ValidationError{Field: field, Value: value, Wrapped: err}
}
