package rounding

import "errors"

var (
	// ErrLengthMismatch indicates x's length does not match the dataset.
	ErrLengthMismatch = errors.New("rounding: fractional vector length mismatch")

	// ErrNegativeRadius is returned when r is negative.
	ErrNegativeRadius = errors.New("rounding: radius must be non-negative")
)
