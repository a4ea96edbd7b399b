package spatial

import "errors"

var (
	// ErrEmptyPoints is returned when Build or BuildCounts is called with
	// zero points.
	ErrEmptyPoints = errors.New("spatial: cannot build an index over zero points")

	// ErrDimensionMismatch indicates query points disagree in
	// dimensionality with the points the index was built over.
	ErrDimensionMismatch = errors.New("spatial: dimension mismatch")

	// ErrWeightLengthMismatch indicates a weights vector passed to
	// QuerySum does not match the number of indexed points.
	ErrWeightLengthMismatch = errors.New("spatial: weight vector length mismatch")

	// ErrNegativeRadius is returned when a query radius is negative.
	ErrNegativeRadius = errors.New("spatial: radius must be non-negative")
)
