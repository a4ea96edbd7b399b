package distmat

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("distmat: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("distmat: index out of bounds")

	// ErrEmptyPoints is returned when BuildPairwise is given zero points.
	ErrEmptyPoints = errors.New("distmat: no points to build a distance matrix from")

	// ErrDimensionMismatch is returned when BuildPairwise's points disagree
	// in feature dimensionality.
	ErrDimensionMismatch = errors.New("distmat: points have inconsistent dimensionality")
)
