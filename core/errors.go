// Package core: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// core package. All algorithms MUST return these sentinels and tests
// MUST check them via errors.Is. No algorithm should panic on
// user-triggered error conditions; panics are reserved for programmer
// errors in option constructors.

package core

import "errors"

var (
	// ErrEmptyDataset is returned when N == 0.
	ErrEmptyDataset = errors.New("core: dataset has zero points")

	// ErrDimensionMismatch indicates Colors and Features disagree in length,
	// or feature rows have inconsistent dimensionality.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrNonFiniteFeature signals a NaN or ±Inf coordinate in the feature matrix.
	ErrNonFiniteFeature = errors.New("core: non-finite feature value")

	// ErrEmptyQuota is returned when a quota map is empty or sums to zero.
	ErrEmptyQuota = errors.New("core: quota is empty")

	// ErrQuotaExceedsColor is returned when K(c) > |I_c| for some color c.
	ErrQuotaExceedsColor = errors.New("core: quota exceeds available points for color")

	// ErrUnknownColor is returned when a quota references a color id absent
	// from the dataset's color index.
	ErrUnknownColor = errors.New("core: quota references unknown color")

	// ErrQuotaExceedsTotal is returned when k > N.
	ErrQuotaExceedsTotal = errors.New("core: total quota exceeds dataset size")

	// ErrBadEpsilon is returned when an epsilon parameter is not in (0,1).
	ErrBadEpsilon = errors.New("core: epsilon must be in (0,1)")

	// ErrWeightLengthMismatch indicates a Weights vector whose length does
	// not match the dataset it is applied against.
	ErrWeightLengthMismatch = errors.New("core: weight vector length mismatch")

	// ErrWeightUnderflow is returned when the weight vector's L1 norm drops
	// below the configured floor before normalization.
	ErrWeightUnderflow = errors.New("core: weight vector underflowed to zero")

	// ErrNegativeWeight is returned when a weight vector contains a
	// negative entry beyond floating-point round-off.
	ErrNegativeWeight = errors.New("core: weight vector has a negative entry")
)
