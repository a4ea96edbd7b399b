package coreset

import "errors"

var (
	// ErrTargetTooLarge is returned when targetSize exceeds the dataset size.
	ErrTargetTooLarge = errors.New("coreset: target size exceeds dataset size")

	// ErrTargetNotPositive is returned when targetSize <= 0.
	ErrTargetNotPositive = errors.New("coreset: target size must be positive")
)
