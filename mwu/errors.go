package mwu

import "errors"

var (
	// ErrInvalidEpsilon is returned when eps is not in (0,1).
	ErrInvalidEpsilon = errors.New("mwu: epsilon must be in (0,1)")

	// ErrInvalidAlpha is returned when alpha is not in (0,1].
	ErrInvalidAlpha = errors.New("mwu: alpha must be in (0,1]")

	// ErrNoQuota is returned when the quota is empty.
	ErrNoQuota = errors.New("mwu: quota has zero total")
)
