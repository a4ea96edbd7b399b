package falloff

import "errors"

var (
	// ErrInvalidGammaUpper is returned when the starting γ is non-positive.
	ErrInvalidGammaUpper = errors.New("falloff: gamma upper bound must be positive")

	// ErrInvalidEpsFall is returned when epsFall is not in (0,1).
	ErrInvalidEpsFall = errors.New("falloff: epsFall must be in (0,1)")

	// ErrNoFeasibleGamma is returned when γ shrinks below the configured
	// floor without ever finding a feasible fractional solution.
	ErrNoFeasibleGamma = errors.New("falloff: no feasible gamma found before reaching the floor")
)
