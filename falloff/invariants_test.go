package falloff

import (
	"context"
	"math"
	"testing"

	"github.com/fairdiv/fairdiv/core"
	"github.com/fairdiv/fairdiv/rounding"
	"github.com/stretchr/testify/require"
)

// alwaysInfeasibleDataset returns a dataset where a single color's
// quota equals N (every point is selected every iteration) and two
// points coincide. Selecting all N points always sums each point's
// full weighted ball, and the coincident pair contributes its weight
// twice regardless of radius, so Σ(ball sums) exceeds 1 with comfortable
// margin at every γ > 0 — mwu.Solve reports infeasible on every attempt
// the falloff loop makes, all the way down to the γ floor.
func alwaysInfeasibleDataset(t *testing.T) (*core.Dataset, core.Quota) {
	t.Helper()
	features := [][]float64{{0, 0}, {0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	colors := make([]int, len(features))
	ds, err := core.NewDataset(features, colors, []string{"a"})
	require.NoError(t, err)
	q, err := core.NewQuota(ds, map[int]int{0: len(features)})
	require.NoError(t, err)
	return ds, q
}

// TestGammaFalloffIterationBound covers invariant 9: the number of γ
// attempts Run makes before giving up at the floor is
// O(log(γ_upper/γ_trivial) / ε_fall), for any ε_fall ∈ (0,1).
func TestGammaFalloffIterationBound(t *testing.T) {
	ds, q := alwaysInfeasibleDataset(t)
	round := rounding.NewSampledRounder()

	cases := []struct {
		gammaUpper, gammaFloor, epsFall float64
	}{
		{20, 1e-6, 0.5},
		{20, 1e-6, 0.1},
		{20, 1e-6, 0.01},
		{1000, 1e-9, 0.3},
	}

	for _, c := range cases {
		attempts := 0
		_, err := Run(context.Background(), ds, q, c.gammaUpper, 0.3, c.epsFall, 1.0, round,
			withOnAttempt(func(float64) { attempts++ }),
			WithGammaFloor(c.gammaFloor),
		)
		require.ErrorIs(t, err, ErrNoFeasibleGamma)

		// Theoretical bound: ceil(log(gammaUpper/gammaFloor) / -log(1-epsFall)).
		bound := math.Log(c.gammaUpper/c.gammaFloor)/(-math.Log(1-c.epsFall)) + 2
		require.LessOrEqualf(t, float64(attempts), bound,
			"epsFall=%v made %d attempts, want at most O(log(gammaUpper/gammaFloor)/epsFall) ~= %v",
			c.epsFall, attempts, bound)
		require.Greater(t, attempts, 0)
	}
}
