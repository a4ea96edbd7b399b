package falloff_test

import (
	"context"
	"math"
	"testing"

	"github.com/fairdiv/fairdiv/core"
	"github.com/fairdiv/fairdiv/falloff"
	"github.com/fairdiv/fairdiv/rounding"
	"github.com/stretchr/testify/require"
)

func gridDataset(t *testing.T) (*core.Dataset, core.Quota) {
	t.Helper()
	features := [][]float64{
		{0, 0}, {10, 0}, {0, 10}, {10, 10}, {5, 5}, {1, 1}, {9, 9}, {1, 9},
	}
	colors := []int{0, 0, 0, 0, 1, 1, 1, 1}
	ds, err := core.NewDataset(features, colors, []string{"a", "b"})
	require.NoError(t, err)
	q, err := core.NewQuota(ds, map[int]int{0: 2, 1: 2})
	require.NoError(t, err)
	return ds, q
}

func TestRun_FindsFeasibleSelection(t *testing.T) {
	ds, q := gridDataset(t)
	round := rounding.NewSampledRounder(rounding.WithSeed(1))

	res, err := falloff.Run(context.Background(), ds, q, 20, 0.3, 0.1, 1.0, round)
	require.NoError(t, err)
	require.Len(t, res.Selected, 4)
	require.GreaterOrEqual(t, res.Diversity, 0.0)
}

func TestRun_InvalidGammaUpper(t *testing.T) {
	ds, q := gridDataset(t)
	round := rounding.NewSampledRounder()
	_, err := falloff.Run(context.Background(), ds, q, 0, 0.3, 0.1, 1.0, round)
	require.ErrorIs(t, err, falloff.ErrInvalidGammaUpper)
}

func TestRun_InvalidEpsFall(t *testing.T) {
	ds, q := gridDataset(t)
	round := rounding.NewSampledRounder()
	_, err := falloff.Run(context.Background(), ds, q, 20, 0.3, 1.5, 1.0, round)
	require.ErrorIs(t, err, falloff.ErrInvalidEpsFall)
}

func TestRun_GammaFloorUnreachable(t *testing.T) {
	ds, q := gridDataset(t)
	round := rounding.NewSampledRounder()
	_, err := falloff.Run(context.Background(), ds, q, 20, 0.3, 0.1, 1.0, round, falloff.WithGammaFloor(19))
	require.ErrorIs(t, err, falloff.ErrNoFeasibleGamma)
}

// TestRun_E1ThreePointTwoColors is scenario E1 of spec.md §8: three
// points, two colors, K = {red:1, blue:1}. Expected |S| = 2, diversity
// = 1.0 — the driver must pick (0,0) and one of the two blue points a
// unit distance away.
func TestRun_E1ThreePointTwoColors(t *testing.T) {
	features := [][]float64{{0, 0}, {1, 0}, {0, 1}}
	colors := []int{0, 1, 1}
	ds, err := core.NewDataset(features, colors, []string{"red", "blue"})
	require.NoError(t, err)
	q, err := core.NewQuota(ds, map[int]int{0: 1, 1: 1})
	require.NoError(t, err)

	round := rounding.NewSampledRounder(rounding.WithSeed(1))
	res, err := falloff.Run(context.Background(), ds, q, 2, 0.5, 0.1, 1.0, round)
	require.NoError(t, err)
	require.Len(t, res.Selected, 2)
	require.InDelta(t, 1.0, res.Diversity, 1e-9)
}

// TestRun_E2UnitSquareDiagonal is scenario E2: four unit-square
// corners, one color, K = {a:2}. Expected diversity = √2 (the two
// diagonal corners).
func TestRun_E2UnitSquareDiagonal(t *testing.T) {
	features := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	colors := []int{0, 0, 0, 0}
	ds, err := core.NewDataset(features, colors, []string{"a"})
	require.NoError(t, err)
	q, err := core.NewQuota(ds, map[int]int{0: 2})
	require.NoError(t, err)

	round := rounding.NewSampledRounder(rounding.WithSeed(1))
	res, err := falloff.Run(context.Background(), ds, q, 2, 0.3, 0.1, 1.0, round)
	require.NoError(t, err)
	require.Len(t, res.Selected, 2)
	require.InDelta(t, math.Sqrt2, res.Diversity, 1e-9)
}

// TestRun_E3CollinearPoints is scenario E3: five collinear points at
// x = 0..4, one color, K = {x:3}. Expected diversity = 2 (x=0,2,4).
func TestRun_E3CollinearPoints(t *testing.T) {
	features := [][]float64{{0}, {1}, {2}, {3}, {4}}
	colors := []int{0, 0, 0, 0, 0}
	ds, err := core.NewDataset(features, colors, []string{"x"})
	require.NoError(t, err)
	q, err := core.NewQuota(ds, map[int]int{0: 3})
	require.NoError(t, err)

	round := rounding.NewSampledRounder(rounding.WithSeed(1))
	res, err := falloff.Run(context.Background(), ds, q, 4, 0.3, 0.1, 1.0, round)
	require.NoError(t, err)
	require.Len(t, res.Selected, 3)
	require.InDelta(t, 2.0, res.Diversity, 1e-9)
}

// TestRun_E4CoincidentPointsDegenerate is scenario E4: two coincident
// points plus distinct filler points, K requests both of the
// duplicates' color. The extra filler points dilute the initial
// uniform weight enough that the duplicate pair stays feasible instead
// of trivially saturating W at every γ. The driver must still return a
// result; diversity may be 0.
func TestRun_E4CoincidentPointsDegenerate(t *testing.T) {
	features := [][]float64{{0, 0}, {0, 0}, {5, 5}, {6, 6}, {7, 7}, {8, 8}, {9, 9}}
	colors := []int{0, 0, 1, 1, 1, 1, 1}
	ds, err := core.NewDataset(features, colors, []string{"a", "b"})
	require.NoError(t, err)
	q, err := core.NewQuota(ds, map[int]int{0: 2})
	require.NoError(t, err)

	round := rounding.NewSampledRounder(rounding.WithSeed(1))
	res, err := falloff.Run(context.Background(), ds, q, 1, 0.3, 0.1, 1.0, round)
	require.NoError(t, err)
	require.Len(t, res.Selected, 2)
	require.InDelta(t, 0.0, res.Diversity, 1e-9)
}

// TestRun_E6EpsilonSweepStaysWithinSlack is scenario E6: rerunning E1
// with ε_mwu ∈ {0.1, 0.3, 0.75} must never lose more than an ε_mwu
// fraction of the true diversity (1.0 in E1).
func TestRun_E6EpsilonSweepStaysWithinSlack(t *testing.T) {
	features := [][]float64{{0, 0}, {1, 0}, {0, 1}}
	colors := []int{0, 1, 1}
	ds, err := core.NewDataset(features, colors, []string{"red", "blue"})
	require.NoError(t, err)
	q, err := core.NewQuota(ds, map[int]int{0: 1, 1: 1})
	require.NoError(t, err)

	for _, epsMWU := range []float64{0.1, 0.3, 0.75} {
		round := rounding.NewSampledRounder(rounding.WithSeed(1))
		res, err := falloff.Run(context.Background(), ds, q, 2, epsMWU, 0.1, 1.0, round)
		require.NoErrorf(t, err, "eps_mwu=%v", epsMWU)
		require.GreaterOrEqualf(t, res.Diversity, 1.0*(1-epsMWU)-1e-9, "eps_mwu=%v lost more than its slack", epsMWU)
		require.LessOrEqualf(t, res.Diversity, 1.0+1e-9, "eps_mwu=%v", epsMWU)
	}
}
