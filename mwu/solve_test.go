package mwu_test

import (
	"context"
	"testing"

	"github.com/fairdiv/fairdiv/core"
	"github.com/fairdiv/fairdiv/mwu"
	"github.com/fairdiv/fairdiv/spatial"
	"github.com/stretchr/testify/require"
)

func squareDataset(t *testing.T) (*core.Dataset, core.Quota) {
	t.Helper()
	features := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	colors := []int{0, 0, 0, 0}
	ds, err := core.NewDataset(features, colors, []string{"a"})
	require.NoError(t, err)
	q, err := core.NewQuota(ds, map[int]int{0: 2})
	require.NoError(t, err)
	return ds, q
}

func TestSolve_FeasibleAtSmallGamma(t *testing.T) {
	ds, q := squareDataset(t)
	idx, err := spatial.Build(ds.Features)
	require.NoError(t, err)

	x, status, err := mwu.Solve(context.Background(), 0.5, ds, q, idx, 0.5)
	require.NoError(t, err)
	require.Equal(t, mwu.StatusFeasible, status)
	require.Len(t, x, ds.N())
	for _, v := range x {
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0+1e-9)
	}
}

func TestSolve_InfeasibleAtLargeGamma(t *testing.T) {
	// Requesting all 4 corners at a radius that makes every point see
	// every other point's full weight forces W >= 1 immediately.
	ds, err := core.NewDataset([][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, []int{0, 0, 0, 0}, []string{"a"})
	require.NoError(t, err)
	q, err := core.NewQuota(ds, map[int]int{0: 4})
	require.NoError(t, err)
	idx, err := spatial.Build(ds.Features)
	require.NoError(t, err)

	_, status, err := mwu.Solve(context.Background(), 10, ds, q, idx, 0.5)
	require.NoError(t, err)
	require.Equal(t, mwu.StatusInfeasible, status)
}

func TestSolve_InvalidEpsilon(t *testing.T) {
	ds, q := squareDataset(t)
	idx, err := spatial.Build(ds.Features)
	require.NoError(t, err)
	_, _, err = mwu.Solve(context.Background(), 0.5, ds, q, idx, 1.5)
	require.ErrorIs(t, err, mwu.ErrInvalidEpsilon)
}

func TestSolve_RespectsContextCancellation(t *testing.T) {
	ds, q := squareDataset(t)
	idx, err := spatial.Build(ds.Features)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = mwu.Solve(ctx, 0.5, ds, q, idx, 0.5)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolve_StochasticCadenceAlsoFeasible(t *testing.T) {
	ds, q := squareDataset(t)
	idx, err := spatial.Build(ds.Features)
	require.NoError(t, err)

	x, status, err := mwu.Solve(context.Background(), 0.5, ds, q, idx, 0.5,
		mwu.WithEarlyStopCadence(mwu.Stochastic(5, 2, 6, 7)))
	require.NoError(t, err)
	require.Equal(t, mwu.StatusFeasible, status)
	require.Len(t, x, ds.N())
}
