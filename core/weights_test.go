package core_test

import (
	"testing"

	"github.com/fairdiv/fairdiv/core"
	"github.com/stretchr/testify/require"
)

func TestUniformWeights(t *testing.T) {
	w := core.UniformWeights(4)
	require.InDelta(t, 1.0, w.Sum(), 1e-12)
	for _, v := range w {
		require.InDelta(t, 0.25, v, 1e-12)
	}
}

func TestWeights_NormalizeRescales(t *testing.T) {
	w := core.Weights{1, 1, 2}
	require.NoError(t, w.Normalize())
	require.InDelta(t, 1.0, w.Sum(), 1e-12)
	require.InDelta(t, 0.25, w[0], 1e-12)
	require.InDelta(t, 0.5, w[2], 1e-12)
}

func TestWeights_Underflow(t *testing.T) {
	w := core.Weights{0, 0, 0}
	err := w.Normalize()
	require.ErrorIs(t, err, core.ErrWeightUnderflow)
}

func TestWeights_NegativeRejected(t *testing.T) {
	w := core.Weights{-1, 2}
	err := w.Normalize()
	require.ErrorIs(t, err, core.ErrNegativeWeight)
}
