package distmat_test

import (
	"testing"

	"github.com/fairdiv/fairdiv/distmat"
	"github.com/stretchr/testify/require"
)

func TestDense_SetAt(t *testing.T) {
	m, err := distmat.NewDense(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 2, 5.5))
	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 5.5, v)
}

func TestDense_OutOfBounds(t *testing.T) {
	m, err := distmat.NewDense(2)
	require.NoError(t, err)
	_, err = m.At(5, 0)
	require.ErrorIs(t, err, distmat.ErrIndexOutOfBounds)
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := distmat.NewDense(0)
	require.ErrorIs(t, err, distmat.ErrInvalidDimensions)
}

func TestBuildPairwise(t *testing.T) {
	points := [][]float64{{0, 0}, {3, 4}, {6, 8}}
	m, err := distmat.BuildPairwise(points)
	require.NoError(t, err)
	require.Equal(t, 3, m.N())

	d01, _ := m.At(0, 1)
	require.InDelta(t, 5.0, d01, 1e-9)
	d10, _ := m.At(1, 0)
	require.Equal(t, d01, d10)
	d00, _ := m.At(0, 0)
	require.Equal(t, 0.0, d00)
}

func TestBuildPairwise_DimensionMismatch(t *testing.T) {
	points := [][]float64{{0, 0}, {1}}
	_, err := distmat.BuildPairwise(points)
	require.ErrorIs(t, err, distmat.ErrDimensionMismatch)
}

func TestBuildPairwise_Empty(t *testing.T) {
	_, err := distmat.BuildPairwise(nil)
	require.ErrorIs(t, err, distmat.ErrEmptyPoints)
}
