package distmat

import "gonum.org/v1/gonum/floats"

// BuildPairwise computes the symmetric n×n Euclidean distance matrix
// over points (n = len(points)) and returns it as a Dense. The
// diagonal is zero; only the upper triangle is computed and mirrored,
// halving the number of distance evaluations relative to a naive
// double loop.
func BuildPairwise(points [][]float64) (*Dense, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrEmptyPoints
	}
	d := len(points[0])
	for _, p := range points {
		if len(p) != d {
			return nil, ErrDimensionMismatch
		}
	}

	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist := floats.Distance(points[i], points[j], 2)
			_ = m.Set(i, j, dist)
			_ = m.Set(j, i, dist)
		}
	}

	return m, nil
}
