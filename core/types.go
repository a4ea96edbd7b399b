package core

import "math"

// Dataset is an immutable collection of N points in d-dimensional
// Euclidean space, each tagged with an interned color id. Points are
// identified by their index 0..N-1; this index is the canonical
// identity used by every other package.
//
// Construction is the only place colors are interned: ColorNames[c]
// recovers the original label for color id c, and ColorIndex[c] is the
// sorted list of point indices carrying that color, computed once and
// reused for the lifetime of the Dataset.
type Dataset struct {
	Features   [][]float64 // N rows, each of length D
	Colors     []int       // length N, interned color id per point
	ColorNames []string    // color id -> original label
	ColorIndex [][]int     // color id -> sorted point indices (I_c)
	D          int         // feature dimensionality
}

// N reports the number of points in the dataset.
func (ds *Dataset) N() int { return len(ds.Features) }

// NumColors reports the number of distinct colors.
func (ds *Dataset) NumColors() int { return len(ds.ColorNames) }

// NewDataset validates and constructs a Dataset from raw feature rows
// and already-interned color ids (ColorIndex is derived here; callers
// with string labels should use the quota package's label interning
// helper, or intern ad hoc and pass the resulting ids and names).
//
// Complexity: O(N*D) for validation, O(N) for index construction.
func NewDataset(features [][]float64, colors []int, colorNames []string) (*Dataset, error) {
	n := len(features)
	if n == 0 {
		return nil, ErrEmptyDataset
	}
	if len(colors) != n {
		return nil, ErrDimensionMismatch
	}

	d := len(features[0])
	for _, row := range features {
		if len(row) != d {
			return nil, ErrDimensionMismatch
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNonFiniteFeature
			}
		}
	}

	numColors := len(colorNames)
	index := make([][]int, numColors)
	for i, c := range colors {
		if c < 0 || c >= numColors {
			return nil, ErrUnknownColor
		}
		index[c] = append(index[c], i)
	}

	return &Dataset{
		Features:   features,
		Colors:     colors,
		ColorNames: colorNames,
		ColorIndex: index,
		D:          d,
	}, nil
}

// Quota maps an interned color id to the number of points requested
// from that color. Total() == k, the overall selection size.
type Quota map[int]int

// Total returns k = Σ_c K(c).
func (q Quota) Total() int {
	total := 0
	for _, v := range q {
		total += v
	}
	return total
}

// NewQuota validates a raw color id -> count map against a Dataset and
// returns it as a Quota, failing closed on any violation of the
// required invariants (K(c) ≤ |I_c|, k ≤ N, every color known, every
// count positive).
func NewQuota(ds *Dataset, counts map[int]int) (Quota, error) {
	if len(counts) == 0 {
		return nil, ErrEmptyQuota
	}

	q := make(Quota, len(counts))
	total := 0
	for c, k := range counts {
		if c < 0 || c >= ds.NumColors() {
			return nil, ErrUnknownColor
		}
		if k <= 0 {
			return nil, ErrEmptyQuota
		}
		if k > len(ds.ColorIndex[c]) {
			return nil, ErrQuotaExceedsColor
		}
		q[c] = k
		total += k
	}
	if total > ds.N() {
		return nil, ErrQuotaExceedsTotal
	}

	return q, nil
}
