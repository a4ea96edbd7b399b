package spatial

// CountIndex answers ball-count queries over a small set of m center
// points: for every query point i, how many centers are within radius
// r of i. Because m is bounded by the overall selection size k in
// every call site this module makes, CountIndex picks between a flat
// scan and a k-d tree at Build time based on m, never re-deciding per
// query.
type CountIndex struct {
	centers [][]float64
	tree    *Index // non-nil only when m exceeds the brute-force threshold
}

// BuildCounts constructs a CountIndex over centers. Build is one-shot;
// the center set is expected to be small (bounded by the overall
// selection size k).
func BuildCounts(centers [][]float64, opts ...Option) (*CountIndex, error) {
	if len(centers) == 0 {
		return nil, ErrEmptyPoints
	}
	d := len(centers[0])
	for _, c := range centers {
		if len(c) != d {
			return nil, ErrDimensionMismatch
		}
	}

	o := gatherOptions(opts...)
	ci := &CountIndex{centers: centers}
	if len(centers) > o.bruteForceThreshold {
		tree, err := Build(centers, opts...)
		if err != nil {
			return nil, err
		}
		ci.tree = tree
	}

	return ci, nil
}

// Count computes, for every point in queryPoints, the number of
// centers within Euclidean radius r of that point.
func (ci *CountIndex) Count(queryPoints [][]float64, r float64) ([]int, error) {
	if r < 0 {
		return nil, ErrNegativeRadius
	}
	out := make([]int, len(queryPoints))
	if ci.tree != nil {
		// A center "weighs" 1 toward the sum; QuerySum over a
		// unit-weight vector of the centers is exactly the count we
		// need, reusing the same bounded-radius descent as the
		// weighted index.
		ones := make([]float64, len(ci.centers))
		for i := range ones {
			ones[i] = 1
		}
		for i, q := range queryPoints {
			sum, err := ci.tree.sumAtExternal(q, r, ones)
			if err != nil {
				return nil, err
			}
			out[i] = int(sum + 0.5) // sum is an exact integer up to float rounding
		}
		return out, nil
	}

	for i, q := range queryPoints {
		count := 0
		for _, c := range ci.centers {
			if euclid(q, c) <= r {
				count++
			}
		}
		out[i] = count
	}

	return out, nil
}

// sumAtExternal lets CountIndex reuse Index's radius descent for a
// query point that is not necessarily one of the indexed points
// themselves (Count queries arbitrary dataset points against the
// small center tree, unlike QuerySum which always queries the same
// points the index was built over).
func (ix *Index) sumAtExternal(query []float64, r float64, weights []float64) (float64, error) {
	if len(query) != ix.d {
		return 0, ErrDimensionMismatch
	}
	return ix.sumAt(query, r, weights), nil
}
