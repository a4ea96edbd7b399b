package spatial

import "sync"

// QuerySum computes, for every point i in the index, the sum of
// weights[j] over all j within Euclidean radius r of point i. The
// result is a fresh slice; callers that want to avoid repeated
// allocation across MWU iterations should keep reusing the same
// backing array via QuerySumInto.
func (ix *Index) QuerySum(r float64, weights []float64) ([]float64, error) {
	out := make([]float64, len(ix.points))
	return out, ix.QuerySumInto(out, r, weights)
}

// QuerySumInto is the allocation-free variant of QuerySum: it writes
// into out (which must have length len(points)) instead of allocating
// a new result slice, letting callers reuse a single iteration-scoped
// buffer across repeated MWU iterations.
func (ix *Index) QuerySumInto(out []float64, r float64, weights []float64) error {
	if r < 0 {
		return ErrNegativeRadius
	}
	if len(weights) != len(ix.points) {
		return ErrWeightLengthMismatch
	}
	if len(out) != len(ix.points) {
		return ErrDimensionMismatch
	}

	n := len(ix.points)
	if n == 0 {
		return nil
	}

	workers := ix.workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			out[i] = ix.sumAt(ix.points[i], r, weights)
		}
		return nil
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				out[i] = ix.sumAt(ix.points[i], r, weights)
			}
		}(start, end)
	}
	wg.Wait()

	return nil
}

// sumAt descends the tree from the root, accumulating weights[j] for
// every indexed point j within radius r of query, pruning subtrees
// whose splitting hyperplane already lies farther than r from query
// along its axis.
func (ix *Index) sumAt(query []float64, r float64, weights []float64) float64 {
	var total float64
	ix.sumRec(ix.root, query, r, weights, &total)
	return total
}

func (ix *Index) sumRec(n int, query []float64, r float64, weights []float64, total *float64) {
	if n < 0 {
		return
	}
	nd := ix.nodes[n]
	p := ix.points[nd.point]

	if euclid(p, query) <= r {
		*total += weights[nd.point]
	}

	diff := query[nd.axis] - p[nd.axis]
	near, far := nd.left, nd.right
	if diff > 0 {
		near, far = nd.right, nd.left
	}

	ix.sumRec(near, query, r, weights, total)
	// Only descend into the far subtree if its splitting hyperplane is
	// close enough that it could still contain a point within r.
	if abs(diff) <= r {
		ix.sumRec(far, query, r, weights, total)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
