package diversity

import (
	"math"
	"math/rand"

	"github.com/fairdiv/fairdiv/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Maxmin returns the minimum pairwise Euclidean distance among points,
// the diversity objective the solver maximizes. For |points| <= 1 it
// returns +Inf, since a singleton or empty set has no pair to
// constrain (the driver guarantees |S| >= 2 in practice).
//
// Complexity: O(|points|^2 * d). |points| == k is small, so this is
// never the hot path; no spatial index is warranted here.
func Maxmin(points [][]float64) float64 {
	if len(points) <= 1 {
		return math.Inf(1)
	}

	best := math.Inf(1)
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			d := floats.Distance(points[i], points[j], 2)
			if d < best {
				best = d
			}
		}
	}

	return best
}

// MaxminIndices adapts Maxmin over a Dataset plus a list of selected
// point indices, the shape the falloff driver has after rounding.
func MaxminIndices(ds *core.Dataset, idxs []int) float64 {
	pts := make([][]float64, len(idxs))
	for i, idx := range idxs {
		pts[i] = ds.Features[idx]
	}
	return Maxmin(pts)
}

// PairwiseSampleStats draws sampleSize random distinct-point pairs from
// ds and returns the mean and standard deviation of their pairwise
// Euclidean distances, via gonum/stat. Large-scale property tests use
// this as a sanity check on a synthetic dataset's distance distribution
// before trusting a diversity comparison computed over it.
func PairwiseSampleStats(ds *core.Dataset, sampleSize int, rng *rand.Rand) (mean, stddev float64) {
	n := ds.N()
	if n < 2 || sampleSize <= 0 {
		return 0, 0
	}

	dists := make([]float64, sampleSize)
	for i := range dists {
		a := rng.Intn(n)
		b := rng.Intn(n)
		for b == a {
			b = rng.Intn(n)
		}
		dists[i] = floats.Distance(ds.Features[a], ds.Features[b], 2)
	}

	return stat.MeanStdDev(dists, nil)
}
