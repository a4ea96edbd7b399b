package coreset

import (
	"math"

	"github.com/fairdiv/fairdiv/core"
	"github.com/fairdiv/fairdiv/distmat"
)

// Producer reduces a dataset to a smaller working set, returning the
// reduced dataset and a valid starting γ_upper for the falloff search.
type Producer interface {
	Reduce(ds *core.Dataset, targetSize int) (reduced *core.Dataset, gammaUpper float64, err error)
}

// GonzalezUpperFactor scales the achieved minimum pairwise distance up
// by this factor to obtain γ_upper: farthest-first traversal is a
// classical 2-approximation for max-min facility dispersion, so the
// true optimum for the reduced set is never more than roughly this
// factor above what the traversal already achieved, giving a valid
// starting point the falloff driver can only fail at once before
// settling into the feasible range: a valid starting γ is one at
// which the solver either succeeds or fails cleanly rather than one
// chosen so aggressively that it can never be satisfied.
const GonzalezUpperFactor = 2.0

// GonzalezProducer implements Producer via farthest-first traversal.
type GonzalezProducer struct{}

// Reduce selects targetSize points from ds by farthest-first traversal
// and returns the induced sub-dataset plus a valid γ_upper.
func (GonzalezProducer) Reduce(ds *core.Dataset, targetSize int) (*core.Dataset, float64, error) {
	n := ds.N()
	if targetSize <= 0 {
		return nil, 0, ErrTargetNotPositive
	}
	if targetSize > n {
		return nil, 0, ErrTargetTooLarge
	}

	dm, err := distmat.BuildPairwise(ds.Features)
	if err != nil {
		return nil, 0, err
	}

	chosen := make([]int, 0, targetSize)
	chosen = append(chosen, 0)
	nearestDist := make([]float64, n)
	for i := range nearestDist {
		nearestDist[i], _ = dm.At(i, 0)
	}

	minAchieved := math.Inf(1)
	for len(chosen) < targetSize {
		best := -1
		bestDist := -1.0
		for i := 0; i < n; i++ {
			if nearestDist[i] > bestDist {
				bestDist = nearestDist[i]
				best = i
			}
		}
		if bestDist < minAchieved {
			minAchieved = bestDist
		}
		chosen = append(chosen, best)
		for i := 0; i < n; i++ {
			d, _ := dm.At(i, best)
			if d < nearestDist[i] {
				nearestDist[i] = d
			}
		}
		nearestDist[best] = -1 // never re-selected
	}

	features := make([][]float64, targetSize)
	colors := make([]int, targetSize)
	for i, idx := range chosen {
		features[i] = ds.Features[idx]
		colors[i] = ds.Colors[idx]
	}

	reduced, err := core.NewDataset(features, colors, ds.ColorNames)
	if err != nil {
		return nil, 0, err
	}

	gammaUpper := minAchieved
	if math.IsInf(gammaUpper, 1) {
		gammaUpper = 1 // targetSize == 1: no pairwise distance achieved yet.
	}
	gammaUpper *= GonzalezUpperFactor

	return reduced, gammaUpper, nil
}
