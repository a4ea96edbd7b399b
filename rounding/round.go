package rounding

import (
	"math/rand"

	"github.com/fairdiv/fairdiv/core"
)

// Rounder converts a fractional solution into a concrete integer
// selection.
type Rounder interface {
	Round(r float64, x []float64, ds *core.Dataset, q core.Quota) ([]int, error)
}

// SampledRounder implements Rounder via per-color weighted sampling
// without replacement followed by a bounded local-search repair pass
// (see doc.go).
type SampledRounder struct {
	opts options
}

// NewSampledRounder constructs a SampledRounder with the given options.
func NewSampledRounder(opts ...Option) *SampledRounder {
	return &SampledRounder{opts: gatherOptions(opts...)}
}

// Round implements Rounder.
func (sr *SampledRounder) Round(r float64, x []float64, ds *core.Dataset, q core.Quota) ([]int, error) {
	if r < 0 {
		return nil, ErrNegativeRadius
	}
	if len(x) != ds.N() {
		return nil, ErrLengthMismatch
	}

	rng := rand.New(rand.NewSource(sr.opts.seed))

	selected := make([]int, 0, q.Total())
	for c := 0; c < ds.NumColors(); c++ {
		kc, ok := q[c]
		if !ok || kc == 0 {
			continue
		}
		list := ds.ColorIndex[c]
		picked := weightedSampleWithoutReplacement(rng, list, x, kc)
		selected = append(selected, picked...)
	}

	selected = localSearchRepair(ds, selected, sr.opts.maxSwaps, sr.opts.bestImprovement)

	return selected, nil
}
