package mwu

import (
	"context"
	"math"

	"github.com/fairdiv/fairdiv/core"
	"github.com/fairdiv/fairdiv/spatial"
)

// Status reports the outcome of a Solve call.
type Status int

const (
	// StatusInfeasible means no γ-feasible fractional solution was
	// found; X is undefined.
	StatusInfeasible Status = iota
	// StatusFeasible means X is a valid fractional solution at γ.
	StatusFeasible
)

// Solve runs the multiplicative-weights iteration at a fixed candidate
// threshold γ, returning a fractional selection X or reporting
// infeasibility. idx must already be built over ds.Features and is
// only read, never mutated — the caller owns the index and may reuse
// it across many Solve calls at different γ.
func Solve(ctx context.Context, gamma float64, ds *core.Dataset, q core.Quota, idx *spatial.Index, eps float64, opts ...Option) ([]float64, Status, error) {
	if eps <= 0 || eps >= 1 {
		return nil, StatusInfeasible, ErrInvalidEpsilon
	}
	k := q.Total()
	if k <= 0 {
		return nil, StatusInfeasible, ErrNoQuota
	}
	o := gatherOptions(opts...)
	if o.alpha <= 0 || o.alpha > 1 {
		return nil, StatusInfeasible, ErrInvalidAlpha
	}

	n := ds.N()
	mu := k - 1
	if mu < 1 {
		mu = 1 // degenerate k=1 request: avoid division by zero in M.
	}
	epsPrime := eps / (1 + eps/4)
	t := int(math.Ceil(8 * float64(mu) / (epsPrime * epsPrime) * math.Log(float64(n))))
	t = int(math.Ceil(float64(t) * o.alpha))
	if t < 1 {
		t = 1
	}

	s := &solver{
		ds:       ds,
		quota:    q,
		idx:      idx,
		gamma:    gamma,
		mu:       mu,
		epsPrime: epsPrime,
		eps:      eps,
		cadence:  o.cadence,
		workers:  o.workers,

		h:       core.UniformWeights(n),
		X:       make([]float64, n),
		wsum:    make([]float64, n),
		xfrac:   make([]float64, n),
		m:       make([]float64, n),
		centers: make([][]float64, 0, k),
	}

	lastExecuted := 0
	for iter := 0; iter < t; iter++ {
		select {
		case <-ctx.Done():
			return nil, StatusInfeasible, ctx.Err()
		default:
		}

		feasible, earlyStop, err := s.iterate(iter)
		if err != nil {
			return nil, StatusInfeasible, err
		}
		lastExecuted = iter
		if !feasible {
			return nil, StatusInfeasible, nil
		}
		if earlyStop {
			break
		}
	}

	out := make([]float64, n)
	denom := float64(lastExecuted + 1)
	for i, v := range s.X {
		out[i] = v / denom
	}

	return out, StatusFeasible, nil
}

// solver holds the mutable, iteration-scoped state of one Solve call.
// Every buffer below is allocated once and reused across iterations;
// the ball-count index and its counts are not held here and are
// rebuilt each iteration.
type solver struct {
	ds    *core.Dataset
	quota core.Quota
	idx   *spatial.Index
	gamma float64

	mu       int
	epsPrime float64
	eps      float64
	cadence  Cadence
	workers  int

	h       core.Weights
	X       []float64
	wsum    []float64
	xfrac   []float64
	m       []float64
	centers [][]float64

	selBuf []int // reused scratch for per-color index copies
}

// iterate runs one MWU iteration and reports whether the iteration
// stayed feasible and whether an early-feasibility check, run when the
// configured cadence asks for one, found X/(iter+1) already γ-feasible.
func (s *solver) iterate(iter int) (feasible bool, earlyStop bool, err error) {
	r := s.gamma / 2

	if err := s.idx.QuerySumInto(s.wsum, r, s.h); err != nil {
		return false, false, err
	}

	s.centers = s.centers[:0]
	var w float64

	for c := 0; c < s.ds.NumColors(); c++ {
		kc, ok := s.quota[c]
		if !ok || kc == 0 {
			continue
		}
		list := s.ds.ColorIndex[c]
		s.selBuf = append(s.selBuf[:0], list...)
		selected := selectSmallest(s.selBuf, s.wsum, kc)
		for _, i := range selected {
			s.X[i]++
			w += s.wsum[i]
			s.centers = append(s.centers, s.ds.Features[i])
		}
	}

	if w >= 1 {
		return false, false, nil
	}

	ci, err := spatial.BuildCounts(s.centers, spatial.WithWorkers(s.workers))
	if err != nil {
		return false, false, err
	}
	counts, err := ci.Count(s.ds.Features, r)
	if err != nil {
		return false, false, err
	}
	for i, cnt := range counts {
		s.m[i] = (1 - float64(cnt)) / float64(s.mu)
	}

	for i := range s.h {
		s.h[i] *= 1 - (s.epsPrime/4)*s.m[i]
	}
	if err := s.h.Normalize(); err != nil {
		return false, false, err
	}

	if s.cadence.shouldCheck(iter) {
		denom := float64(iter + 1)
		for i, v := range s.X {
			s.xfrac[i] = v / denom
		}
		if err := s.idx.QuerySumInto(s.wsum, r, s.xfrac); err != nil {
			return false, false, err
		}
		maxEntry := 0.0
		for _, v := range s.wsum {
			if v > maxEntry {
				maxEntry = v
			}
		}
		if maxEntry <= 1+s.eps {
			return true, true, nil
		}
	}

	return true, false, nil
}
