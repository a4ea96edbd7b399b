package mwu

import "math/rand"

// Cadence decides, for a given iteration t, whether the solver should
// pause and test X/(t+1) for early γ-feasibility. Two policies are
// provided — a fixed period and a randomized interval; neither is more
// "correct" than the other, only faster or slower depending on how
// early the fractional solution tends to stabilize.
type Cadence interface {
	shouldCheck(t int) bool
}

// fixedCadence checks every Period iterations starting at t=0.
type fixedCadence struct {
	period int
}

// Fixed returns a Cadence that triggers an early-stop check every
// period iterations, starting at t=0.
func Fixed(period int) Cadence {
	if period <= 0 {
		period = DefaultFixedPeriod
	}
	return &fixedCadence{period: period}
}

func (f *fixedCadence) shouldCheck(t int) bool {
	return t%f.period == 0
}

// stochasticCadence checks after a fixed warmup, then at intervals
// drawn uniformly from [lo,hi]. The RNG is owned by the cadence
// instance, never a package global, so two cadences seeded identically
// produce identical check schedules regardless of call order elsewhere
// in the process.
type stochasticCadence struct {
	warmup int
	lo, hi int
	rng    *rand.Rand
	next   int
}

// Stochastic returns a Cadence that performs no checks before warmup
// iterations, then checks at intervals uniformly drawn from [lo,hi]
// (inclusive), seeded by seed for reproducibility.
func Stochastic(warmup, lo, hi int, seed int64) Cadence {
	if lo > hi {
		lo, hi = hi, lo
	}
	return &stochasticCadence{
		warmup: warmup,
		lo:     lo,
		hi:     hi,
		rng:    rand.New(rand.NewSource(seed)),
		next:   warmup,
	}
}

func (s *stochasticCadence) shouldCheck(t int) bool {
	if t < s.warmup {
		return false
	}
	if t >= s.next {
		span := s.hi - s.lo + 1
		s.next = t + s.lo + s.rng.Intn(span)
		return true
	}
	return false
}
