package core

import "gonum.org/v1/gonum/floats"

// UnderflowFloor is the minimum L1 norm a weight vector may have before
// Normalize refuses to proceed. Chosen conservatively below any
// realistic working precision for N in the millions.
const UnderflowFloor = 1e-300

// Weights is a length-N nonnegative vector, normally h (the
// multiplicative-weights solver's working weight) or X (its
// accumulator), shared across packages so both sides of the contract
// agree on the underflow/normalization rules.
type Weights []float64

// UniformWeights returns h initialized to 1/n for every entry.
func UniformWeights(n int) Weights {
	w := make(Weights, n)
	u := 1.0 / float64(n)
	for i := range w {
		w[i] = u
	}
	return w
}

// Sum returns Σ w, using gonum/floats for the reduction.
func (w Weights) Sum() float64 {
	return floats.Sum(w)
}

// Normalize rescales w in place so Σw == 1. It returns
// ErrWeightUnderflow if the pre-normalization sum is at or below
// UnderflowFloor, and ErrNegativeWeight if any entry is negative
// beyond floating round-off before rescaling.
func (w Weights) Normalize() error {
	for _, v := range w {
		if v < -1e-12 {
			return ErrNegativeWeight
		}
	}
	sum := w.Sum()
	if sum <= UnderflowFloor {
		return ErrWeightUnderflow
	}
	floats.Scale(1.0/sum, w)
	// Clamp any floating-point negative dust introduced by scaling.
	for i, v := range w {
		if v < 0 {
			w[i] = 0
		}
	}
	return nil
}
