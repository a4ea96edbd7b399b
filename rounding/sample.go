package rounding

import (
	"math"
	"math/rand"
	"sort"
)

// weightedSampleWithoutReplacement picks k distinct indices from idx
// with probability proportional to weight[i] (Efraimidis–Spirakis
// weighted reservoir keys: key_i = U^(1/w_i), keep the k largest).
// Zero-weight candidates get key 0 and are only chosen if there is no
// alternative, preserving "match K in expectation" for the points that
// actually carry fractional mass.
func weightedSampleWithoutReplacement(rng *rand.Rand, idx []int, weight []float64, k int) []int {
	if k >= len(idx) {
		out := append([]int(nil), idx...)
		sort.Ints(out)
		return out
	}

	type keyed struct {
		i   int
		key float64
	}
	keys := make([]keyed, len(idx))
	for j, i := range idx {
		w := weight[i]
		var key float64
		if w <= 0 {
			key = 0
		} else {
			u := rng.Float64()
			if u <= 0 {
				u = math.SmallestNonzeroFloat64
			}
			key = math.Pow(u, 1/w)
		}
		keys[j] = keyed{i: i, key: key}
	}

	sort.Slice(keys, func(a, b int) bool {
		if keys[a].key != keys[b].key {
			return keys[a].key > keys[b].key
		}
		return keys[a].i < keys[b].i
	})

	out := make([]int, k)
	for j := 0; j < k; j++ {
		out[j] = keys[j].i
	}
	sort.Ints(out)

	return out
}
