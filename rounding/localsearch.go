package rounding

import (
	"sort"

	"github.com/fairdiv/fairdiv/core"
	"github.com/fairdiv/fairdiv/diversity"
)

// localSearchRepair runs a bounded number of improving swaps over the
// initial sample: scan candidate moves in a deterministic order,
// accept the first (or best, under WithBestImprovement) strictly
// improving move, repeat until no improving move remains or maxSwaps
// is exhausted.
//
// A move here is "replace selected point s with unselected same-color
// point c" when doing so strictly increases the realized maxmin
// diversity of the selection.
func localSearchRepair(ds *core.Dataset, selected []int, maxSwaps int, bestImprovement bool) []int {
	cur := append([]int(nil), selected...)
	selectedSet := make(map[int]bool, len(cur))
	for _, i := range cur {
		selectedSet[i] = true
	}

	points := func(idxs []int) [][]float64 {
		pts := make([][]float64, len(idxs))
		for i, v := range idxs {
			pts[i] = ds.Features[v]
		}
		return pts
	}

	curDiv := diversity.Maxmin(points(cur))

	for swap := 0; swap < maxSwaps; swap++ {
		type candidate struct {
			pos, repl int
			div       float64
		}
		var best *candidate

		order := append([]int(nil), cur...)
		sort.Ints(order)

		for _, s := range order {
			pos := indexOf(cur, s)
			color := ds.Colors[s]
			for _, c := range ds.ColorIndex[color] {
				if selectedSet[c] {
					continue
				}
				trial := append([]int(nil), cur...)
				trial[pos] = c
				div := diversity.Maxmin(points(trial))
				if div > curDiv+1e-12 {
					if !bestImprovement {
						best = &candidate{pos: pos, repl: c, div: div}
						break
					}
					if best == nil || div > best.div {
						best = &candidate{pos: pos, repl: c, div: div}
					}
				}
			}
			if best != nil && !bestImprovement {
				break
			}
		}

		if best == nil {
			break
		}
		delete(selectedSet, cur[best.pos])
		cur[best.pos] = best.repl
		selectedSet[best.repl] = true
		curDiv = best.div
	}

	return cur
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
