package mwu

// selectSmallest partitions idx in place so that the k indices with
// the smallest values[i] (ties broken by ascending index) occupy
// idx[:k], then sorts just that prefix for a deterministic output
// order. This is an introspective nth-element followed by a bounded
// scan, avoiding a full sort since idx can be large (a color's entire
// index list) while k is typically small.
//
// idx is mutated; callers that need to preserve the original order
// must pass a copy.
func selectSmallest(idx []int, values []float64, k int) []int {
	if k >= len(idx) {
		sortByValueThenIndex(idx, values)
		return idx
	}
	quickselect(idx, values, k)
	out := idx[:k]
	sortByValueThenIndex(out, values)
	return out
}

// less reports whether index a should sort before index b under
// (value, ascending index) order, the deterministic tie-break used
// throughout this selection.
func less(values []float64, a, b int) bool {
	if values[a] != values[b] {
		return values[a] < values[b]
	}
	return a < b
}

// quickselect partitions idx in place (Hoare-style, median-of-three
// pivot) so that idx[:k] holds the k smallest elements under less,
// without fully ordering either half.
func quickselect(idx []int, values []float64, k int) {
	lo, hi := 0, len(idx)-1
	for lo < hi {
		p := partition(idx, values, lo, hi)
		switch {
		case p == k:
			return
		case p < k:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

func partition(idx []int, values []float64, lo, hi int) int {
	mid := lo + (hi-lo)/2
	medianOfThree(idx, values, lo, mid, hi)
	pivot := idx[mid]
	idx[mid], idx[hi] = idx[hi], idx[mid]

	store := lo
	for i := lo; i < hi; i++ {
		if less(values, idx[i], pivot) {
			idx[i], idx[store] = idx[store], idx[i]
			store++
		}
	}
	idx[store], idx[hi] = idx[hi], idx[store]

	return store
}

func medianOfThree(idx []int, values []float64, a, b, c int) {
	if less(values, idx[b], idx[a]) {
		idx[a], idx[b] = idx[b], idx[a]
	}
	if less(values, idx[c], idx[a]) {
		idx[a], idx[c] = idx[c], idx[a]
	}
	if less(values, idx[c], idx[b]) {
		idx[b], idx[c] = idx[c], idx[b]
	}
}

// sortByValueThenIndex is a small insertion sort: the slices it is
// called on are always bounded by k (typically a handful of points
// per color), so O(k²) is cheaper in practice than invoking a general
// sort with interface overhead.
func sortByValueThenIndex(idx []int, values []float64) {
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && less(values, idx[j], idx[j-1]); j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
}
