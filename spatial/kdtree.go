package spatial

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// node is one entry of the k-d tree, stored in a flat preallocated
// arena indexed by position rather than built from heap-allocated
// pointers.
type node struct {
	point       int // index into the original points slice
	axis        int // splitting dimension
	left, right int // arena indices, -1 if absent
}

// Index is a k-d tree over a fixed point set, built once and reused
// for every weighted ball-sum query across an entire solve, across
// every diversity threshold the outer search attempts.
type Index struct {
	points  [][]float64
	d       int
	nodes   []node
	root    int
	workers int
}

// Build constructs a k-d tree over points. Build is one-shot; the
// returned Index is immutable with respect to points and safe to share
// across goroutines.
func Build(points [][]float64, opts ...Option) (*Index, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrEmptyPoints
	}
	d := len(points[0])
	for _, p := range points {
		if len(p) != d {
			return nil, ErrDimensionMismatch
		}
	}

	o := gatherOptions(opts...)

	ix := &Index{
		points:  points,
		d:       d,
		nodes:   make([]node, n),
		workers: o.workers,
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	ix.root = ix.build(order, 0)

	return ix, nil
}

// build recursively partitions idx (a slice of point indices) around
// the median along the cycling splitting axis and returns the arena
// index of the subtree root, or -1 for an empty slice.
func (ix *Index) build(idx []int, depth int) int {
	if len(idx) == 0 {
		return -1
	}
	axis := depth % ix.d

	sort.Slice(idx, func(a, b int) bool {
		pa, pb := idx[a], idx[b]
		if ix.points[pa][axis] != ix.points[pb][axis] {
			return ix.points[pa][axis] < ix.points[pb][axis]
		}
		return pa < pb // stable tie-break by ascending index
	})

	mid := len(idx) / 2
	medianPoint := idx[mid]

	// medianPoint occupies a fixed slot in the arena, keyed by its own
	// point index, so concurrent builds of sibling subtrees never race
	// on slice growth.
	slot := medianPoint
	left := ix.build(idx[:mid], depth+1)
	right := ix.build(idx[mid+1:], depth+1)

	ix.nodes[slot] = node{point: medianPoint, axis: axis, left: left, right: right}

	return slot
}

// euclid returns the Euclidean distance between two feature vectors,
// delegating the reduction to gonum/floats.
func euclid(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}
