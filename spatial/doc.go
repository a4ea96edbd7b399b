// Package spatial implements the two geometric primitives the
// fair-diversification solver leans on:
//
//   - Index: a k-d tree over the dataset's feature vectors supporting
//     weighted ball-sum queries (QuerySum) — for every point i, the sum
//     of weights w[j] over all j within a Euclidean radius r of i.
//   - CountIndex: a much smaller structure over a handful of center
//     points supporting ball-count queries (Count) — for every query
//     point i, the number of centers within radius r of i.
//
// Both are read-only once built and safely shareable across goroutines;
// only QuerySum's internal fan-out is concurrent, and it never mutates
// the tree.
//
// Steps (QuerySum):
//  1. Descend the k-d tree from the root, pruning any subtree whose
//     splitting hyperplane distance already exceeds r (the standard
//     bounded-radius k-d tree search).
//  2. At each visited node, if the node's point is within r of the
//     query point, accumulate its weight.
//  3. Recurse into whichever child subtree the query point falls into
//     first, then the other child only if its bounding region can still
//     contain a point within r.
//
// Time complexity: expected O(log N) per query point for bounded,
// well-distributed dimension; worst case O(N) (degenerates to a linear
// scan for adversarial or very high-dimensional inputs — this index
// targets the common case where d is small, typically under 20).
// Memory usage: O(N) for the tree, O(1) extra per query beyond the
// output vector.
package spatial
