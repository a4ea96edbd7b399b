// Package fairdiv selects a diverse, quota-respecting subset of points
// from a labeled point set.
//
// Given N points in d-dimensional Euclidean space, each tagged with a
// color, and a per-color quota K(c), fairdiv searches for a selection
// of exactly Σ K(c) points — K(c) of each color — that maximizes the
// minimum pairwise distance among the selected points (max-min
// diversification under fairness constraints).
//
// The search is organized under these subpackages:
//
//	core/      — Dataset, Quota, Weights data model & validation
//	spatial/   — weighted ball-sum and ball-count spatial indices (k-d tree)
//	mwu/       — multiplicative-weights fractional solver at a fixed threshold
//	falloff/   — outer search that shrinks the threshold until the solver succeeds
//	rounding/  — randomized rounding of a fractional solution to a concrete selection
//	diversity/ — minimum pairwise distance measurement
//	coreset/   — farthest-first reduction to a manageable working set
//	quota/     — per-color quota construction from string labels
//	ingest/    — CSV loading and feature standardization
//	distmat/   — dense pairwise distance matrix
//	report/    — result formatting
//	cmd/fairdiv — command-line driver
//
// A typical pipeline: ingest.LoadCSV loads points and color labels,
// quota.FromCounts interns labels and validates the quota,
// coreset.GonzalezProducer optionally reduces the working set and
// estimates a starting threshold, and falloff.Run drives the solver
// to a concrete, diverse selection.
package fairdiv
