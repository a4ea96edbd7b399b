// Package rounding converts a fractional solution into a concrete
// selection: given a radius r, a fractional solution x ∈ [0,1]^N, and
// the dataset/quota, produce a distinct integer selection S whose
// per-color counts match the quota in expectation and whose maxmin
// distance is at least r with high probability.
//
// SampledRounder does this in two stages:
//
//  1. Per-color weighted sampling without replacement (Efraimidis–
//     Spirakis keys), probability proportional to x restricted to the
//     color's index list — this is what gives the "match K in
//     expectation" guarantee.
//  2. A bounded local-search repair pass grounded on a three-opt-style
//     move-acceptance idiom (first-improvement, a deterministic scan in
//     ascending index order whatever the Seed, a capped move
//     budget): swap a selected point for an unselected same-color
//     point whenever doing so strictly increases the realized maxmin
//     diversity of S. This converts "probably far enough apart" into
//     "locally can't be improved" without a separate search pass.
package rounding
