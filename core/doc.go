// Package core defines the data model shared by every package in
// fairdiv: the immutable point/color dataset, the per-color quota map,
// and the weight vector maintained across a solve.
//
// The package offers the following key components:
//
//   - Dataset: an immutable N×d feature matrix paired with interned
//     per-point color ids and the derived per-color index lists (I_c).
//   - Quota: a color-id → count map with validated totals (k = Σ K(c),
//     K(c) ≤ |I_c|).
//   - Weights: a length-N nonnegative vector with the normalize/underflow
//     semantics the multiplicative-weights solver depends on.
//   - Validate: the single invalid-argument checkpoint called by callers
//     before a solve begins.
//
// Guarantees:
//
//   - Dataset is immutable after construction; ColorIndex is derived once
//     and reused by every query against the same Dataset.
//   - Quota construction fails closed: any K(c) exceeding |I_c| is a
//     structured error, never a silent clamp.
//   - Weights.Normalize never returns a vector that sums to anything but
//     1 (within floating tolerance) on success, and never leaves a
//     negative entry.
package core
