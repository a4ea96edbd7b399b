// Package mwu implements the multiplicative-weights fractional solver
// for the fair diversity LP: given a candidate diversity threshold γ,
// it either produces a fractional selection X ∈ [0,1]^N feasible at γ,
// or reports infeasibility.
//
// Steps:
//  1. Set μ = k−1 (floored at 1 for the degenerate k=1 request), the
//     rescaled error ε′ = ε/(1+ε/4), and the iteration budget
//     T = ⌈(8μ/ε′²)·ln N⌉, optionally scaled by α ∈ (0,1].
//  2. Initialize h to uniform 1/N, X to zero.
//  3. Each iteration: query the weighted spatial index at radius γ/2
//     with weights h; for every color, take the K(c) indices in that
//     color's index list with the smallest query result (ties broken
//     by ascending index); bump X at each selected index and
//     accumulate the running W.
//  4. If W ≥ 1, report infeasible — the dual LP certifies no
//     γ-feasible fractional solution exists.
//  5. Build a ball-count index over this iteration's selected centers
//     and query it against every dataset point at radius γ/2; derive
//     M[i] = (1 − count[i]) / μ and multiplicatively update h, then
//     renormalize.
//  6. At the configured early-stop cadence, check whether X/(t+1) is
//     already γ-feasible and exit the loop early if so.
//
// Time complexity: Θ(T) weighted ball-sum queries plus Θ(T) ball-count
// builds, each sub-linear in N for bounded dimension.
// Memory usage: O(N) for h, X, the weighted-query result, M and the
// early-stop buffer, all allocated once per Solve and reused across
// iterations. The ball-count index over the selected centers and its
// length-N count vector are allocated anew in every iteration.
package mwu
