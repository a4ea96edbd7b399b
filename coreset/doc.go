// Package coreset reduces a large dataset to a smaller representative
// working set and estimates an initial upper bound γ_upper valid as a
// starting point for the gamma-falloff driver.
//
// GonzalezProducer is a farthest-first (Gonzalez) traversal: starting
// from point 0 (deterministic, ties broken by ascending index), it
// repeatedly adds the point whose distance to the nearest
// already-chosen point is largest, until targetSize points are chosen.
// γ_upper is derived from the minimum pairwise distance already
// achieved among the chosen points, scaled up by the traversal's
// classical 2-approximation factor so it remains a genuine upper bound
// on the true optimum for the full set.
package coreset
