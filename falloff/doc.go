// Package falloff orchestrates the outer search for the largest
// feasible diversity threshold γ: it builds a spatial index once over
// the full candidate set, repeatedly asks the fractional solver
// whether a given γ admits a feasible weighted selection, shrinks γ by
// a fixed factor on infeasibility, and rounds the first feasible
// fractional solution into a concrete, quota-respecting point subset.
package falloff
