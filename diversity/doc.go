// Package diversity measures the objective the whole solver chases:
// the minimum pairwise Euclidean distance within a selected set.
package diversity
