// Package distmat provides a dense, row-major distance matrix and a
// builder that fills it with pairwise Euclidean distances over a
// point set.
package distmat
