// Package ingest loads point data from CSV files and normalizes
// feature columns to zero mean and unit variance.
package ingest
