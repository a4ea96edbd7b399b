package ingest

import "errors"

var (
	// ErrNoRows is returned when the CSV file has a header but no data rows.
	ErrNoRows = errors.New("ingest: csv file has no data rows")

	// ErrColumnIndex is returned when a requested column index is out of
	// range for a row.
	ErrColumnIndex = errors.New("ingest: column index out of range")

	// ErrEmptyFeatures is returned when Standardize is called on zero rows.
	ErrEmptyFeatures = errors.New("ingest: no feature rows to standardize")
)
