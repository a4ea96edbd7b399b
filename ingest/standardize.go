package ingest

import "gonum.org/v1/gonum/stat"

// Standardize rescales features in place to zero mean and unit
// variance, column by column. A column with zero variance is left at
// zero mean only (its values become uniformly 0) rather than dividing
// by zero.
func Standardize(features [][]float64) error {
	n := len(features)
	if n == 0 {
		return ErrEmptyFeatures
	}
	d := len(features[0])

	col := make([]float64, n)
	for j := 0; j < d; j++ {
		for i, row := range features {
			col[i] = row[j]
		}
		mean, std := stat.MeanStdDev(col, nil)
		for i, row := range features {
			if std == 0 {
				row[j] = 0
			} else {
				row[j] = (row[j] - mean) / std
			}
		}
	}

	return nil
}
