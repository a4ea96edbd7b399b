package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// LoadCSV reads a CSV file with a header row and returns the feature
// matrix assembled from featureCols (in the given order) and the
// color label taken from colorCol, one entry per data row.
func LoadCSV(path string, featureCols []int, colorCol int) (features [][]float64, colors []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(rows) <= 1 {
		return nil, nil, ErrNoRows
	}

	data := rows[1:] // skip header
	features = make([][]float64, len(data))
	colors = make([]string, len(data))

	for i, row := range data {
		if colorCol < 0 || colorCol >= len(row) {
			return nil, nil, ErrColumnIndex
		}
		colors[i] = row[colorCol]

		vec := make([]float64, len(featureCols))
		for j, col := range featureCols {
			if col < 0 || col >= len(row) {
				return nil, nil, ErrColumnIndex
			}
			v, err := strconv.ParseFloat(row[col], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("ingest: row %d column %d: %w", i, col, err)
			}
			vec[j] = v
		}
		features[i] = vec
	}

	return features, colors, nil
}
