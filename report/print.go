package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/fairdiv/fairdiv/falloff"
)

// Print writes a human-readable summary of res to w: the number of
// selected points, the achieved diversity, the elapsed wall-clock
// time, and the sorted list of selected indices.
func Print(w io.Writer, res falloff.Result) error {
	if _, err := fmt.Fprintf(w, "selected: %d points\n", len(res.Selected)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "diversity: %g\n", res.Diversity); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "elapsed: %s\n", res.Elapsed); err != nil {
		return err
	}

	sorted := append([]int(nil), res.Selected...)
	sort.Ints(sorted)
	_, err := fmt.Fprintf(w, "indices: %v\n", sorted)
	return err
}
