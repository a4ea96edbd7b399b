package diversity_test

import (
	"math"
	"testing"

	"github.com/fairdiv/fairdiv/diversity"
)

func TestMaxmin_EmptyAndSingleton(t *testing.T) {
	if got := diversity.Maxmin(nil); !math.IsInf(got, 1) {
		t.Fatalf("Maxmin(nil) = %v; want +Inf", got)
	}
	if got := diversity.Maxmin([][]float64{{0, 0}}); !math.IsInf(got, 1) {
		t.Fatalf("Maxmin(singleton) = %v; want +Inf", got)
	}
}

func TestMaxmin_UnitSquareAllCorners(t *testing.T) {
	pts := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	got := diversity.Maxmin(pts)
	want := 1.0 // adjacent edges are closer than the diagonal
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Maxmin(square) = %v; want %v", got, want)
	}
}

func TestMaxmin_CollinearTriple(t *testing.T) {
	pts := [][]float64{{0}, {2}, {4}}
	got := diversity.Maxmin(pts)
	if math.Abs(got-2) > 1e-9 {
		t.Fatalf("Maxmin(collinear) = %v; want 2", got)
	}
}
