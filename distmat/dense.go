package distmat

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major square matrix of float64 values, sized for a
// symmetric all-pairs distance table: n is both the row and column
// count, and data holds n*n elements in row-major order.
type Dense struct {
	n    int
	data []float64
}

// NewDense creates an n×n Dense matrix initialized to zeros.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// N returns the matrix's row/column count.
func (m *Dense) N() int { return m.n }

func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}
