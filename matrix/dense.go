// File: dense.go
// Role: Dense storage (row-major) and safe accessors.
package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors for matrix construction and access.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside the valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates that a supplied slice length does not match the matrix shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrShapeMismatch indicates that two matrices have incompatible shapes for an operation.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// Return initialized Dense over a fresh zeroed slice
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// RowView returns the row as a no-copy slice aliasing the backing storage.
// Mutations through the slice are visible in the matrix; this is the
// hot-path accessor used for row-disjoint parallel writes.
// Panics on an out-of-range index (programmer error, matching the
// fast-accessor convention of numeric libraries).
// Complexity: O(1).
func (m *Dense) RowView(row int) []float64 {
	if row < 0 || row >= m.r {
		panic(denseErrorf("RowView", row, 0, ErrIndexOutOfBounds))
	}

	return m.data[row*m.c : (row+1)*m.c]
}

// SetRow copies vals into the given row.
// Returns ErrIndexOutOfBounds or ErrDimensionMismatch.
// Complexity: O(c).
func (m *Dense) SetRow(row int, vals []float64) error {
	if row < 0 || row >= m.r {
		return denseErrorf("SetRow", row, 0, ErrIndexOutOfBounds)
	}
	if len(vals) != m.c {
		return denseErrorf("SetRow", row, len(vals), ErrDimensionMismatch)
	}
	copy(m.data[row*m.c:(row+1)*m.c], vals)

	return nil
}

// Col extracts column col as an independent slice copy.
// Returns ErrIndexOutOfBounds.
// Complexity: O(r).
func (m *Dense) Col(col int) ([]float64, error) {
	if col < 0 || col >= m.c {
		return nil, denseErrorf("Col", 0, col, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+col]
	}

	return out, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and other have identical shape and bitwise-equal
// elements. Complexity: O(r*c).
func (m *Dense) Equal(other *Dense) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	for i := 0; i < m.r; i++ {
		s += "["
		for j := 0; j < m.c; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
