// File: ops.go
// Role: Shape-changing operations (HStack, SelectColumns) used when layers
// of features are concatenated or pruned.
package matrix

import "fmt"

// HStack concatenates a and b horizontally into a new (r × (ca+cb)) matrix.
// Stage 1 (Validate): both non-nil with equal row counts.
// Stage 2 (Execute): copy each row of a, then of b, into the result.
// Complexity: O(r*(ca+cb)).
func HStack(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("HStack: %w", ErrInvalidDimensions)
	}
	if a.r != b.r {
		return nil, fmt.Errorf("HStack: rows %d vs %d: %w", a.r, b.r, ErrShapeMismatch)
	}
	out := &Dense{r: a.r, c: a.c + b.c, data: make([]float64, a.r*(a.c+b.c))}
	for i := 0; i < a.r; i++ {
		dst := out.data[i*out.c : (i+1)*out.c]
		copy(dst[:a.c], a.data[i*a.c:(i+1)*a.c])
		copy(dst[a.c:], b.data[i*b.c:(i+1)*b.c])
	}

	return out, nil
}

// SelectColumns builds a new matrix from the given columns of m, in the
// order listed. Duplicate indices are permitted and copy the column twice.
// Returns ErrIndexOutOfBounds for any out-of-range index and
// ErrInvalidDimensions for an empty selection.
// Complexity: O(r*len(cols)).
func SelectColumns(m *Dense, cols []int) (*Dense, error) {
	if m == nil || len(cols) == 0 {
		return nil, fmt.Errorf("SelectColumns: %w", ErrInvalidDimensions)
	}
	for _, c := range cols {
		if c < 0 || c >= m.c {
			return nil, fmt.Errorf("SelectColumns(%d): %w", c, ErrIndexOutOfBounds)
		}
	}
	out := &Dense{r: m.r, c: len(cols), data: make([]float64, m.r*len(cols))}
	for i := 0; i < m.r; i++ {
		src := m.data[i*m.c : (i+1)*m.c]
		dst := out.data[i*out.c : (i+1)*out.c]
		for j, c := range cols {
			dst[j] = src[c]
		}
	}

	return out, nil
}
