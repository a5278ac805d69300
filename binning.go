// File: binning.go
// Role: Logarithmic discretization. Binning normalizes the scale of every
// column before similarity comparison in pruning, so redundancy detection
// reacts to structure rather than raw magnitude.
package deepgl

import (
	"math"

	"github.com/katalvlaran/deepgl/matrix"
)

// logBin maps a raw value to its signed logarithmic bin:
//
//	v → sign(v) · ⌊log2(1 + |v|)⌋
//
// Zero stays in bin 0, the transform is monotone in |v|, and the sign is
// preserved — degree counts are non-negative, but aggregated and diffused
// values may not be.
func logBin(v float64) float64 {
	bin := math.Floor(math.Log2(1 + math.Abs(v)))
	if v < 0 {
		return -bin
	}

	return bin
}

// binMatrix discretizes every element of m in place. Applied to the layer-0
// matrix and to every candidate matrix before pruning.
// Complexity: O(rows·cols).
func binMatrix(m *matrix.Dense) {
	for i := 0; i < m.Rows(); i++ {
		row := m.RowView(i)
		for j, v := range row {
			row[j] = logBin(v)
		}
	}
}
