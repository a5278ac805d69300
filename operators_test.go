package deepgl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// opByName fetches an operator from the fixed table.
func opByName(t *testing.T, name string) relOperator {
	t.Helper()
	for _, op := range relOperators {
		if op.name == name {
			return op
		}
	}
	t.Fatalf("unknown operator %q", name)

	return relOperator{}
}

// TestOperators_TableOrder pins the load-bearing operator ordering and the
// per-operator identity values.
func TestOperators_TableOrder(t *testing.T) {
	names := make([]string, 0, len(relOperators))
	defaults := make([]float64, 0, len(relOperators))
	for _, op := range relOperators {
		names = append(names, op.name)
		defaults = append(defaults, op.defaultVal)
	}
	assert.Equal(t, []string{"sum", "hadamard", "max", "mean", "rbf", "l1Norm"}, names)
	assert.Equal(t, []float64{0, 1, 0, 0, 0, 0}, defaults)
}

// TestOperators_SingleNeighbour verifies the degenerate one-neighbour cases:
// sum = mean = max = hadamard = the neighbour's row, l1Norm is the absolute
// difference, rbf decays with squared distance.
func TestOperators_SingleNeighbour(t *testing.T) {
	neighbour := []float64{1, 2, 3}
	node := []float64{1, 0, 5}
	rows := [][]float64{neighbour}

	dst := make([]float64, 3)
	for _, name := range []string{"sum", "hadamard", "max", "mean"} {
		opByName(t, name).apply(rows, node, dst)
		assert.Equal(t, neighbour, dst, "%s over one neighbour must return its row", name)
	}

	opByName(t, "l1Norm").apply(rows, node, dst)
	assert.Equal(t, []float64{0, 2, 2}, dst)

	opByName(t, "rbf").apply(rows, node, dst)
	sigma2 := rbfSigma * rbfSigma
	assert.InDelta(t, math.Exp(-0/sigma2), dst[0], 1e-12, "zero distance gives exp(0)=1")
	assert.InDelta(t, math.Exp(-4/sigma2), dst[1], 1e-12)
	assert.InDelta(t, math.Exp(-4/sigma2), dst[2], 1e-12)
}

// TestOperators_MultiNeighbour checks the column-wise aggregation semantics
// over three neighbour rows.
func TestOperators_MultiNeighbour(t *testing.T) {
	rows := [][]float64{
		{1, -2},
		{4, 0},
		{-2, 3},
	}
	node := []float64{1, 1}
	dst := make([]float64, 2)

	opByName(t, "sum").apply(rows, node, dst)
	assert.Equal(t, []float64{3, 1}, dst)

	opByName(t, "hadamard").apply(rows, node, dst)
	assert.Equal(t, []float64{-8, 0}, dst)

	opByName(t, "max").apply(rows, node, dst)
	assert.Equal(t, []float64{4, 3}, dst)

	opByName(t, "mean").apply(rows, node, dst)
	assert.Equal(t, []float64{1, 1.0 / 3.0}, dst)

	opByName(t, "l1Norm").apply(rows, node, dst)
	assert.Equal(t, []float64{6, 6}, dst) // |1-1|+|4-1|+|-2-1|, |-2-1|+|0-1|+|3-1|

	opByName(t, "rbf").apply(rows, node, dst)
	sigma2 := rbfSigma * rbfSigma
	require.InDelta(t, math.Exp(-(0.0+9+9)/sigma2), dst[0], 1e-12)
	require.InDelta(t, math.Exp(-(9.0+1+4)/sigma2), dst[1], 1e-12)
}

// TestOperators_OverwriteDst ensures apply fully overwrites stale dst
// contents; operator blocks are reused across neighbourhoods.
func TestOperators_OverwriteDst(t *testing.T) {
	rows := [][]float64{{2, 2}}
	node := []float64{2, 2}
	for _, op := range relOperators {
		dst := []float64{math.NaN(), -99}
		op.apply(rows, node, dst)
		for j, v := range dst {
			assert.False(t, math.IsNaN(v), "%s left dst[%d] unwritten", op.name, j)
		}
	}
}
