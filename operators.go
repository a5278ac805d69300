// File: operators.go
// Role: The closed, ordered set of relational aggregation operators.
// Each operator turns a non-empty set of neighbour feature-rows plus the
// node's own row into one aggregated row of the same width.
//
// Ordering is load-bearing: the position of an operator in relOperators
// fixes its column block inside every aggregated layer, and feature names
// are generated in the same order. Do not reorder.
package deepgl

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// rbfSigma is the fixed bandwidth of the radial-basis operator.
const rbfSigma = 16.0

// relOperator is a pure aggregation strategy. apply must fully overwrite
// dst; neighbourRows is never empty (empty neighbourhoods are filled with
// defaultVal by the caller instead).
type relOperator struct {
	name       string
	defaultVal float64
	apply      func(neighbourRows [][]float64, nodeRow, dst []float64)
}

// relOperators is the fixed operator table: sum, hadamard, max, mean, rbf,
// l1Norm. numOperators and the "neighbourhood outer, operator inner" nesting
// in aggregate.go depend on this exact order.
var relOperators = []relOperator{
	{
		// column-wise sum of neighbour rows; ignores the node's own row.
		name:       "sum",
		defaultVal: 0,
		apply: func(rows [][]float64, _, dst []float64) {
			copy(dst, rows[0])
			for _, r := range rows[1:] {
				floats.Add(dst, r)
			}
		},
	},
	{
		// column-wise product; the multiplicative identity 1 is the default.
		name:       "hadamard",
		defaultVal: 1,
		apply: func(rows [][]float64, _, dst []float64) {
			copy(dst, rows[0])
			for _, r := range rows[1:] {
				floats.Mul(dst, r)
			}
		},
	},
	{
		// column-wise maximum.
		name:       "max",
		defaultVal: 0,
		apply: func(rows [][]float64, _, dst []float64) {
			copy(dst, rows[0])
			for _, r := range rows[1:] {
				for j, v := range r {
					if v > dst[j] {
						dst[j] = v
					}
				}
			}
		},
	},
	{
		// column-wise arithmetic mean.
		name:       "mean",
		defaultVal: 0,
		apply: func(rows [][]float64, _, dst []float64) {
			copy(dst, rows[0])
			for _, r := range rows[1:] {
				floats.Add(dst, r)
			}
			floats.Scale(1/float64(len(rows)), dst)
		},
	},
	{
		// radial-basis kernel: dst[j] = exp(-Σ_i (rows[i][j]-node[j])² / σ²).
		name:       "rbf",
		defaultVal: 0,
		apply: func(rows [][]float64, nodeRow, dst []float64) {
			for j := range dst {
				dst[j] = 0
			}
			for _, r := range rows {
				for j, v := range r {
					d := v - nodeRow[j]
					dst[j] += d * d
				}
			}
			inv := -1 / (rbfSigma * rbfSigma)
			for j, v := range dst {
				dst[j] = math.Exp(v * inv)
			}
		},
	},
	{
		// Manhattan aggregate: dst[j] = Σ_i |rows[i][j]-node[j]|.
		name:       "l1Norm",
		defaultVal: 0,
		apply: func(rows [][]float64, nodeRow, dst []float64) {
			for j := range dst {
				dst[j] = 0
			}
			for _, r := range rows {
				for j, v := range r {
					dst[j] += math.Abs(v - nodeRow[j])
				}
			}
		},
	},
}

// numOperators is the width multiplier contributed by the operator table.
var numOperators = len(relOperators)
