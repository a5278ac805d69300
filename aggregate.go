// File: aggregate.go
// Role: Neighbourhood aggregation. For each node, the previous layer's rows
// are sliced at the out/in/both neighbourhood ids and pushed through every
// relational operator, concatenating the results into the node's candidate
// row. The nesting — neighbourhood outer, operator inner, previous feature
// innermost — is fixed: aggregateFeatures generates names in the same order,
// and the column↔feature alignment depends on it.
package deepgl

import (
	"github.com/katalvlaran/deepgl/core"
	"github.com/katalvlaran/deepgl/matrix"
)

// numNeighbourhoods is the width multiplier contributed by the three
// neighbourhood kinds.
const numNeighbourhoods = 3

// neighbourhoodNames orders the kinds: out, in, both.
var neighbourhoodNames = [numNeighbourhoods]string{"out", "in", "both"}

// aggregate builds the candidate matrix of width
// numNeighbourhoods × numOperators × prev.Cols() in parallel.
//
// Neighbourhoods are computed fresh per node from a single DirectionBoth
// sweep: a traversal is "out" when the edge exists in the outgoing
// direction, otherwise "in"; "both" accumulates every traversal. Duplicate
// neighbours from multi-edges are kept (multiplicity-sensitive semantics).
// An empty neighbourhood fills each operator's block with that operator's
// defaultVal, keeping the shape invariant intact.
func (e *engine) aggregate(prev *matrix.Dense) (*matrix.Dense, error) {
	prevCols := prev.Cols()
	cand, err := matrix.NewDense(e.n, numNeighbourhoods*numOperators*prevCols)
	if err != nil {
		return nil, err
	}

	err = forEachNode(e.opts.Ctx, e.opts.Concurrency, e.n, func(node int) error {
		var out, in, both []int
		if nbErr := e.g.ForEachNeighbor(node, core.DirectionBoth, func(t int) bool {
			both = append(both, t)
			if e.g.HasEdge(node, t, core.DirectionOut) {
				out = append(out, t)
			} else {
				in = append(in, t)
			}

			return true
		}); nbErr != nil {
			return nbErr
		}

		nodeRow := prev.RowView(node)
		dst := cand.RowView(node)
		rows := make([][]float64, 0, len(both))

		for nbIdx, nb := range [numNeighbourhoods][]int{out, in, both} {
			blockStart := nbIdx * numOperators * prevCols
			if len(nb) == 0 {
				for opIdx, op := range relOperators {
					block := dst[blockStart+opIdx*prevCols : blockStart+(opIdx+1)*prevCols]
					for j := range block {
						block[j] = op.defaultVal
					}
				}

				continue
			}
			rows = rows[:0]
			for _, t := range nb {
				rows = append(rows, prev.RowView(t))
			}
			for opIdx, op := range relOperators {
				op.apply(rows, nodeRow, dst[blockStart+opIdx*prevCols:blockStart+(opIdx+1)*prevCols])
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return cand, nil
}

// aggregateFeatures names the candidate columns, wrapping each previous
// feature with "<operator>_<neighbourhood>_neighbourhood" in the exact
// column order produced by aggregate.
func aggregateFeatures(prevFeatures []*Feature) []*Feature {
	features := make([]*Feature, 0, numNeighbourhoods*numOperators*len(prevFeatures))
	for _, nbh := range neighbourhoodNames {
		for _, op := range relOperators {
			name := op.name + "_" + nbh + "_neighbourhood"
			for _, pf := range prevFeatures {
				features = append(features, pf.Derive(name))
			}
		}
	}

	return features
}
