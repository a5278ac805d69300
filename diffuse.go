// File: diffuse.go
// Role: Heat-diffusion smoothing. Each round replaces every node's row with
// the elementwise mean of its both-neighbourhood rows (self excluded), read
// from the previous round's immutable buffer and written to a separate
// output buffer — in-place mutation would race between workers and corrupt
// neighbour averages. The diffused matrix is then appended column-wise, and
// the feature list doubled with "diffuse"-tagged lineage wrappers.
package deepgl

import (
	"github.com/katalvlaran/deepgl/core"
	"github.com/katalvlaran/deepgl/matrix"
	"gonum.org/v1/gonum/floats"
)

// diffuse runs Options.DiffusionIterations smoothing rounds over cand and
// returns HStack(cand, diffused) alongside the doubled feature list.
// With zero rounds the diffused half equals cand exactly; the doubling and
// tagging still happen, so the candidate feature count always doubles.
// Isolated nodes (empty both-neighbourhood) diffuse to a zero row rather
// than a NaN from the zero-degree normalizer.
func (e *engine) diffuse(features []*Feature, cand *matrix.Dense) ([]*Feature, *matrix.Dense, error) {
	tagged := make([]*Feature, 0, 2*len(features))
	tagged = append(tagged, features...)
	for _, f := range features {
		tagged = append(tagged, f.Derive("diffuse"))
	}

	diffused := cand.Clone()
	for round := 0; round < e.opts.DiffusionIterations; round++ {
		next, err := matrix.NewDense(diffused.Rows(), diffused.Cols())
		if err != nil {
			return nil, nil, err
		}
		err = forEachNode(e.opts.Ctx, e.opts.Concurrency, e.n, func(node int) error {
			dst := next.RowView(node)
			count := 0
			if nbErr := e.g.ForEachNeighbor(node, core.DirectionBoth, func(t int) bool {
				floats.Add(dst, diffused.RowView(t))
				count++

				return true
			}); nbErr != nil {
				return nbErr
			}
			if count > 0 {
				floats.Scale(1/float64(count), dst)
			}

			return nil
		})
		if err != nil {
			return nil, nil, err
		}
		diffused = next
	}

	combined, err := matrix.HStack(cand, diffused)
	if err != nil {
		return nil, nil, err
	}

	return tagged, combined, nil
}
