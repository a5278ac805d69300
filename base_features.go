// File: base_features.go
// Role: Layer-0 construction. Every node's base row is
// [in_degree, out_degree, both_degree, prop_1, …, prop_k] with properties in
// PropertyNames order, so feature names and matrix columns stay aligned.
package deepgl

import (
	"github.com/katalvlaran/deepgl/core"
	"github.com/katalvlaran/deepgl/matrix"
)

// baseFeatureCount is the number of degree columns preceding properties.
const baseFeatureCount = 3

// baseFeatures names the layer-0 columns: the three degrees followed by the
// graph's scalar properties in their fixed iteration order.
func baseFeatures(props []string) []*Feature {
	features := make([]*Feature, 0, baseFeatureCount+len(props))
	features = append(features,
		NewFeature("in_degree"),
		NewFeature("out_degree"),
		NewFeature("both_degree"),
	)
	for _, name := range props {
		features = append(features, NewFeature(name))
	}

	return features
}

// buildBaseFeatures fills the pre-sized layer-0 matrix in parallel.
// Provider failures (unknown property, malformed data) propagate out of the
// claiming worker and abort the phase.
func (e *engine) buildBaseFeatures(props []string, m *matrix.Dense) error {
	return forEachNode(e.opts.Ctx, e.opts.Concurrency, e.n, func(node int) error {
		row := m.RowView(node)
		row[0] = float64(e.g.Degree(node, core.DirectionIn))
		row[1] = float64(e.g.Degree(node, core.DirectionOut))
		row[2] = float64(e.g.Degree(node, core.DirectionBoth))
		for i, name := range props {
			v, err := e.g.Property(name, node)
			if err != nil {
				return err
			}
			row[baseFeatureCount+i] = v
		}

		return nil
	})
}
