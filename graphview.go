// File: graphview.go
// Role: The graph contract the engine consumes. *core.Graph satisfies it;
// adapters over external storage may substitute their own implementation.
package deepgl

import "github.com/katalvlaran/deepgl/core"

// GraphView supplies the adjacency, degree, and property queries the engine
// needs. Node indices are dense in [0, NodeCount) and stable for the
// lifetime of the computation.
//
// Implementations must be safe for concurrent readers: every method is
// called from multiple workers at once.
type GraphView interface {
	// NodeCount returns the number of nodes.
	NodeCount() int

	// Degree returns the number of incident edge traversals under dir.
	Degree(node int, dir core.Direction) int

	// ForEachNeighbor calls visit once per incident edge traversal of node
	// under dir. Multi-edges repeat their neighbour. Implementations stop
	// early when visit returns false and surface provider failures as errors.
	ForEachNeighbor(node int, dir core.Direction, visit func(neighbor int) bool) error

	// HasEdge reports whether an edge exists between from and to under dir.
	HasEdge(from, to int, dir core.Direction) bool

	// PropertyNames returns the available scalar property names in a fixed
	// iteration order.
	PropertyNames() []string

	// Property returns the named scalar of node.
	Property(name string, node int) (float64, error)

	// OriginalID maps a dense index back to the external node id.
	OriginalID(node int) string
}

// compile-time contract check: the bundled graph is a valid provider.
var _ GraphView = (*core.Graph)(nil)
