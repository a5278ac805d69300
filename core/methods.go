// File: methods.go
// Role: Query APIs (NodeCount, Degree, ForEachNeighbor, HasEdge, properties,
// id mapping). All queries take the read lock and never mutate.
// Determinism:
//   - ForEachNeighbor visits edges in insertion order; DirectionBoth visits
//     outgoing before incoming on directed graphs.
//   - PropertyNames sorts lex asc so property iteration order is fixed.
package core

import (
	"fmt"
	"sort"
)

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ids)
}

// Degree returns the number of incident edge traversals for node under dir.
// Unknown indices yield 0. Degree(n, d) always equals the number of visits
// ForEachNeighbor(n, d, …) performs.
// Complexity: O(1).
func (g *Graph) Degree(node int, dir Direction) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if node < 0 || node >= len(g.ids) {
		return 0
	}
	if g.undirected {
		return len(g.out[node])
	}
	switch dir {
	case DirectionIn:
		return len(g.in[node])
	case DirectionOut:
		return len(g.out[node])
	default:
		return len(g.out[node]) + len(g.in[node])
	}
}

// ForEachNeighbor calls visit once per incident edge traversal of node under
// dir, passing the node at the far end. Multi-edges repeat their neighbour
// once per parallel edge. Iteration stops early when visit returns false.
// Returns ErrNodeNotFound for out-of-range indices.
// Complexity: O(degree).
func (g *Graph) ForEachNeighbor(node int, dir Direction, visit func(neighbor int) bool) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if node < 0 || node >= len(g.ids) {
		return fmt.Errorf("%w: index %d", ErrNodeNotFound, node)
	}
	if g.undirected {
		for _, t := range g.out[node] {
			if !visit(t) {
				return nil
			}
		}

		return nil
	}
	if dir == DirectionOut || dir == DirectionBoth {
		for _, t := range g.out[node] {
			if !visit(t) {
				return nil
			}
		}
	}
	if dir == DirectionIn || dir == DirectionBoth {
		for _, s := range g.in[node] {
			if !visit(s) {
				return nil
			}
		}
	}

	return nil
}

// HasEdge reports whether an edge exists between from and to under dir.
// DirectionOut tests from→to, DirectionIn tests to→from, DirectionBoth
// tests either. Undirected graphs satisfy every scope symmetrically.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int, dir Direction) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if from < 0 || from >= len(g.ids) || to < 0 || to >= len(g.ids) {
		return false
	}
	if g.undirected {
		return g.edgeCountLocked(from, to) > 0
	}
	switch dir {
	case DirectionOut:
		return g.edges[edgeKey{from, to}] > 0
	case DirectionIn:
		return g.edges[edgeKey{to, from}] > 0
	default:
		return g.edges[edgeKey{from, to}] > 0 || g.edges[edgeKey{to, from}] > 0
	}
}

// PropertyNames returns every property name ever set, sorted lex asc.
// The order is the fixed property iteration order used by consumers.
// Complexity: O(P log P).
func (g *Graph) PropertyNames() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, 0, len(g.props))
	for name := range g.props {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Property returns the named scalar of node; nodes never assigned a value
// default to 0. Returns ErrPropertyNotFound for unknown names and
// ErrNodeNotFound for out-of-range indices.
// Complexity: O(1).
func (g *Graph) Property(name string, node int) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if node < 0 || node >= len(g.ids) {
		return 0, fmt.Errorf("%w: index %d", ErrNodeNotFound, node)
	}
	vals, ok := g.props[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrPropertyNotFound, name)
	}
	if node >= len(vals) {
		return 0, nil
	}

	return vals[node], nil
}

// OriginalID maps a dense index back to the external node id.
// Out-of-range indices yield the empty string.
// Complexity: O(1).
func (g *Graph) OriginalID(node int) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if node < 0 || node >= len(g.ids) {
		return ""
	}

	return g.ids[node]
}

// IndexOf returns the dense index assigned to the external id, if present.
// Complexity: O(1).
func (g *Graph) IndexOf(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	idx, ok := g.index[id]

	return idx, ok
}
