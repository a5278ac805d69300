// File: graph.go
// Role: Mutating APIs (AddNode, AddEdge, SetProperty).
// Concurrency: every mutator takes the write lock; helpers assume it is held.
// Determinism: node indices follow insertion order; adjacency slices append
// in call order, so identical construction sequences yield identical graphs.
package core

import (
	"fmt"
	"math"
)

// AddNode registers id and returns its dense index. Adding an existing id is
// a no-op that returns the already-assigned index.
// Returns ErrEmptyNodeID when id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.ensureNode(id), nil
}

// ensureNode returns the dense index for id, creating the node if needed.
// Caller must hold the write lock.
func (g *Graph) ensureNode(id string) int {
	if idx, ok := g.index[id]; ok {
		return idx
	}
	idx := len(g.ids)
	g.ids = append(g.ids, id)
	g.index[id] = idx
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)

	return idx
}

// AddEdge inserts an edge from→to, creating missing endpoints.
//
// On undirected graphs the edge is incident to both endpoints in every
// direction scope. Self-loops require WithLoops; parallel edges require
// WithMultiEdges.
// Returns ErrEmptyNodeID, ErrLoopNotAllowed, or ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	u := g.ensureNode(from)
	v := g.ensureNode(to)

	if u == v && !g.allowLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	if !g.allowMulti && g.edgeCountLocked(u, v) > 0 {
		return fmt.Errorf("%w: %q->%q", ErrMultiEdgeNotAllowed, from, to)
	}

	g.edges[edgeKey{u, v}]++
	g.out[u] = append(g.out[u], v)
	if g.undirected {
		// Mirror the adjacency so each endpoint sees the other as a
		// neighbour; the edge itself is recorded once in g.edges.
		if u != v {
			g.out[v] = append(g.out[v], u)
		}

		return nil
	}
	g.in[v] = append(g.in[v], u)

	return nil
}

// edgeCountLocked reports the multiplicity of the endpoint pair (u,v),
// honouring symmetry on undirected graphs. Caller must hold a lock.
func (g *Graph) edgeCountLocked(u, v int) int {
	n := g.edges[edgeKey{u, v}]
	if g.undirected {
		n += g.edges[edgeKey{v, u}]
	}

	return n
}

// SetProperty assigns a named scalar value to an existing node.
// Returns ErrNodeNotFound for unknown ids and ErrBadPropertyValue for
// NaN or ±Inf (finite-values-only policy).
// Complexity: O(NodeCount) on first use of a name, O(1) afterwards.
func (g *Graph) SetProperty(id, name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s=%v", ErrBadPropertyValue, name, value)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	idx, ok := g.index[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	vals, ok := g.props[name]
	if !ok || len(vals) < len(g.ids) {
		grown := make([]float64, len(g.ids))
		copy(grown, vals)
		vals = grown
		g.props[name] = vals
	}
	vals[idx] = value

	return nil
}
