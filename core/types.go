// Package core declares the Graph type, Direction scopes, GraphOption
// constructors, and the sentinel errors shared by all core operations.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates an operation received an empty node identifier.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrPropertyNotFound indicates a lookup of a property name that was never set.
	ErrPropertyNotFound = errors.New("core: property not found")

	// ErrBadPropertyValue indicates a NaN or ±Inf property value was supplied.
	ErrBadPropertyValue = errors.New("core: property value must be finite")
)

// Direction selects the relationship scope for degree counting,
// neighbour iteration, and edge-existence tests.
//
//   - DirectionIn   — edges arriving at the node.
//   - DirectionOut  — edges leaving the node.
//   - DirectionBoth — every incident edge, each traversed exactly once.
//
// On undirected graphs every incident edge belongs to all three scopes.
type Direction int

const (
	// DirectionIn scopes queries to incoming edges.
	DirectionIn Direction = iota

	// DirectionOut scopes queries to outgoing edges.
	DirectionOut

	// DirectionBoth scopes queries to all incident edges.
	DirectionBoth
)

// String implements fmt.Stringer for diagnostics.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "in"
	case DirectionOut:
		return "out"
	default:
		return "both"
	}
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithUndirected makes every edge bidirectional. The default is directed,
// because embedding semantics distinguish in/out/both neighbourhoods.
func WithUndirected() GraphOption {
	return func(g *Graph) { g.undirected = true }
}

// WithMultiEdges permits parallel edges between the same endpoints.
// Parallel edges duplicate a neighbour in aggregation input, which is the
// intended multiplicity-sensitive behaviour.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// edgeKey identifies an endpoint pair for duplicate detection.
type edgeKey struct{ from, to int }

// Graph is an in-memory graph with dense node indices, directed or
// undirected edges, and named float64 node properties.
//
// Node indices are assigned in insertion order and remain stable for the
// graph's lifetime; OriginalID maps an index back to the external id.
type Graph struct {
	mu sync.RWMutex

	undirected bool
	allowMulti bool
	allowLoops bool

	ids   []string       // dense index → external id
	index map[string]int // external id → dense index

	out [][]int // per-node outgoing targets, insertion order
	in  [][]int // per-node incoming sources, insertion order

	edges map[edgeKey]int // endpoint pair → multiplicity

	props map[string][]float64 // property name → dense per-node values
}

// NewGraph constructs an empty Graph; directed unless WithUndirected is given.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[string]int),
		edges: make(map[edgeKey]int),
		props: make(map[string][]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
