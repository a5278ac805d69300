// Package core provides the in-memory graph model consumed by the deepgl
// engine: nodes with dense internal indices, directed or undirected edges,
// and per-node scalar properties.
//
// 🚀 What is core?
//
//	A thread-safe graph container tuned for embedding workloads:
//	  • Dense node indices in [0, NodeCount) — stable for the graph's lifetime
//	  • Direction-aware queries: degree, neighbour iteration, edge existence
//	  • Named float64 node properties with a fixed (lex asc) iteration order
//	  • Internal↔external id mapping (OriginalID / IndexOf)
//
// ✨ Guarantees:
//   - Deterministic neighbour order (edge insertion order per node)
//   - Degree(n, d) equals the number of visits ForEachNeighbor(n, d, …) makes
//   - All mutation and query APIs are safe for concurrent use (RWMutex)
//
// ⚙️ Usage:
//
//	g := core.NewGraph()                 // directed by default
//	g.AddEdge("a", "b")
//	g.SetProperty("a", "weight", 2.5)
//	deg := g.Degree(0, core.DirectionOut)
//
// See example_test.go for complete scenarios.
package core
