// Package deepgl computes unsupervised structural feature embeddings for
// every node of a graph, in the manner of the DeepGL algorithm
// (Rossi et al., "Deep Inductive Graph Representation Learning").
//
// 🚀 What is deepgl?
//
//	An iterative representation-learning engine that:
//	  • Seeds every node with base features (in/out/both degree + properties)
//	  • Recursively composes six relational operators (sum, hadamard, max,
//	    mean, rbf, l1Norm) over out/in/both neighbourhoods
//	  • Smooths candidates with a heat-diffusion pass and tags the diffused
//	    variants into the feature lineage
//	  • Discretizes values into logarithmic bins before comparison
//	  • Prunes redundant feature columns under a tunable lambda threshold
//	  • Stops when a layer contributes no structurally novel feature, or at
//	    the configured iteration cap
//
// ✨ Why choose deepgl?
//
//   - Deterministic — fixed operator/neighbourhood ordering, reproducible
//     embeddings regardless of worker count
//   - Parallel — a fixed-size worker pool drains an atomic node cursor, so
//     uneven neighbourhood sizes never stall a static partition
//   - Composable — bring your own GraphView, or use the bundled core.Graph
//
// Under the hood, everything is organized under two subpackages:
//
//	core/   — graph model: dense node indices, directions, scalar properties
//	matrix/ — dense row-major float64 matrices for feature storage
//
// ⚙️ Usage:
//
//	g := core.NewGraph()
//	g.AddEdge("a", "b")
//	g.AddEdge("b", "c")
//
//	res, err := deepgl.Compute(g,
//	    deepgl.WithIterations(4),
//	    deepgl.WithPruningLambda(0.7),
//	)
//	res.Each(func(ne deepgl.NodeEmbedding) bool {
//	    fmt.Println(ne.ID, ne.Vector)
//	    return true
//	})
//
// See example_test.go for complete scenarios.
package deepgl
