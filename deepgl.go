// File: deepgl.go
// Role: Orchestration. Compute drives the per-layer state machine
// Init → BaseLayer → {Aggregate → Diffuse → Bin → Prune → NoveltyCheck}*
// and owns the two-pair layer state: exactly one "previous" and one
// "current" (Features, matrix) pair exist at any time.
package deepgl

import (
	"github.com/katalvlaran/deepgl/matrix"
)

// engine carries the per-computation state threaded through the phases.
type engine struct {
	g    GraphView
	opts Options
	n    int
}

// NodeEmbedding is one record of the result stream: the node's external id
// and its embedding vector in feature-column order.
type NodeEmbedding struct {
	ID     string
	Vector []float64
}

// Result is the final accepted embedding.
//
// Embedding holds one row per node; Features aligns one-to-one with its
// columns; Layers counts the accepted aggregation layers (see Compute).
type Result struct {
	graph GraphView

	Embedding *matrix.Dense
	Features  []*Feature
	Layers    int
}

// Each streams one NodeEmbedding per node in dense-index order, stopping
// early when fn returns false. Vectors are independent copies; the stream
// is a plain single pass and may be consumed once per call.
func (r *Result) Each(fn func(NodeEmbedding) bool) {
	for node := 0; node < r.Embedding.Rows(); node++ {
		vec := make([]float64, r.Embedding.Cols())
		copy(vec, r.Embedding.RowView(node))
		if !fn(NodeEmbedding{ID: r.graph.OriginalID(node), Vector: vec}) {
			return
		}
	}
}

// Compute runs the embedding engine over g, applying any number of
// functional Options.
//
// Layer-count convention: Result.Layers counts accepted aggregation layers.
// When the iteration cap is exhausted after k productive iterations,
// Layers == k == Iterations; when iteration k produces no structurally
// novel feature, the engine keeps the previous layer as final and reports
// Layers == k−1.
//
// Returns ErrGraphNil, ErrEmptyGraph, ErrOptionViolation, a provider error,
// or the context's error on cancellation. A partially computed layer is
// never exposed.
func Compute(g GraphView, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	e := &engine{g: g, opts: o, n: n}

	return e.compute()
}

// compute executes the state machine; see Compute for the contract.
func (e *engine) compute() (*Result, error) {
	log := e.opts.Logger
	log.Info("deepgl: executing",
		"iterations", e.opts.Iterations,
		"pruningLambda", e.opts.PruningLambda,
		"diffusions", e.opts.DiffusionIterations,
		"concurrency", e.opts.Concurrency,
	)

	// BaseLayer: build in parallel, then bin.
	props := e.g.PropertyNames()
	base, err := matrix.NewDense(e.n, baseFeatureCount+len(props))
	if err != nil {
		return nil, err
	}
	if err = e.buildBaseFeatures(props, base); err != nil {
		return nil, err
	}
	binMatrix(base)

	prevFeatures, prevEmbedding := baseFeatures(props), base
	layers := 0

	for it := 1; it <= e.opts.Iterations; it++ {
		log.Debug("applying operators", "layer", it)
		cand, aggErr := e.aggregate(prevEmbedding)
		if aggErr != nil {
			return nil, aggErr
		}
		candFeatures := aggregateFeatures(prevFeatures)

		log.Debug("diffusing features", "layer", it, "rounds", e.opts.DiffusionIterations)
		candFeatures, cand, err = e.diffuse(candFeatures, cand)
		if err != nil {
			return nil, err
		}

		binMatrix(cand)

		before := cand.Cols()
		accFeatures, accEmbedding, pruneErr := prune(prevEmbedding, candFeatures, cand, e.opts.PruningLambda)
		if pruneErr != nil {
			return nil, pruneErr
		}
		log.Debug("feature pruning", "layer", it, "before", before, "after", len(accFeatures))

		novel := noveltyCount(accFeatures, prevFeatures)
		log.Debug("unique features this layer", "layer", it, "novel", novel)
		if novel == 0 {
			// Non-productive layer: keep the previous pair as final.
			layers = it - 1

			break
		}

		prevFeatures, prevEmbedding = accFeatures, accEmbedding
		layers = it
		e.opts.OnLayer(it, len(accFeatures))
	}

	log.Info("deepgl: done", "layers", layers, "features", len(prevFeatures))

	return &Result{
		graph:     e.g,
		Embedding: prevEmbedding,
		Features:  prevFeatures,
		Layers:    layers,
	}, nil
}

// noveltyCount returns the size of the structural set difference
// accepted \ previous. Duplicate lineages within accepted collapse: the
// comparison is between true sets of Feature keys.
func noveltyCount(accepted, previous []*Feature) int {
	prevSet := make(map[string]struct{}, len(previous))
	for _, f := range previous {
		prevSet[f.Key()] = struct{}{}
	}
	novel := make(map[string]struct{})
	for _, f := range accepted {
		key := f.Key()
		if _, ok := prevSet[key]; !ok {
			novel[key] = struct{}{}
		}
	}

	return len(novel)
}
