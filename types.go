// Package deepgl: tunable options and error definitions for the embedding
// engine. Invalid options are recorded internally and surfaced as
// ErrOptionViolation when Compute is invoked.
package deepgl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
)

// Sentinel errors for embedding computation.
var (
	// ErrGraphNil is returned if a nil GraphView is passed.
	ErrGraphNil = errors.New("deepgl: graph is nil")

	// ErrEmptyGraph is returned when the graph has no nodes to embed.
	ErrEmptyGraph = errors.New("deepgl: graph has no nodes")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("deepgl: invalid option supplied")
)

// Documented defaults (single source of truth).
const (
	// DefaultIterations caps the number of aggregation layers.
	DefaultIterations = 10

	// DefaultPruningLambda is the redundancy threshold; higher prunes harder.
	DefaultPruningLambda = 0.1

	// DefaultDiffusionIterations is the number of smoothing rounds per layer.
	DefaultDiffusionIterations = 10
)

// Option configures embedding computation via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize Compute.
type Options struct {
	// Ctx allows cancellation and deadlines; workers observe it at every
	// claimed-node boundary.
	Ctx context.Context

	// Iterations caps the number of aggregation layers (≥ 1).
	Iterations int

	// PruningLambda controls redundancy pruning in [0, 1].
	// 0 disables pruning; 1 discards any candidate column showing the
	// slightest correlation with an already-selected one.
	PruningLambda float64

	// DiffusionIterations is the number of neighbour-averaging rounds per
	// layer (≥ 0). 0 keeps the diffusion pass a structural no-op: the
	// candidate matrix is still doubled with "diffuse"-tagged copies.
	DiffusionIterations int

	// Concurrency is the fixed worker count (≥ 1) shared by all phases.
	Concurrency int

	// Logger receives one-way progress notifications. Defaults to discard.
	Logger *slog.Logger

	// OnLayer is called after each accepted layer with the layer index and
	// its feature count. A no-op by default.
	OnLayer func(layer, features int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Iterations = DefaultIterations
//   - PruningLambda = DefaultPruningLambda
//   - DiffusionIterations = DefaultDiffusionIterations
//   - Concurrency = runtime.NumCPU()
//   - discard Logger, no-op OnLayer.
func DefaultOptions() Options {
	return Options{
		Ctx:                 context.Background(),
		Iterations:          DefaultIterations,
		PruningLambda:       DefaultPruningLambda,
		DiffusionIterations: DefaultDiffusionIterations,
		Concurrency:         runtime.NumCPU(),
		Logger:              slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnLayer:             func(int, int) {},
		err:                 nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithIterations caps the number of aggregation layers.
//
//	n ≥ 1: use n layers at most
//	n < 1: invalid option → ErrOptionViolation
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Iterations must be ≥ 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.Iterations = n
	}
}

// WithPruningLambda sets the redundancy threshold in [0, 1].
func WithPruningLambda(lambda float64) Option {
	return func(o *Options) {
		if lambda < 0 || lambda > 1 {
			o.err = fmt.Errorf("%w: PruningLambda must be in [0,1] (%g)", ErrOptionViolation, lambda)

			return
		}
		o.PruningLambda = lambda
	}
}

// WithDiffusionIterations sets the number of smoothing rounds per layer.
//
//	n ≥ 0: run n rounds (0 keeps the tagging/doubling step only)
//	n < 0: invalid option → ErrOptionViolation
func WithDiffusionIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: DiffusionIterations cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.DiffusionIterations = n
	}
}

// WithConcurrency fixes the worker count shared by all parallel phases.
//
//	n ≥ 1: spawn n workers
//	n < 1: invalid option → ErrOptionViolation
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Concurrency must be ≥ 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.Concurrency = n
	}
}

// WithLogger routes progress notifications to the given logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnLayer registers a callback invoked after each accepted layer.
func WithOnLayer(fn func(layer, features int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}
