// Package kruskal defines the edge, result and step types, configuration
// options and sentinel errors for the Kruskal pipeline.
package kruskal

import (
	"errors"

	"go.uber.org/zap"
)

// ErrNilGraph indicates Kruskal was called without a graph.
var ErrNilGraph = errors.New("kruskal: nil graph")

// Edge is one undirected edge. Extracted edges always satisfy X < Y.
type Edge struct {
	// X is the smaller endpoint.
	X int

	// Y is the larger endpoint.
	Y int

	// Weight is the cost of the edge.
	Weight int64
}

// Result is the outcome of a Kruskal run.
//
// Edges are in acceptance order, which is non-decreasing by weight. For a
// connected graph len(Edges) == Order-1; fewer edges mean a spanning forest.
type Result struct {
	// Edges selected, in the order they were accepted.
	Edges []Edge

	// Total is the sum of the selected edge weights.
	Total int64

	// Order is the vertex count of the input.
	Order int
}

// Spanning reports whether the selected edges connect every vertex, i.e.
// len(Edges) == Order-1. Graphs with at most one vertex are trivially spanned.
func (r Result) Spanning() bool {
	if r.Order <= 1 {
		return len(r.Edges) == 0
	}

	return len(r.Edges) == r.Order-1
}

// Components returns the number of trees in the spanning forest.
func (r Result) Components() int {
	return r.Order - len(r.Edges)
}

// Step is reported to an observer once per consumed edge.
type Step struct {
	// Index is the position of Edge in the sorted sequence.
	Index int

	// Edge is the edge being considered.
	Edge Edge

	// Accepted is true when Edge joined two components and entered the result.
	Accepted bool

	// Components is the number of components after the step.
	Components int
}

// Options configures a Kruskal run. Use DefaultOptions() and Option values
// rather than building it by hand.
//
// Fields:
//
//	Observer  func(Step)   — called for every consumed edge, in order; nil means none.
//	Logger    *zap.Logger  — debug trace per step and an info summary; never nil.
//	EarlyExit bool         — stop as soon as Order-1 edges are selected.
type Options struct {
	// Observer receives every step synchronously.
	Observer func(Step)

	// Logger receives the step trace.
	Logger *zap.Logger

	// EarlyExit stops consuming edges once the tree is complete.
	EarlyExit bool
}

// Option configures Options.
type Option func(*Options)

// WithObserver registers fn to receive each Step. Panics on nil.
func WithObserver(fn func(Step)) Option {
	if fn == nil {
		panic("kruskal: WithObserver(nil)")
	}
	return func(o *Options) {
		o.Observer = fn
	}
}

// WithLogger routes the step trace to l. Panics on nil; use zap.NewNop() to
// silence explicitly.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("kruskal: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithEarlyExit stops the driver once Order-1 edges are selected. The result
// is identical; only the remaining cycle checks are skipped.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}

// DefaultOptions returns Options with no observer, a no-op logger and
// EarlyExit disabled.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
