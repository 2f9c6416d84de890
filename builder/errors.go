// SPDX-License-Identifier: MIT
// Package: spanning/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w.

package builder

import "errors"

// ErrTooFewVertices indicates the graph order is below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrTooManyEdges indicates a requested edge count the topology cannot hold
// (more than n(n-1)/2 on a simple graph) or fewer than a spanning tree needs.
var ErrTooManyEdges = errors.New("builder: edge count out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a core insertion failure.
var ErrConstructFailed = errors.New("builder: construction failed")
