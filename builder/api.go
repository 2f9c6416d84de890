// SPDX-License-Identifier: MIT
// Package: spanning/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, gopts, bopts, cons...). Creates g over
//     1..n, resolves cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spanning/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (loops/multigraph).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph over the vertices 1..n with graph
// options gopts, resolves the builder configuration from bopts, and applies
// all constructors in order. Any error is wrapped with "BuildGraph: %w".
//
// Complexity: O(n + len(bopts)) plus the cost of each constructor.
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		// Reject a nil constructor rather than panicking on the call.
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge inserts one weighted edge, tagging failures with the method name.
func addEdge(g *core.Graph, cfg builderConfig, method string, x, y int) error {
	if err := g.AddEdge(x, y, cfg.weight()); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return nil
}
