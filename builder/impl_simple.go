// SPDX-License-Identifier: MIT
// Package: spanning/builder
//
// impl_simple.go - deterministic topologies over all vertices of g.
//
// Edge emission order (stable):
//   - Path:     {i, i+1} for i = 1..n-1.
//   - Cycle:    Path, then {n, 1}.
//   - Complete: {i, j} for i asc, j asc, j > i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spanning/core"
)

// Method names and minima used in error context.
const (
	MethodPath     = "Path"
	MethodCycle    = "Cycle"
	MethodComplete = "Complete"

	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinCompleteNodes = 1
)

// Path returns a Constructor that links 1-2-…-n.
// Complexity: O(n).
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.Order()
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, MethodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that links 1-2-…-n-1.
// Complexity: O(n).
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.Order()
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, MethodCycle, i, i+1); err != nil {
				return err
			}
		}

		return addEdge(g, cfg, MethodCycle, n, 1)
	}
}

// Complete returns a Constructor that links every pair of vertices (K_n).
// Complexity: O(n²).
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.Order()
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				if err := addEdge(g, cfg, MethodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
