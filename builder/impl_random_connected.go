// SPDX-License-Identifier: MIT
// Package: spanning/builder
//
// impl_random_connected.go - RandomConnected(m): a seeded connected graph
// with exactly m edges.
//
// Model:
//   - Spanning part: random recursive tree, vertex v (2..n) attaches to a
//     uniformly chosen earlier vertex. This guarantees connectivity.
//   - Extra part: m-(n-1) further edges. On a simple graph the missing pairs
//     are enumerated (i asc, j asc), shuffled, and the first ones taken; on a
//     multigraph pairs are drawn uniformly (loops skipped).
//
// Contract:
//   - n ≥ 1, n-1 ≤ m, and m ≤ n(n-1)/2 unless the graph allows multi-edges.
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Simple graph: O(n²) time and space for candidate enumeration.
//   - Multigraph: O(m).

package builder

import (
	"fmt"

	"github.com/katalvlaran/spanning/core"
)

// Method name and minimum for RandomConnected.
const (
	MethodRandomConnected      = "RandomConnected"
	MinRandomConnectedVertices = 1
)

// RandomConnected returns a Constructor that adds m edges forming a connected
// graph over all vertices of g.
func RandomConnected(m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters before touching g.
		n := g.Order()
		if n < MinRandomConnectedVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomConnected, n, MinRandomConnectedVertices, ErrTooFewVertices)
		}
		maxSimple := n * (n - 1) / 2
		if m < n-1 || (!g.Multigraph() && m > maxSimple) {
			return fmt.Errorf("%s: m=%d not in [%d,%d]: %w",
				MethodRandomConnected, m, n-1, maxSimple, ErrTooManyEdges)
		}
		if n == 1 && m > 0 {
			// A single vertex admits only loops, which this model never draws.
			return fmt.Errorf("%s: m=%d on a single vertex: %w", MethodRandomConnected, m, ErrTooManyEdges)
		}
		rng := cfg.rng
		if rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomConnected, ErrNeedRandSource)
		}

		// 2) Spanning tree.
		for v := 2; v <= n; v++ {
			if err := addEdge(g, cfg, MethodRandomConnected, rng.Intn(v-1)+1, v); err != nil {
				return err
			}
		}
		extra := m - (n - 1)
		if extra == 0 {
			return nil
		}

		// 3a) Multigraph: independent pair draws.
		if g.Multigraph() {
			for extra > 0 {
				x, y := rng.Intn(n)+1, rng.Intn(n)+1
				if x == y {
					continue
				}
				if err := addEdge(g, cfg, MethodRandomConnected, x, y); err != nil {
					return err
				}
				extra--
			}

			return nil
		}

		// 3b) Simple graph: shuffle the pairs not used by the tree.
		candidates := make([][2]int, 0, maxSimple-(n-1))
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				if !g.HasEdge(i, j) {
					candidates = append(candidates, [2]int{i, j})
				}
			}
		}
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		for _, p := range candidates[:extra] {
			if err := addEdge(g, cfg, MethodRandomConnected, p[0], p[1]); err != nil {
				return err
			}
		}

		return nil
	}
}
