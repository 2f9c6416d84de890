// File: methods_vertices.go
// Role: Vertex-side queries: Order, Vertices, Neighbors, Degree.
// Determinism:
//   - Vertices() is ascending 1..n.
//   - Neighbors(v) preserves insertion order of AddEdge calls touching v.

package core

import "fmt"

// Order returns n, the number of vertices.
//
// Complexity: O(1)
func (g *Graph) Order() int {
	return g.order
}

// Vertices returns the vertex identifiers 1..n in ascending order.
//
// Complexity: O(n)
func (g *Graph) Vertices() []int {
	out := make([]int, g.order)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// Neighbors returns a copy of v's adjacency entries in insertion order.
// The caller may modify the returned slice freely.
//
// Errors:
//   - ErrVertexOutOfRange if v is outside [1, n].
//
// Complexity: O(deg(v))
func (g *Graph) Neighbors(v int) ([]Neighbor, error) {
	if !g.inRange(v) {
		return nil, fmt.Errorf("Neighbors(%d): n=%d: %w", v, g.order, ErrVertexOutOfRange)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Neighbor, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// Degree returns the number of adjacency entries of v (a loop counts once).
//
// Complexity: O(1)
func (g *Graph) Degree(v int) (int, error) {
	if !g.inRange(v) {
		return 0, fmt.Errorf("Degree(%d): n=%d: %w", v, g.order, ErrVertexOutOfRange)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[v]), nil
}

// inRange reports whether v is a vertex of g. order is immutable, so no lock.
func (g *Graph) inRange(v int) bool {
	return v >= 1 && v <= g.order
}
