// File: methods_edges.go
// Role: Edge insertion and edge queries: AddEdge, HasEdge, EdgeCount.
// Invariant:
//   - AddEdge is the only writer of adjacency; it writes x→y and y→x with the
//     same weight in one critical section, so readers never see half an edge.
// Concurrency:
//   - AddEdge under mu write lock; queries under mu read lock.

package core

import "fmt"

// AddEdge inserts the undirected edge {x,y} with weight w.
//
// Steps:
//  1. Validate x and y lie in [1, n] (ErrVertexOutOfRange).
//  2. Reject x == y unless WithLoops (ErrLoopNotAllowed).
//  3. Under the write lock, reject a duplicate pair unless WithMultiEdges
//     (ErrMultiEdgeNotAllowed).
//  4. Append y to adjacency[x]; append x to adjacency[y] unless x == y.
//
// Complexity: O(1) amortized with multi-edges, O(deg(x)) otherwise.
func (g *Graph) AddEdge(x, y int, w int64) error {
	// 1) Input validation
	if !g.inRange(x) || !g.inRange(y) {
		return fmt.Errorf("AddEdge(%d,%d): n=%d: %w", x, y, g.order, ErrVertexOutOfRange)
	}
	if x == y && !g.allowLoops {
		return fmt.Errorf("AddEdge(%d,%d): %w", x, y, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Multi-edge existence check
	if !g.allowMulti && g.hasEdgeLocked(x, y) {
		return fmt.Errorf("AddEdge(%d,%d): %w", x, y, ErrMultiEdgeNotAllowed)
	}

	// 3) Store both directions
	g.adjacency[x] = append(g.adjacency[x], Neighbor{To: y, Weight: w})
	if x != y {
		g.adjacency[y] = append(g.adjacency[y], Neighbor{To: x, Weight: w})
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether at least one edge connects x and y.
// Out-of-range vertices simply report false.
//
// Complexity: O(deg(x))
func (g *Graph) HasEdge(x, y int) bool {
	if !g.inRange(x) || !g.inRange(y) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(x, y)
}

// EdgeCount returns the number of undirected edges; loops count once.
//
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// hasEdgeLocked scans x's adjacency for y. Caller holds mu.
func (g *Graph) hasEdgeLocked(x, y int) bool {
	for _, nb := range g.adjacency[x] {
		if nb.To == y {
			return true
		}
	}

	return false
}
