// Package core provides the undirected, weighted Graph consumed by the
// spanning algorithms.
//
// The Graph G = (V,E) has a fixed vertex set V = {1..n}, chosen at
// construction time, and an adjacency list owned by the graph:
//
//	adjacency[v] = []Neighbor{{To, Weight}, ...}   (insertion order)
//
// Every undirected edge {x,y} with weight w is stored twice, as x→y and y→x,
// both with weight w. AddEdge is the only mutator and always writes both
// directions, so the adjacency is symmetric by construction. A self-loop,
// when permitted, is stored once.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (x == y); otherwise AddEdge(v,v,w) → ErrLoopNotAllowed.
//
//	– WithMultiEdges()
//	    Allows parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(x,y,·) → ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) (*Graph, error) // O(n)
//	AddEdge(x, y int, w int64) error                      // O(1), O(deg) without multi-edges
//	Neighbors(v int) ([]Neighbor, error)                  // O(deg(v)) copy
//	Degree(v int) (int, error)                            // O(1)
//	HasEdge(x, y int) bool                                // O(deg(x))
//	Order() int, EdgeCount() int                          // O(1)
//	Vertices() []int                                      // O(n)
//
// Errors:
//
//	ErrNegativeOrder       - NewGraph called with n < 0.
//	ErrOrderTooLarge       - NewGraph called with n > MaxOrder.
//	ErrVertexOutOfRange    - vertex identifier outside [1, n].
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//
// Concurrency:
//
//	All methods are safe for concurrent use; mutations take a write lock,
//	queries take a read lock. Neighbors returns a copy, never the live slice.
package core
