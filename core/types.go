// Package core defines the Graph and Neighbor types, graph options, sentinel
// errors and the NewGraph constructor.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeOrder indicates NewGraph was asked for a negative vertex count.
	ErrNegativeOrder = errors.New("core: negative vertex count")

	// ErrOrderTooLarge indicates NewGraph was asked for more than MaxOrder vertices.
	ErrOrderTooLarge = errors.New("core: vertex count too large")

	// ErrVertexOutOfRange indicates a vertex identifier outside [1, n].
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// MaxOrder is the largest vertex count NewGraph accepts.
const MaxOrder = 1 << 24

// Neighbor is one adjacency entry: the far endpoint and the edge weight.
type Neighbor struct {
	// To is the adjacent vertex.
	To int

	// Weight is the cost of the connecting edge.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is an undirected, weighted graph over the vertices 1..n.
//
// adjacency[v] holds v's incident edges in insertion order; index 0 is unused.
// mu guards adjacency and edgeCount.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool // allow self-loops
	allowMulti bool // allow parallel edges

	// Storage
	order     int          // n, fixed at construction
	edgeCount int          // number of undirected edges
	adjacency [][]Neighbor // vertex → incident edges
}

// NewGraph creates a Graph with n isolated vertices 1..n.
// By default loops and multi-edges are rejected.
//
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph(%d): %w", n, ErrNegativeOrder)
	}
	if n > MaxOrder {
		return nil, fmt.Errorf("NewGraph(%d): max %d: %w", n, MaxOrder, ErrOrderTooLarge)
	}
	g := &Graph{
		order:     n,
		adjacency: make([][]Neighbor, n+1),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }
