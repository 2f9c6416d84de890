package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/spanning/core"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// VisitFunc is called once per reached vertex with its hop distance from the
// start. A non-nil error aborts the walk.
type VisitFunc func(v, depth int) error

// queueItem pairs a vertex with its depth.
type queueItem struct {
	v     int
	depth int
}

// walker holds mutable walk state shared across Components.
type walker struct {
	graph   *core.Graph
	ctx     context.Context
	visit   VisitFunc
	queue   []queueItem
	visited []bool
}

func newWalker(ctx context.Context, g *core.Graph, visit VisitFunc) *walker {
	if ctx == nil {
		ctx = context.Background()
	}
	if visit == nil {
		visit = func(int, int) error { return nil }
	}

	return &walker{
		graph:   g,
		ctx:     ctx,
		visit:   visit,
		queue:   make([]queueItem, 0, g.Order()),
		visited: make([]bool, g.Order()+1),
	}
}

// Walk runs breadth-first search from start, calling visit for each reached
// vertex in visit order, and returns that order.
//
// Returns ErrGraphNil, core.ErrVertexOutOfRange for a bad start, ctx.Err()
// on cancellation, or the wrapped hook error.
func Walk(ctx context.Context, g *core.Graph, start int, visit VisitFunc) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if start < 1 || start > g.Order() {
		return nil, fmt.Errorf("bfs: start %d: n=%d: %w", start, g.Order(), core.ErrVertexOutOfRange)
	}

	return newWalker(ctx, g, visit).from(start)
}

// Components returns the vertex sets of g's connected components. Each set
// is in visit order; sets are ordered by their smallest vertex.
func Components(ctx context.Context, g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := newWalker(ctx, g, nil)
	var comps [][]int
	for v := 1; v <= g.Order(); v++ {
		if w.visited[v] {
			continue
		}
		order, err := w.from(v)
		if err != nil {
			return nil, err
		}
		comps = append(comps, order)
	}

	return comps, nil
}

// from walks the component of start and returns it in visit order.
func (w *walker) from(start int) ([]int, error) {
	var order []int
	w.enqueue(start, 0)
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		order = append(order, item.v)
		if err := w.visit(item.v, item.depth); err != nil {
			return nil, fmt.Errorf("bfs: visit error at %d: %w", item.v, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return nil, err
		}
	}

	return order, nil
}

func (w *walker) enqueue(v, depth int) {
	w.visited[v] = true
	w.queue = append(w.queue, queueItem{v: v, depth: depth})
}

// enqueueNeighbors enqueues every unseen neighbor of item one hop deeper.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nbs, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("%w: vertex %d: %v", ErrNeighbors, item.v, err)
	}
	for _, nb := range nbs {
		if !w.visited[nb.To] {
			w.enqueue(nb.To, item.depth+1)
		}
	}

	return nil
}
