package prim

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/katalvlaran/spanning/core"
	"github.com/katalvlaran/spanning/kruskal"
)

// ErrNilGraph indicates Prim was called without a graph.
var ErrNilGraph = errors.New("prim: nil graph")

// Tree computes the minimum spanning tree of root's component by growing
// outwards from root using a min-heap.
//
// Error Conditions:
//   - ErrNilGraph              : g == nil.
//   - core.ErrVertexOutOfRange : root outside [1, n].
//
// Result.Order is g.Order(), so Result.Spanning() reports whether root's
// component is the whole graph.
//
// Steps:
//  1. Validate g and root.
//  2. Mark root visited; push its edges to unvisited neighbours.
//  3. Pop the lightest frontier edge (u→v); skip if v is visited, else take it,
//     mark v and push v's edges to unvisited neighbours.
//  4. Stop when the heap is empty.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Tree(g *core.Graph, root int) (kruskal.Result, error) {
	if g == nil {
		return kruskal.Result{}, ErrNilGraph
	}
	if root < 1 || root > g.Order() {
		return kruskal.Result{}, fmt.Errorf("prim: root %d: n=%d: %w", root, g.Order(), core.ErrVertexOutOfRange)
	}

	res := kruskal.Result{Order: g.Order()}
	visited := make([]bool, g.Order()+1)
	if err := grow(g, root, visited, &res); err != nil {
		return kruskal.Result{}, err
	}

	return res, nil
}

// Forest computes a minimum spanning forest by running the tree growth from
// each vertex not yet covered, in ascending order.
//
// Error Conditions:
//   - ErrNilGraph : g == nil.
func Forest(g *core.Graph) (kruskal.Result, error) {
	if g == nil {
		return kruskal.Result{}, ErrNilGraph
	}

	res := kruskal.Result{Order: g.Order()}
	visited := make([]bool, g.Order()+1)
	for v := 1; v <= g.Order(); v++ {
		if visited[v] {
			continue
		}
		if err := grow(g, v, visited, &res); err != nil {
			return kruskal.Result{}, err
		}
	}

	return res, nil
}

// grow adds root's component tree to res, marking its vertices in visited.
func grow(g *core.Graph, root int, visited []bool, res *kruskal.Result) error {
	pq := &edgePQ{}
	heap.Init(pq)

	push := func(u int) error {
		visited[u] = true
		nbs, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		for _, nb := range nbs {
			// Only consider edges whose other endpoint is not yet visited.
			if !visited[nb.To] {
				heap.Push(pq, frontier{from: u, to: nb.To, weight: nb.Weight})
			}
		}

		return nil
	}

	if err := push(root); err != nil {
		return err
	}
	for pq.Len() > 0 {
		e := heap.Pop(pq).(frontier)
		// Already reached through a lighter edge: taking this one closes a cycle.
		if visited[e.to] {
			continue
		}
		x, y := e.from, e.to
		if x > y {
			x, y = y, x
		}
		res.Edges = append(res.Edges, kruskal.Edge{X: x, Y: y, Weight: e.weight})
		res.Total += e.weight
		if err := push(e.to); err != nil {
			return err
		}
	}

	return nil
}

// frontier is a candidate edge leaving the current tree.
type frontier struct {
	from, to int
	weight   int64
}

// edgePQ implements heap.Interface for a min-heap of frontier edges, ordered by weight.
type edgePQ []frontier

func (pq edgePQ) Len() int           { return len(pq) }
func (pq edgePQ) Less(i, j int) bool { return pq[i].weight < pq[j].weight }
func (pq edgePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a frontier edge; called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(frontier)) }

// Pop removes the last element; called by heap.Pop after heap adjustments.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
