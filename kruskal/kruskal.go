// Package kruskal computes a minimum spanning tree (or forest) of a
// core.Graph with Kruskal's algorithm over a dsu.DisjointSet.
package kruskal

import (
	"github.com/katalvlaran/spanning/core"
	"github.com/katalvlaran/spanning/dsu"
	"go.uber.org/zap"
)

// Kruskal runs the full pipeline on g: ExtractEdges, SortEdges, Select.
//
// Error Conditions:
//   - ErrNilGraph : g == nil.
//
// An empty or disconnected graph is not an error: the result is empty or a
// spanning forest, and Result.Spanning() tells the two apart.
//
// Complexity: O(E log E + E·α(V)). Memory: O(V + E).
func Kruskal(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	edges := ExtractEdges(g)
	SortEdges(edges)

	return Select(g.Order(), edges, opts...), nil
}

// Select is the Kruskal driver. It consumes sorted edges over the vertices
// 1..n and accepts each edge whose endpoints are in different components.
//
// Steps:
//  1. Initialize n singleton components; the result is empty.
//  2. For edge i: if Same(x, y) skip it (it would close a cycle); otherwise
//     append it, add its weight and Union(x, y).
//  3. Stop after the last edge, or after n-1 acceptances with WithEarlyExit.
//
// sorted must be in non-decreasing weight order for the result to be minimal.
// Endpoints outside [1, n] are a programming error and panic in dsu.
//
// Complexity: O(E·α(n)) plus O(n) initialization.
func Select(n int, sorted []Edge, opts ...Option) Result {
	o := resolve(opts)
	log := o.Logger

	if n < 0 {
		n = 0
	}
	sets := dsu.New(n)
	res := Result{Order: n}
	if n > 1 {
		res.Edges = make([]Edge, 0, n-1)
	}

	log.Debug("kruskal: start",
		zap.Int("vertices", n),
		zap.Int("edges", len(sorted)),
	)

	for i, e := range sorted {
		accepted := !sets.Same(e.X, e.Y)
		if accepted {
			res.Edges = append(res.Edges, e)
			res.Total += e.Weight
			sets.Union(e.X, e.Y)
		}

		// Rendered eagerly: the entry must show the partition after this step.
		if ce := log.Check(zap.DebugLevel, "kruskal: step"); ce != nil {
			ce.Write(
				zap.Int("index", i),
				zap.Int("x", e.X),
				zap.Int("y", e.Y),
				zap.Int64("weight", e.Weight),
				zap.Bool("accepted", accepted),
				zap.String("sets", sets.String()),
			)
		}
		if o.Observer != nil {
			o.Observer(Step{Index: i, Edge: e, Accepted: accepted, Components: sets.Count()})
		}

		if o.EarlyExit && n > 0 && len(res.Edges) == n-1 {
			break
		}
	}

	log.Info("kruskal: done",
		zap.Int("vertices", n),
		zap.Int("selected", len(res.Edges)),
		zap.Int64("total", res.Total),
		zap.Int("components", sets.Count()),
		zap.Bool("spanning", res.Spanning()),
	)

	return res
}
