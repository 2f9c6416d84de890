// Package spanning computes minimum spanning trees of undirected weighted
// graphs with Kruskal's algorithm over a disjoint-set forest.
//
// Layout:
//
//	dsu/         — union-find with union by size and path halving
//	core/        — 1-based undirected weighted graph (adjacency lists)
//	kruskal/     — edge extraction, stable sort and the selection driver
//	prim/        — heap-based Prim, used as an independent cross-check
//	bfs/         — breadth-first walk and connected components
//	graphio/     — text input format and report writers
//	builder/     — deterministic and seeded random graph constructors
//	cmd/kruskal/ — command-line front end
//
// Quick start:
//
//	g, _ := core.NewGraph(4)
//	_ = g.AddEdge(1, 2, 1)
//	_ = g.AddEdge(2, 3, 2)
//	_ = g.AddEdge(3, 4, 3)
//	_ = g.AddEdge(1, 4, 4)
//	res, _ := kruskal.Kruskal(g)
//	// res.Edges: (1 2) (2 3) (3 4); res.Total: 6
//
// A disconnected graph yields a minimum spanning forest; Result.Spanning
// tells the two apart.
package spanning
