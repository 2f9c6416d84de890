// Package kruskal computes a Minimum Spanning Tree (MST) of an undirected,
// weighted *core.Graph using Kruskal's greedy algorithm.
//
// What & Why
//
//   - Given a connected graph G = (V, E) with edge weights, an MST is a subset
//     T ⊆ E that connects every vertex, has no cycle, and minimizes the sum of
//     its weights. On a disconnected graph the same procedure yields a minimum
//     spanning forest, one tree per component.
//
//   - Kruskal processes edges from lightest to heaviest and keeps an edge only
//     if it joins two components that are still separate. Any skipped edge
//     closes a cycle whose other edges are no heavier, so by the exchange
//     argument the kept set is minimal.
//
// Pipeline
//
//	Graph → ExtractEdges → SortEdges → Select ↔ dsu.DisjointSet → Result
//
//	ExtractEdges(g)              one Edge per undirected edge (entry i→j kept iff j > i)
//	SortEdges(edges)             stable, ascending by Weight
//	Select(n, sorted, opts...)   the driver; Same/Union per edge
//	Kruskal(g, opts...)          all three in order
//
// Observing progress
//
//	WithObserver(fn) receives a Step for every consumed edge, accepted or not,
//	at the moment it is decided. Accepted steps arrive in non-decreasing weight
//	order. WithLogger(l) writes the same trace at debug level (including the
//	current partition) and a summary at info level.
//
// Error Conditions
//
//	ErrNilGraph is the only error. Empty graphs return an empty Result;
//	disconnected graphs return a forest with Result.Spanning() == false.
//
// Determinism
//
//	Extraction order is fixed (vertex ascending, adjacency insertion order) and
//	the sort is stable, so the same graph always yields the same edges. When
//	equal weights allow several MSTs, compare totals rather than edge lists.
//
// Complexity
//
//	Time O(E log E + E·α(V)), space O(V + E).
package kruskal
