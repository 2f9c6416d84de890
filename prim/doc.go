// Package prim computes a minimum spanning forest with Prim's algorithm.
//
// It exists alongside package kruskal as an independent second opinion: both
// return a kruskal.Result over the same core.Graph, and for any input their
// totals must agree even when the chosen edges differ on ties. The kruskal
// CLI uses it behind --verify; the kruskal tests use it as an oracle on graphs
// too large for brute force.
//
// Algorithms Provided
//
//   - Tree(g, root) — grow a single tree from root with a min-heap of
//     frontier edges; covers root's component only.
//   - Forest(g)     — Tree from every vertex not yet covered, ascending, so
//     disconnected graphs yield one tree per component.
//
// Complexity: O(E log E) time, O(V + E) memory.
package prim
