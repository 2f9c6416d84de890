// Package bfs walks a core.Graph breadth-first and partitions it into
// connected components.
//
// Walk visits every vertex reachable from a start vertex in increasing hop
// distance, invoking an optional hook per vertex; Components repeats the walk
// from each uncovered vertex in ascending order.
//
// Edge weights are ignored. Self-loops and parallel edges are harmless.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
