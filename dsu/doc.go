// SPDX-License-Identifier: MIT
// Package dsu provides a disjoint-set (union-find) structure over the vertex
// identifiers 1..n used throughout spanning.
//
// What & Why
//
//   - A DisjointSet keeps a partition of {1..n} into non-overlapping
//     components. Kruskal's algorithm uses it to answer "are u and v already
//     connected?" in near-constant time and to merge two components once an
//     edge between them is accepted.
//
//   - Every vertex starts as its own singleton component. The only mutation
//     is Union; Find and Same may shorten internal parent chains (path
//     halving) but never change the represented partition.
//
// Operations
//
//	New(n)        — n singleton components, O(n).
//	Find(v)       — canonical root of v's component, amortized O(α(n)).
//	Same(u, v)    — Find(u) == Find(v).
//	Union(u, v)   — merge by size; returns false when already joined.
//	Count()       — number of components currently present.
//	Size(v)       — number of vertices in v's component.
//	Sets()        — the partition, each set sorted, ordered by smallest member.
//
// Error Conditions
//
//	A vertex outside [1, n] is a programming error, not a runtime condition:
//	every operation panics with a message naming the vertex and the range.
//
// Concurrency
//
//	A DisjointSet is owned by a single goroutine. Find mutates parent links,
//	so even read-looking calls must not run concurrently.
package dsu
