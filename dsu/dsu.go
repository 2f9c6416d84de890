// SPDX-License-Identifier: MIT
// Package: spanning/dsu
//
// dsu.go — slice-backed union-find with union by size and path halving.
//
// Layout:
//   - parent[v] == v  ⇔ v is a root.
//   - size[r] is meaningful only for roots: number of vertices in r's tree.
//   - Index 0 is allocated but never addressed; vertices are 1-based.

package dsu

import (
	"fmt"
	"strings"
)

// DisjointSet is a partition of the vertices 1..n into disjoint components.
// The zero value is an empty structure (n == 0).
type DisjointSet struct {
	parent []int // parent[v]; roots point to themselves
	size   []int // size[root] = component size
	count  int   // number of components
}

// New creates n singleton components, one per vertex 1..n.
// A non-positive n yields an empty structure.
//
// Complexity: O(n) time and space.
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n+1),
		size:   make([]int, n+1),
		count:  n,
	}
	for v := 1; v <= n; v++ {
		d.parent[v] = v
		d.size[v] = 1
	}

	return d
}

// Len returns n, the number of vertices covered by the structure.
func (d *DisjointSet) Len() int {
	if len(d.parent) == 0 {
		return 0
	}

	return len(d.parent) - 1
}

// Count returns the number of components currently present.
func (d *DisjointSet) Count() int {
	return d.count
}

// Find returns the canonical representative (root) of v's component.
// Calling Find twice without an intervening Union returns the same root.
//
// Each visited node is re-pointed to its grandparent on the way up
// (path halving), so repeated lookups flatten the tree.
//
// Complexity: amortized O(α(n)) together with union by size.
func (d *DisjointSet) Find(v int) int {
	d.check(v)
	for d.parent[v] != v {
		d.parent[v] = d.parent[d.parent[v]]
		v = d.parent[v]
	}

	return v
}

// Same reports whether u and v belong to the same component.
func (d *DisjointSet) Same(u, v int) bool {
	return d.Find(u) == d.Find(v)
}

// Union merges the components containing u and v.
//
// The root of the smaller component is attached under the root of the larger
// one; on equal sizes the root of u's component survives. If u and v are
// already joined, Union does nothing and returns false.
//
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Union(u, v int) bool {
	ru, rv := d.Find(u), d.Find(v)
	if ru == rv {
		return false
	}
	if d.size[ru] < d.size[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	d.size[ru] += d.size[rv]
	d.count--

	return true
}

// Size returns the number of vertices in v's component.
func (d *DisjointSet) Size(v int) int {
	return d.size[d.Find(v)]
}

// Sets returns the current partition. Members of each set are ascending and
// the sets are ordered by their smallest member, so output is deterministic.
//
// Complexity: O(n·α(n)) time, O(n) space.
func (d *DisjointSet) Sets() [][]int {
	n := d.Len()
	byRoot := make(map[int]int, d.count) // root → index in out
	out := make([][]int, 0, d.count)
	// Ascending v visits the smallest member of every set first, which fixes
	// the order of out and keeps members sorted without an extra pass.
	for v := 1; v <= n; v++ {
		r := d.Find(v)
		idx, ok := byRoot[r]
		if !ok {
			idx = len(out)
			byRoot[r] = idx
			out = append(out, make([]int, 0, d.size[r]))
		}
		out[idx] = append(out[idx], v)
	}

	return out
}

// Parents returns a copy of the parent links for vertices 1..n, indexed
// from 0 (Parents()[v-1] is the parent of v). Useful for tracing.
func (d *DisjointSet) Parents() []int {
	n := d.Len()
	out := make([]int, n)
	if n > 0 {
		copy(out, d.parent[1:])
	}

	return out
}

// String renders the partition as "{1 2 5} {3} {4 6}".
func (d *DisjointSet) String() string {
	var sb strings.Builder
	for i, set := range d.Sets() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('{')
		for k, v := range set {
			if k > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteByte('}')
	}

	return sb.String()
}

// check panics when v is not a vertex of the structure.
func (d *DisjointSet) check(v int) {
	if v < 1 || v >= len(d.parent) {
		panic(fmt.Sprintf("dsu: vertex %d out of range [1,%d]", v, d.Len()))
	}
}
