package kruskal

import "sort"

// SortEdges orders edges in place by ascending weight.
//
// The sort is stable: equal weights keep their extraction order, so a given
// graph always yields the same tree. When several minimum spanning trees
// exist, which one is returned depends on that order and nothing more.
//
// Complexity: O(E log E).
func SortEdges(edges []Edge) {
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})
}
