package kruskal

import "github.com/katalvlaran/spanning/core"

// ExtractEdges flattens g's adjacency into one Edge per undirected edge.
//
// Vertices are walked in ascending order and neighbours in insertion order;
// an entry i → j is emitted only when j > i. The mirror j → i is guaranteed
// to exist by core.Graph, so nothing is lost, and self-loops never appear.
//
// Complexity: O(V + E) time, O(E) space.
func ExtractEdges(g *core.Graph) []Edge {
	if g == nil {
		return nil
	}
	edges := make([]Edge, 0, g.EdgeCount())
	for i := 1; i <= g.Order(); i++ {
		nbs, err := g.Neighbors(i)
		if err != nil {
			// i is always in range; kept for the type contract.
			continue
		}
		for _, nb := range nbs {
			if nb.To > i {
				edges = append(edges, Edge{X: i, Y: nb.To, Weight: nb.Weight})
			}
		}
	}

	return edges
}
