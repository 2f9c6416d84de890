package graphio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/spanning/core"
	"github.com/katalvlaran/spanning/kruskal"
)

// WriteGraph prints g's adjacency, one line per vertex:
//
//	1: 2(3) 3(1)
//	2: 1(3) 3(5)
func WriteGraph(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, v := range g.Vertices() {
		nbs, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "%d:", v)
		for _, nb := range nbs {
			fmt.Fprintf(bw, " %d(%d)", nb.To, nb.Weight)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteEdgeList prints g in the format accepted by Read. Each undirected
// edge appears once, as extracted by kruskal.ExtractEdges; loops are not
// written.
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	edges := kruskal.ExtractEdges(g)
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.Order(), len(edges))
	for _, e := range edges {
		fmt.Fprintf(bw, "%d %d %d\n", e.X, e.Y, e.Weight)
	}

	return bw.Flush()
}

// WriteResult prints each accepted edge followed by a summary line:
//
//	edge (1 2) of weight 1 in MST
//	mst: edges=1 total=1 spanning=true
func WriteResult(w io.Writer, res kruskal.Result) error {
	bw := bufio.NewWriter(w)
	for _, e := range res.Edges {
		WriteStep(bw, e)
	}
	WriteSummary(bw, res)

	return bw.Flush()
}

// WriteSummary prints the closing line of a report.
func WriteSummary(w io.Writer, res kruskal.Result) {
	fmt.Fprintf(w, "mst: edges=%d total=%d spanning=%t\n", len(res.Edges), res.Total, res.Spanning())
}

// WriteStep prints the report line for one accepted edge. WriteStep and
// WriteSummary leave write errors to the caller's buffered writer.
func WriteStep(w io.Writer, e kruskal.Edge) {
	fmt.Fprintf(w, "edge (%d %d) of weight %d in MST\n", e.X, e.Y, e.Weight)
}
