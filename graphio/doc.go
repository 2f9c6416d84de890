// Package graphio reads graphs from and writes graphs and spanning results to
// plain text.
//
// Input format (Read):
//
//	# comments and blank lines are ignored anywhere
//	<nvertices> <nedges>
//	<x> <y> [weight]      ← exactly nedges lines, vertices in 1..nvertices
//
// A missing weight is 0. Every edge line is inserted with core.Graph.AddEdge,
// so loops and parallel edges follow the GraphOption values passed to Read.
//
// Output:
//
//	WriteGraph     — adjacency listing, one "v: to(w) to(w) ..." line per vertex.
//	WriteEdgeList  — the graph back in the input format.
//	WriteResult    — "edge (x y) of weight w in MST" per accepted edge, then a
//	                 summary line.
//
// Errors:
//
//	ErrMalformedHeader    - header missing, not two integers, or negative.
//	ErrMalformedEdge      - edge line is not 2 or 3 integers.
//	ErrEdgeCountMismatch  - fewer or more edge lines than announced.
//
// Every error names the offending line; core errors are wrapped with %w.
package graphio
