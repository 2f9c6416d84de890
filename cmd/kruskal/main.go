// Command kruskal reads a weighted undirected graph and prints a minimum
// spanning tree (or forest) computed with Kruskal's algorithm.
//
// Usage:
//
//	kruskal [file] [--print-graph] [--verbose] [--require-spanning] [--verify]
//	kruskal generate --vertices 50 --edges 200 --seed 7 > graph.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
