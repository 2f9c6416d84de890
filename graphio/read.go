package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/spanning/core"
)

// Sentinel errors for parsing.
var (
	// ErrMalformedHeader indicates the "<nvertices> <nedges>" line is missing or invalid.
	ErrMalformedHeader = errors.New("graphio: malformed header")

	// ErrMalformedEdge indicates an edge line is not "<x> <y> [weight]".
	ErrMalformedEdge = errors.New("graphio: malformed edge")

	// ErrEdgeCountMismatch indicates the number of edge lines differs from the header.
	ErrEdgeCountMismatch = errors.New("graphio: edge count mismatch")
)

const (
	// commentPrefix starts a comment line.
	commentPrefix = "#"

	// maxEdges bounds the header edge count so it fits an int on every platform.
	maxEdges = 1<<31 - 1
)

// Read parses a graph from r. opts are passed to core.NewGraph.
//
// Complexity: O(V + E) time; the input is streamed line by line.
func Read(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	line := 0

	// next returns the fields of the next meaningful line, or nil at EOF.
	next := func() ([]string, error) {
		for sc.Scan() {
			line++
			text := strings.TrimSpace(sc.Text())
			if text == "" || strings.HasPrefix(text, commentPrefix) {
				continue
			}
			return strings.Fields(text), nil
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("graphio: read line %d: %w", line+1, err)
		}

		return nil, nil
	}

	// 1) Header.
	fields, err := next()
	if err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, fmt.Errorf("graphio: empty input: %w", ErrMalformedHeader)
	}
	hdr, err := parseInts(fields, 2, 2)
	if err != nil || hdr[0] < 0 || hdr[1] < 0 || hdr[0] > core.MaxOrder || hdr[1] > maxEdges {
		return nil, fmt.Errorf("graphio: line %d: %q: %w", line, strings.Join(fields, " "), ErrMalformedHeader)
	}
	n, m := int(hdr[0]), int(hdr[1])

	g, err := core.NewGraph(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("graphio: line %d: %w", line, err)
	}

	// 2) Exactly m edge lines.
	for i := 0; i < m; i++ {
		fields, err = next()
		if err != nil {
			return nil, err
		}
		if fields == nil {
			return nil, fmt.Errorf("graphio: got %d of %d edges: %w", i, m, ErrEdgeCountMismatch)
		}
		vals, err := parseInts(fields, 2, 3)
		if err != nil {
			return nil, fmt.Errorf("graphio: line %d: %q: %w", line, strings.Join(fields, " "), ErrMalformedEdge)
		}
		var w int64
		if len(vals) == 3 {
			w = vals[2]
		}
		if err := g.AddEdge(int(vals[0]), int(vals[1]), w); err != nil {
			return nil, fmt.Errorf("graphio: line %d: %w", line, err)
		}
	}

	// 3) Nothing meaningful may follow.
	fields, err = next()
	if err != nil {
		return nil, err
	}
	if fields != nil {
		return nil, fmt.Errorf("graphio: line %d: more than %d edges: %w", line, m, ErrEdgeCountMismatch)
	}

	return g, nil
}

// parseInts converts between min and max whitespace-separated integers.
func parseInts(fields []string, min, max int) ([]int64, error) {
	if len(fields) < min || len(fields) > max {
		return nil, fmt.Errorf("want %d..%d fields, got %d", min, max, len(fields))
	}
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
