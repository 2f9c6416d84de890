// File: builder_impl_test.go
// Package builder_test contains functional tests for the Constructor
// implementations, verifying topology, counts, weights and determinism.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spanning/builder"
	"github.com/katalvlaran/spanning/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isConnected walks g from vertex 1 and reports whether every vertex is reached.
func isConnected(t *testing.T, g *core.Graph) bool {
	t.Helper()
	if g.Order() == 0 {
		return true
	}
	seen := make([]bool, g.Order()+1)
	stack := []int{1}
	seen[1] = true
	reached := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nbs, err := g.Neighbors(v)
		require.NoError(t, err)
		for _, nb := range nbs {
			if !seen[nb.To] {
				seen[nb.To] = true
				reached++
				stack = append(stack, nb.To)
			}
		}
	}

	return reached == g.Order()
}

// TestBuilders_Functional runs table-driven checks for each deterministic topology.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		n     int
		ctor  builder.Constructor
		wantE int
		edges [][2]int // sample edges that must exist
	}{
		{name: "Path(5)", n: 5, ctor: builder.Path(), wantE: 4, edges: [][2]int{{1, 2}, {4, 5}}},
		{name: "Cycle(5)", n: 5, ctor: builder.Cycle(), wantE: 5, edges: [][2]int{{1, 2}, {5, 1}}},
		{name: "Complete(4)", n: 4, ctor: builder.Complete(), wantE: 6, edges: [][2]int{{1, 4}, {2, 3}}},
		{name: "Complete(1)", n: 1, ctor: builder.Complete(), wantE: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.n, nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.n, g.Order())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			for _, e := range tc.edges {
				assert.True(t, g.HasEdge(e[0], e[1]), "missing edge %v", e)
			}
			assert.True(t, isConnected(t, g))

			nbs, err := g.Neighbors(1)
			require.NoError(t, err)
			for _, nb := range nbs {
				assert.Equal(t, builder.DefaultEdgeWeight, nb.Weight)
			}
		})
	}
}

// TestBuilders_TooFew verifies minimum-order sentinels.
func TestBuilders_TooFew(t *testing.T) {
	_, err := builder.BuildGraph(1, nil, nil, builder.Path())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(2, nil, nil, builder.Cycle())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(0, nil, nil, builder.Complete())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(-1, nil, nil)
	assert.ErrorIs(t, err, core.ErrNegativeOrder)
}

// TestBuildGraph_NilConstructor verifies nil constructors are rejected.
func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(3, nil, nil, builder.Path(), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

// TestBuildGraph_CoreErrorWrapped verifies core failures keep both sentinels.
func TestBuildGraph_CoreErrorWrapped(t *testing.T) {
	// Path twice on a simple graph repeats {1,2}.
	_, err := builder.BuildGraph(3, nil, nil, builder.Path(), builder.Path())
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

// TestRandomConnected covers counts, connectivity, simplicity and determinism.
func TestRandomConnected(t *testing.T) {
	const n, m = 30, 90
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 100))}

	g1, err := builder.BuildGraph(n, nil, opts, builder.RandomConnected(m))
	require.NoError(t, err)
	assert.Equal(t, m, g1.EdgeCount())
	assert.True(t, isConnected(t, g1))

	for v := 1; v <= n; v++ {
		nbs, err := g1.Neighbors(v)
		require.NoError(t, err)
		seen := map[int]bool{}
		for _, nb := range nbs {
			assert.False(t, seen[nb.To], "parallel edge %d-%d", v, nb.To)
			seen[nb.To] = true
			assert.GreaterOrEqual(t, nb.Weight, int64(1))
			assert.LessOrEqual(t, nb.Weight, int64(100))
		}
	}

	// Same seed ⇒ identical adjacency.
	g2, err := builder.BuildGraph(n, nil,
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 100))},
		builder.RandomConnected(m))
	require.NoError(t, err)
	for v := 1; v <= n; v++ {
		a, _ := g1.Neighbors(v)
		b, _ := g2.Neighbors(v)
		assert.Equal(t, a, b)
	}
}

// TestRandomConnected_Multigraph verifies draws on a multigraph.
func TestRandomConnected_Multigraph(t *testing.T) {
	g, err := builder.BuildGraph(4, []core.GraphOption{core.WithMultiEdges()},
		[]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(3)))},
		builder.RandomConnected(20))
	require.NoError(t, err)
	assert.Equal(t, 20, g.EdgeCount())
	assert.True(t, isConnected(t, g))
}

// TestRandomConnected_Validation covers every parameter sentinel.
func TestRandomConnected_Validation(t *testing.T) {
	seed := []builder.BuilderOption{builder.WithSeed(1)}

	_, err := builder.BuildGraph(4, nil, seed, builder.RandomConnected(2))
	assert.ErrorIs(t, err, builder.ErrTooManyEdges, "fewer than n-1 edges")

	_, err = builder.BuildGraph(4, nil, seed, builder.RandomConnected(7))
	assert.ErrorIs(t, err, builder.ErrTooManyEdges, "more than K4")

	_, err = builder.BuildGraph(1, []core.GraphOption{core.WithMultiEdges()}, seed, builder.RandomConnected(1))
	assert.ErrorIs(t, err, builder.ErrTooManyEdges)

	_, err = builder.BuildGraph(4, nil, nil, builder.RandomConnected(3))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(0, nil, seed, builder.RandomConnected(0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	g, err := builder.BuildGraph(1, nil, seed, builder.RandomConnected(0))
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount())
}

// TestWeightFns checks weight generators and option panics.
func TestWeightFns(t *testing.T) {
	assert.Equal(t, int64(-4), builder.ConstantWeightFn(-4)(nil))
	assert.Equal(t, int64(7), builder.UniformWeightFn(7, 7)(rand.New(rand.NewSource(1))))
	assert.Equal(t, int64(2), builder.UniformWeightFn(2, 9)(nil))

	r := rand.New(rand.NewSource(5))
	fn := builder.UniformWeightFn(-3, 3)
	for i := 0; i < 100; i++ {
		w := fn(r)
		assert.GreaterOrEqual(t, w, int64(-3))
		assert.LessOrEqual(t, w, int64(3))
	}

	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}
