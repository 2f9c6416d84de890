// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spanning/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Common weights used across core tests.
const (
	Weight1 = 1
	Weight3 = 3
	Weight5 = 5
)

// TestNewGraph_Order verifies vertex numbering and the negative-order sentinel.
func TestNewGraph_Order(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())
	assert.Zero(t, g.EdgeCount())
	assert.Equal(t, []int{1, 2, 3, 4}, g.Vertices())
	assert.False(t, g.Looped())
	assert.False(t, g.Multigraph())

	empty, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Empty(t, empty.Vertices())

	_, err = core.NewGraph(-1)
	assert.ErrorIs(t, err, core.ErrNegativeOrder)

	_, err = core.NewGraph(core.MaxOrder + 1)
	assert.ErrorIs(t, err, core.ErrOrderTooLarge)
	_, err = core.NewGraph(math.MaxInt)
	assert.ErrorIs(t, err, core.ErrOrderTooLarge)
}

// TestAddEdge_Symmetric verifies that both directions carry the same weight.
func TestAddEdge_Symmetric(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, Weight3))
	require.NoError(t, g.AddEdge(2, 3, Weight5))
	require.NoError(t, g.AddEdge(1, 3, Weight1))

	assert.Equal(t, 3, g.EdgeCount())

	n1, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{To: 2, Weight: Weight3}, {To: 3, Weight: Weight1}}, n1)

	n2, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{To: 1, Weight: Weight3}, {To: 3, Weight: Weight5}}, n2)

	// Every entry x→y(w) has a mirror y→x(w).
	for _, x := range g.Vertices() {
		nbs, _ := g.Neighbors(x)
		for _, nb := range nbs {
			back, _ := g.Neighbors(nb.To)
			assert.Contains(t, back, core.Neighbor{To: x, Weight: nb.Weight})
		}
	}
}

// TestAddEdge_Constraints covers range, loop and multi-edge rejection.
func TestAddEdge_Constraints(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(0, 1, Weight1), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(1, 3, Weight1), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(1, 1, Weight1), core.ErrLoopNotAllowed)

	require.NoError(t, g.AddEdge(1, 2, Weight1))
	assert.ErrorIs(t, g.AddEdge(2, 1, Weight3), core.ErrMultiEdgeNotAllowed)
	assert.Equal(t, 1, g.EdgeCount(), "rejected edges must not be stored")
}

// TestAddEdge_LoopsAndMulti verifies the permissive options.
func TestAddEdge_LoopsAndMulti(t *testing.T) {
	g, err := core.NewGraph(2, core.WithLoops(), core.WithMultiEdges())
	require.NoError(t, err)
	assert.True(t, g.Looped())
	assert.True(t, g.Multigraph())

	require.NoError(t, g.AddEdge(1, 1, Weight5))
	require.NoError(t, g.AddEdge(1, 2, Weight1))
	require.NoError(t, g.AddEdge(1, 2, Weight3))
	assert.Equal(t, 3, g.EdgeCount())

	d1, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 3, d1, "loop stored once plus two parallel edges")
	d2, err := g.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, 2, d2)
}

// TestQueries_OutOfRange verifies query-side range handling.
func TestQueries_OutOfRange(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	_, err = g.Neighbors(3)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = g.Degree(0)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	assert.False(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 2))

	require.NoError(t, g.AddEdge(1, 2, Weight1))
	assert.True(t, g.HasEdge(2, 1))
}

// TestNeighbors_ReturnsCopy verifies callers cannot mutate stored adjacency.
func TestNeighbors_ReturnsCopy(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2, Weight1))

	nbs, err := g.Neighbors(1)
	require.NoError(t, err)
	nbs[0].Weight = 99

	again, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, int64(Weight1), again[0].Weight)
}
