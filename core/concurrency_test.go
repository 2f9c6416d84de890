// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/spanning/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls with distinct pairs
// all land and the adjacency stays symmetric.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g, err := core.NewGraph(num + 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, num)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs[id] = g.AddEdge(1, id+2, int64(id))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, num, g.EdgeCount())
	deg, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, num, deg)
}

// TestConcurrentReaders runs readers alongside a writer to surface races
// under -race.
func TestConcurrentReaders(t *testing.T) {
	const n = 64
	g, err := core.NewGraph(n, core.WithMultiEdges())
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for v := 2; v <= n; v++ {
			_ = g.AddEdge(v-1, v, 1)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_, _ = g.Neighbors(i%n + 1)
			_ = g.EdgeCount()
			_ = g.HasEdge(1, 2)
		}
	}()
	wg.Wait()

	assert.Equal(t, n-1, g.EdgeCount())
}
