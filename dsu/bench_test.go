package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spanning/dsu"
)

// BenchmarkUnionFind measures random unions and lookups over 10k vertices.
func BenchmarkUnionFind(b *testing.B) {
	const n = 10_000
	r := rand.New(rand.NewSource(1))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n) + 1, r.Intn(n) + 1}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := dsu.New(n)
		for _, p := range pairs {
			if !d.Same(p[0], p[1]) {
				d.Union(p[0], p[1])
			}
		}
	}
}
