package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Negative values are allowed; Kruskal places no sign constraint on weights.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if max < min. If rng is nil it yields min, so the result stays
// deterministic.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) int64 {
		if rng == nil || span == 1 {
			return min
		}

		return min + rng.Int63n(span)
	}
}
