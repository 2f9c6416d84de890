// Package builder provides deterministic graph fixtures for spanning: simple
// topologies (Path, Cycle, Complete) and seeded random connected graphs.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(n, gopts, bopts, cons...) creates a core.Graph over 1..n,
//     resolves builder options and applies constructors in order.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the weight function.
//   - Edge-weight distributions (WeightFn implementations):
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform integer in [min,max].
//   - Constructors:
//     – Path(), Cycle(), Complete(), RandomConnected(m).
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name (errors.Is works on every returned error).
//   - Same n, options, seed and constructor order ⇒ identical graphs.
package builder
