// SPDX-License-Identifier: MIT
// Package: spanning/builder
//
// options.go — functional options and the resolved builderConfig.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
}

// BuilderOption customizes a constructor by mutating builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// newBuilderConfig applies opts in order over the deterministic defaults
// (no RNG, DefaultWeightFn).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 {
	return c.weightFn(c.rng)
}
