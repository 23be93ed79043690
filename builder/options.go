// SPDX-License-Identifier: MIT
// Package: algos/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// Option customizes Build by mutating the resolved config.
type Option func(*config)

// WithDirected makes constructors emit one-way arcs (Path, Cycle, Complete,
// RandomSparse). Grid always emits both directions.
func WithDirected() Option {
	return func(c *config) {
		c.directed = true
	}
}

// WithRand provides an explicit RNG for stochastic constructors and weights.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-arc weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
	}
}

// WithWeightRange draws weights uniformly from [min, max].
// Panics if min < 0 or max < min.
func WithWeightRange(min, max int64) Option {
	if min < 0 || max < min {
		panic(fmt.Sprintf("builder: WithWeightRange requires 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return WithWeightFn(UniformWeight(min, max))
}

// WithConstantWeight gives every arc the same weight. Panics if w < 0.
func WithConstantWeight(w int64) Option {
	return WithWeightFn(ConstantWeight(w))
}
