// SPDX-License-Identifier: MIT
// Package: algos/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • directed = false (AddEdge stores both arcs)
//   • rng      = nil   (pure/deterministic unless seeded)
//   • weightFn = ConstantWeight(DefaultEdgeWeight)

package builder

import "math/rand"

// config aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type config struct {
	directed bool
	rng      *rand.Rand
	weightFn WeightFn
}

// newConfig applies options in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		weightFn: ConstantWeight(DefaultEdgeWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next arc weight.
func (c config) weight() int64 { return c.weightFn(c.rng) }
