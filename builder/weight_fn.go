// Package builder provides internal helper functions and types
// for configuring edge-weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each arc when no weight option is given.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an arc weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeight returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeight(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeight: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeight returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if min < 0 or max < min. With a nil rng it yields min, keeping
// unseeded builds deterministic.
func UniformWeight(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeight: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		span := max - min
		if span == math.MaxInt64 {
			return min + rng.Int63()
		}

		return min + rng.Int63n(span+1)
	}
}
