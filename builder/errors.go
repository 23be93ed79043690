// SPDX-License-Identifier: MIT
// Package: algos/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is smaller
// than the minimum allowed by the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNilConstructor indicates a nil Constructor passed to Build.
var ErrNilConstructor = errors.New("builder: nil constructor")
