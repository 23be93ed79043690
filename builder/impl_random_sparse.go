// SPDX-License-Identifier: MIT
// Package: algos/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j), i≠j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc. One Bernoulli draw per
//     trial, followed by one weight draw when the edge is kept.

package builder

import (
	"fmt"

	"github.com/Canx/algos/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a graph over n vertices
// with independent edge probability p.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *graph.AdjacencyList, cfg config) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Make room for n vertices.
		if err := g.Grow(n); err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}

		// 3) Sample edges in a stable order.
		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}
		for i := 0; i < n; i++ {
			start := i + 1
			if cfg.directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				w := cfg.weight()
				if err := g.AddEdge(i, j, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodRandomSparse, i, j, w, err)
				}
			}
		}

		return nil
	}
}
