// SPDX-License-Identifier: MIT
// Package: algos/builder
//
// impl_complete.go: Complete(n): every pair of distinct vertices is connected.
//
// Determinism:
//   • Undirected: pairs (i,j), i<j, i asc then j asc.
//   • Directed: ordered pairs (i,j), i≠j, i asc then j asc.

package builder

import (
	"fmt"

	"github.com/Canx/algos/graph"
)

const (
	methodComplete  = "Complete"
	minCompleteSize = 1
)

// Complete returns a Constructor for K_n (n ≥ 1) without self-loops.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *graph.AdjacencyList, cfg config) error {
		if n < minCompleteSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteSize, ErrTooFewVertices)
		}
		if err := g.Grow(n); err != nil {
			return fmt.Errorf("%s: %w", methodComplete, err)
		}

		for i := 0; i < n; i++ {
			start := i + 1
			if cfg.directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				w := cfg.weight()
				if err := g.AddEdge(i, j, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodComplete, i, j, w, err)
				}
			}
		}

		return nil
	}
}
