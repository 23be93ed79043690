// SPDX-License-Identifier: MIT
// Package: algos/builder
//
// impl_cycle.go: Cycle(n): the ring 0–1–…–(n-1)–0.

package builder

import (
	"fmt"

	"github.com/Canx/algos/graph"
)

const (
	methodCycle  = "Cycle"
	minCycleSize = 3
)

// Cycle returns a Constructor for the simple cycle C_n (n ≥ 3).
// Edges are emitted as i→(i+1) mod n for i ascending.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *graph.AdjacencyList, cfg config) error {
		if n < minCycleSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleSize, ErrTooFewVertices)
		}
		if err := g.Grow(n); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			w := cfg.weight()
			if err := g.AddEdge(i, j, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodCycle, i, j, w, err)
			}
		}

		return nil
	}
}
