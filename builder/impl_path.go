// SPDX-License-Identifier: MIT
// Package: algos/builder
//
// impl_path.go: Path(n): vertices 0..n-1 joined as 0–1–…–(n-1).

package builder

import (
	"fmt"

	"github.com/Canx/algos/graph"
)

const (
	methodPath  = "Path"
	minPathSize = 1
)

// Path returns a Constructor for the simple path P_n (n ≥ 1).
// Edges are emitted in order i→i+1; weights come from cfg in that order.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *graph.AdjacencyList, cfg config) error {
		if n < minPathSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathSize, ErrTooFewVertices)
		}
		if err := g.Grow(n); err != nil {
			return fmt.Errorf("%s: %w", methodPath, err)
		}
		for i := 0; i+1 < n; i++ {
			w := cfg.weight()
			if err := g.AddEdge(i, i+1, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodPath, i, i+1, w, err)
			}
		}

		return nil
	}
}
