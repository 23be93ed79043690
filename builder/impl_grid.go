// SPDX-License-Identifier: MIT
// Package: algos/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Cell (r,c) is vertex r*cols + c (row-major order).
//   • In directed graphs, also emits the reverse arc with the same weight.
//
// Determinism:
//   • Stable edge order: for each (r,c) emit Right then Bottom if present.

package builder

import (
	"fmt"

	"github.com/Canx/algos/graph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
// Complexity: O(rows*cols).
func Grid(rows, cols int) Constructor {
	return func(g *graph.AdjacencyList, cfg config) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 2) Make room for every cell.
		if err := g.Grow(rows * cols); err != nil {
			return fmt.Errorf("%s: %w", methodGrid, err)
		}

		// 3) Emit edges: for each (r,c), connect to Right and Bottom neighbors if they exist.
		link := func(u, v int) error {
			w := cfg.weight()
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodGrid, u, v, w, err)
			}
			// Mirror for directed graphs to preserve symmetric neighborhood.
			if cfg.directed {
				if err := g.AddArc(v, u, w); err != nil {
					return fmt.Errorf("%s: AddArc(%d→%d, w=%d): %w", methodGrid, v, u, w, err)
				}
			}
			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := link(u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
