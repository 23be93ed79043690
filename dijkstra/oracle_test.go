package dijkstra_test

import (
	"math"

	"github.com/Canx/algos/graph"
)

// floydWarshall returns the all-pairs distance table of g (non-negative
// weights only): row i holds the distances from i, math.MaxInt64 means no
// path. Loop order is fixed (k → i → j) and relaxation is strict.
// Complexity: O(n³) time, O(n²) space.
func floydWarshall(g graph.Graph) [][]int64 {
	const inf = math.MaxInt64
	n := g.Order()

	// 1) Flat row-major buffer: diagonal 0, everything else inf, then arcs.
	data := make([]int64, n*n)
	for i := range data {
		data[i] = inf
	}
	for u := 0; u < n; u++ {
		data[u*n+u] = 0
		for _, a := range g.Arcs(u) {
			if a.To != u && a.Weight < data[u*n+a.To] {
				data[u*n+a.To] = a.Weight
			}
		}
	}

	// 2) Closure through each intermediate vertex k.
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := data[i*n+k]
			if ik == inf {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := data[baseK+j]
				if kj == inf || kj > inf-1-ik {
					continue
				}
				if cand := ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	// 3) Split into rows.
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = data[i*n : (i+1)*n]
	}

	return rows
}
