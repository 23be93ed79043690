package graph

import "fmt"

// PathCost sums the arc weights along path, a sequence of vertex indices.
// A single-vertex path costs 0. It fails with ErrEmptyPath, ErrVertexOutOfRange,
// or ErrNoArc when some hop path[i]→path[i+1] is not an arc of g.
func PathCost(g Graph, path []int) (int64, error) {
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}
	n := g.Order()
	for _, v := range path {
		if !inRange(v, n) {
			return 0, fmt.Errorf("%w: vertex %d in graph of order %d", ErrVertexOutOfRange, v, n)
		}
	}

	var total int64
	for i := 0; i+1 < len(path); i++ {
		w, ok := g.Weight(path[i], path[i+1])
		if !ok {
			return 0, fmt.Errorf("%w: %d→%d", ErrNoArc, path[i], path[i+1])
		}
		total += w
	}

	return total, nil
}
