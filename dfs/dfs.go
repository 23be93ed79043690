// Package dfs implements depth-first simple-path enumeration on graph.Graph.
package dfs

import (
	"fmt"
	"math"

	"github.com/Canx/algos/graph"
)

// pathWalker encapsulates state during enumeration.
type pathWalker struct {
	graph  graph.Graph
	opts   DFSOptions
	onPath []bool // vertices currently on the DFS stack
	path   []int
	visit  func(path []int, cost int64) bool
	halted bool
}

// SimplePaths calls visit once for every simple path that starts at source,
// including the trivial path [source] with cost 0. The path slice is reused
// between calls and must be copied if retained. Returning false from visit
// stops the enumeration early without error.
func SimplePaths(g graph.Graph, source int, visit func(path []int, cost int64) bool, opts ...Option) error {
	// 1. Validate input graph
	if g == nil {
		return ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Validate bounds
	n := g.Order()
	if source < 0 || source >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, source, n)
	}
	if n > o.MaxOrder {
		return fmt.Errorf("%w: order %d > %d", ErrGraphTooLarge, n, o.MaxOrder)
	}

	w := &pathWalker{
		graph:  g,
		opts:   o,
		onPath: make([]bool, n),
		path:   make([]int, 0, n),
		visit:  visit,
	}

	return w.extend(source, 0)
}

// extend pushes v onto the current path, reports it, and recurses into every
// neighbor not already on the path.
func (w *pathWalker) extend(v int, cost int64) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Push and report
	w.onPath[v] = true
	w.path = append(w.path, v)
	if !w.visit(w.path, cost) {
		w.halted = true
	}

	// 3. Recurse into neighbors off the current path
	for _, a := range w.graph.Arcs(v) {
		if w.halted {
			break
		}
		if w.onPath[a.To] {
			continue
		}
		if err := w.extend(a.To, saturatingAdd(cost, a.Weight)); err != nil {
			return err
		}
	}

	// 4. Pop
	w.path = w.path[:len(w.path)-1]
	w.onPath[v] = false

	return nil
}

// MinCosts returns, for every vertex, the minimum cost over all simple paths
// from source, or math.MaxInt64 if no path exists.
func MinCosts(g graph.Graph, source int, opts ...Option) ([]int64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	best := make([]int64, g.Order())
	for i := range best {
		best[i] = math.MaxInt64
	}

	err := SimplePaths(g, source, func(path []int, cost int64) bool {
		end := path[len(path)-1]
		if cost < best[end] {
			best[end] = cost
		}
		return true
	}, opts...)
	if err != nil {
		return nil, err
	}

	return best, nil
}

// saturatingAdd adds b to a, clamping at the int64 limits.
func saturatingAdd(a, b int64) int64 {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return math.MaxInt64
	case b < 0 && a < math.MinInt64-b:
		return math.MinInt64
	default:
		return a + b
	}
}
