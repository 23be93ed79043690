package graph

import (
	"fmt"

	"github.com/Canx/algos/search"
)

// AdjacencyList is a sparse graph. rows[u] holds the arcs leaving u sorted by
// target index, with at most one arc per target.
type AdjacencyList struct {
	rows     [][]Arc
	directed bool
	arcs     int
}

// ListOption configures NewAdjacencyList.
type ListOption func(*AdjacencyList)

// WithDirected makes AddEdge insert a single arc u→v instead of the pair
// u→v, v→u.
func WithDirected() ListOption {
	return func(g *AdjacencyList) {
		g.directed = true
	}
}

// NewAdjacencyList returns a graph with n isolated vertices.
// A negative n is treated as zero.
func NewAdjacencyList(n int, opts ...ListOption) *AdjacencyList {
	if n < 0 {
		n = 0
	}
	g := &AdjacencyList{rows: make([][]Arc, n)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Order returns the number of vertices.
func (g *AdjacencyList) Order() int { return len(g.rows) }

// Size returns the number of stored arcs. An undirected edge counts twice
// unless it is a self-loop.
func (g *AdjacencyList) Size() int { return g.arcs }

// Directed reports whether AddEdge inserts one-way arcs.
func (g *AdjacencyList) Directed() bool { return g.directed }

// AddVertex appends a new isolated vertex and returns its index.
func (g *AdjacencyList) AddVertex() int {
	g.rows = append(g.rows, nil)
	return len(g.rows) - 1
}

// Grow ensures the graph has at least n vertices. Existing vertices and arcs
// are untouched.
func (g *AdjacencyList) Grow(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: n=%d", ErrNegativeOrder, n)
	}
	for len(g.rows) < n {
		g.rows = append(g.rows, nil)
	}

	return nil
}

// AddArc inserts the one-way arc u→v with weight w regardless of the graph's
// directedness. If u→v already exists, the lighter of the two weights is kept.
//
// Complexity: O(deg(u)) for the sorted insert.
func (g *AdjacencyList) AddArc(u, v int, w int64) error {
	n := len(g.rows)
	if !inRange(u, n) || !inRange(v, n) {
		return fmt.Errorf("%w: arc %d→%d in graph of order %d", ErrVertexOutOfRange, u, v, n)
	}

	row := g.rows[u]
	i := search.LowerBoundFunc(row, v, compareArcTarget)
	if i < len(row) && row[i].To == v {
		if w < row[i].Weight {
			row[i].Weight = w
		}
		return nil
	}

	row = append(row, Arc{})
	copy(row[i+1:], row[i:])
	row[i] = Arc{To: v, Weight: w}
	g.rows[u] = row
	g.arcs++

	return nil
}

// AddEdge connects u and v with weight w: one arc for directed graphs, both
// directions otherwise. A self-loop is stored once.
func (g *AdjacencyList) AddEdge(u, v int, w int64) error {
	if err := g.AddArc(u, v, w); err != nil {
		return err
	}
	if g.directed || u == v {
		return nil
	}

	return g.AddArc(v, u, w)
}

// Arcs returns the outgoing arcs of u sorted by target. The slice aliases
// internal storage and must not be modified.
//
// Complexity: O(1).
func (g *AdjacencyList) Arcs(u int) []Arc {
	if !inRange(u, len(g.rows)) {
		return nil
	}

	return g.rows[u]
}

// Weight returns the weight of u→v using binary search over u's row.
//
// Complexity: O(log deg(u)).
func (g *AdjacencyList) Weight(u, v int) (int64, bool) {
	if !inRange(u, len(g.rows)) {
		return 0, false
	}
	row := g.rows[u]
	i := search.IndexFunc(row, v, compareArcTarget)
	if i == search.NotFound {
		return 0, false
	}

	return row[i].Weight, true
}

// compareArcTarget orders arcs by target index against a vertex key.
func compareArcTarget(a Arc, v int) int {
	switch {
	case a.To < v:
		return -1
	case a.To > v:
		return 1
	default:
		return 0
	}
}
