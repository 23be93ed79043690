package graph

import "fmt"

// DefaultAbsent is the cell value meaning "no arc" unless WithAbsent says otherwise.
const DefaultAbsent int64 = 0

// AdjacencyMatrix is a dense graph: cells[u][v] is the weight of arc u→v,
// or the absent marker when there is none. Diagonal cells are ignored.
type AdjacencyMatrix struct {
	cells  [][]int64
	absent int64
}

// MatrixOption configures NewAdjacencyMatrix.
type MatrixOption func(*AdjacencyMatrix)

// WithAbsent sets the cell value that denotes "no arc". Use it when zero-weight
// arcs are meaningful, e.g. WithAbsent(math.MaxInt64).
func WithAbsent(marker int64) MatrixOption {
	return func(m *AdjacencyMatrix) {
		m.absent = marker
	}
}

// NewAdjacencyMatrix builds a matrix graph from rows. The rows are copied, so
// later changes to the argument do not affect the graph.
// Returns ErrNotSquare unless every row has len(rows) cells.
//
// Complexity: O(N²) time and space.
func NewAdjacencyMatrix(rows [][]int64, opts ...MatrixOption) (*AdjacencyMatrix, error) {
	n := len(rows)
	m := &AdjacencyMatrix{
		cells:  make([][]int64, n),
		absent: DefaultAbsent,
	}
	for _, opt := range opts {
		opt(m)
	}

	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, i, len(row), n)
		}
		m.cells[i] = append(make([]int64, 0, n), row...)
	}

	return m, nil
}

// Order returns the number of vertices.
func (m *AdjacencyMatrix) Order() int { return len(m.cells) }

// Absent returns the marker value meaning "no arc".
func (m *AdjacencyMatrix) Absent() int64 { return m.absent }

// Arcs materializes the outgoing arcs of u in ascending target order.
//
// Complexity: O(N).
func (m *AdjacencyMatrix) Arcs(u int) []Arc {
	if !inRange(u, len(m.cells)) {
		return nil
	}
	var arcs []Arc
	for v, w := range m.cells[u] {
		if v == u || w == m.absent {
			continue
		}
		arcs = append(arcs, Arc{To: v, Weight: w})
	}

	return arcs
}

// Weight returns the weight of u→v. It reports false for out-of-range
// indices, diagonal cells and absent cells.
//
// Complexity: O(1).
func (m *AdjacencyMatrix) Weight(u, v int) (int64, bool) {
	n := len(m.cells)
	if !inRange(u, n) || !inRange(v, n) || u == v {
		return 0, false
	}
	w := m.cells[u][v]
	if w == m.absent {
		return 0, false
	}

	return w, true
}
