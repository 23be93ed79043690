package graph

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrVertexOutOfRange indicates a vertex index outside 0..Order()-1.
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrNotSquare indicates matrix rows of unequal length or a row count
	// different from the column count.
	ErrNotSquare = errors.New("graph: adjacency matrix is not square")

	// ErrNegativeOrder indicates a negative vertex count.
	ErrNegativeOrder = errors.New("graph: vertex count must be non-negative")

	// ErrNoArc indicates two consecutive path vertices with no arc between them.
	ErrNoArc = errors.New("graph: no arc between consecutive path vertices")

	// ErrEmptyPath indicates an empty vertex sequence was given where a path
	// of at least one vertex is required.
	ErrEmptyPath = errors.New("graph: path is empty")
)

// Arc is a weighted, directed connection to vertex To.
type Arc struct {
	To     int   // target vertex index
	Weight int64 // cost of traversing the arc
}

// Graph is the read-only view algorithms consume.
//
// Implementations must return the same answers for the whole duration of an
// algorithm run.
type Graph interface {
	// Order returns the number of vertices N; vertices are 0..N-1.
	Order() int

	// Arcs returns the outgoing arcs of u. The slice must be treated as
	// read-only. For an out-of-range u it returns nil.
	Arcs(u int) []Arc

	// Weight returns the weight of arc u→v and whether such an arc exists.
	Weight(u, v int) (int64, bool)
}

// inRange reports whether v is a valid vertex index for a graph of order n.
func inRange(v, n int) bool { return v >= 0 && v < n }
