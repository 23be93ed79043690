// Package graph provides the static, integer-indexed weighted graphs read by
// the shortest-path engine.
//
// Vertices are addressed by dense indices 0..N-1. An arc u→v carries an int64
// weight; the absence of an arc is reported explicitly rather than encoded as
// a magic weight.
//
// Two representations satisfy the Graph interface:
//
//   - AdjacencyMatrix: dense N×N cells, O(N²) space, O(1) arc lookup. A cell
//     equal to the matrix's absent marker (0 by default) means "no arc";
//     diagonal cells are ignored.
//   - AdjacencyList: one row of arcs per vertex kept sorted by target index,
//     O(V+E) space, O(log deg) arc lookup via package search. Parallel arcs
//     collapse to the lightest one.
//
// Graph values may hold negative weights; deciding whether they are allowed
// is the job of the algorithm consuming the graph.
//
// Thread safety:
//
//   - Read methods (Order, Arcs, Weight) are safe for concurrent use as long
//     as nobody mutates the graph.
//   - AdjacencyList mutators (AddArc, AddEdge, AddVertex, Grow) are not
//     synchronized and must not run while an algorithm reads the graph.
package graph
