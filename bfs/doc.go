// Package bfs provides breadth-first search over a graph.Graph, returning
// hop-count depths, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a BFSResult containing:
//   - Order:  visit sequence
//   - Depth:  per-vertex hop count from start (-1 if not reached)
//   - Parent: per-vertex predecessor in the BFS tree (-1 for start / not reached)
//   - Hooks: OnVisit (may abort with an error).
//   - Honors MaxDepth (d>0) or explicit “no limit” (d==0).
//   - Arcs weighing at least InfEdgeThreshold are walls, exactly as in package dijkstra.
//
// Why
//
//   - Reachability ignores weights: a vertex is reachable by Dijkstra iff BFS
//     (with the same wall threshold) reaches it. Tests use that to cross-check
//     unreachable vertices independently of the priority frontier.
//
// Determinism
//
//	Arcs are visited in the order graph.Graph.Arcs returns them (ascending
//	target index for both built-in representations), so the visit sequence
//	is reproducible.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
