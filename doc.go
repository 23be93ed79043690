// Package algos is a small, dependency-light toolkit for single-source
// shortest paths on integer-indexed weighted graphs, plus the supporting
// pieces needed to build, search, check and draw them.
//
// 🚀 What is in algos?
//
//	• Graph representations: dense adjacency matrix & sorted adjacency list
//	• Shortest paths: Dijkstra with lazy deletion (binary heap or linear scan)
//	• Path reconstruction: predecessor walk with a cycle guard
//	• Traversals: BFS (reachability), DFS (exhaustive simple paths)
//	• Builders: path, cycle, complete, grid & seeded random graphs
//	• Binary search over sorted slices
//	• Rendering: Graphviz DOT and SVG of the shortest-path tree
//
// ✨ Guarantees
//
//   - Negative weights are rejected before any work is done; no partial table
//   - Unreachable vertices are a normal result, never an error
//   - Distances saturate instead of overflowing
//   - Graphs are only read during a run; results are immutable
//
// Layout:
//
//	graph/   : Graph interface, AdjacencyMatrix, AdjacencyList, PathCost
//	dijkstra/: the shortest-path engine and Result.PathTo
//	bfs/     : breadth-first reachability and hop depths
//	dfs/     : simple-path enumeration, brute-force minimum costs
//	builder/ : deterministic graph constructors and the classic 9-vertex network
//	search/  : binary search (Index, IndexFunc, LowerBoundFunc)
//	render/  : DOT/SVG diagrams
//	cmd/algos: the command-line front end
//
// Quick example (the classic network, 0 → 4):
//
//	res, _ := dijkstra.Dijkstra(builder.Classic(), 0)
//	path, _, _ := res.PathTo(4) // [0 7 6 5 4], distance 21
//
//	go install github.com/Canx/algos/cmd/algos@latest
package algos
