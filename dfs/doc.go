// Package dfs enumerates simple paths by depth-first search over a graph.Graph.
//
// Key features:
//   - SimplePaths(g, source, visit, opts...): calls visit for every simple path
//     starting at source (the single-vertex path included), with its cost.
//   - MinCosts(g, source, opts...): brute-force minimum cost over all simple
//     paths to each vertex; an oracle for shortest-path algorithms on small graphs.
//   - Cancellation via context.Context; enumeration refuses graphs larger
//     than MaxOrder.
//
// Complexity:
//
//   - Time:   O(number of simple paths × path length); exponential in V for dense graphs.
//   - Memory: O(V) for the recursion stack and the on-path bitmap.
//
// Errors:
//
//   - ErrGraphNil           if g is nil.
//   - ErrStartOutOfRange    if source is not a vertex.
//   - ErrGraphTooLarge      if g.Order() exceeds MaxOrder.
//   - context.Canceled      if ctx is done.
package dfs
