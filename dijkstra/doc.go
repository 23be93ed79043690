// Package dijkstra provides an implementation of Dijkstra's shortest-path
// algorithm on integer-indexed graphs with non-negative arc weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices, settling vertices in non-decreasing order of distance.
//   - The result is a table of VertexState records (Distance, Predecessor,
//     Settled), one per vertex, addressed by the same index as the graph.
//   - Result.PathTo walks predecessor links back from a target to rebuild the path.
//
// Key features:
//
//   - Functional options fine-tune behavior without changing the API signature.
//   - MaxDistance: never records a distance above the cap.
//   - InfEdgeThreshold: treats any arc with weight ≥ threshold as impassable.
//   - Frontier: BinaryHeap (default) or LinearScan for small graphs.
//   - Target: stop as soon as one vertex is final.
//   - OnSettle: observe every settled vertex in extraction order.
//
// Frontier policy (lazy deletion):
//
//   - When a vertex's distance improves while an older entry for it is still
//     queued, a fresh entry is pushed and the old one is left where it is.
//   - An extracted entry whose vertex is already settled, or whose distance no
//     longer matches the recorded one, is stale and skipped.
//   - Entries are never removed from the middle of the heap.
//   - Ties in distance break arbitrarily; among equally short paths the chosen
//     predecessor is unspecified.
//
// Unreachable vertices:
//
//   - Keep Distance == Infinity and Predecessor == NoPredecessor. That is valid
//     output; PathTo reports them with reachable == false and a nil error.
//   - After a WithTarget early exit (StoppedEarly), unsettled vertices are not
//     answers either: Distance reports Infinity, Reachable reports false and
//     PathTo fails with ErrNotFinal. State still exposes the tentative record.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) with BinaryHeap; O((V + E) · E) worst case with LinearScan.
//   - Space: O(V + E): O(V) state plus up to O(E) heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrEmptyGraph: no graph to search.
//   - ErrInvalidVertex: source, target, or PathTo argument out of range.
//   - ErrInvalidWeight: a negative arc weight. Detected by an O(V + E) scan of
//     every arc before the loop starts; no partial result is returned.
//   - ErrOptionViolation: invalid option value.
//   - ErrNotFinal: PathTo asked for a vertex an early-exit run left unsettled.
//   - ErrBrokenPredecessorChain: PathTo found a chain that does not end at the
//     source within N steps. This is an internal invariant failure, never a
//     normal outcome.
//
// Thread safety:
//
//   - A run owns its state exclusively and is strictly sequential; there is no
//     cancellation mid-run because partial distances are not answers.
//   - The graph must not be mutated while Dijkstra runs.
//   - A returned *Result is immutable and may be shared freely.
//
// See also:
//
//   - graph.AdjacencyMatrix, graph.AdjacencyList: the supported representations.
//   - graph.PathCost: sum the weights along a reconstructed path.
package dijkstra
