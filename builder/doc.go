// Package builder provides deterministic constructors for weighted test and
// demo graphs over graph.AdjacencyList.
//
// What:
//
//   - Build(bopts, cons...) creates an empty AdjacencyList, resolves a
//     configuration from functional options and applies constructors in order.
//   - Topologies: Path, Cycle, Complete, Grid, RandomSparse.
//   - Classic returns the 9-vertex reference network as an AdjacencyMatrix.
//
// Why:
//
//   - Property tests need many small, reproducible graphs with known shape.
//   - Benchmarks need large sparse and dense graphs with stable contents.
//
// Determinism:
//
//   - Same options, same seed and same constructor order ⇒ identical graphs.
//   - Vertices are indices; constructors grow the graph to the size they need,
//     so several constructors may overlay arcs on the same vertex range.
//
// Errors:
//
//   - ErrTooFewVertices      – size parameter below the constructor minimum.
//   - ErrInvalidProbability  – p outside [0,1].
//   - ErrNeedRandSource      – stochastic constructor without WithSeed/WithRand.
//   - ErrNilConstructor      – nil Constructor passed to Build.
//
// Option constructors (WithX) panic on meaningless input; constructors never panic.
package builder
