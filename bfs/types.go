// Package bfs provides tunable options and error definitions
// for breadth-first search over a graph.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfRange is returned when the start index is not a vertex.
	ErrStartOutOfRange = errors.New("bfs: start vertex out of range")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a vertex the search did not reach.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// InfEdgeThreshold: arcs with weight ≥ threshold are not followed.
	InfEdgeThreshold int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no walls (InfEdgeThreshold == math.MaxInt64)
//   - no-op OnVisit.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:              context.Background(),
		OnVisit:          func(int, int) error { return nil },
		MaxDepth:         0,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithInfEdgeThreshold treats arcs with weight ≥ threshold as absent.
// A threshold ≤ 0 is an ErrOptionViolation.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *BFSOptions) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%d)", ErrOptionViolation, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order:  vertices visited, in visit sequence.
//   - Depth:  Depth[v] is the hop count from the start, or -1.
//   - Parent: Parent[v] is v's predecessor in the BFS tree, or -1.
type BFSResult struct {
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether v was visited.
func (r *BFSResult) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}

// PathTo reconstructs the fewest-hops path from the start vertex to dest.
// Returns ErrNotReached if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}
	// build reversed path
	path := []int{}
	for cur := dest; cur >= 0; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
