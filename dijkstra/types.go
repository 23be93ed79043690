// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on integer-indexed weighted graphs.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond it stay unreachable.
//	– InfEdgeThreshold: arcs with weight >= this threshold are treated as impassable.
//	– Frontier:         BinaryHeap (default) or LinearScan.
//	– Target:           stop as soon as this vertex is settled.
//	– OnSettle:         hook called for every settled vertex, in extraction order.
//
// Errors (sentinel):
//
//	– ErrNilGraph               if the provided graph is nil.
//	– ErrEmptyGraph             if the graph has no vertices.
//	– ErrInvalidVertex          if the source (or target) index is out of range.
//	– ErrInvalidWeight          if a negative arc weight is detected.
//	– ErrOptionViolation        if an option was given an invalid value.
//	– ErrBrokenPredecessorChain if path reconstruction detects a corrupted predecessor chain.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyGraph indicates a graph with zero vertices; a source cannot exist.
	ErrEmptyGraph = errors.New("dijkstra: graph has no vertices")

	// ErrInvalidVertex indicates a source or target index outside 0..N-1.
	ErrInvalidVertex = errors.New("dijkstra: vertex index out of range")

	// ErrInvalidWeight indicates that a negative arc weight was detected in the graph.
	// Shortest distances are undefined under negative weights; no result is produced.
	ErrInvalidWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates an Option was given a meaningless value
	// (negative MaxDistance, non-positive InfEdgeThreshold, unknown frontier kind).
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNotFinal indicates a vertex that an early-exit run (WithTarget) did
	// not settle: its recorded distance is only tentative.
	ErrNotFinal = errors.New("dijkstra: vertex not settled before early exit")

	// ErrBrokenPredecessorChain indicates that walking predecessor links did not
	// reach the source within N steps. It signals an internal invariant breach,
	// never an ordinary unreachable target.
	ErrBrokenPredecessorChain = errors.New("dijkstra: predecessor chain does not lead back to the source")
)

const (
	// Infinity is the distance of a vertex with no known path from the source.
	Infinity int64 = math.MaxInt64

	// NoPredecessor marks the source and every vertex not reached.
	NoPredecessor = -1

	// noTarget disables early exit.
	noTarget = -1
)

// FrontierKind selects the priority structure backing the frontier.
type FrontierKind int

const (
	// BinaryHeap orders entries in a container/heap min-heap.
	// Stale entries are left in place and skipped on extraction.
	// Time O((V + E) log V).
	BinaryHeap FrontierKind = iota

	// LinearScan keeps entries in an unsorted list and scans it on every
	// extraction. Stale entries are skipped exactly as with BinaryHeap.
	// Each extraction costs O(P) for P pending entries; meant for small graphs.
	LinearScan
)

// String returns the lowercase name of the frontier kind.
func (k FrontierKind) String() string {
	switch k {
	case BinaryHeap:
		return "heap"
	case LinearScan:
		return "linear"
	default:
		return fmt.Sprintf("FrontierKind(%d)", int(k))
	}
}

// ParseFrontierKind maps "heap" / "linear" to a FrontierKind.
func ParseFrontierKind(s string) (FrontierKind, error) {
	switch s {
	case "heap", "":
		return BinaryHeap, nil
	case "linear":
		return LinearScan, nil
	default:
		return 0, fmt.Errorf("%w: unknown frontier %q", ErrOptionViolation, s)
	}
}

// VertexState is the per-vertex record produced by a run.
//
// Distance    – best known cumulative cost from the source (Infinity if unknown).
// Predecessor – index of the previous vertex on that path (NoPredecessor if none).
// Settled     – true once Distance is proven final.
type VertexState struct {
	Distance    int64
	Predecessor int
	Settled     bool
}

// Stats counts the work done by a single run.
type Stats struct {
	Pushes      int // entries inserted into the frontier
	Pops        int // entries extracted, stale ones included
	StaleSkips  int // extracted entries discarded by lazy deletion
	Relaxations int // arcs examined from settled vertices
	Settled     int // vertices whose distance became final
}

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – cap on explored distances. Must be ≥ 0. Default Infinity (no cap).
// InfEdgeThreshold – arcs with weight ≥ this are impassable. Must be > 0. Default Infinity.
// Frontier         – priority structure. Default BinaryHeap.
// Target           – early-exit vertex; NoPredecessor (-1) disables it.
// OnSettle         – hook invoked once per settled vertex; an error aborts the run.
type Options struct {
	MaxDistance      int64
	InfEdgeThreshold int64
	Frontier         FrontierKind
	Target           int
	OnSettle         func(v int, dist int64) error

	// first invalid option, surfaced by Dijkstra as ErrOptionViolation
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - MaxDistance:      Infinity (explore all reachable vertices).
//   - InfEdgeThreshold: Infinity (no arc is a wall).
//   - Frontier:         BinaryHeap.
//   - Target:           none (run until the frontier is empty).
//   - OnSettle:         no-op.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
		Frontier:         BinaryHeap,
		Target:           noTarget,
		OnSettle:         func(int, int64) error { return nil },
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed max are left unreachable.
// A negative max is recorded and reported as ErrOptionViolation.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.fail(fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, max))
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight at or above which arcs are
// non-traversable. A threshold ≤ 0 is reported as ErrOptionViolation.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.fail(fmt.Errorf("%w: InfEdgeThreshold must be positive (%d)", ErrOptionViolation, threshold))
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithFrontier selects the frontier implementation.
func WithFrontier(kind FrontierKind) Option {
	return func(o *Options) {
		if kind != BinaryHeap && kind != LinearScan {
			o.fail(fmt.Errorf("%w: unknown frontier %s", ErrOptionViolation, kind))
			return
		}
		o.Frontier = kind
	}
}

// WithTarget stops the run as soon as target is settled. Vertices not yet
// settled at that point keep their tentative state in State/States, but the
// Result does not report them as answers: Distance returns Infinity,
// Reachable returns false and PathTo fails with ErrNotFinal. The index is
// validated by Dijkstra (ErrInvalidVertex).
func WithTarget(target int) Option {
	return func(o *Options) {
		o.Target = target
	}
}

// WithOnSettle registers a callback run each time a vertex is settled, in
// non-decreasing order of distance. Returning an error aborts the run.
func WithOnSettle(fn func(v int, dist int64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// fail records the first option error.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
