package dijkstra

import "fmt"

// Result is the frozen outcome of one Dijkstra run. It is read-only and safe
// to share between goroutines.
type Result struct {
	source int
	states []VertexState
	stats  Stats
	early  bool
}

// Source returns the vertex the run started from.
func (r *Result) Source() int { return r.source }

// Order returns the number of vertices covered by the result.
func (r *Result) Order() int { return len(r.states) }

// Stats returns the work counters of the run.
func (r *Result) Stats() Stats { return r.stats }

// States returns a copy of the raw per-vertex table, tentative values included.
func (r *Result) States() []VertexState {
	out := make([]VertexState, len(r.states))
	copy(out, r.states)

	return out
}

// StoppedEarly reports whether the run ended at its Target before the
// frontier was empty. Only settled vertices carry final distances then.
func (r *Result) StoppedEarly() bool { return r.early }

// State returns the raw record of v, tentative values included. It panics if
// v is out of range, like a slice index.
func (r *Result) State(v int) VertexState { return r.states[v] }

// Distance returns the shortest distance from the source to v, or Infinity.
// Out-of-range vertices, and vertices an early-exit run left unsettled,
// report Infinity.
func (r *Result) Distance(v int) int64 {
	if !r.valid(v) || !r.final(v) {
		return Infinity
	}

	return r.states[v].Distance
}

// Predecessor returns the vertex before v on its shortest path, or
// NoPredecessor. Like Distance, it hides tentative links of an early-exit run.
func (r *Result) Predecessor(v int) int {
	if !r.valid(v) || !r.final(v) {
		return NoPredecessor
	}

	return r.states[v].Predecessor
}

// Settled reports whether v's distance is proven final.
func (r *Result) Settled(v int) bool {
	return r.valid(v) && r.states[v].Settled
}

// Reachable reports whether a shortest path from the source to v is known.
func (r *Result) Reachable(v int) bool {
	return r.Distance(v) != Infinity
}

// PathTo reconstructs the path from the source to target by walking
// predecessor links back from target and reversing them.
//
// Returns:
//
//   - (path, true, nil)  with path[0] == Source() and path[len-1] == target.
//   - (nil, false, nil)  when target is unreachable; this is not an error.
//   - ErrInvalidVertex   when target is out of range.
//   - ErrNotFinal        when an early-exit run did not settle target; its
//     tentative path may not be the shortest.
//   - ErrBrokenPredecessorChain when the walk exceeds N steps or ends
//     anywhere but the source (internal invariant violation).
//
// Complexity: O(path length).
func (r *Result) PathTo(target int) ([]int, bool, error) {
	if !r.valid(target) {
		return nil, false, fmt.Errorf("%w: target %d not in [0,%d)", ErrInvalidVertex, target, len(r.states))
	}
	if r.states[target].Distance == Infinity {
		return nil, false, nil
	}
	if !r.final(target) {
		return nil, false, fmt.Errorf("%w: target %d", ErrNotFinal, target)
	}

	n := len(r.states)
	path := make([]int, 0, 8)
	for cur := target; cur != NoPredecessor; cur = r.states[cur].Predecessor {
		// A simple path visits at most n vertices.
		if len(path) == n {
			return nil, false, fmt.Errorf("%w: walk from %d exceeded %d steps", ErrBrokenPredecessorChain, target, n)
		}
		path = append(path, cur)
	}
	if last := path[len(path)-1]; last != r.source {
		return nil, false, fmt.Errorf("%w: walk from %d ended at %d", ErrBrokenPredecessorChain, target, last)
	}

	// reverse to get source → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true, nil
}

func (r *Result) valid(v int) bool { return v >= 0 && v < len(r.states) }

// final reports whether v's record is an answer rather than a tentative value.
func (r *Result) final(v int) bool { return !r.early || r.states[v].Settled }
