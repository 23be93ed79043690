// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative arc weights.
// It settles vertices in order of increasing distance using a priority frontier,
// relaxing arcs and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with BinaryHeap, O((V + E) · E) worst case with LinearScan.
//   - Each vertex is settled at most once.
//   - Each successful relaxation pushes one entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for the vertex-state table.
//   - O(E) worst-case heap entries under lazy deletion.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all arcs (O(V + E)) to detect negative weights and fail fast.
//   - We treat any arc with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We never record a distance above MaxDistance.
//   - We use lazy deletion: improved distances push a fresh entry and stale ones are skipped on extraction.
package dijkstra

import (
	"fmt"

	"github.com/Canx/algos/graph"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns a *Result holding one VertexState per vertex. Vertices that cannot
// be reached keep Distance == Infinity and Predecessor == NoPredecessor; that
// is valid output, not an error.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must have at least one vertex (ErrEmptyGraph).
//  3. 0 ≤ source < N (ErrInvalidVertex).
//  4. Options must be valid (ErrOptionViolation); a target, if set, must be in range (ErrInvalidVertex).
//  5. No arc in g can have a negative weight (ErrInvalidWeight).
//
// On any error no result is returned. The graph is only read.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with the default BinaryHeap frontier.
//   - Space: O(V + E)
func Dijkstra(g graph.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Validate the graph has vertices at all
	n := g.Order()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	// 3) Validate source index
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d not in [0,%d)", ErrInvalidVertex, source, n)
	}

	// 4) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.Target != noTarget && (cfg.Target < 0 || cfg.Target >= n) {
		return nil, fmt.Errorf("%w: target %d not in [0,%d)", ErrInvalidVertex, cfg.Target, n)
	}

	// 5) Pre-scan all arcs to detect negative weights. Fail fast with ErrInvalidWeight.
	if err := checkWeights(g); err != nil {
		return nil, err
	}

	// 6) Initialize runner and run main loop.
	r := &runner{
		g:        g,
		options:  cfg,
		state:    make([]VertexState, n),
		frontier: newFrontier(cfg.Frontier, n),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{source: source, states: r.state, stats: r.stats, early: r.early}, nil
}

// checkWeights scans every arc once and reports the first negative weight.
func checkWeights(g graph.Graph) error {
	for u := 0; u < g.Order(); u++ {
		for _, a := range g.Arcs(u) {
			if a.Weight < 0 {
				return fmt.Errorf("%w: edge %d→%d weight=%d", ErrInvalidWeight, u, a.To, a.Weight)
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g        graph.Graph   // The input graph; read-only within Dijkstra.
	options  Options       // Configuration options (thresholds, frontier, hooks).
	state    []VertexState // Indexed by vertex: distance, predecessor, settled.
	frontier frontier      // Priority structure with lazy deletion.
	stats    Stats
	early    bool // stopped at Target with the frontier not yet empty
}

// init sets every vertex to (Infinity, NoPredecessor, unsettled), the source
// to distance zero, and pushes (0, source) into the frontier.
func (r *runner) init(source int) {
	for v := range r.state {
		r.state[v] = VertexState{Distance: Infinity, Predecessor: NoPredecessor}
	}
	r.state[source].Distance = 0
	r.push(source, 0)
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the
// entry with the minimum distance and, unless stale, settles its vertex and
// relaxes its outgoing arcs.
//
// Loop termination conditions:
//
//   - The frontier becomes empty (all reachable vertices settled).
//   - The Target vertex has been settled.
//
// Returns the OnSettle error, if any, or an invalid weight caught during relaxation.
func (r *runner) process() error {
	for r.frontier.len() > 0 {
		// 1) Pop the smallest-distance entry.
		e := r.frontier.pop()
		r.stats.Pops++
		u, d := e.vertex, e.dist

		// 2) Skip stale entries: the vertex is already final, or a fresher
		//    entry superseded this one.
		if r.state[u].Settled || d != r.state[u].Distance {
			r.stats.StaleSkips++
			continue
		}

		// 3) Distances above the cap are never recorded; nothing beyond this
		//    entry can be settled either.
		if d > r.options.MaxDistance {
			break
		}

		// 4) Mark u as settled. Its distance d is now final.
		r.state[u].Settled = true
		r.stats.Settled++
		if err := r.options.OnSettle(u, d); err != nil {
			return fmt.Errorf("dijkstra: OnSettle error at %d: %w", u, err)
		}

		// 5) Early exit once the requested target is final.
		if u == r.options.Target {
			r.early = r.frontier.len() > 0
			return nil
		}

		// 6) Relax all outgoing arcs from u.
		if err := r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each arc leaving the settled vertex u (at distance d) and
// improves the recorded distance of unsettled neighbors when strictly shorter.
func (r *runner) relax(u int, d int64) error {
	for _, a := range r.g.Arcs(u) {
		r.stats.Relaxations++
		v, w := a.To, a.Weight

		// Settled neighbors (including u itself on a self-loop) are final.
		if r.state[v].Settled {
			continue
		}

		// Skip arcs marked impassable by InfEdgeThreshold.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		// Safety check: though we pre-scanned for negative weights, double-check nonetheless.
		if w < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%d", ErrInvalidWeight, u, v, w)
		}

		// A sum that would overflow cannot be an improvement over anything finite.
		if w > Infinity-1-d {
			continue
		}
		newDist := d + w

		// Respect the distance cap.
		if newDist > r.options.MaxDistance {
			continue
		}

		// Strict “<”: equal-cost alternatives neither re-push nor change the predecessor.
		if newDist >= r.state[v].Distance {
			continue
		}

		r.state[v].Distance = newDist
		r.state[v].Predecessor = u
		r.push(v, newDist)
	}

	return nil
}

// push inserts a fresh frontier entry. Older entries for the same vertex stay
// where they are and are recognized as stale when extracted.
func (r *runner) push(v int, d int64) {
	r.frontier.push(entry{vertex: v, dist: d})
	r.stats.Pushes++
}
