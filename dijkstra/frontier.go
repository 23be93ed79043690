package dijkstra

import "container/heap"

// entry is a candidate (distance, vertex) pair held by the frontier.
type entry struct {
	vertex int
	dist   int64
}

// frontier is the priority-ordered working set of candidate entries.
// pop must return an entry of minimum dist; ties break arbitrarily.
type frontier interface {
	push(e entry)
	pop() entry
	len() int
}

// newFrontier returns the frontier implementation selected by kind for a
// graph of n vertices.
func newFrontier(kind FrontierKind, n int) frontier {
	if kind == LinearScan {
		return newLinearFrontier(n)
	}

	return &heapFrontier{pq: make(entryPQ, 0, n)}
}

// heapFrontier is a binary min-heap of entries. Entries are never removed
// from the middle; superseded ones surface eventually and are skipped by the
// caller.
type heapFrontier struct {
	pq entryPQ
}

func (f *heapFrontier) push(e entry) { heap.Push(&f.pq, e) }
func (f *heapFrontier) pop() entry   { return heap.Pop(&f.pq).(entry) }
func (f *heapFrontier) len() int     { return f.pq.Len() }

// entryPQ is a min-heap (priority queue) of entries, ordered by dist ascending.
type entryPQ []entry

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq entryPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type entry.
func (pq *entryPQ) Push(x any) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element.
// Called by heap.Pop after it moved the minimum to the end.
func (pq *entryPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// linearFrontier is an unordered list of entries. Like the heap it keeps
// superseded entries for the same vertex; the caller skips them on
// extraction. pop scans the whole list.
type linearFrontier struct {
	items []entry
}

func newLinearFrontier(n int) *linearFrontier {
	return &linearFrontier{items: make([]entry, 0, n)}
}

func (f *linearFrontier) push(e entry) { f.items = append(f.items, e) }

// pop removes and returns an entry of minimum dist, lowest vertex first among
// equals. It must only be called when len() > 0.
func (f *linearFrontier) pop() entry {
	best := 0
	for i, e := range f.items {
		b := f.items[best]
		if e.dist < b.dist || (e.dist == b.dist && e.vertex < b.vertex) {
			best = i
		}
	}
	e := f.items[best]
	last := len(f.items) - 1
	f.items[best] = f.items[last]
	f.items = f.items[:last]

	return e
}

func (f *linearFrontier) len() int { return len(f.items) }
