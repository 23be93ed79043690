// Package search provides binary search over sorted slices.
//
// Overview:
//
//   - Index locates a key in a slice sorted in ascending order and returns its
//     position, or NotFound (-1) when the key is absent.
//   - IndexFunc does the same for slices of arbitrary elements ordered by a
//     caller-supplied three-way comparison against a key.
//   - LowerBoundFunc returns the insertion point: the first position whose
//     element is not less than the key.
//
// Contract:
//
//   - The input must already be sorted ascending under the comparison used.
//     On unsorted input the result is undefined (but never panics).
//   - With duplicate elements there is no guarantee which matching index is
//     returned by Index/IndexFunc.
//   - The midpoint is computed as lo + (hi-lo)/2, which cannot overflow.
//
// Complexity:
//
//   - Time:  O(log n) comparisons.
//   - Space: O(1).
//
// The graph package uses IndexFunc and LowerBoundFunc to keep adjacency rows
// sorted by target vertex and to answer arc-weight lookups in O(log deg).
package search
