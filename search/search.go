package search

import "cmp"

// NotFound is returned by Index and IndexFunc when the key is absent.
const NotFound = -1

// Index returns the position of key in sorted, or NotFound.
// sorted must be in ascending order.
func Index[T cmp.Ordered](sorted []T, key T) int {
	return IndexFunc(sorted, key, cmp.Compare[T])
}

// IndexFunc returns the position of an element e in sorted for which
// compare(e, key) == 0, or NotFound. compare must return a negative number
// when e orders before key, zero when they are equal, and a positive number
// otherwise; sorted must be ascending under it.
func IndexFunc[E, K any](sorted []E, key K, compare func(E, K) int) int {
	lo, hi := 0, len(sorted)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		c := compare(sorted[mid], key)
		switch {
		case c == 0:
			return mid
		case c < 0:
			// look in right half
			lo = mid + 1
		default:
			// look in left half
			hi = mid - 1
		}
	}

	return NotFound
}

// LowerBoundFunc returns the smallest index i such that
// compare(sorted[i], key) >= 0, or len(sorted) if every element orders
// before key. Inserting key at the returned index keeps sorted ascending.
func LowerBoundFunc[E, K any](sorted []E, key K, compare func(E, K) int) int {
	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if compare(sorted[mid], key) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}
