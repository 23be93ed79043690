package search_test

import (
	"fmt"

	"github.com/Canx/algos/search"
)

// ExampleIndex looks up several keys in a sorted array.
func ExampleIndex() {
	arr := []int{1, 5, 35, 112, 258, 324}
	for _, key := range []int{1, 35, 112, 324, 67} {
		if pos := search.Index(arr, key); pos >= 0 {
			fmt.Printf("%d-> found at index : %d\n", key, pos)
		} else {
			fmt.Printf("%d-> not found\n", key)
		}
	}
	// Output:
	// 1-> found at index : 0
	// 35-> found at index : 2
	// 112-> found at index : 3
	// 324-> found at index : 5
	// 67-> not found
}
