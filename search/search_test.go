package search_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Canx/algos/search"
)

func TestIndex_FoundAndMissing(t *testing.T) {
	arr := []int{1, 5, 35, 112, 258, 324}

	cases := []struct {
		key  int
		want int
	}{
		{1, 0},
		{35, 2},
		{112, 3},
		{324, 5},
		{67, search.NotFound},
		{0, search.NotFound},
		{1000, search.NotFound},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, search.Index(arr, tc.key), "key=%d", tc.key)
	}
}

func TestIndex_EmptyAndSingle(t *testing.T) {
	assert.Equal(t, search.NotFound, search.Index([]int{}, 3))
	assert.Equal(t, search.NotFound, search.Index[int](nil, 3))
	assert.Equal(t, 0, search.Index([]int{3}, 3))
	assert.Equal(t, search.NotFound, search.Index([]int{3}, 4))
}

func TestIndex_Duplicates(t *testing.T) {
	arr := []int{2, 4, 4, 4, 9}
	i := search.Index(arr, 4)
	require.NotEqual(t, search.NotFound, i)
	assert.Equal(t, 4, arr[i])
}

func TestIndex_ExtremeValues(t *testing.T) {
	arr := []int64{math.MinInt64, -1, 0, math.MaxInt64}
	assert.Equal(t, 0, search.Index(arr, math.MinInt64))
	assert.Equal(t, 3, search.Index(arr, math.MaxInt64))
}

func TestIndex_Strings(t *testing.T) {
	arr := []string{"alpha", "bravo", "charlie"}
	assert.Equal(t, 1, search.Index(arr, "bravo"))
	assert.Equal(t, search.NotFound, search.Index(arr, "delta"))
}

type pair struct {
	key, val int
}

func byKey(p pair, k int) int { return p.key - k }

func TestIndexFunc(t *testing.T) {
	rows := []pair{{1, 10}, {3, 30}, {7, 70}}
	i := search.IndexFunc(rows, 7, byKey)
	require.Equal(t, 2, i)
	assert.Equal(t, 70, rows[i].val)
	assert.Equal(t, search.NotFound, search.IndexFunc(rows, 4, byKey))
}

func TestLowerBoundFunc(t *testing.T) {
	rows := []pair{{1, 0}, {3, 0}, {3, 0}, {7, 0}}
	assert.Equal(t, 0, search.LowerBoundFunc(rows, 0, byKey))
	assert.Equal(t, 0, search.LowerBoundFunc(rows, 1, byKey))
	assert.Equal(t, 1, search.LowerBoundFunc(rows, 2, byKey))
	assert.Equal(t, 1, search.LowerBoundFunc(rows, 3, byKey))
	assert.Equal(t, 3, search.LowerBoundFunc(rows, 5, byKey))
	assert.Equal(t, 4, search.LowerBoundFunc(rows, 8, byKey))
	assert.Equal(t, 0, search.LowerBoundFunc([]pair(nil), 8, byKey))
}

// TestIndex_AgreesWithSortPackage cross-checks against sort.SearchInts on
// every present and absent key in a small range.
func TestIndex_AgreesWithSortPackage(t *testing.T) {
	arr := []int{-7, -3, 0, 2, 5, 8, 13, 21}
	for key := -10; key <= 25; key++ {
		i := sort.SearchInts(arr, key)
		want := search.NotFound
		if i < len(arr) && arr[i] == key {
			want = i
		}
		assert.Equal(t, want, search.Index(arr, key), "key=%d", key)
	}
}
