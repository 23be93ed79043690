package graph_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Canx/algos/graph"
)

func TestAdjacencyList_UndirectedEdgeStoresBothArcs(t *testing.T) {
	g := graph.NewAdjacencyList(3)
	require.NoError(t, g.AddEdge(0, 2, 7))

	assert.False(t, g.Directed())
	assert.Equal(t, 2, g.Size())
	w, ok := g.Weight(2, 0)
	require.True(t, ok)
	assert.Equal(t, int64(7), w)
	assert.Empty(t, g.Arcs(1))
}

func TestAdjacencyList_DirectedEdgeIsOneWay(t *testing.T) {
	g := graph.NewAdjacencyList(2, graph.WithDirected())
	require.NoError(t, g.AddEdge(0, 1, 3))

	assert.True(t, g.Directed())
	assert.Equal(t, 1, g.Size())
	_, ok := g.Weight(1, 0)
	assert.False(t, ok)
}

func TestAdjacencyList_RowsStaySorted(t *testing.T) {
	g := graph.NewAdjacencyList(6, graph.WithDirected())
	for _, v := range []int{4, 1, 5, 2, 3} {
		require.NoError(t, g.AddArc(0, v, int64(v*10)))
	}

	want := []graph.Arc{
		{To: 1, Weight: 10},
		{To: 2, Weight: 20},
		{To: 3, Weight: 30},
		{To: 4, Weight: 40},
		{To: 5, Weight: 50},
	}
	if diff := cmp.Diff(want, g.Arcs(0)); diff != "" {
		t.Errorf("Arcs(0) mismatch (-want +got):\n%s", diff)
	}

	for _, a := range want {
		w, ok := g.Weight(0, a.To)
		assert.True(t, ok)
		assert.Equal(t, a.Weight, w)
	}
	_, ok := g.Weight(0, 0)
	assert.False(t, ok)
}

func TestAdjacencyList_ParallelArcsKeepLightest(t *testing.T) {
	g := graph.NewAdjacencyList(2, graph.WithDirected())
	require.NoError(t, g.AddArc(0, 1, 9))
	require.NoError(t, g.AddArc(0, 1, 4))
	require.NoError(t, g.AddArc(0, 1, 6))

	assert.Equal(t, 1, g.Size())
	w, _ := g.Weight(0, 1)
	assert.Equal(t, int64(4), w)
}

func TestAdjacencyList_SelfLoopStoredOnce(t *testing.T) {
	g := graph.NewAdjacencyList(1)
	require.NoError(t, g.AddEdge(0, 0, 2))
	assert.Equal(t, 1, g.Size())
}

func TestAdjacencyList_OutOfRange(t *testing.T) {
	g := graph.NewAdjacencyList(2)
	assert.ErrorIs(t, g.AddArc(0, 2, 1), graph.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(-1, 0, 1), graph.ErrVertexOutOfRange)
	assert.Nil(t, g.Arcs(5))
	_, ok := g.Weight(7, 0)
	assert.False(t, ok)
}

func TestAdjacencyList_GrowAndAddVertex(t *testing.T) {
	g := graph.NewAdjacencyList(-3)
	assert.Equal(t, 0, g.Order())

	require.NoError(t, g.Grow(2))
	assert.Equal(t, 2, g.Order())
	require.NoError(t, g.Grow(1), "shrinking is a no-op")
	assert.Equal(t, 2, g.Order())
	assert.ErrorIs(t, g.Grow(-1), graph.ErrNegativeOrder)

	v := g.AddVertex()
	assert.Equal(t, 2, v)
	assert.Equal(t, 3, g.Order())
	require.NoError(t, g.AddEdge(0, v, 1))
}

func TestPathCost(t *testing.T) {
	g := graph.NewAdjacencyList(4, graph.WithDirected())
	require.NoError(t, g.AddArc(0, 1, 2))
	require.NoError(t, g.AddArc(1, 2, 3))
	require.NoError(t, g.AddArc(2, 3, 4))

	cost, err := graph.PathCost(g, []int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(9), cost)

	cost, err = graph.PathCost(g, []int{2})
	require.NoError(t, err)
	assert.Zero(t, cost)

	_, err = graph.PathCost(g, nil)
	assert.ErrorIs(t, err, graph.ErrEmptyPath)

	_, err = graph.PathCost(g, []int{0, 2})
	assert.ErrorIs(t, err, graph.ErrNoArc)

	_, err = graph.PathCost(g, []int{0, 9})
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}
