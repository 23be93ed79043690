package builder

import "github.com/Canx/algos/graph"

// classicRows is the 9-vertex undirected reference network. Each row is a
// vertex, each column the cost of reaching another vertex; 0 means no edge.
var classicRows = [][]int64{
	{0, 4, 0, 0, 0, 0, 0, 8, 0},
	{4, 0, 8, 0, 0, 0, 0, 11, 0},
	{0, 8, 0, 7, 0, 4, 0, 0, 2},
	{0, 0, 7, 0, 9, 14, 0, 0, 0},
	{0, 0, 0, 9, 0, 10, 0, 0, 0},
	{0, 0, 4, 14, 10, 0, 2, 0, 0},
	{0, 0, 0, 0, 0, 2, 0, 1, 6},
	{8, 11, 0, 0, 0, 0, 1, 0, 7},
	{0, 0, 2, 0, 0, 0, 6, 7, 0},
}

// Classic returns the 9-vertex reference network as a fresh adjacency matrix.
// From vertex 0 the shortest distance to vertex 4 is 21 (0→7→6→5→4).
func Classic() *graph.AdjacencyMatrix {
	m, err := graph.NewAdjacencyMatrix(classicRows)
	if err != nil {
		// classicRows is square by construction.
		panic(err)
	}

	return m
}
