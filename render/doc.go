// Package render draws a graph and its shortest-path tree as a node-link
// diagram.
//
// # Overview
//
// [ToDOT] produces Graphviz DOT source in which every vertex is labelled
// with its distance from the source of a [dijkstra.Result]. Predecessor
// links (the shortest-path tree) are drawn bold, the path to an optional
// target is drawn in red, and vertices the run never reached are greyed out.
//
// # Usage
//
//	res, _ := dijkstra.Dijkstra(g, 0)
//	dot := render.ToDOT(g, res, render.Options{Target: 4, Undirected: true})
//	svg, err := render.RenderSVG(ctx, dot)
//
// # Dependencies
//
// [RenderSVG] uses [github.com/goccy/go-graphviz] to lay out and render the
// DOT source in-process; no Graphviz binary is required.
package render
