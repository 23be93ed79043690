package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/Canx/algos/dijkstra"
	"github.com/Canx/algos/graph"
)

// NoTarget disables path highlighting.
const NoTarget = -1

// Options configures diagram generation.
type Options struct {
	// Target is the vertex whose path from the source is highlighted.
	// Use NoTarget to draw the tree only.
	Target int

	// Undirected draws each pair of opposite arcs once, as a plain edge.
	// Set it for graphs built with AddEdge on an undirected AdjacencyList.
	Undirected bool
}

// ToDOT converts g to Graphviz DOT format. r may be nil, in which case only
// the graph itself is drawn. The output is deterministic: vertices appear in
// index order and arcs in the order g.Arcs reports them.
func ToDOT(g graph.Graph, r *dijkstra.Result, opts Options) string {
	kind, op := "digraph", "->"
	if opts.Undirected {
		kind, op = "graph", "--"
	}

	onPath := pathPairs(r, opts.Target)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for v := 0; v < g.Order(); v++ {
		fmt.Fprintf(&buf, "  %q [%s];\n", fmt.Sprint(v), strings.Join(nodeAttrs(r, v), ", "))
	}

	buf.WriteString("\n")
	for u := 0; u < g.Order(); u++ {
		for _, a := range g.Arcs(u) {
			if opts.Undirected && a.To < u {
				continue
			}
			attrs := edgeAttrs(r, u, a, opts.Undirected, onPath)
			fmt.Fprintf(&buf, "  %q %s %q [%s];\n", fmt.Sprint(u), op, fmt.Sprint(a.To), strings.Join(attrs, ", "))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(r *dijkstra.Result, v int) []string {
	if r == nil {
		return []string{fmt.Sprintf("label=%q", fmt.Sprint(v))}
	}

	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(r, v))}
	switch {
	case v == r.Source():
		attrs = append(attrs, "fillcolor=lightblue", "penwidth=2")
	case !r.Reachable(v):
		attrs = append(attrs, "style=\"filled,dashed\"", "fillcolor=lightgrey", "fontcolor=grey40")
	}
	return attrs
}

func fmtLabel(r *dijkstra.Result, v int) string {
	if !r.Reachable(v) {
		return fmt.Sprintf("%d\n∞", v)
	}
	return fmt.Sprintf("%d\n%d", v, r.Distance(v))
}

func edgeAttrs(r *dijkstra.Result, u int, a graph.Arc, undirected bool, onPath map[[2]int]bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmt.Sprint(a.Weight))}
	if r == nil {
		return attrs
	}

	tree := r.Predecessor(a.To) == u
	path := onPath[[2]int{u, a.To}]
	if undirected {
		tree = tree || r.Predecessor(u) == a.To
		path = path || onPath[[2]int{a.To, u}]
	}

	switch {
	case path:
		attrs = append(attrs, "color=red", "penwidth=3")
	case tree:
		attrs = append(attrs, "penwidth=2.5")
	default:
		attrs = append(attrs, "color=grey60")
	}
	return attrs
}

// pathPairs returns the consecutive (from, to) pairs of the path to target,
// or nil when there is nothing to highlight.
func pathPairs(r *dijkstra.Result, target int) map[[2]int]bool {
	if r == nil || target == NoTarget {
		return nil
	}
	path, ok, err := r.PathTo(target)
	if err != nil || !ok {
		return nil
	}

	pairs := make(map[[2]int]bool, len(path))
	for i := 1; i < len(path); i++ {
		pairs[[2]int{path[i-1], path[i]}] = true
	}
	return pairs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
