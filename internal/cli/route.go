package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Canx/algos/builder"
	"github.com/Canx/algos/dijkstra"
	"github.com/Canx/algos/graph"
	"github.com/Canx/algos/render"
)

// routeOpts holds the command-line flags for the route command.
type routeOpts struct {
	flags Config // values bound to flags; only the changed ones win over the config file
	all   bool   // print the whole distance table
	dot   string // write the DOT diagram to this file
	svg   string // write the rendered SVG diagram to this file
}

// routeCommand creates the route command. With no flags it reproduces the
// classic run on the 9-vertex graph from 0 to 4.
func (c *CLI) routeCommand() *cobra.Command {
	opts := routeOpts{flags: DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute shortest paths from a source vertex",
		Long: `Runs Dijkstra's algorithm from --source on the selected graph and prints the
shortest distance and path to --target, or the whole table with --all.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.flags.merge(c.config, cmd.Flags().Changed)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runRoute(cmd.Context(), cmd.OutOrStdout(), cfg, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.flags.Source, "source", opts.flags.Source, "source vertex")
	f.IntVar(&opts.flags.Target, "target", opts.flags.Target, "target vertex")
	f.StringVar(&opts.flags.Graph, "graph", opts.flags.Graph, "graph: classic, grid (n×n) or random (n vertices, edge probability p)")
	f.StringVar(&opts.flags.Frontier, "frontier", opts.flags.Frontier, "frontier: heap or linear")
	f.IntVar(&opts.flags.N, "n", opts.flags.N, "size parameter of grid and random graphs")
	f.Float64Var(&opts.flags.P, "p", opts.flags.P, "edge probability of random graphs")
	f.Int64Var(&opts.flags.Seed, "seed", opts.flags.Seed, "random seed for generated graphs")
	f.Int64Var(&opts.flags.MaxDistance, "max-distance", opts.flags.MaxDistance, "ignore paths longer than this (-1 for no cap)")
	f.Int64Var(&opts.flags.MinWeight, "min-weight", opts.flags.MinWeight, "smallest generated edge weight")
	f.Int64Var(&opts.flags.MaxWeight, "max-weight", opts.flags.MaxWeight, "largest generated edge weight")
	f.BoolVar(&opts.all, "all", false, "print the distance table for every vertex")
	f.StringVar(&opts.dot, "dot", "", "write the shortest-path tree as Graphviz DOT to `file`")
	f.StringVar(&opts.svg, "svg", "", "render the shortest-path tree as SVG to `file`")

	return cmd
}

func runRoute(ctx context.Context, w io.Writer, cfg Config, opts routeOpts) error {
	logger := loggerFromContext(ctx)

	g, undirected, err := buildGraph(cfg)
	if err != nil {
		return err
	}
	logger.Debug("graph ready", "kind", cfg.Graph, "order", g.Order())

	kind, err := dijkstra.ParseFrontierKind(cfg.Frontier)
	if err != nil {
		return err
	}
	dopts := []dijkstra.Option{dijkstra.WithFrontier(kind)}
	if cfg.MaxDistance != noCap {
		dopts = append(dopts, dijkstra.WithMaxDistance(cfg.MaxDistance))
	}
	// The table and diagrams need every vertex settled.
	if !opts.all && opts.dot == "" && opts.svg == "" {
		dopts = append(dopts, dijkstra.WithTarget(cfg.Target))
	}

	// No cancellation inside a run; check before and after.
	if err := ctx.Err(); err != nil {
		return err
	}
	prog := newProgress(logger)
	res, err := dijkstra.Dijkstra(g, cfg.Source, dopts...)
	if err != nil {
		return err
	}
	st := res.Stats()
	logger.Debug("run stats", "frontier", kind, "pushes", st.Pushes, "pops", st.Pops,
		"stale", st.StaleSkips, "relaxations", st.Relaxations)
	prog.done(fmt.Sprintf("Settled %d of %d vertices", st.Settled, g.Order()))
	if err := ctx.Err(); err != nil {
		return err
	}

	th := newTheme(w)
	if opts.all {
		if err := printTable(w, th, res); err != nil {
			return err
		}
	} else if err := printRoute(w, th, res, cfg.Target); err != nil {
		return err
	}

	return writeDiagrams(ctx, g, res, cfg.Target, undirected, opts)
}

// buildGraph returns the graph selected by cfg and whether it is undirected.
func buildGraph(cfg Config) (graph.Graph, bool, error) {
	bopts := []builder.Option{
		builder.WithSeed(cfg.Seed),
		builder.WithWeightRange(cfg.MinWeight, cfg.MaxWeight),
	}

	var cons builder.Constructor
	switch cfg.Graph {
	case graphClassic:
		return builder.Classic(), true, nil
	case graphGrid:
		cons = builder.Grid(cfg.N, cfg.N)
	case graphRandom:
		cons = builder.RandomSparse(cfg.N, cfg.P)
	default:
		return nil, false, fmt.Errorf("unknown graph %q", cfg.Graph)
	}

	g, err := builder.Build(bopts, cons)
	if err != nil {
		return nil, false, err
	}
	return g, true, nil
}

// printRoute prints the distance and the path in the classic format:
//
//	Shortest Distance from 0 to 4 is 21
//	Path is 4 <--- 5 <--- 6 <--- 7 <--- 0
func printRoute(w io.Writer, th theme, res *dijkstra.Result, target int) error {
	path, ok, err := res.PathTo(target)
	if err != nil {
		return err
	}

	head := fmt.Sprintf("Shortest Distance from %d to %d is", res.Source(), target)
	if !ok {
		_, err = fmt.Fprintf(w, "%s %s\n", th.title.Render(head), th.warning.Render("unreachable"))
		return err
	}
	if _, err := fmt.Fprintf(w, "%s %s\n", th.title.Render(head), th.number.Render(strconv.FormatInt(res.Distance(target), 10))); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s %s\n", th.title.Render("Path is"), th.value.Render(formatBackPath(path)))
	return err
}

// formatBackPath renders path from its last vertex back to its first.
func formatBackPath(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[len(path)-1-i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " <--- ")
}

// printTable prints one row per vertex: distance, predecessor and path.
func printTable(w io.Writer, th theme, res *dijkstra.Result) error {
	rows := make([][]string, 0, res.Order())
	for v := 0; v < res.Order(); v++ {
		dist, pred, route := "∞", "—", "unreachable"
		if res.Reachable(v) {
			dist = strconv.FormatInt(res.Distance(v), 10)
			path, _, err := res.PathTo(v)
			if err != nil {
				return err
			}
			route = formatBackPath(path)
		}
		if p := res.Predecessor(v); p != dijkstra.NoPredecessor {
			pred = strconv.Itoa(p)
		}
		rows = append(rows, []string{strconv.Itoa(v), dist, pred, route})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(th.border).
		Headers("Vertex", "Distance", "Via", "Path").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1: // header
				return th.header
			case col == 1:
				return th.number
			case col == 3 && !res.Reachable(row):
				return th.warning
			}
			return th.value
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// writeDiagrams writes the DOT and SVG files requested by opts.
func writeDiagrams(ctx context.Context, g graph.Graph, res *dijkstra.Result, target int, undirected bool, opts routeOpts) error {
	if opts.dot == "" && opts.svg == "" {
		return nil
	}
	logger := loggerFromContext(ctx)
	dot := render.ToDOT(g, res, render.Options{Target: target, Undirected: undirected})

	if opts.dot != "" {
		if err := os.WriteFile(opts.dot, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write DOT: %w", err)
		}
		logger.Infof("Wrote %s", opts.dot)
	}
	if opts.svg != "" {
		prog := newProgress(logger)
		svg, err := render.RenderSVG(ctx, dot)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.svg, svg, 0o644); err != nil {
			return fmt.Errorf("write SVG: %w", err)
		}
		prog.done("Wrote " + opts.svg)
	}
	return nil
}
