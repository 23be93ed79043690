// SPDX-License-Identifier: MIT
// Package: algos/builder
//
// api.go: public entry-point for the builder package.
//
// Design contract:
//   • One orchestrator: Build(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   • Topology factories are implemented in impl_*.go.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   • Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/Canx/algos/graph"
)

// Constructor applies a deterministic graph mutation using the resolved
// config. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Grow g to the vertex count they need before adding arcs.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *graph.AdjacencyList, cfg config) error

// Build creates a new graph.AdjacencyList (directed if WithDirected is given),
// resolves the configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "Build: %w" and returned
// immediately; the partially built graph is discarded.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func Build(bopts []Option, cons ...Constructor) (*graph.AdjacencyList, error) {
	cfg := newConfig(bopts...)

	var gopts []graph.ListOption
	if cfg.directed {
		gopts = append(gopts, graph.WithDirected())
	}
	g := graph.NewAdjacencyList(0, gopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}
