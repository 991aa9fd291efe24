// SPDX-License-Identifier: MIT
// Package: polylattice/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors append fresh nodes, so composing several yields their disjoint union.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/polylattice/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// Build creates an empty core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "Build: %w" and returned immediately.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K).
func Build(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(0, gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// BuildGraph is Build for the common case: an undirected graph with the
// default configuration.
func BuildGraph(cons ...Constructor) (*core.Graph, error) {
	return Build([]core.GraphOption{core.WithDirected(false)}, nil, cons...)
}

// addEdges inserts a batch of edges between node ids offset by base.
func addEdges(g *core.Graph, method string, base int, edges [][2]int) error {
	for _, e := range edges {
		if err := g.AddEdge(base+e[0], base+e[1]); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, base+e[0], base+e[1], err)
		}
	}

	return nil
}
