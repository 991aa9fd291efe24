// SPDX-License-Identifier: MIT
// Package: polylattice/builder
//
// impl_classic.go: Path, Cycle, Complete, Star and Wheel.
//
// Contract (all constructors):
//   • Nodes are appended with g.AddNodes; local index i maps to base+i.
//   • Edges are emitted in ascending local order.
//   • Returns only sentinel errors; never panics at runtime.

package builder

import (
	"fmt"

	"github.com/katalvlaran/polylattice/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	methodStar     = "Star"
	methodWheel    = "Wheel"

	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
	minWheelNodes    = 4
)

// Path returns a Constructor for the path P_n: 0-1-...-(n-1).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := g.AddNodes(n)
		edges := make([][2]int, 0, n-1)
		for i := 0; i+1 < n; i++ {
			edges = append(edges, [2]int{i, i + 1})
		}

		return addEdges(g, methodPath, base, edges)
	}
}

// Cycle returns a Constructor for the simple cycle C_n, edges i→(i+1)%n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := g.AddNodes(n)
		edges := make([][2]int, 0, n)
		for i := 0; i < n; i++ {
			edges = append(edges, [2]int{i, (i + 1) % n})
		}

		return addEdges(g, methodCycle, base, edges)
	}
}

// Complete returns a Constructor for K_n; directed graphs get i→j for i<j.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := g.AddNodes(n)
		edges := make([][2]int, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, [2]int{i, j})
			}
		}

		return addEdges(g, methodComplete, base, edges)
	}
}

// Star returns a Constructor for a star: local node 0 is the centre and
// 1..n-1 are leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		base := g.AddNodes(n)
		edges := make([][2]int, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, [2]int{0, i})
		}

		return addEdges(g, methodStar, base, edges)
	}
}

// Wheel returns a Constructor for W_n: centre 0 joined to a rim cycle on
// 1..n-1.
func Wheel(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		base := g.AddNodes(n)
		rim := n - 1
		edges := make([][2]int, 0, 2*rim)
		for i := 1; i < n; i++ {
			edges = append(edges, [2]int{0, i})
		}
		for i := 0; i < rim; i++ {
			edges = append(edges, [2]int{1 + i, 1 + (i+1)%rim})
		}

		return addEdges(g, methodWheel, base, edges)
	}
}
