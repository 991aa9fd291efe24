// SPDX-License-Identifier: MIT
// Package: polylattice/builder
//
// impl_bipartite.go: CompleteBipartite, Windmill and RandomSparse.

package builder

import (
	"fmt"

	"github.com/katalvlaran/polylattice/core"
)

const (
	methodBipartite = "CompleteBipartite"
	methodWindmill  = "Windmill"
	methodRandom    = "RandomSparse"
)

// CompleteBipartite returns a Constructor for K_{n1,n2}: left side is local
// 0..n1-1, right side n1..n1+n2-1; edges run left→right.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("%s: n1=%d n2=%d: %w", methodBipartite, n1, n2, ErrTooFewVertices)
		}
		base := g.AddNodes(n1 + n2)
		edges := make([][2]int, 0, n1*n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				edges = append(edges, [2]int{i, n1 + j})
			}
		}

		return addEdges(g, methodBipartite, base, edges)
	}
}

// Windmill returns a Constructor for k triangles glued at one shared hub
// (the friendship graph F_k). Local node 0 is the hub; triangle t uses
// nodes 2t+1 and 2t+2.
func Windmill(k int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if k < 1 {
			return fmt.Errorf("%s: k=%d: %w", methodWindmill, k, ErrTooFewVertices)
		}
		base := g.AddNodes(2*k + 1)
		edges := make([][2]int, 0, 3*k)
		for t := 0; t < k; t++ {
			a, b := 2*t+1, 2*t+2
			edges = append(edges, [2]int{0, a}, [2]int{0, b}, [2]int{a, b})
		}

		return addEdges(g, methodWindmill, base, edges)
	}
}

// RandomSparse returns a Constructor for an Erdős–Rényi G(n,p) graph: each
// pair i<j is joined with probability p. Requires WithSeed/WithRand.
// Complexity: O(n²) pair checks.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d: %w", methodRandom, n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandom, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		base := g.AddNodes(n)
		var edges [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					edges = append(edges, [2]int{i, j})
				}
			}
		}

		return addEdges(g, methodRandom, base, edges)
	}
}
