// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Whole-graph transforms (clone, permute, reverse, induced subgraph).
// Concurrency:
//   - Read lock on the source; results are fresh graphs.

package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/polylattice/set"
)

// Clone returns a deep copy including deleted slots.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:   g.directed,
		allowLoops: g.allowLoops,
		out:        make([][]int, len(g.out)),
		alive:      make([]bool, len(g.alive)),
		gaps:       g.gaps,
		edges:      g.edges,
	}
	copy(c.alive, g.alive)
	for i := range g.out {
		c.out[i] = cloneInts(g.out[i])
	}
	if g.directed {
		c.in = make([][]int, len(g.in))
		for i := range g.in {
			c.in[i] = cloneInts(g.in[i])
		}
	}

	return c
}

// Reverse returns a copy with every directed edge flipped. Undirected graphs
// are returned as plain clones.
func (g *Graph) Reverse() *Graph {
	c := g.Clone()
	if c.directed {
		c.out, c.in = c.in, c.out
	}

	return c
}

// Permute renumbers nodes: node i becomes perm[i]. perm must be a bijection
// on 0..Nodes()-1 and the graph must have no gaps.
//
// Errors: ErrBadPermutation.
// Complexity: O(V + E log d).
func (g *Graph) Permute(perm []int) (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.out)
	if len(perm) != n || g.gaps > 0 {
		return nil, fmt.Errorf("%w: len=%d nodes=%d gaps=%d", ErrBadPermutation, len(perm), n, g.gaps)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, fmt.Errorf("%w: %v", ErrBadPermutation, perm)
		}
		seen[p] = true
	}

	c := NewGraph(n, WithDirected(g.directed))
	c.allowLoops = g.allowLoops
	for u, list := range g.out {
		pu := perm[u]
		for _, v := range list {
			c.out[pu] = append(c.out[pu], perm[v])
			if g.directed {
				c.in[perm[v]] = append(c.in[perm[v]], pu)
			}
		}
	}
	for i := range c.out {
		sort.Ints(c.out[i])
		if g.directed {
			sort.Ints(c.in[i])
		}
	}
	c.edges = g.edges

	return c, nil
}

// InducedSubgraph returns the subgraph on the given live nodes, renumbered
// 0..k-1 in ascending order of their old ids, plus the new→old id map.
func (g *Graph) InducedSubgraph(nodes set.Set) (*Graph, []int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	renum := make(map[int]int, nodes.Len())
	for i, n := range nodes {
		if err := g.checkNode(n); err != nil {
			return nil, nil, err
		}
		renum[n] = i
	}
	c := NewGraph(nodes.Len(), WithDirected(g.directed))
	c.allowLoops = g.allowLoops
	for _, u := range nodes {
		for _, v := range g.out[u] {
			nv, ok := renum[v]
			if !ok || (!g.directed && v < u) {
				continue
			}
			nu := renum[u]
			c.out[nu] = append(c.out[nu], nv)
			if g.directed {
				c.in[nv] = append(c.in[nv], nu)
			} else if nu != nv {
				c.out[nv] = append(c.out[nv], nu)
			}
			c.edges++
		}
	}
	for i := range c.out {
		sort.Ints(c.out[i])
		if g.directed {
			sort.Ints(c.in[i])
		}
	}

	return c, nodes.Elems(), nil
}
