// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion, deletion and enumeration.
// Determinism:
//   - Edges() lists edges by ascending (From, To).

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts u→v (u-v when undirected). Adding an existing edge is a
// no-op; the graph never stores parallel edges.
//
// Errors: ErrNodeOutOfRange, ErrNodeDeleted, ErrLoopNotAllowed.
// Complexity: O(d) for the sorted insert, d = current degree.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkNode(u); err != nil {
		return err
	}
	if err := g.checkNode(v); err != nil {
		return err
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, u)
	}

	var added bool
	g.out[u], added = insertSorted(g.out[u], v)
	if !added {
		return nil
	}
	if g.directed {
		g.in[v], _ = insertSorted(g.in[v], u)
	} else if u != v {
		g.out[v], _ = insertSorted(g.out[v], u)
	}
	g.edges++

	return nil
}

// DeleteEdge removes u→v.
// Errors: ErrNodeOutOfRange, ErrNodeDeleted, ErrEdgeNotFound.
func (g *Graph) DeleteEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkNode(u); err != nil {
		return err
	}
	if err := g.checkNode(v); err != nil {
		return err
	}
	if !containsSorted(g.out[u], v) {
		return fmt.Errorf("%w: %d->%d", ErrEdgeNotFound, u, v)
	}
	g.out[u] = removeSorted(g.out[u], v)
	if g.directed {
		g.in[v] = removeSorted(g.in[v], u)
	} else if u != v {
		g.out[v] = removeSorted(g.out[v], u)
	}
	g.edges--

	return nil
}

// HasEdge reports whether u→v exists; invalid ids yield false.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.checkNode(u) != nil || g.checkNode(v) != nil {
		return false
	}

	return containsSorted(g.out[u], v)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Edges lists all edges in ascending (From, To) order. Undirected edges
// appear once with From <= To.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges)
	for u, list := range g.out {
		for _, v := range list {
			if !g.directed && v < u {
				continue
			}
			out = append(out, Edge{From: u, To: v})
		}
	}

	return out
}

// OutEdges lists edges leaving n.
func (g *Graph) OutEdges(n int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkNode(n); err != nil {
		return nil, err
	}
	out := make([]Edge, len(g.out[n]))
	for i, v := range g.out[n] {
		out[i] = Edge{From: n, To: v}
	}

	return out, nil
}

// InEdges lists edges entering n.
func (g *Graph) InEdges(n int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkNode(n); err != nil {
		return nil, err
	}
	src := g.inList(n)
	out := make([]Edge, len(src))
	for i, u := range src {
		out[i] = Edge{From: u, To: n}
	}

	return out, nil
}

func (g *Graph) inList(n int) []int {
	if g.directed {
		return g.in[n]
	}

	return g.out[n]
}

// insertSorted inserts x into a sorted slice; added is false when present.
func insertSorted(list []int, x int) ([]int, bool) {
	i := sort.SearchInts(list, x)
	if i < len(list) && list[i] == x {
		return list, false
	}
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = x

	return list, true
}

func removeSorted(list []int, x int) []int {
	i := sort.SearchInts(list, x)
	if i == len(list) || list[i] != x {
		return list
	}

	return append(list[:i], list[i+1:]...)
}

func containsSorted(list []int, x int) bool {
	i := sort.SearchInts(list, x)

	return i < len(list) && list[i] == x
}
