// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, GraphOption, sentinel errors and the NewGraph constructor.
// Policy:
//   - Node ids are dense integers 0..Nodes()-1; deleted nodes leave gaps.
//   - Adjacency lists are kept sorted so every enumeration is deterministic.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeOutOfRange indicates a node id outside 0..Nodes()-1.
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrNodeDeleted indicates an operation on a node removed by DeleteNode.
	ErrNodeDeleted = errors.New("core: node deleted")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadPermutation indicates that a permutation is not a bijection on node ids.
	ErrBadPermutation = errors.New("core: invalid permutation")
)

// Edge is an ordered pair of node ids. For undirected graphs From <= To
// when produced by Edges().
type Edge struct {
	From int
	To   int
}

// Graph is an adjacency-list graph over integer node ids.
//
// Directed graphs store out- and in-lists; undirected graphs store one
// symmetric neighbour list and report it as both. All methods take the
// internal lock, so a Graph may be read concurrently; algorithms built on
// it are single-goroutine unless documented otherwise.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	allowLoops bool

	out   [][]int // sorted out-neighbours (undirected: neighbours)
	in    [][]int // sorted in-neighbours (directed only)
	alive []bool  // false for deleted nodes
	gaps  int     // number of deleted node slots
	edges int     // edge count (undirected edges counted once)
}

// GraphOption configures a Graph at construction.
type GraphOption func(*Graph)

// WithDirected selects directed (true) or undirected (false) storage.
// The default is directed, which is what lattices need.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// NewGraph allocates a graph with n isolated nodes.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) *Graph {
	g := &Graph{directed: true}
	for _, opt := range opts {
		opt(g)
	}
	if n < 0 {
		n = 0
	}
	g.out = make([][]int, n)
	g.alive = make([]bool, n)
	if g.directed {
		g.in = make([][]int, n)
	}
	for i := range g.alive {
		g.alive[i] = true
	}

	return g
}

// Directed reports the construction-time direction flag.
func (g *Graph) Directed() bool { return g.directed }
