// Package components decomposes a core.Graph into connected, biconnected
// and strongly connected pieces.
//
// Algorithms:
//
//	Connected(g)          union-find over all edges, orientation ignored.
//	Biconnected(g)        Tarjan low-links on an undirected DFS; returns the
//	                      node sets of all blocks and the articulation nodes.
//	StronglyConnected(g)  Tarjan's single-pass SCC algorithm.
//	Condensation(g)       the DAG of strongly connected components.
//
// The Tarjan variants are written as dfs.Visitor implementations, so they
// share the iterator's explicit stack and never recurse.
package components

import "errors"

// ErrGraphNil is returned when a nil graph is passed.
var ErrGraphNil = errors.New("components: graph is nil")
