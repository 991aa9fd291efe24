package bfs

import (
	"fmt"

	"github.com/katalvlaran/polylattice/core"
)

// Distances returns hop distances from src (-1 for unreachable nodes).
func Distances(g *core.Graph, src int, opts ...Option) ([]int, error) {
	dv := NewDistanceVisitor()
	it, err := New(g, dv, opts...)
	if err != nil {
		return nil, err
	}
	if err = it.Reset(src); err != nil {
		return nil, err
	}
	for !it.Done() {
		it.Next()
	}
	if err = it.Err(); err != nil {
		return nil, err
	}

	return dv.Dist, nil
}

// Diameter returns the largest hop distance between two live nodes.
//
// Implementation:
//   - Stage 1: one DistanceVisitor shared by all sources.
//   - Stage 2: for every live node, Reset the iterator there and drain it,
//     tracking the largest distance reached.
//   - Stage 3: if a sweep leaves nodes undiscovered, fail with ErrDisconnected.
//
// A graph with at most one node has diameter 0.
// Complexity: O(V · (V + E)).
func Diameter(g *core.Graph, opts ...Option) (int, error) {
	dv := NewDistanceVisitor()
	it, err := New(g, dv, opts...)
	if err != nil {
		return 0, err
	}
	diam := 0
	for _, src := range g.ValidNodes() {
		if err = it.Reset(src); err != nil {
			return 0, err
		}
		for ; !it.Done(); it.Next() {
			if d := dv.Dist[it.Current()]; d > diam {
				diam = d
			}
		}
		if err = it.Err(); err != nil {
			return 0, err
		}
		if it.UndiscoveredNodes() > 0 {
			return 0, fmt.Errorf("%w: %d nodes unreachable from %d", ErrDisconnected, it.UndiscoveredNodes(), src)
		}
	}

	return diam, nil
}
