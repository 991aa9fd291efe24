package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polylattice/core"
)

// topoVisitor colours nodes White/Gray/Black and records post-order.
// An edge into a Gray node closes a directed cycle.
type topoVisitor struct {
	state    []int
	post     []int
	cycle    [2]int // first back edge, valid when hasCycle
	hasCycle bool
}

func (v *topoVisitor) Clear(n int) {
	v.state = make([]int, n)
	v.post = v.post[:0]
	v.hasCycle = false
}
func (v *topoVisitor) Start(node int)     { v.state[node] = Gray }
func (v *topoVisitor) Seen(node int) bool { return v.state[node] != White }

func (v *topoVisitor) Edge(from, to int) bool {
	switch v.state[to] {
	case White:
		v.state[to] = Gray
		return true
	case Gray:
		if !v.hasCycle {
			v.cycle = [2]int{from, to}
			v.hasCycle = true
		}
	}

	return false
}

func (v *topoVisitor) Leave(node, _ int) {
	v.state[node] = Black
	v.post = append(v.post, node)
}

// TopologicalSort orders the live nodes of a directed graph so that every
// edge u→v has u before v, and returns for every node its rank: the length
// of the longest directed path ending there (sources have rank 0, deleted
// slots -1).
//
// Implementation:
//   - Stage 1: DFS from every undiscovered node in ascending id order,
//     colouring nodes; an edge into a Gray node is a back edge (cycle).
//   - Stage 2: reverse post-order is the topological order.
//   - Stage 3: propagate ranks along the order; cross and forward edges that
//     reach an already ranked node raise its rank when they carry a longer
//     path.
//
// Errors: ErrGraphNil, ErrUndirected, ErrCycleDetected (with the back edge).
// Complexity: O(V + E).
func TopologicalSort(g *core.Graph, opts ...Option) (order []int, rank []int, err error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, nil, ErrUndirected
	}
	tv := &topoVisitor{}
	it, err := New(g, tv, opts...)
	if err != nil {
		return nil, nil, err
	}
	if err = it.ForEachRoot(nil); err != nil {
		return nil, nil, err
	}
	if tv.hasCycle {
		return nil, nil, fmt.Errorf("%w: back edge %d->%d", ErrCycleDetected, tv.cycle[0], tv.cycle[1])
	}

	order = make([]int, len(tv.post))
	for i, n := range tv.post {
		order[len(tv.post)-1-i] = n
	}
	rank = make([]int, g.Nodes())
	for i := range rank {
		rank[i] = -1
	}
	for _, n := range order {
		if rank[n] < 0 {
			rank[n] = 0
		}
		for _, m := range g.Neighbors(n, core.Out) {
			if rank[m] < rank[n]+1 {
				rank[m] = rank[n] + 1
			}
		}
	}

	return order, rank, nil
}

// HasCycle reports whether a directed graph contains a directed cycle.
func HasCycle(g *core.Graph) (bool, error) {
	_, _, err := TopologicalSort(g)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrCycleDetected):
		return true, nil
	}

	return false, err
}
