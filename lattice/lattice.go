// SPDX-License-Identifier: MIT
//
// File: lattice.go
// Role: Lattice[D], a decorated directed graph with an inverse rank map and
//       cached top and bottom nodes.
// Determinism:
//   - Node ids are assigned densely in insertion order.
//   - Rank queries return ascending node ids.

package lattice

import (
	"fmt"

	"github.com/katalvlaran/polylattice/core"
	"github.com/katalvlaran/polylattice/set"
)

// Lattice is a graded poset stored as a directed graph: nodes are closed
// faces, edges are covering relations pointing from lower to higher rank,
// decorations are parallel to node ids.
//
// A Lattice is mutated only while it is built or by the explicit
// relabelling operations that return new lattices. It is not safe for
// concurrent mutation.
type Lattice[D Decorated[D]] struct {
	g      *core.Graph
	decor  []D
	ranks  *InverseRankMap
	top    int
	bottom int
}

// New returns an empty lattice with the given rank map representation.
func New[D Decorated[D]](kind Kind) *Lattice[D] {
	return &Lattice[D]{
		g:      core.NewGraph(0),
		ranks:  NewInverseRankMap(kind),
		top:    -1,
		bottom: -1,
	}
}

func (l *Lattice[D]) checkNode(n int) error {
	if n < 0 || n >= len(l.decor) {
		return fmt.Errorf("%w: %d (nodes=%d)", ErrNodeOutOfRange, n, len(l.decor))
	}

	return nil
}

// Kind returns the rank map representation.
func (l *Lattice[D]) Kind() Kind { return l.ranks.Kind() }

// AddNode appends a node decorated with d and returns its id.
// Errors: ErrNotSequential.
func (l *Lattice[D]) AddNode(d D) (int, error) {
	n := len(l.decor)
	if err := l.ranks.SetRank(n, d.GetRank()); err != nil {
		return -1, err
	}
	l.g.AddNode()
	l.decor = append(l.decor, d)

	return n, nil
}

// AddNodes appends several nodes and returns the id of the first one.
func (l *Lattice[D]) AddNodes(ds []D) (int, error) {
	first := len(l.decor)
	for _, d := range ds {
		if _, err := l.AddNode(d); err != nil {
			return -1, err
		}
	}

	return first, nil
}

// AddEdge adds the covering edge from→to. Adding an existing edge is a no-op.
func (l *Lattice[D]) AddEdge(from, to int) error {
	if err := l.checkNode(from); err != nil {
		return err
	}
	if err := l.checkNode(to); err != nil {
		return err
	}

	return l.g.AddEdge(from, to)
}

// Graph returns the underlying graph. Callers must treat it as read-only.
func (l *Lattice[D]) Graph() *core.Graph { return l.g }

// Nodes returns the number of nodes.
func (l *Lattice[D]) Nodes() int { return len(l.decor) }

// Edges returns all covering edges sorted by (From, To).
func (l *Lattice[D]) Edges() []core.Edge { return l.g.Edges() }

// EdgeCount returns the number of covering edges.
func (l *Lattice[D]) EdgeCount() int { return l.g.EdgeCount() }

// Decoration returns the decoration of node n.
func (l *Lattice[D]) Decoration(n int) (D, error) {
	if err := l.checkNode(n); err != nil {
		var zero D
		return zero, err
	}

	return l.decor[n], nil
}

// Decorations returns a copy of all decorations indexed by node id.
func (l *Lattice[D]) Decorations() []D {
	return append([]D(nil), l.decor...)
}

// Face returns the face of node n, or nil for an invalid id.
func (l *Lattice[D]) Face(n int) set.Set {
	if l.checkNode(n) != nil {
		return nil
	}

	return l.decor[n].GetFace()
}

// NodeRank returns the rank of node n.
func (l *Lattice[D]) NodeRank(n int) (int, error) {
	if err := l.checkNode(n); err != nil {
		return 0, err
	}

	return l.decor[n].GetRank(), nil
}

// TopNode returns the top node, -1 when none is designated.
func (l *Lattice[D]) TopNode() int { return l.top }

// BottomNode returns the bottom node, -1 when none is designated.
func (l *Lattice[D]) BottomNode() int { return l.bottom }

// SetTopNode designates n as the top node.
func (l *Lattice[D]) SetTopNode(n int) error {
	if err := l.checkNode(n); err != nil {
		return err
	}
	l.top = n

	return nil
}

// SetBottomNode designates n as the bottom node.
func (l *Lattice[D]) SetBottomNode(n int) error {
	if err := l.checkNode(n); err != nil {
		return err
	}
	l.bottom = n

	return nil
}

// Rank returns rank(top) - rank(bottom). Without designated extremes it
// falls back to the spread of all ranks; an empty lattice has rank 0.
func (l *Lattice[D]) Rank() int {
	if l.top >= 0 && l.bottom >= 0 {
		return l.decor[l.top].GetRank() - l.decor[l.bottom].GetRank()
	}
	ranks := l.ranks.Ranks()
	if len(ranks) == 0 {
		return 0
	}

	return ranks[len(ranks)-1] - ranks[0]
}

// NodesOfRank returns the nodes of rank r in ascending order.
func (l *Lattice[D]) NodesOfRank(r int) []int { return l.ranks.NodesOfRank(r) }

// NodesOfRankRange returns the nodes with lo <= rank <= hi, grouped by rank.
func (l *Lattice[D]) NodesOfRankRange(lo, hi int) []int {
	var out []int
	for _, r := range l.ranks.Ranks() {
		if r >= lo && r <= hi {
			out = append(out, l.ranks.NodesOfRank(r)...)
		}
	}

	return out
}

// InverseRankMap returns a copy of the rank → nodes index.
func (l *Lattice[D]) InverseRankMap() *InverseRankMap { return l.ranks.clone() }

// OutAdjacent returns the nodes covering n.
func (l *Lattice[D]) OutAdjacent(n int) ([]int, error) { return l.g.OutAdjacent(n) }

// InAdjacent returns the nodes covered by n.
func (l *Lattice[D]) InAdjacent(n int) ([]int, error) { return l.g.InAdjacent(n) }

// Clone returns a deep copy. Decorations are copied by value; faces are
// shared, which is safe because sets are never written in place.
func (l *Lattice[D]) Clone() *Lattice[D] {
	return &Lattice[D]{
		g:      l.g.Clone(),
		decor:  l.Decorations(),
		ranks:  l.ranks.clone(),
		top:    l.top,
		bottom: l.bottom,
	}
}

// FVector counts the nodes of every rank strictly between the bottom and
// top ranks (all ranks above the bottom when there is no top node). For a
// face lattice this is the f-vector (f_0, f_1, ...).
func (l *Lattice[D]) FVector() []int {
	ranks := l.ranks.Ranks()
	if len(ranks) == 0 {
		return nil
	}
	lo, hi := ranks[0], ranks[len(ranks)-1]
	if l.bottom >= 0 {
		lo = l.decor[l.bottom].GetRank()
	}
	if l.top >= 0 {
		hi = l.decor[l.top].GetRank() - 1
	}
	var out []int
	for r := lo + 1; r <= hi; r++ {
		out = append(out, len(l.ranks.NodesOfRank(r)))
	}

	return out
}
