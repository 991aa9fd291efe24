package lattice

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/polylattice/core"
	"github.com/katalvlaran/polylattice/set"
)

// renumber builds a new lattice in which old node i becomes perm[i].
func (l *Lattice[D]) renumber(perm []int, kind Kind) (*Lattice[D], error) {
	n := len(l.decor)
	if len(perm) != n {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrBadPermutation, len(perm), n)
	}
	inv := make([]int, n)
	for i := range inv {
		inv[i] = -1
	}
	for old, nw := range perm {
		if nw < 0 || nw >= n || inv[nw] >= 0 {
			return nil, fmt.Errorf("%w: %d->%d", ErrBadPermutation, old, nw)
		}
		inv[nw] = old
	}

	out := New[D](kind)
	for nw := 0; nw < n; nw++ {
		if _, err := out.AddNode(l.decor[inv[nw]]); err != nil {
			return nil, err
		}
	}
	for _, e := range l.g.Edges() {
		if err := out.g.AddEdge(perm[e.From], perm[e.To]); err != nil {
			return nil, err
		}
	}
	if l.top >= 0 {
		out.top = perm[l.top]
	}
	if l.bottom >= 0 {
		out.bottom = perm[l.bottom]
	}

	return out, nil
}

// sortedPerm returns the permutation old→new that orders nodes by less.
func (l *Lattice[D]) sortedPerm(less func(a, b int) bool) []int {
	order := make([]int, len(l.decor))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return less(order[i], order[j]) })
	perm := make([]int, len(order))
	for nw, old := range order {
		perm[old] = nw
	}

	return perm
}

// Sequentialize returns a Sequential copy whose nodes are ordered by rank,
// ties kept in id order, plus the permutation old→new.
func (l *Lattice[D]) Sequentialize() (*Lattice[D], []int, error) {
	perm := l.sortedPerm(func(a, b int) bool {
		return l.decor[a].GetRank() < l.decor[b].GetRank()
	})
	out, err := l.renumber(perm, Sequential)

	return out, perm, err
}

// SortVerticesAndFacets returns a Sequential copy whose nodes are ordered
// by rank and, within a rank, lexicographically by face, plus the
// permutation old→new. Vertices (rank bottom+1) and facets (rank top-1) thus
// appear in the canonical order of their faces.
func (l *Lattice[D]) SortVerticesAndFacets() (*Lattice[D], []int, error) {
	perm := l.sortedPerm(func(a, b int) bool {
		ra, rb := l.decor[a].GetRank(), l.decor[b].GetRank()
		if ra != rb {
			return ra < rb
		}
		return l.decor[a].GetFace().Compare(l.decor[b].GetFace()) < 0
	})
	out, err := l.renumber(perm, Sequential)

	return out, perm, err
}

// PermuteNodesInLevels returns a copy in which node i becomes perm[i].
// perm must map every node to a node of the same rank.
//
// Errors: ErrBadPermutation.
func (l *Lattice[D]) PermuteNodesInLevels(perm []int) (*Lattice[D], error) {
	for old, nw := range perm {
		if nw < 0 || nw >= len(l.decor) || old >= len(l.decor) {
			return nil, fmt.Errorf("%w: %d->%d", ErrBadPermutation, old, nw)
		}
		if l.decor[old].GetRank() != l.decor[nw].GetRank() {
			return nil, fmt.Errorf("%w: %d->%d changes rank", ErrBadPermutation, old, nw)
		}
	}

	return l.renumber(perm, l.Kind())
}

// PermuteFaces relabels the ground set: every face element x becomes
// perm[x]. Elements outside the permutation's domain (such as sentinel
// faces) are kept.
//
// Errors: ErrBadPermutation when perm is not a bijection on 0..len-1.
func (l *Lattice[D]) PermuteFaces(perm []int) (*Lattice[D], error) {
	seen := make([]bool, len(perm))
	for i, p := range perm {
		if p < 0 || p >= len(perm) || seen[p] {
			return nil, fmt.Errorf("%w: ground element %d->%d", ErrBadPermutation, i, p)
		}
		seen[p] = true
	}

	return l.MapDecorations(func(_ int, d D) D {
		face := d.GetFace()
		mapped := make([]int, len(face))
		for i, x := range face {
			if x >= 0 && x < len(perm) {
				x = perm[x]
			}
			mapped[i] = x
		}
		return d.WithFace(set.New(mapped...))
	})
}

// MapDecorations returns a copy with every decoration replaced by fn's
// result. The graph and the extremes are kept; the rank map is rebuilt.
//
// Errors: ErrNotSequential when new ranks break a Sequential layout.
func (l *Lattice[D]) MapDecorations(fn func(n int, d D) D) (*Lattice[D], error) {
	out := New[D](l.Kind())
	for n, d := range l.decor {
		if _, err := out.AddNode(fn(n, d)); err != nil {
			return nil, err
		}
	}
	out.g = l.g.Clone()
	out.top, out.bottom = l.top, l.bottom

	return out, nil
}

// ShiftRanks returns a copy with every rank moved by delta.
func (l *Lattice[D]) ShiftRanks(delta int) (*Lattice[D], error) {
	return l.MapDecorations(func(_ int, d D) D { return d.WithRank(d.GetRank() + delta) })
}

// CopyAllButTopNode returns a copy without the top node. Node ids above
// the removed one shift down by one. The copy's top is the unique node of
// maximal rank, if there is one.
//
// Errors: ErrNoTopNode.
func (l *Lattice[D]) CopyAllButTopNode() (*Lattice[D], error) {
	if l.top < 0 {
		return nil, ErrNoTopNode
	}
	out := New[D](l.Kind())
	newID := make([]int, len(l.decor))
	for n, d := range l.decor {
		if n == l.top {
			newID[n] = -1
			continue
		}
		id, err := out.AddNode(d)
		if err != nil {
			return nil, err
		}
		newID[n] = id
	}
	for _, e := range l.g.Edges() {
		if newID[e.From] < 0 || newID[e.To] < 0 {
			continue
		}
		if err := out.g.AddEdge(newID[e.From], newID[e.To]); err != nil {
			return nil, err
		}
	}
	if l.bottom >= 0 {
		out.bottom = newID[l.bottom]
	}
	if ranks := out.ranks.Ranks(); len(ranks) > 0 {
		if tops := out.ranks.NodesOfRank(ranks[len(ranks)-1]); len(tops) == 1 {
			out.top = tops[0]
		}
	}

	return out, nil
}

// DualFaces assigns every node the set of coatoms (nodes one rank below the
// top) lying above it, coatoms numbered 0..k-1 in rank-map order. The top
// node, and anything above the coatoms, gets the empty set.
//
// Implementation: seed the coatoms with singletons, then walk the ranks
// downwards and let every node collect the dual faces of the nodes covering
// it.
func (l *Lattice[D]) DualFaces() []set.Set {
	out := make([]set.Set, len(l.decor))
	for i := range out {
		out[i] = set.New()
	}
	ranks := l.ranks.Ranks()
	if len(ranks) == 0 {
		return out
	}
	topRank := ranks[len(ranks)-1]
	if l.top >= 0 {
		topRank = l.decor[l.top].GetRank()
	}
	for i, n := range l.ranks.NodesOfRank(topRank - 1) {
		out[n] = set.New(i)
	}
	for r := topRank - 2; r >= ranks[0]; r-- {
		for _, n := range l.ranks.NodesOfRank(r) {
			for _, up := range l.g.Neighbors(n, core.Out) {
				out[n] = out[n].Union(out[up])
			}
		}
	}

	return out
}
