// Package cliques enumerates the maximal cliques of a core.Graph read as
// undirected (edge orientation and self-loops are ignored).
package cliques

import (
	"errors"

	"github.com/katalvlaran/polylattice/core"
	"github.com/katalvlaran/polylattice/set"
)

// ErrGraphNil is returned when a nil graph is passed.
var ErrGraphNil = errors.New("cliques: graph is nil")

// errStop ends an Each enumeration early; it never leaves the package.
var errStop = errors.New("cliques: stop")

// neighbourhoods returns N(v) without v itself for every node slot.
func neighbourhoods(g *core.Graph) []set.Set {
	nbrs := make([]set.Set, g.Nodes())
	for _, v := range g.ValidNodes() {
		adj, _ := g.Adjacent(v)
		nbrs[v] = set.New(adj...).Without(v)
	}

	return nbrs
}

// bronKerbosch reports every maximal clique R ∪ C with C ⊆ P and no
// extension from X.
func bronKerbosch(nbrs []set.Set, r, p, x set.Set, fn func(set.Set) bool) error {
	if p.Empty() {
		if x.Empty() && !fn(r) {
			return errStop
		}
		return nil
	}

	// Tomita pivot: maximise |P ∩ N(u)| over u ∈ P ∪ X
	pivot, best := -1, -1
	for _, u := range p.Union(x) {
		if k := p.Intersect(nbrs[u]).Len(); k > best {
			pivot, best = u, k
		}
	}
	for _, v := range p.Minus(nbrs[pivot]) {
		if err := bronKerbosch(nbrs, r.With(v), p.Intersect(nbrs[v]), x.Intersect(nbrs[v]), fn); err != nil {
			return err
		}
		p = p.Without(v)
		x = x.With(v)
	}

	return nil
}

// Each calls fn for every maximal clique as a sorted node set, in the
// order Bron–Kerbosch discovers them. Returning false from fn stops the
// enumeration. Isolated nodes are maximal cliques of size one; a graph
// without live nodes has no cliques.
func Each(g *core.Graph, fn func(clique set.Set) bool) error {
	if g == nil {
		return ErrGraphNil
	}
	if g.NodeCount() == 0 {
		return nil
	}
	err := bronKerbosch(neighbourhoods(g), set.New(), set.New(g.ValidNodes()...), set.New(), fn)
	if errors.Is(err, errStop) {
		return nil
	}

	return err
}

// Maximal returns all maximal cliques, each sorted ascending and the list
// sorted lexicographically.
//
// Implementation: Bron–Kerbosch with Tomita pivoting.
// Complexity: O(3^{V/3}) worst case, the number of maximal cliques.
func Maximal(g *core.Graph) ([][]int, error) {
	var found []set.Set
	err := Each(g, func(c set.Set) bool {
		found = append(found, c)
		return true
	})
	if err != nil {
		return nil, err
	}
	set.SortSets(found)
	out := make([][]int, len(found))
	for i, c := range found {
		out[i] = c.Elems()
	}

	return out, nil
}

// CliqueNumber returns the size of a largest clique (0 for an empty graph).
func CliqueNumber(g *core.Graph) (int, error) {
	omega := 0
	err := Each(g, func(c set.Set) bool {
		if c.Len() > omega {
			omega = c.Len()
		}
		return true
	})

	return omega, err
}
