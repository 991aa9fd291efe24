package components

import (
	"sort"

	uf "github.com/spakin/disjoint"

	"github.com/katalvlaran/polylattice/core"
)

// Connected returns the connected components of g read as an undirected
// graph (edge orientation ignored). Each component is sorted ascending and
// components are ordered by their smallest node.
//
// Implementation: one union-find element per live node, one Union per edge.
// Complexity: O((V + E) · α(V)).
func Connected(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	nodes := g.ValidNodes()
	elems := make(map[int]*uf.Element, len(nodes))
	for _, n := range nodes {
		elems[n] = uf.NewElement()
	}
	for _, e := range g.Edges() {
		uf.Union(elems[e.From], elems[e.To])
	}

	byRep := make(map[*uf.Element][]int)
	var reps []*uf.Element // first-seen order == ascending smallest node
	for _, n := range nodes {
		rep := elems[n].Find()
		if _, ok := byRep[rep]; !ok {
			reps = append(reps, rep)
		}
		byRep[rep] = append(byRep[rep], n)
	}
	out := make([][]int, 0, len(reps))
	for _, r := range reps {
		comp := byRep[r]
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out, nil
}

// IsConnected reports whether g has at most one connected component.
func IsConnected(g *core.Graph) (bool, error) {
	comps, err := Connected(g)
	if err != nil {
		return false, err
	}

	return len(comps) <= 1, nil
}
