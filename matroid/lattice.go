package matroid

import (
	"github.com/katalvlaran/polylattice/closure"
	"github.com/katalvlaran/polylattice/lattice"
	"github.com/katalvlaran/polylattice/matrix"
	"github.com/katalvlaran/polylattice/set"
)

// Lattice is the decorated lattice type of this package; ranks are matroid
// ranks.
type Lattice = lattice.Lattice[lattice.BasicDecoration]

// Flats returns the lattice of flats. Every flat is an intersection of
// hyperplanes, so the basic closure operator over the hyperplane incidence
// enumerates them; the ground set is the artificial top. The bottom is the
// closure of ∅ (the set of loops).
func Flats(m *Matroid, opts ...lattice.BuildOption) (*Lattice, error) {
	if m.rank == 0 {
		// a single flat: the ground set
		l := lattice.New[lattice.BasicDecoration](lattice.Sequential)
		_, _ = l.AddNode(lattice.BasicDecoration{Face: set.Range(m.n), Rank: 0})
		_ = l.SetBottomNode(0)
		_ = l.SetTopNode(0)
		return l, nil
	}
	hyper, err := matrix.FromRows(m.n, m.Hyperplanes())
	if err != nil {
		return nil, err
	}
	op, err := closure.NewBasic(hyper)
	if err != nil {
		return nil, err
	}
	opts = append([]lattice.BuildOption{lattice.WithArtificialNode(true)}, opts...)

	return lattice.Build[*closure.Data, lattice.BasicDecoration](op,
		lattice.TrivialCut[lattice.BasicDecoration]{},
		lattice.NewPrimalDecorator[*closure.Data](0, set.Range(m.n)), opts...)
}

// CyclicFlats returns the lattice of cyclic flats (flats that are unions of
// circuits).
//
// Implementation:
//   - Stage 1: build the lattice of flats.
//   - Stage 2: walk it rank by rank. Every flat inherits the nearest cyclic
//     flats below it: its cyclic lower covers themselves, and what its
//     non-cyclic lower covers inherited.
//   - Stage 3: a cyclic flat becomes a node joined to the inclusion-maximal
//     inherited flats, so edges link consecutive cyclic flats only.
//
// Ranks are matroid ranks, so edges may skip ranks.
func CyclicFlats(m *Matroid) (*Lattice, error) {
	flats, err := Flats(m)
	if err != nil {
		return nil, err
	}

	out := lattice.New[lattice.BasicDecoration](lattice.Sequential)
	newID := make(map[int]int)
	below := make(map[int][]int) // flat node -> nearest cyclic flat nodes (old ids)

	for _, r := range flats.InverseRankMap().Ranks() {
		for _, n := range flats.NodesOfRank(r) {
			face := flats.Face(n)
			down, err := flats.InAdjacent(n)
			if err != nil {
				return nil, err
			}
			var cands []int
			for _, p := range down {
				if _, ok := newID[p]; ok {
					cands = append(cands, p)
				} else {
					cands = append(cands, below[p]...)
				}
			}
			cands = maximalNodes(flats, cands)

			if !m.IsCyclic(face) {
				below[n] = cands
				continue
			}
			id, err := out.AddNode(lattice.BasicDecoration{Face: face, Rank: m.Rank(face)})
			if err != nil {
				return nil, err
			}
			newID[n] = id
			for _, p := range cands {
				if err = out.AddEdge(newID[p], id); err != nil {
					return nil, err
				}
			}
		}
	}

	// the closure of ∅ and the largest cyclic flat are always cyclic
	for n := 0; n < out.Nodes(); n++ {
		if up, _ := out.OutAdjacent(n); len(up) == 0 {
			_ = out.SetTopNode(n)
		}
		if down, _ := out.InAdjacent(n); len(down) == 0 {
			_ = out.SetBottomNode(n)
		}
	}

	return out, nil
}

// maximalNodes removes duplicates and every node whose face is contained in
// another candidate's face.
func maximalNodes(l *Lattice, nodes []int) []int {
	faces := make([]set.Set, len(nodes))
	for i, n := range nodes {
		faces[i] = l.Face(n)
	}
	keep := set.MaximalSets(faces)
	var out []int
	for _, f := range keep {
		for i, g := range faces {
			if f.Equal(g) {
				out = append(out, nodes[i])
				break
			}
		}
	}

	return set.New(out...)
}
