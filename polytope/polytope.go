// Package polytope computes face lattices of polytopes from their
// vertex/facet incidences.
//
// The incidence matrix has one row per facet and one column per vertex.
// Faces are vertex sets; the primal build grows from the empty face
// through vertices towards the facets, the dual build starts from the
// whole polytope and intersects facets downwards. Both produce the same
// lattice with the empty face at rank 0 and the polytope at rank dim+1.
package polytope

import (
	"errors"

	"github.com/katalvlaran/polylattice/closure"
	"github.com/katalvlaran/polylattice/core"
	"github.com/katalvlaran/polylattice/lattice"
	"github.com/katalvlaran/polylattice/matrix"
	"github.com/katalvlaran/polylattice/set"
)

// ErrNilIncidence is returned for a nil vertex/facet incidence matrix.
var ErrNilIncidence = errors.New("polytope: nil vertex/facet incidence")

// Lattice is the face lattice type produced by this package.
type Lattice = lattice.Lattice[lattice.BasicDecoration]

// Option configures FaceLattice.
type Option func(*options)

type options struct {
	dual      bool
	rankBound int
	build     []lattice.BuildOption
}

// WithDual builds from the top down. A rank bound forces a primal build.
func WithDual(on bool) Option {
	return func(o *options) { o.dual = on }
}

// RankBounded keeps faces of rank at most k (dimension at most k-1) and
// closes the lattice with an artificial top.
func RankBounded(k int) Option {
	return func(o *options) { o.rankBound = k }
}

// WithBuildOptions forwards options to the lattice builder.
func WithBuildOptions(opts ...lattice.BuildOption) Option {
	return func(o *options) { o.build = append(o.build, opts...) }
}

// trivial handles polytopes with at most one vertex: the empty polytope
// has the single face ∅, a point has ∅ below {0}.
func trivial(vertices int) *Lattice {
	l := lattice.New[lattice.BasicDecoration](lattice.Sequential)
	_, _ = l.AddNode(lattice.BasicDecoration{Face: set.New(), Rank: 0})
	_ = l.SetBottomNode(0)
	_ = l.SetTopNode(0)
	if vertices == 1 {
		_, _ = l.AddNode(lattice.BasicDecoration{Face: set.New(0), Rank: 1})
		_ = l.AddEdge(0, 1)
		_ = l.SetTopNode(1)
	}

	return l
}

// FaceLattice returns the face lattice of the polytope with incidence vif.
//
// Implementation:
//   - Primal: closure.Basic over the facet rows, faces grown from ∅, the
//     whole vertex set as artificial top.
//   - Dual: closure.Basic over the transposed matrix (rows are vertices),
//     decorations carrying vertex sets, the empty face as artificial
//     bottom; ranks are shifted afterwards so that ∅ has rank 0.
//
// Errors: ErrNilIncidence, builder errors.
func FaceLattice(vif *matrix.Incidence, opts ...Option) (*Lattice, error) {
	if vif == nil {
		return nil, ErrNilIncidence
	}
	o := options{rankBound: -1}
	for _, opt := range opts {
		opt(&o)
	}
	nv := vif.Cols()
	if nv <= 1 {
		return trivial(nv), nil
	}
	all := set.Range(nv)

	if o.dual && o.rankBound < 0 {
		op, err := closure.NewBasic(vif.Transpose(), closure.WithDualDecorations())
		if err != nil {
			return nil, err
		}
		build := append([]lattice.BuildOption{lattice.WithDual(true), lattice.WithArtificialNode(true)}, o.build...)
		l, err := lattice.Build[*closure.Data, lattice.BasicDecoration](op,
			lattice.TrivialCut[lattice.BasicDecoration]{},
			lattice.NewDualDecorator[*closure.Data](0, all), build...)
		if err != nil {
			return nil, err
		}
		bottom, err := l.Decoration(l.BottomNode())
		if err != nil {
			return nil, err
		}
		return l.ShiftRanks(-bottom.Rank)
	}

	op, err := closure.NewBasic(vif)
	if err != nil {
		return nil, err
	}
	var cut lattice.Cut[lattice.BasicDecoration] = lattice.TrivialCut[lattice.BasicDecoration]{}
	if o.rankBound >= 0 {
		cut = lattice.RankCut[lattice.BasicDecoration]{Bound: o.rankBound, Direction: lattice.LessEqual}
	}
	build := append([]lattice.BuildOption{lattice.WithArtificialNode(true)}, o.build...)

	return lattice.Build[*closure.Data, lattice.BasicDecoration](op, cut,
		lattice.NewPrimalDecorator[*closure.Data](0, all), build...)
}

// BoundedFaceLattice returns the lattice of bounded faces of an unbounded
// polyhedron: faces avoiding the far face (the vertices at infinity). When
// more than one face is inclusion-maximal, an artificial top with the set
// of bounded vertices joins all of them.
func BoundedFaceLattice(vif *matrix.Incidence, farFace set.Set, opts ...Option) (*Lattice, error) {
	if vif == nil {
		return nil, ErrNilIncidence
	}
	o := options{rankBound: -1}
	for _, opt := range opts {
		opt(&o)
	}
	op, err := closure.NewBasic(vif)
	if err != nil {
		return nil, err
	}
	var cut lattice.Cut[lattice.BasicDecoration] = lattice.SetAvoidingCut[lattice.BasicDecoration]{Avoid: farFace}
	if o.rankBound >= 0 {
		cut = lattice.And[lattice.BasicDecoration](cut, lattice.RankCut[lattice.BasicDecoration]{Bound: o.rankBound, Direction: lattice.LessEqual})
	}
	l, err := lattice.Build[*closure.Data, lattice.BasicDecoration](op, cut,
		lattice.NewPrimalDecorator[*closure.Data](0, set.Range(vif.Cols())), o.build...)
	if err != nil {
		return nil, err
	}
	if l.TopNode() >= 0 {
		return l, nil
	}

	var sinks []int
	top := 0
	for n := 0; n < l.Nodes(); n++ {
		if l.Graph().OutDegree(n) == 0 {
			sinks = append(sinks, n)
		}
		r, _ := l.NodeRank(n)
		top = max(top, r+1)
	}
	bounded := set.Range(vif.Cols()).Minus(farFace)
	t, err := l.AddNode(lattice.BasicDecoration{Face: bounded, Rank: top})
	if err != nil {
		return nil, err
	}
	for _, s := range sinks {
		if err = l.AddEdge(s, t); err != nil {
			return nil, err
		}
	}

	return l, l.SetTopNode(t)
}

// FVector returns (f_0, ..., f_{d-1}) of a face lattice.
func FVector(l *Lattice) []int { return l.FVector() }

// VertexGraph returns the graph of the polytope: vertex i is node i and
// two vertices are adjacent iff they span an edge (a rank 2 face).
func VertexGraph(l *Lattice) *core.Graph {
	n := len(l.NodesOfRank(1))
	g := core.NewGraph(n, core.WithDirected(false))
	for _, e := range l.NodesOfRank(2) {
		if f := l.Face(e); f.Len() == 2 {
			_ = g.AddEdge(f[0], f[1])
		}
	}

	return g
}

// FacetGraph returns the dual graph: facets are numbered in rank-map order
// and adjacent iff they share a ridge.
func FacetGraph(l *Lattice) (*core.Graph, error) {
	if l.TopNode() < 0 {
		return nil, lattice.ErrNoTopNode
	}
	topRank, err := l.NodeRank(l.TopNode())
	if err != nil {
		return nil, err
	}
	facets := l.NodesOfRank(topRank - 1)
	index := make(map[int]int, len(facets))
	for i, f := range facets {
		index[f] = i
	}
	g := core.NewGraph(len(facets), core.WithDirected(false))
	for _, ridge := range l.NodesOfRank(topRank - 2) {
		up, err := l.OutAdjacent(ridge)
		if err != nil {
			return nil, err
		}
		for i := 0; i < len(up); i++ {
			for j := i + 1; j < len(up); j++ {
				a, okA := index[up[i]]
				b, okB := index[up[j]]
				if okA && okB {
					_ = g.AddEdge(a, b)
				}
			}
		}
	}

	return g, nil
}
