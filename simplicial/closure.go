package simplicial

import (
	"iter"

	"github.com/katalvlaran/polylattice/lattice"
	"github.com/katalvlaran/polylattice/set"
)

// Data is the closure data of a simplex: the simplex itself and the facets
// containing it. The top node of a dual build has top set and no face.
type Data struct {
	face set.Set
	dual set.Set
	top  bool
}

// Face returns the simplex.
func (d *Data) Face() set.Set { return d.face }

// DualFace returns the indices of the facets containing the simplex.
func (d *Data) DualFace() set.Set { return d.dual }

// Closure enumerates the simplices of a complex. Upwards (the default) it
// extends a simplex by one vertex of a facet containing it; downwards it
// starts from an artificial top, steps to the facets and then removes one
// vertex at a time.
type Closure struct {
	c     *Complex
	down  bool
	faces *set.FaceMap
}

var _ lattice.ClosureOperator[*Data, lattice.BasicDecoration] = (*Closure)(nil)

// NewClosure returns the upward closure operator of c.
func NewClosure(c *Complex) *Closure {
	return &Closure{c: c, faces: set.NewFaceMap()}
}

// NewDualClosure returns the downward closure operator of c.
func NewDualClosure(c *Complex) *Closure {
	return &Closure{c: c, down: true, faces: set.NewFaceMap()}
}

func (op *Closure) data(face set.Set) *Data {
	return &Data{face: face, dual: op.c.FacetsContaining(face)}
}

// ClosureOfEmptySet is the empty simplex, or the artificial top when
// enumerating downwards.
func (op *Closure) ClosureOfEmptySet() *Data {
	if op.down {
		return &Data{face: lattice.ArtificialFace(), dual: set.New(), top: true}
	}

	return op.data(set.New())
}

// ComputeClosureData recovers the data of a decorated simplex.
func (op *Closure) ComputeClosureData(dec lattice.BasicDecoration) *Data {
	if x, ok := dec.Face.Front(); ok && x < 0 {
		return &Data{face: dec.Face, dual: set.New(), top: true}
	}

	return op.data(dec.Face)
}

// IndexingData keys simplices by their vertex set.
func (op *Closure) IndexingData(d *Data) lattice.FaceIndexingData {
	return op.faces.Find(d.face)
}

// ClosuresAbove yields the simplices covering h (upwards) or covered by h
// (downwards).
func (op *Closure) ClosuresAbove(h *Data) iter.Seq[*Data] {
	return func(yield func(*Data) bool) {
		if op.down {
			op.below(h, yield)
			return
		}
		if h.top {
			return
		}
		var reach set.Set
		for _, f := range h.dual {
			reach = reach.Union(op.c.facets[f])
		}
		for _, v := range reach.Minus(h.face) {
			if !yield(op.data(h.face.With(v))) {
				return
			}
		}
	}
}

func (op *Closure) below(h *Data, yield func(*Data) bool) {
	if h.top {
		for _, f := range op.c.facets {
			if !yield(op.data(f)) {
				return
			}
		}
		return
	}
	for _, v := range h.face {
		if !yield(op.data(h.face.Without(v))) {
			return
		}
	}
}

// decorator ranks a simplex by its size; the artificial top sits one rank
// above the largest simplex joined to it.
type decorator struct {
	topRank int
}

func (d decorator) InitialDecoration(c *Data) lattice.BasicDecoration {
	if c.top {
		return lattice.BasicDecoration{Face: c.face, Rank: d.topRank}
	}

	return lattice.BasicDecoration{Face: c.face, Rank: c.face.Len()}
}

func (d decorator) Decoration(c *Data, _ lattice.BasicDecoration) lattice.BasicDecoration {
	return lattice.BasicDecoration{Face: c.face, Rank: c.face.Len()}
}

func (d decorator) ArtificialDecoration(decorations []lattice.BasicDecoration, maxNodes []int) lattice.BasicDecoration {
	if len(maxNodes) == 0 {
		return lattice.BasicDecoration{Face: lattice.ArtificialFace(), Rank: d.topRank}
	}
	rank := decorations[maxNodes[0]].Rank
	for _, n := range maxNodes[1:] {
		rank = max(rank, decorations[n].Rank)
	}

	return lattice.BasicDecoration{Face: lattice.ArtificialFace(), Rank: rank + 1}
}
