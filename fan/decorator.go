package fan

import (
	"github.com/katalvlaran/polylattice/lattice"
	"github.com/katalvlaran/polylattice/set"
)

// Maker assembles a decoration of type D from a face and a rank.
type Maker[D any] func(face set.Set, rank int) D

// Basic is the Maker of lattice.BasicDecoration.
func Basic(face set.Set, rank int) lattice.BasicDecoration {
	return lattice.BasicDecoration{Face: face, Rank: rank}
}

// ComplexDecorator ranks the cells of a complex.
//
// Upwards, ranks grow by one from the empty face at 0; when fullIsArtificial
// is set the whole vertex set is replaced by the artificial face at
// Dimension()+2. Downwards, the artificial top sits at Dimension()+2, a
// maximal cell at its dimension plus one and every other cell one below
// its discoverer; the artificial bottom is the empty face at rank 0.
type ComplexDecorator[D lattice.Decorated[D]] struct {
	dual             bool
	initialRank      int
	topRank          int
	fullIsArtificial bool
	vertices         int
	c                *Complex
	mk               Maker[D]
}

// NewPrimalComplexDecorator returns the upward decorator of c.
func NewPrimalComplexDecorator[D lattice.Decorated[D]](c *Complex, fullIsArtificial bool, mk Maker[D]) ComplexDecorator[D] {
	return ComplexDecorator[D]{
		topRank:          c.dim + 2,
		fullIsArtificial: fullIsArtificial,
		vertices:         c.vertices,
		c:                c,
		mk:               mk,
	}
}

// NewDualComplexDecorator returns the downward decorator of c.
func NewDualComplexDecorator[D lattice.Decorated[D]](c *Complex, mk Maker[D]) ComplexDecorator[D] {
	return ComplexDecorator[D]{
		dual:        true,
		initialRank: c.dim + 2,
		topRank:     c.dim + 2,
		vertices:    c.vertices,
		c:           c,
		mk:          mk,
	}
}

func (d ComplexDecorator[D]) InitialDecoration(c *Data) D {
	if d.dual {
		return d.mk(lattice.ArtificialFace(), d.initialRank)
	}

	return d.mk(c.Face(), d.initialRank)
}

func (d ComplexDecorator[D]) Decoration(c *Data, pred D) D {
	if d.dual {
		if c.maximal {
			return d.mk(c.dual, d.c.CellDim(c.cell)+1)
		}
		return d.mk(c.dual, pred.GetRank()-1)
	}
	face := c.Face()
	if d.fullIsArtificial && face.Len() == d.vertices {
		return d.mk(lattice.ArtificialFace(), d.topRank)
	}

	return d.mk(face, pred.GetRank()+1)
}

func (d ComplexDecorator[D]) ArtificialDecoration(decorations []D, maxNodes []int) D {
	if d.dual {
		return d.mk(set.Set{}, 0)
	}
	rank := d.initialRank
	for _, n := range maxNodes {
		rank = max(rank, decorations[n].GetRank())
	}

	return d.mk(lattice.ArtificialFace(), rank+1)
}
