package lattice

import (
	"github.com/katalvlaran/polylattice/set"
)

// ArtificialFace returns the sentinel face {-1} of artificial nodes that
// have no natural face in the ground set.
func ArtificialFace() set.Set { return set.Set{-1} }

// BasicDecorator produces BasicDecorations from closure data that exposes
// its faces (FaceData).
//
// Primal builds grow upwards: the initial node carries the face of the
// closure of the empty set at InitialRank, every further node is one rank
// above its discoverer and carries its primal face, and the artificial top
// carries ArtificialSet one rank above the highest maximal node.
//
// Dual builds grow downwards: the initial node is the top and carries
// ArtificialSet, every further node is one rank below its discoverer and
// carries its dual face, and the artificial bottom carries the empty set one
// rank below the lowest minimal node.
type BasicDecorator[C FaceData] struct {
	InitialRank   int
	ArtificialSet set.Set
	Dual          bool
}

// NewPrimalDecorator returns a primal BasicDecorator.
func NewPrimalDecorator[C FaceData](initialRank int, artificial set.Set) BasicDecorator[C] {
	return BasicDecorator[C]{InitialRank: initialRank, ArtificialSet: artificial}
}

// NewDualDecorator returns a dual BasicDecorator.
func NewDualDecorator[C FaceData](initialRank int, artificial set.Set) BasicDecorator[C] {
	return BasicDecorator[C]{InitialRank: initialRank, ArtificialSet: artificial, Dual: true}
}

func (b BasicDecorator[C]) InitialDecoration(c C) BasicDecoration {
	if b.Dual {
		return BasicDecoration{Face: b.ArtificialSet, Rank: b.InitialRank}
	}

	return BasicDecoration{Face: c.Face(), Rank: b.InitialRank}
}

func (b BasicDecorator[C]) Decoration(c C, pred BasicDecoration) BasicDecoration {
	if b.Dual {
		return BasicDecoration{Face: c.DualFace(), Rank: pred.Rank - 1}
	}

	return BasicDecoration{Face: c.Face(), Rank: pred.Rank + 1}
}

func (b BasicDecorator[C]) ArtificialDecoration(decorations []BasicDecoration, maxNodes []int) BasicDecoration {
	if len(maxNodes) == 0 {
		return BasicDecoration{Face: b.ArtificialSet, Rank: b.InitialRank}
	}
	rank := decorations[maxNodes[0]].Rank
	for _, n := range maxNodes[1:] {
		r := decorations[n].Rank
		if (b.Dual && r < rank) || (!b.Dual && r > rank) {
			rank = r
		}
	}
	if b.Dual {
		return BasicDecoration{Face: set.New(), Rank: rank - 1}
	}

	return BasicDecoration{Face: b.ArtificialSet, Rank: rank + 1}
}
