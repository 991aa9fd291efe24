// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Strategy ports of the lattice builder (closure operator, decorator,
//       cut) and the basic decoration they exchange.

package lattice

import (
	"errors"
	"iter"

	"github.com/katalvlaran/polylattice/set"
)

// Sentinel errors.
var (
	// ErrNodeOutOfRange indicates a node id outside 0..Nodes()-1.
	ErrNodeOutOfRange = errors.New("lattice: node id out of range")

	// ErrNotSequential is returned when a node would break the contiguous
	// rank ranges of a Sequential lattice.
	ErrNotSequential = errors.New("lattice: node breaks sequential rank order")

	// ErrTooManyNodes is returned when a build exceeds WithMaxNodes.
	ErrTooManyNodes = errors.New("lattice: node limit exceeded")

	// ErrNilStrategy is returned when the closure operator, cut or
	// decorator passed to the builder is nil.
	ErrNilStrategy = errors.New("lattice: nil closure operator, cut or decorator")

	// ErrBadPermutation indicates a permutation that is not a bijection or
	// does not respect rank levels.
	ErrBadPermutation = errors.New("lattice: invalid permutation")

	// ErrNoTopNode is returned by operations that need a top node when the
	// lattice has none.
	ErrNoTopNode = errors.New("lattice: no top node")

	// ErrInconsistent reports a violated structural invariant (Validate,
	// FromRecord).
	ErrInconsistent = errors.New("lattice: inconsistent lattice")
)

// Decorated is the constraint on node decorations. A decoration exposes a
// face and a rank and can produce modified copies of itself, which is what
// relabelling operations (PermuteFaces, ShiftRanks) need.
type Decorated[D any] interface {
	GetFace() set.Set
	GetRank() int
	WithFace(face set.Set) D
	WithRank(rank int) D
}

// BasicDecoration is the decoration produced by BasicDecorator: the closed
// face (or dual face, in dual builds) and its rank.
type BasicDecoration struct {
	Face set.Set `yaml:"face" json:"face"`
	Rank int     `yaml:"rank" json:"rank"`
}

func (d BasicDecoration) GetFace() set.Set { return d.Face }
func (d BasicDecoration) GetRank() int     { return d.Rank }

func (d BasicDecoration) WithFace(face set.Set) BasicDecoration {
	return BasicDecoration{Face: face, Rank: d.Rank}
}

func (d BasicDecoration) WithRank(rank int) BasicDecoration {
	return BasicDecoration{Face: d.Face, Rank: rank}
}

// FaceIndexingData is a by-reference handle into a closure operator's
// face→node dictionary. *set.Slot implements it.
type FaceIndexingData interface {
	Index() int
	IsUnknown() bool
	IsUnwanted() bool
	SetIndex(i int)
	MarkUnwanted()
}

// FaceData is closure data that can report its primal and dual face.
// Decorators built for the basic operators read closure data through it.
type FaceData interface {
	Face() set.Set
	DualFace() set.Set
}

// ClosureOperator enumerates closed sets. C is the operator's closure data,
// D the decoration type of the lattice under construction.
type ClosureOperator[C any, D any] interface {
	// ClosureOfEmptySet returns the unique minimal closed set.
	ClosureOfEmptySet() C
	// ComputeClosureData re-derives closure data for an existing decoration.
	ComputeClosureData(dec D) C
	// IndexingData looks up (or allocates) the slot of c in the face map.
	IndexingData(c C) FaceIndexingData
	// ClosuresAbove yields the minimal closed sets strictly containing c.
	ClosuresAbove(c C) iter.Seq[C]
}

// Decorator derives node decorations from closure data.
type Decorator[C any, D any] interface {
	// InitialDecoration decorates the first node of a fresh build.
	InitialDecoration(c C) D
	// Decoration decorates a closed set discovered above pred.
	Decoration(c C, pred D) D
	// ArtificialDecoration decorates the synthesized top (bottom, if dual)
	// node given all decorations and the maximal nodes it will join.
	ArtificialDecoration(decorations []D, maxNodes []int) D
}

// Cut decides whether a decorated closed set becomes a lattice node.
type Cut[D any] interface {
	Accept(d D) bool
}
