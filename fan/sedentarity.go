package fan

import (
	"fmt"

	"github.com/katalvlaran/polylattice/lattice"
	"github.com/katalvlaran/polylattice/set"
)

// SedentarityDecoration decorates a cell of a non-compact complex.
// Sedentarity is the set of far vertices of the cell; Realisation is the
// smallest cell containing the cell's finite vertices.
type SedentarityDecoration struct {
	Face        set.Set `yaml:"face" json:"face"`
	Rank        int     `yaml:"rank" json:"rank"`
	Realisation set.Set `yaml:"realisation" json:"realisation"`
	Sedentarity set.Set `yaml:"sedentarity" json:"sedentarity"`
}

func (d SedentarityDecoration) GetFace() set.Set { return d.Face }
func (d SedentarityDecoration) GetRank() int     { return d.Rank }

// WithFace replaces the face only; Realisation and Sedentarity are kept.
func (d SedentarityDecoration) WithFace(face set.Set) SedentarityDecoration {
	d.Face = face
	return d
}

func (d SedentarityDecoration) WithRank(rank int) SedentarityDecoration {
	d.Rank = rank
	return d
}

// Sedentarity returns the far vertices of face.
func Sedentarity(face, far set.Set) set.Set { return face.Intersect(far) }

// ComputeOldClosure returns the node of the smallest face of l containing
// s. It descends from the top node, always stepping to the first lower
// cover whose face contains s, until no lower cover does. In a lattice the
// faces containing s have a unique minimum, which is where the descent
// stops.
//
// Errors: lattice.ErrNoTopNode.
func ComputeOldClosure[D lattice.Decorated[D]](l *lattice.Lattice[D], s set.Set) (int, error) {
	n := l.TopNode()
	if n < 0 {
		return -1, lattice.ErrNoTopNode
	}
	for {
		down, err := l.InAdjacent(n)
		if err != nil {
			return -1, err
		}
		next := -1
		for _, p := range down {
			if s.IsSubsetOf(l.Face(p)) {
				next = p
				break
			}
		}
		if next < 0 {
			return n, nil
		}
		n = next
	}
}

// SedentarityHasseDiagram returns the face lattice of c with every cell
// decorated by its sedentarity with respect to far and by its realisation.
// Rank bounds apply as in HasseDiagram; far vertices do not cut cells here.
//
// Errors: as HasseDiagram.
func SedentarityHasseDiagram(c *Complex, far set.Set, opts ...Option) (*lattice.Lattice[SedentarityDecoration], error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	o.far = nil

	mk := func(face set.Set, rank int) SedentarityDecoration {
		return SedentarityDecoration{Face: face, Rank: rank, Sedentarity: Sedentarity(face, far)}
	}
	l, err := build[SedentarityDecoration](c, o, mk)
	if err != nil {
		return nil, err
	}

	realised := make([]set.Set, l.Nodes())
	for n := range realised {
		face := l.Face(n)
		if face.Contains(-1) {
			realised[n] = face
			continue
		}
		r, err := ComputeOldClosure(l, face.Minus(far))
		if err != nil {
			return nil, fmt.Errorf("fan: realisation of node %d: %w", n, err)
		}
		realised[n] = l.Face(r)
	}

	return l.MapDecorations(func(n int, d SedentarityDecoration) SedentarityDecoration {
		d.Realisation = realised[n]
		return d
	})
}
