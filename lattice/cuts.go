package lattice

import "github.com/katalvlaran/polylattice/set"

// CutFunc adapts a plain predicate to the Cut interface.
type CutFunc[D any] func(d D) bool

// Accept calls f(d).
func (f CutFunc[D]) Accept(d D) bool { return f(d) }

// TrivialCut accepts every node.
type TrivialCut[D any] struct{}

func (TrivialCut[D]) Accept(D) bool { return true }

// SetAvoidingCut accepts faces disjoint from Avoid.
type SetAvoidingCut[D Decorated[D]] struct {
	Avoid set.Set
}

func (c SetAvoidingCut[D]) Accept(d D) bool { return d.GetFace().Disjoint(c.Avoid) }

// NotFullSetCut rejects faces with Total or more elements.
type NotFullSetCut[D Decorated[D]] struct {
	Total int
}

func (c NotFullSetCut[D]) Accept(d D) bool { return d.GetFace().Len() < c.Total }

// RankDirection selects the comparison of a RankCut.
type RankDirection int

const (
	LessEqual    RankDirection = iota // rank <= Bound
	GreaterEqual                      // rank >= Bound
)

// RankCut accepts nodes whose rank compares to Bound as Direction says.
type RankCut[D Decorated[D]] struct {
	Bound     int
	Direction RankDirection
}

func (c RankCut[D]) Accept(d D) bool {
	if c.Direction == GreaterEqual {
		return d.GetRank() >= c.Bound
	}

	return d.GetRank() <= c.Bound
}

// And combines cuts by logical conjunction; an empty list accepts all.
func And[D any](cuts ...Cut[D]) Cut[D] {
	return CutFunc[D](func(d D) bool {
		for _, c := range cuts {
			if !c.Accept(d) {
				return false
			}
		}
		return true
	})
}
