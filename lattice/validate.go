package lattice

import (
	"fmt"

	"github.com/katalvlaran/polylattice/set"
)

// Validate checks the structural invariants of l:
//   - every edge strictly increases the rank,
//   - no two nodes carry the same face,
//   - the rank map lists exactly the decorated ranks,
//   - the top (bottom) node, when designated, has the highest (lowest) rank.
//
// Errors: ErrInconsistent wrapping the first violation found.
func Validate[D Decorated[D]](l *Lattice[D]) error {
	if l == nil {
		return fmt.Errorf("%w: nil lattice", ErrInconsistent)
	}

	for _, e := range l.g.Edges() {
		rf, rt := l.decor[e.From].GetRank(), l.decor[e.To].GetRank()
		if rt <= rf {
			return fmt.Errorf("%w: edge %d->%d goes from rank %d to %d", ErrInconsistent, e.From, e.To, rf, rt)
		}
	}

	seen := set.NewFaceMap()
	for n, d := range l.decor {
		slot := seen.Find(d.GetFace())
		if !slot.IsUnknown() {
			return fmt.Errorf("%w: nodes %d and %d share face %v", ErrInconsistent, slot.Index(), n, d.GetFace())
		}
		slot.SetIndex(n)
	}

	counted := 0
	for _, r := range l.ranks.Ranks() {
		for _, n := range l.ranks.NodesOfRank(r) {
			if n < 0 || n >= len(l.decor) || l.decor[n].GetRank() != r {
				return fmt.Errorf("%w: rank map lists node %d at rank %d", ErrInconsistent, n, r)
			}
			counted++
		}
	}
	if counted != len(l.decor) {
		return fmt.Errorf("%w: rank map covers %d of %d nodes", ErrInconsistent, counted, len(l.decor))
	}

	ranks := l.ranks.Ranks()
	if l.top >= 0 && l.decor[l.top].GetRank() != ranks[len(ranks)-1] {
		return fmt.Errorf("%w: top node %d is not of highest rank", ErrInconsistent, l.top)
	}
	if l.bottom >= 0 && l.decor[l.bottom].GetRank() != ranks[0] {
		return fmt.Errorf("%w: bottom node %d is not of lowest rank", ErrInconsistent, l.bottom)
	}

	return nil
}
