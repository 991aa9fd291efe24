// Package matroid implements small matroids given by bases or circuits and
// the two lattices attached to them: the lattice of flats, built by the
// generic builder from the hyperplanes, and the lattice of cyclic flats,
// derived from it by hand.
//
// All queries enumerate subsets of the ground set, so matroids are limited
// to MaxGround elements.
package matroid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polylattice/set"
)

// MaxGround bounds the ground set size.
const MaxGround = 20

var (
	// ErrNoBases is returned for an empty basis list.
	ErrNoBases = errors.New("matroid: no bases")

	// ErrBadBasis is returned when bases differ in size or leave the
	// ground set.
	ErrBadBasis = errors.New("matroid: invalid basis")

	// ErrBadCircuit is returned for an empty circuit or one outside the
	// ground set.
	ErrBadCircuit = errors.New("matroid: invalid circuit")

	// ErrTooLarge is returned when the ground set exceeds MaxGround.
	ErrTooLarge = errors.New("matroid: ground set too large")
)

// Matroid is a matroid on {0..n-1} represented by its bases.
type Matroid struct {
	n        int
	rank     int
	bases    []set.Set
	circuits []set.Set // lazily computed
}

func checkGround(n int) error {
	if n < 0 || n > MaxGround {
		return fmt.Errorf("%w: %d elements (max %d)", ErrTooLarge, n, MaxGround)
	}

	return nil
}

// FromBases builds a matroid from its bases. Basis exchange is not
// verified.
func FromBases(n int, bases []set.Set) (*Matroid, error) {
	if err := checkGround(n); err != nil {
		return nil, err
	}
	if len(bases) == 0 {
		return nil, ErrNoBases
	}
	r := bases[0].Len()
	uniq := set.NewFaceMap()
	var out []set.Set
	for i, b := range bases {
		if b.Len() != r {
			return nil, fmt.Errorf("%w: basis %d has %d elements, want %d", ErrBadBasis, i, b.Len(), r)
		}
		if x, ok := b.Back(); ok && x >= n {
			return nil, fmt.Errorf("%w: basis %d contains %d", ErrBadBasis, i, x)
		}
		if x, ok := b.Front(); ok && x < 0 {
			return nil, fmt.Errorf("%w: basis %d contains %d", ErrBadBasis, i, x)
		}
		if s := uniq.Find(b); s.IsUnknown() {
			s.SetIndex(len(out))
			out = append(out, b)
		}
	}
	set.SortSets(out)

	return &Matroid{n: n, rank: r, bases: out}, nil
}

// FromCircuits builds a matroid from its circuits: the bases are the
// maximal subsets containing no circuit.
func FromCircuits(n int, circuits []set.Set) (*Matroid, error) {
	if err := checkGround(n); err != nil {
		return nil, err
	}
	for i, c := range circuits {
		x, ok := c.Back()
		if !ok || x >= n {
			return nil, fmt.Errorf("%w: circuit %d", ErrBadCircuit, i)
		}
		if y, _ := c.Front(); y < 0 {
			return nil, fmt.Errorf("%w: circuit %d", ErrBadCircuit, i)
		}
	}
	var indep []set.Set
	for mask := 0; mask < 1<<n; mask++ {
		s := fromMask(mask, n)
		free := true
		for _, c := range circuits {
			if c.IsSubsetOf(s) {
				free = false
				break
			}
		}
		if free {
			indep = append(indep, s)
		}
	}
	r := 0
	for _, s := range indep {
		r = max(r, s.Len())
	}
	var bases []set.Set
	for _, s := range indep {
		if s.Len() == r {
			bases = append(bases, s)
		}
	}

	return FromBases(n, bases)
}

func fromMask(mask, n int) set.Set {
	s := set.Set{}
	for i := 0; i < n; i++ {
		if mask&(1<<i) != 0 {
			s = append(s, i)
		}
	}

	return s
}

// Size returns the number of ground elements.
func (m *Matroid) Size() int { return m.n }

// Bases returns the bases in lexicographic order.
func (m *Matroid) Bases() []set.Set { return append([]set.Set(nil), m.bases...) }

// MatroidRank returns the rank of the whole matroid.
func (m *Matroid) MatroidRank() int { return m.rank }

// Rank returns the rank of s: the largest intersection with a basis.
func (m *Matroid) Rank(s set.Set) int {
	r := 0
	for _, b := range m.bases {
		r = max(r, b.Intersect(s).Len())
		if r == s.Len() {
			break
		}
	}

	return r
}

// Closure returns s together with every element that does not raise its
// rank.
func (m *Matroid) Closure(s set.Set) set.Set {
	r := m.Rank(s)
	out := s
	for e := 0; e < m.n; e++ {
		if !s.Contains(e) && m.Rank(s.With(e)) == r {
			out = out.With(e)
		}
	}

	return out
}

// Circuits returns the minimal dependent sets in lexicographic order.
func (m *Matroid) Circuits() []set.Set {
	if m.circuits != nil {
		return append([]set.Set(nil), m.circuits...)
	}
	out := []set.Set{}
	for mask := 1; mask < 1<<m.n; mask++ {
		s := fromMask(mask, m.n)
		if m.Rank(s) != s.Len()-1 {
			continue
		}
		minimal := true
		for _, e := range s {
			if m.Rank(s.Without(e)) != s.Len()-1 {
				minimal = false
				break
			}
		}
		if minimal {
			out = append(out, s)
		}
	}
	set.SortSets(out)
	m.circuits = out

	return append([]set.Set(nil), out...)
}

// Hyperplanes returns the flats of rank MatroidRank()-1: the closures of
// the bases with one element removed.
func (m *Matroid) Hyperplanes() []set.Set {
	seen := set.NewFaceMap()
	var out []set.Set
	for _, b := range m.bases {
		for _, e := range b {
			h := m.Closure(b.Without(e))
			if s := seen.Find(h); s.IsUnknown() {
				s.SetIndex(len(out))
				out = append(out, h)
			}
		}
	}
	set.SortSets(out)

	return out
}

// IsCyclic reports whether s is a union of circuits.
func (m *Matroid) IsCyclic(s set.Set) bool {
	covered := set.Set{}
	for _, c := range m.Circuits() {
		if c.IsSubsetOf(s) {
			covered = covered.Union(c)
		}
	}

	return covered.Equal(s)
}
