// Package simplicial builds face lattices of abstract simplicial complexes.
//
// A complex is given by its facets (maximal simplices). Every subset of a
// facet is a face, so no intersection test is needed: the faces covering a
// simplex H are H ∪ {v} for the vertices v of the facets containing H, and
// the faces covered by H are H minus one vertex.
package simplicial

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polylattice/matrix"
	"github.com/katalvlaran/polylattice/set"
)

var (
	// ErrNoFacets is returned for a complex without facets.
	ErrNoFacets = errors.New("simplicial: complex has no facets")

	// ErrNegativeVertex is returned for a facet with a negative element.
	ErrNegativeVertex = errors.New("simplicial: negative vertex")
)

// Complex is an abstract simplicial complex over vertices 0..Vertices()-1.
type Complex struct {
	facets   []set.Set
	vertices int
	inc      *matrix.Incidence
}

// New builds a complex from facets. Non-maximal input sets are dropped; the
// vertex count is one more than the largest vertex seen.
func New(facets []set.Set) (*Complex, error) {
	if len(facets) == 0 {
		return nil, ErrNoFacets
	}
	n := 0
	for i, f := range facets {
		if x, ok := f.Front(); ok && x < 0 {
			return nil, fmt.Errorf("%w: facet %d contains %d", ErrNegativeVertex, i, x)
		}
		if x, ok := f.Back(); ok && x+1 > n {
			n = x + 1
		}
	}
	maximal := set.MaximalSets(facets)
	set.SortSets(maximal)
	inc, err := matrix.FromRows(n, maximal)
	if err != nil {
		return nil, err
	}

	return &Complex{facets: maximal, vertices: n, inc: inc}, nil
}

// Facets returns the maximal simplices in lexicographic order.
func (c *Complex) Facets() []set.Set { return append([]set.Set(nil), c.facets...) }

// Vertices returns the size of the vertex set.
func (c *Complex) Vertices() int { return c.vertices }

// Dimension is the largest facet size minus one (-1 for {∅}).
func (c *Complex) Dimension() int {
	d := -1
	for _, f := range c.facets {
		if f.Len()-1 > d {
			d = f.Len() - 1
		}
	}

	return d
}

// IsPure reports whether all facets have the same dimension.
func (c *Complex) IsPure() bool {
	for _, f := range c.facets[1:] {
		if f.Len() != c.facets[0].Len() {
			return false
		}
	}

	return true
}

// FacetsContaining returns the indices of the facets that contain face.
func (c *Complex) FacetsContaining(face set.Set) set.Set {
	return c.inc.RowsContaining(face)
}

// FVector counts faces by dimension: f[i] is the number of i-dimensional
// faces. Faces are counted once even when shared by several facets.
func (c *Complex) FVector() []int {
	f := make([]int, c.Dimension()+1)
	for k := 1; k <= len(f); k++ {
		seen := set.NewFaceMap()
		for _, facet := range c.facets {
			for _, s := range facet.Subsets(k) {
				seen.Find(s)
			}
		}
		f[k-1] = seen.Len()
	}

	return f
}

// EulerCharacteristic returns the alternating sum of the f-vector.
func (c *Complex) EulerCharacteristic() int {
	chi := 0
	for i, fi := range c.FVector() {
		if i%2 == 0 {
			chi += fi
		} else {
			chi -= fi
		}
	}

	return chi
}

// Boundary returns the ridges (codimension one faces of facets) that lie in
// exactly one facet, sorted lexicographically. For a pseudomanifold this is
// its boundary complex.
func (c *Complex) Boundary() []set.Set {
	count := set.NewFaceMap()
	var ridges []set.Set
	for _, facet := range c.facets {
		if facet.Empty() {
			continue
		}
		for _, r := range facet.Subsets(facet.Len() - 1) {
			// the slot index doubles as an occurrence counter
			slot := count.Find(r)
			if slot.IsUnknown() {
				slot.SetIndex(0)
				ridges = append(ridges, r)
			}
			slot.SetIndex(slot.Index() + 1)
		}
	}
	var out []set.Set
	for _, r := range ridges {
		if n, _ := count.Lookup(r); n == 1 {
			out = append(out, r)
		}
	}
	set.SortSets(out)

	return out
}
