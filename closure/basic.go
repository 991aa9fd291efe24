package closure

import (
	"errors"
	"iter"

	"github.com/katalvlaran/polylattice/lattice"
	"github.com/katalvlaran/polylattice/matrix"
	"github.com/katalvlaran/polylattice/set"
)

// ErrNilFacets is returned by NewBasic for a nil incidence matrix.
var ErrNilFacets = errors.New("closure: nil facet matrix")

// Data is the closure data of Basic: the dual face plus a lazily computed
// primal face.
type Data struct {
	dual      set.Set
	face      set.Set
	faceKnown bool
	facets    *matrix.Incidence
}

// Face returns the closed face, the intersection of the dual face's rows.
func (d *Data) Face() set.Set {
	if !d.faceKnown {
		d.face = d.facets.IntersectRows(d.dual)
		d.faceKnown = true
	}

	return d.face
}

// DualFace returns the rows (facets) containing the face.
func (d *Data) DualFace() set.Set { return d.dual }

// Option configures a Basic operator.
type Option func(*Basic)

// WithRelevantCandidates restricts the elements tried when extending a
// closed set. Elements outside the ground set are ignored.
func WithRelevantCandidates(s set.Set) Option {
	return func(b *Basic) { b.relevant = s }
}

// WithDualDecorations declares that lattice decorations carry dual faces
// (as produced by a dual BasicDecorator), which ComputeClosureData then
// reads back as the dual face directly.
func WithDualDecorations() Option {
	return func(b *Basic) { b.dualDecorations = true }
}

// Basic is the closure operator of a facet incidence matrix (rows are
// facets, columns ground elements).
type Basic struct {
	facets          *matrix.Incidence
	total           int
	relevant        set.Set
	dualDecorations bool
	faces           *set.FaceMap
}

var _ lattice.ClosureOperator[*Data, lattice.BasicDecoration] = (*Basic)(nil)

// NewBasic returns the closure operator over facets.
func NewBasic(facets *matrix.Incidence, opts ...Option) (*Basic, error) {
	if facets == nil {
		return nil, ErrNilFacets
	}
	b := &Basic{
		facets: facets,
		total:  facets.Cols(),
		faces:  set.NewFaceMap(),
	}
	for _, opt := range opts {
		opt(b)
	}
	ground := set.Range(b.total)
	if b.relevant == nil {
		b.relevant = ground
	} else {
		b.relevant = b.relevant.Intersect(ground)
	}

	return b, nil
}

// Total returns the size of the ground set.
func (b *Basic) Total() int { return b.total }

// Facets returns the underlying incidence matrix.
func (b *Basic) Facets() *matrix.Incidence { return b.facets }

// FaceMap exposes the operator's face dictionary (keyed by dual faces).
func (b *Basic) FaceMap() *set.FaceMap { return b.faces }

func (b *Basic) data(dual set.Set) *Data {
	return &Data{dual: dual, facets: b.facets}
}

// ClosureOfEmptySet returns the intersection of all facets (the full
// ground set when there are none).
func (b *Basic) ClosureOfEmptySet() *Data {
	return b.data(set.Range(b.facets.Rows()))
}

// ComputeClosureData recovers the closure data of a decorated node.
func (b *Basic) ComputeClosureData(dec lattice.BasicDecoration) *Data {
	if b.dualDecorations {
		return b.data(dec.Face)
	}
	d := b.data(b.facets.RowsContaining(dec.Face))
	d.face, d.faceKnown = dec.Face, true

	return d
}

// IndexingData returns the face map slot of c, keyed by its dual face.
func (b *Basic) IndexingData(c *Data) lattice.FaceIndexingData {
	return b.faces.Find(c.dual)
}

// ClosuresAbove yields the minimal closed sets strictly containing h.
//
// Implementation:
//   - Stage 1: candidates are the relevant elements outside h, ascending;
//     all of them start in the minimal pool.
//   - Stage 2: for candidate v, dual = h.dual ∩ col(v) and the closure is
//     the intersection of those rows. A full closure, or one containing
//     another pooled candidate, removes v from the pool; otherwise it is
//     yielded.
//
// Complexity: O(|candidates| · rows · cols/64). The sequence is recomputed
// on every iteration.
func (b *Basic) ClosuresAbove(h *Data) iter.Seq[*Data] {
	return func(yield func(*Data) bool) {
		candidates := b.relevant.Minus(h.Face())
		minimal := make(map[int]bool, candidates.Len())
		for _, v := range candidates {
			minimal[v] = true
		}
		for _, v := range candidates {
			c := b.data(h.dual.Intersect(b.facets.Col(v)))
			face := c.Face()
			if face.Len() == b.total {
				delete(minimal, v)
				continue
			}
			blocked := false
			for _, w := range face.Minus(h.Face()) {
				if w != v && minimal[w] {
					blocked = true
					break
				}
			}
			if blocked {
				delete(minimal, v)
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}
