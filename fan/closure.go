package fan

import (
	"iter"

	"github.com/katalvlaran/polylattice/lattice"
	"github.com/katalvlaran/polylattice/matrix"
	"github.com/katalvlaran/polylattice/set"
)

// Data is the closure data of a cell.
//
// Upwards (PrimalClosure) Face is the vertex set and DualFace the rows of
// the building matrix containing it. Downwards (DualClosure) the roles
// swap: DualFace is the vertex set, which is what dual decorations carry,
// and Face lists the maximal cells containing it.
type Data struct {
	face       set.Set
	dual       set.Set
	faceKnown  bool
	m          *matrix.Incidence
	byCells    bool
	artificial bool
	maximal    bool
	cell       int
}

// Face returns the primal face, computed on first use.
func (d *Data) Face() set.Set {
	if !d.faceKnown {
		if d.byCells {
			d.face = d.m.RowsContaining(d.dual)
		} else {
			d.face = d.m.IntersectRows(d.dual)
		}
		d.faceKnown = true
	}

	return d.face
}

// DualFace returns the dual face.
func (d *Data) DualFace() set.Set { return d.dual }

// IsArtificial reports whether d is the artificial start of a downward
// enumeration.
func (d *Data) IsArtificial() bool { return d.artificial }

// IsMaximal reports whether d is a maximal cell listed by a downward
// enumeration.
func (d *Data) IsMaximal() bool { return d.maximal }

// PrimalClosure enumerates the cells of a complex upwards. Its building
// matrix holds the maximal cells followed, for complexes with cell facets,
// by the non-redundant facets; a cell is an intersection of rows.
//
// The closure of the empty set is the empty face, whose dual face holds
// one row index beyond the matrix so that no column ever matches it. A
// set contained in no row closes to the whole vertex set.
type PrimalClosure[D lattice.Decorated[D]] struct {
	rows  *matrix.Incidence
	faces *set.FaceMap
}

// NewPrimalClosure returns the upward closure operator of c. Unless
// complete is set, c must carry cell facets.
func NewPrimalClosure[D lattice.Decorated[D]](c *Complex, complete bool) (*PrimalClosure[D], error) {
	if !complete && c.IsComplete() {
		return nil, ErrNoCellFacets
	}
	rows := append([]set.Set(nil), c.cells...)
	if !complete {
		rows = append(rows, c.nonRedundantFacets()...)
	}
	m, err := matrix.FromRows(c.vertices, rows)
	if err != nil {
		return nil, err
	}

	return &PrimalClosure[D]{rows: m, faces: set.NewFaceMap()}, nil
}

func (p *PrimalClosure[D]) data(dual set.Set) *Data {
	return &Data{dual: dual, m: p.rows}
}

func (p *PrimalClosure[D]) ClosureOfEmptySet() *Data {
	return &Data{face: set.Set{}, faceKnown: true, dual: set.Range(p.rows.Rows() + 1), m: p.rows}
}

func (p *PrimalClosure[D]) ComputeClosureData(dec D) *Data {
	face := dec.GetFace()
	switch {
	case face.Empty():
		return p.ClosureOfEmptySet()
	case face.Contains(-1):
		return p.data(set.Set{})
	}

	return p.data(p.rows.RowsContaining(face))
}

func (p *PrimalClosure[D]) IndexingData(c *Data) lattice.FaceIndexingData {
	return p.faces.Find(c.dual)
}

// ClosuresAbove yields, for every vertex v, the closure of H ∪ {v} whose
// dual face is inclusion-maximal among them. When every vertex outside H
// leaves all rows, the whole vertex set is yielded instead.
func (p *PrimalClosure[D]) ClosuresAbove(h *Data) iter.Seq[*Data] {
	var (
		found       []set.Set
		leavesAllOf bool
	)
	if !h.dual.Empty() {
		for v := 0; v < p.rows.Cols(); v++ {
			hc := h.dual.Intersect(p.rows.Col(v))
			switch hc.Len() {
			case 0:
				leavesAllOf = true
			case h.dual.Len():
			default:
				found = append(found, hc)
			}
		}
		found = set.MaximalSets(found)
		if len(found) == 0 && leavesAllOf {
			found = append(found, set.Set{})
		}
	}

	return func(yield func(*Data) bool) {
		for _, dual := range found {
			if !yield(p.data(dual)) {
				return
			}
		}
	}
}

// DualClosure enumerates the cells of a complex downwards, starting from an
// artificial top whose dual face covers every vertex plus one.
//
// Below the artificial top come the maximal cells. A cell with at most two
// vertices is covered by its subsets with one vertex less. The covers of a
// maximal cell of a complex with cell facets are those facets. Every other
// cell is intersected with the maximal cells (complete complexes) or the
// non-redundant facets, keeping the inclusion-maximal proper intersections.
type DualClosure[D lattice.Decorated[D]] struct {
	c           *Complex
	cells       *matrix.Incidence
	intersector []set.Set
	complete    bool
	cellIndex   *set.FaceMap
	faces       *set.FaceMap
}

// NewDualClosure returns the downward closure operator of c. complete
// selects the maximal cells as intersector; otherwise c must carry cell
// facets.
func NewDualClosure[D lattice.Decorated[D]](c *Complex, complete bool) (*DualClosure[D], error) {
	if !complete && c.IsComplete() {
		return nil, ErrNoCellFacets
	}
	m, err := matrix.FromRows(c.vertices, c.cells)
	if err != nil {
		return nil, err
	}
	d := &DualClosure[D]{c: c, cells: m, complete: complete, cellIndex: set.NewFaceMap(), faces: set.NewFaceMap()}
	if complete {
		d.intersector = c.cells
	} else {
		d.intersector = c.nonRedundantFacets()
	}
	for i, cell := range c.cells {
		if s := d.cellIndex.Find(cell); s.IsUnknown() {
			s.SetIndex(i)
		}
	}

	return d, nil
}

func (d *DualClosure[D]) data(dual set.Set) *Data {
	return &Data{dual: dual, m: d.cells, byCells: true}
}

func (d *DualClosure[D]) maximalData(i int) *Data {
	return &Data{face: set.New(i), faceKnown: true, dual: d.c.cells[i], m: d.cells, byCells: true, maximal: true, cell: i}
}

func (d *DualClosure[D]) ClosureOfEmptySet() *Data {
	return &Data{face: set.Set{}, faceKnown: true, dual: set.Range(d.c.vertices + 1), m: d.cells, byCells: true, artificial: true}
}

func (d *DualClosure[D]) ComputeClosureData(dec D) *Data {
	face := dec.GetFace()
	if face.Contains(-1) {
		return d.ClosureOfEmptySet()
	}
	if i, ok := d.cellIndex.Lookup(face); ok {
		return d.maximalData(i)
	}

	return d.data(face)
}

func (d *DualClosure[D]) IndexingData(c *Data) lattice.FaceIndexingData {
	return d.faces.Find(c.dual)
}

func (d *DualClosure[D]) ClosuresAbove(h *Data) iter.Seq[*Data] {
	var out []*Data
	size := h.dual.Len()
	switch {
	case h.artificial:
		for i := range d.c.cells {
			out = append(out, d.maximalData(i))
		}
	case size == 0:
	case size <= 2:
		for _, sub := range h.dual.Subsets(size - 1) {
			out = append(out, d.data(sub))
		}
	case h.maximal && !d.complete:
		for _, f := range d.c.facets[h.cell] {
			out = append(out, d.data(f))
		}
	default:
		var found []set.Set
		emptySeen := false
		for _, row := range d.intersector {
			hc := h.dual.Intersect(row)
			switch hc.Len() {
			case 0:
				emptySeen = true
			case size:
			default:
				found = append(found, hc)
			}
		}
		for _, f := range set.MaximalSets(found) {
			out = append(out, d.data(f))
		}
		if len(out) == 0 && emptySeen {
			out = append(out, d.data(set.Set{}))
		}
	}

	return func(yield func(*Data) bool) {
		for _, c := range out {
			if !yield(c) {
				return
			}
		}
	}
}
