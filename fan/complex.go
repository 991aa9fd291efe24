// Package fan builds face lattices of polyhedral fans and complexes from
// their maximal cells.
//
// A Complex lists its maximal cells as vertex (ray) sets over the columns
// 0..Vertices()-1, together with its combinatorial dimension. Cells of a
// complete complex are generated by intersections of maximal cells; for
// other complexes the facets of every maximal cell are supplied as well.
//
// HasseDiagram picks the enumeration direction: top-down (dual) by default,
// bottom-up (primal) when a rank upper bound or far vertices restrict the
// result. Both directions produce the same ranks: the empty face at 0, a
// cell of combinatorial dimension d at d+1 and the artificial top {-1} at
// Dimension()+2.
//
// Non-compact complexes mark their vertices at infinity as far vertices.
// SedentarityHasseDiagram decorates every face with the far vertices it
// contains and with the smallest face realising its finite part.
package fan

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polylattice/set"
)

var (
	// ErrVertexRange is returned when a cell or facet names a vertex
	// outside 0..vertices-1.
	ErrVertexRange = errors.New("fan: vertex out of range")

	// ErrShape is returned when per-cell facets or dimensions do not match
	// the number of cells.
	ErrShape = errors.New("fan: per-cell data does not match cells")

	// ErrDimension is returned for a negative dimension of a non-empty
	// complex, or a cell dimension above it.
	ErrDimension = errors.New("fan: invalid dimension")

	// ErrNoCellFacets is returned when a build treats the complex as not
	// closed under intersection but no cell facets were given.
	ErrNoCellFacets = errors.New("fan: cell facets required")
)

// Complex is a polyhedral fan or complex given by its maximal cells.
type Complex struct {
	cells    []set.Set
	vertices int
	dim      int
	facets   [][]set.Set // facets of each maximal cell; nil when complete
	dims     []int       // combinatorial dimension per cell; nil when pure
}

// ComplexOption configures New.
type ComplexOption func(*Complex)

// WithCellFacets supplies the facets of every maximal cell, in cell order.
// A complex with cell facets is not assumed to be closed under
// intersection of its maximal cells.
func WithCellFacets(facets [][]set.Set) ComplexOption {
	return func(c *Complex) { c.facets = facets }
}

// WithCellDims supplies the combinatorial dimension of every maximal cell,
// in cell order, for complexes that are not pure.
func WithCellDims(dims []int) ComplexOption {
	return func(c *Complex) { c.dims = dims }
}

// New returns the complex with the given maximal cells over vertices
// columns and combinatorial dimension dim.
//
// Errors: ErrVertexRange, ErrShape, ErrDimension.
func New(cells []set.Set, vertices, dim int, opts ...ComplexOption) (*Complex, error) {
	c := &Complex{cells: cells, vertices: vertices, dim: dim}
	for _, opt := range opts {
		opt(c)
	}
	if vertices < 0 {
		return nil, fmt.Errorf("%w: %d vertices", ErrVertexRange, vertices)
	}
	if len(cells) > 0 && dim < 0 {
		return nil, fmt.Errorf("%w: %d", ErrDimension, dim)
	}
	inRange := func(s set.Set) bool {
		lo, ok := s.Front()
		hi, _ := s.Back()
		return !ok || (lo >= 0 && hi < vertices)
	}
	for i, cell := range cells {
		if !inRange(cell) {
			return nil, fmt.Errorf("%w: cell %d is %v", ErrVertexRange, i, cell)
		}
	}
	if c.facets != nil {
		if len(c.facets) != len(cells) {
			return nil, fmt.Errorf("%w: %d facet lists for %d cells", ErrShape, len(c.facets), len(cells))
		}
		for i, fs := range c.facets {
			for _, f := range fs {
				if !inRange(f) || !f.IsSubsetOf(cells[i]) {
					return nil, fmt.Errorf("%w: facet %v of cell %d", ErrVertexRange, f, i)
				}
			}
		}
	}
	if c.dims != nil {
		if len(c.dims) != len(cells) {
			return nil, fmt.Errorf("%w: %d dimensions for %d cells", ErrShape, len(c.dims), len(cells))
		}
		for i, d := range c.dims {
			if d < 0 || d > dim {
				return nil, fmt.Errorf("%w: cell %d has dimension %d of %d", ErrDimension, i, d, dim)
			}
		}
	}

	return c, nil
}

// Cells returns the maximal cells.
func (c *Complex) Cells() []set.Set { return c.cells }

// Vertices returns the number of vertex columns.
func (c *Complex) Vertices() int { return c.vertices }

// Dimension returns the combinatorial dimension.
func (c *Complex) Dimension() int { return c.dim }

// IsComplete reports whether the complex is taken to be closed under
// intersection of its maximal cells (no cell facets were given).
func (c *Complex) IsComplete() bool { return c.facets == nil }

// IsPure reports whether all maximal cells have dimension Dimension().
func (c *Complex) IsPure() bool {
	for _, d := range c.dims {
		if d != c.dim {
			return false
		}
	}

	return true
}

// CellDim returns the combinatorial dimension of maximal cell i.
func (c *Complex) CellDim(i int) int {
	if c.dims == nil {
		return c.dim
	}

	return c.dims[i]
}

// nonRedundantFacets returns the inclusion-maximal facets over all cells.
func (c *Complex) nonRedundantFacets() []set.Set {
	var all []set.Set
	for _, fs := range c.facets {
		all = append(all, fs...)
	}

	return set.MaximalSets(all)
}
