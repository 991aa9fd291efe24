// SPDX-License-Identifier: MIT
// Package matrix: Incidence is a rows×cols 0/1 matrix whose rows are bitsets.
//
// In closure systems the rows are facets (or maximal cells) and the columns
// are ground-set elements; row i has bit j set iff facet i contains j.

package matrix

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/polylattice/set"
)

// Incidence stores one bitset per row. Columns are tracked explicitly because
// a bitset's length only grows with the highest set bit.
type Incidence struct {
	cols int
	rows []*bitset.BitSet
}

// NewIncidence returns an all-zero r×c incidence matrix.
func NewIncidence(rows, cols int) (*Incidence, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	m := &Incidence{cols: cols, rows: make([]*bitset.BitSet, rows)}
	for i := range m.rows {
		m.rows[i] = bitset.New(uint(cols))
	}

	return m, nil
}

// FromRows builds an incidence matrix with the given column count from one
// set per row. Elements outside [0, cols) yield ErrOutOfRange.
func FromRows(cols int, rows []set.Set) (*Incidence, error) {
	m, err := NewIncidence(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		for _, j := range r {
			if j < 0 || j >= cols {
				return nil, fmt.Errorf("matrix: row %d column %d: %w", i, j, ErrOutOfRange)
			}
			m.rows[i].Set(uint(j))
		}
	}

	return m, nil
}

// MustFromRows is FromRows for literal fixtures; it panics on malformed input.
func MustFromRows(cols int, rows []set.Set) *Incidence {
	m, err := FromRows(cols, rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the row count.
func (m *Incidence) Rows() int { return len(m.rows) }

// Cols returns the column count.
func (m *Incidence) Cols() int { return m.cols }

func (m *Incidence) check(i, j int) error {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.cols {
		return fmt.Errorf("matrix: incidence (%d,%d): %w", i, j, ErrOutOfRange)
	}

	return nil
}

// Set marks (i,j).
func (m *Incidence) Set(i, j int) error {
	if err := m.check(i, j); err != nil {
		return err
	}
	m.rows[i].Set(uint(j))

	return nil
}

// Has reports whether (i,j) is marked; out-of-range reads are false.
func (m *Incidence) Has(i, j int) bool {
	if m.check(i, j) != nil {
		return false
	}

	return m.rows[i].Test(uint(j))
}

// Row returns row i as a Set (empty when out of range).
func (m *Incidence) Row(i int) set.Set {
	if i < 0 || i >= len(m.rows) {
		return set.Set{}
	}

	return toSet(m.rows[i])
}

// Col returns column j as the Set of rows containing j.
func (m *Incidence) Col(j int) set.Set {
	out := set.Set{}
	if j < 0 || j >= m.cols {
		return out
	}
	for i, r := range m.rows {
		if r.Test(uint(j)) {
			out = append(out, i)
		}
	}

	return out
}

// RowSets returns all rows as Sets.
func (m *Incidence) RowSets() []set.Set {
	out := make([]set.Set, len(m.rows))
	for i, r := range m.rows {
		out[i] = toSet(r)
	}

	return out
}

// Transpose returns the cols×rows incidence matrix.
func (m *Incidence) Transpose() *Incidence {
	t, _ := NewIncidence(m.cols, len(m.rows))
	for i, r := range m.rows {
		for j, ok := r.NextSet(0); ok; j, ok = r.NextSet(j + 1) {
			t.rows[j].Set(uint(i))
		}
	}

	return t
}

// MinorRows returns the submatrix of the selected rows (renumbered 0..k-1),
// keeping all columns.
func (m *Incidence) MinorRows(rows set.Set) *Incidence {
	out := &Incidence{cols: m.cols, rows: make([]*bitset.BitSet, 0, rows.Len())}
	for _, i := range rows {
		if i >= 0 && i < len(m.rows) {
			out.rows = append(out.rows, m.rows[i].Clone())
		}
	}

	return out
}

// IntersectRows returns the intersection of the selected rows. The empty
// selection yields the full column range, matching the convention that the
// empty intersection is the whole ground set.
//
// Complexity: O(|rows| · cols/64).
func (m *Incidence) IntersectRows(rows set.Set) set.Set {
	if rows.Empty() {
		return set.Range(m.cols)
	}
	var acc *bitset.BitSet
	for _, i := range rows {
		if i < 0 || i >= len(m.rows) {
			continue
		}
		if acc == nil {
			acc = m.rows[i].Clone()
			continue
		}
		acc.InPlaceIntersection(m.rows[i])
	}
	if acc == nil {
		return set.Range(m.cols)
	}

	return toSet(acc)
}

// RowsContaining returns the rows whose support contains face.
func (m *Incidence) RowsContaining(face set.Set) set.Set {
	out := set.Set{}
	for i, r := range m.rows {
		ok := true
		for _, j := range face {
			if j < 0 || j >= m.cols || !r.Test(uint(j)) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, i)
		}
	}

	return out
}

// RowCount returns the number of marked entries in row i.
func (m *Incidence) RowCount(i int) int {
	if i < 0 || i >= len(m.rows) {
		return 0
	}

	return int(m.rows[i].Count())
}

// String renders rows as sets, one per line.
func (m *Incidence) String() string {
	s := ""
	for i := range m.rows {
		s += m.Row(i).String() + "\n"
	}

	return s
}

// toSet converts a bitset to a sorted Set.
func toSet(b *bitset.BitSet) set.Set {
	out := make(set.Set, 0, b.Count())
	for j, ok := b.NextSet(0); ok; j, ok = b.NextSet(j + 1) {
		out = append(out, int(j))
	}

	return out
}
