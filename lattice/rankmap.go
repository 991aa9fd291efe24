package lattice

import (
	"fmt"
	"sort"
)

// Kind selects the inverse rank map representation.
type Kind int

const (
	// Sequential lattices keep the nodes of every rank in one contiguous
	// id range, so a rank is stored as [first, last].
	Sequential Kind = iota
	// Nonsequential lattices store an explicit node list per rank.
	Nonsequential
)

func (k Kind) String() string {
	if k == Nonsequential {
		return "Nonsequential"
	}

	return "Sequential"
}

// InverseRankMap maps a rank to the nodes carrying it.
type InverseRankMap struct {
	kind   Kind
	ranges map[int][2]int // Sequential
	lists  map[int][]int  // Nonsequential
}

// NewInverseRankMap returns an empty map of the given kind.
func NewInverseRankMap(kind Kind) *InverseRankMap {
	m := &InverseRankMap{kind: kind}
	if kind == Sequential {
		m.ranges = make(map[int][2]int)
	} else {
		m.lists = make(map[int][]int)
	}

	return m
}

// Kind returns the representation.
func (m *InverseRankMap) Kind() Kind { return m.kind }

// SetRank records that node has rank r. Sequential maps accept a node only
// if it starts a new rank or directly follows the last node of its rank.
//
// Errors: ErrNotSequential.
func (m *InverseRankMap) SetRank(node, r int) error {
	if m.kind == Nonsequential {
		list := m.lists[r]
		i := sort.SearchInts(list, node)
		if i < len(list) && list[i] == node {
			return nil
		}
		list = append(list, 0)
		copy(list[i+1:], list[i:])
		list[i] = node
		m.lists[r] = list
		return nil
	}

	rg, ok := m.ranges[r]
	switch {
	case !ok:
		m.ranges[r] = [2]int{node, node}
	case node == rg[1]+1:
		m.ranges[r] = [2]int{rg[0], node}
	case node >= rg[0] && node <= rg[1]:
	default:
		return fmt.Errorf("%w: node %d at rank %d outside [%d,%d]", ErrNotSequential, node, r, rg[0], rg[1])
	}

	return nil
}

// NodesOfRank returns the nodes with rank r in ascending order.
func (m *InverseRankMap) NodesOfRank(r int) []int {
	if m.kind == Nonsequential {
		return append([]int(nil), m.lists[r]...)
	}
	rg, ok := m.ranges[r]
	if !ok {
		return nil
	}
	out := make([]int, 0, rg[1]-rg[0]+1)
	for n := rg[0]; n <= rg[1]; n++ {
		out = append(out, n)
	}

	return out
}

// Range returns [first, last] of a rank in a Sequential map.
func (m *InverseRankMap) Range(r int) ([2]int, bool) {
	rg, ok := m.ranges[r]

	return rg, ok
}

// Ranks returns all ranks present, ascending.
func (m *InverseRankMap) Ranks() []int {
	var out []int
	if m.kind == Nonsequential {
		for r := range m.lists {
			out = append(out, r)
		}
	} else {
		for r := range m.ranges {
			out = append(out, r)
		}
	}
	sort.Ints(out)

	return out
}

// toNonsequential returns an equivalent Nonsequential copy.
func (m *InverseRankMap) toNonsequential() *InverseRankMap {
	out := NewInverseRankMap(Nonsequential)
	for _, r := range m.Ranks() {
		out.lists[r] = m.NodesOfRank(r)
	}

	return out
}

func (m *InverseRankMap) clone() *InverseRankMap {
	if m.kind == Nonsequential {
		return m.toNonsequential()
	}
	out := NewInverseRankMap(Sequential)
	for r, rg := range m.ranges {
		out.ranges[r] = rg
	}

	return out
}
