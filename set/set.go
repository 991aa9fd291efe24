// Package set provides the sorted integer sets used for faces, dual faces and
// ground-set subsets throughout polylattice, plus FaceMap, the face→index
// dictionary that deduplicates closed faces during lattice construction.
//
// A Set is a strictly increasing []int. All operations treat their receivers
// as immutable values and return fresh slices; a Set obtained from this
// package may be shared freely as long as callers do not write into it.
//
// Complexity: binary operations (Union, Intersect, Minus, IsSubsetOf) run in
// O(|a|+|b|) by merging; Contains is O(log |a|).
package set

import (
	"sort"
	"strconv"
	"strings"
)

// Set is a sorted, duplicate-free list of integers. Ground elements are
// non-negative; -1 is reserved for the face of artificial lattice nodes.
type Set []int

// New builds a Set from arbitrary elements (unsorted, duplicates allowed).
func New(elems ...int) Set {
	if len(elems) == 0 {
		return Set{}
	}
	s := make(Set, len(elems))
	copy(s, elems)
	sort.Ints(s)

	// in-place dedup
	w := 1
	for r := 1; r < len(s); r++ {
		if s[r] != s[w-1] {
			s[w] = s[r]
			w++
		}
	}

	return s[:w]
}

// Range returns {0, 1, ..., n-1}. Range(0) is the empty set.
func Range(n int) Set {
	if n <= 0 {
		return Set{}
	}
	s := make(Set, n)
	for i := range s {
		s[i] = i
	}

	return s
}

// Len returns the cardinality.
func (s Set) Len() int { return len(s) }

// Empty reports whether s has no elements.
func (s Set) Empty() bool { return len(s) == 0 }

// Front returns the smallest element; ok is false on an empty set.
func (s Set) Front() (int, bool) {
	if len(s) == 0 {
		return 0, false
	}

	return s[0], true
}

// Back returns the largest element; ok is false on an empty set.
func (s Set) Back() (int, bool) {
	if len(s) == 0 {
		return 0, false
	}

	return s[len(s)-1], true
}

// Elems returns a copy of the elements.
func (s Set) Elems() []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}

// Contains reports membership of x.
func (s Set) Contains(x int) bool {
	i := sort.SearchInts(s, x)

	return i < len(s) && s[i] == x
}

// With returns s ∪ {x}.
func (s Set) With(x int) Set {
	i := sort.SearchInts(s, x)
	if i < len(s) && s[i] == x {
		return s.clone()
	}
	out := make(Set, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, x)
	out = append(out, s[i:]...)

	return out
}

// Without returns s \ {x}.
func (s Set) Without(x int) Set {
	i := sort.SearchInts(s, x)
	if i >= len(s) || s[i] != x {
		return s.clone()
	}
	out := make(Set, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)

	return out
}

// Union returns s ∪ t.
func (s Set) Union(t Set) Set {
	out := make(Set, 0, len(s)+len(t))
	i, j := 0, 0
	for i < len(s) && j < len(t) {
		switch {
		case s[i] < t[j]:
			out = append(out, s[i])
			i++
		case s[i] > t[j]:
			out = append(out, t[j])
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	out = append(out, s[i:]...)
	out = append(out, t[j:]...)

	return out
}

// Intersect returns s ∩ t.
func (s Set) Intersect(t Set) Set {
	n := len(s)
	if len(t) < n {
		n = len(t)
	}
	out := make(Set, 0, n)
	i, j := 0, 0
	for i < len(s) && j < len(t) {
		switch {
		case s[i] < t[j]:
			i++
		case s[i] > t[j]:
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}

	return out
}

// Minus returns s \ t.
func (s Set) Minus(t Set) Set {
	out := make(Set, 0, len(s))
	j := 0
	for _, x := range s {
		for j < len(t) && t[j] < x {
			j++
		}
		if j < len(t) && t[j] == x {
			continue
		}
		out = append(out, x)
	}

	return out
}

// Disjoint reports whether s ∩ t = ∅ without allocating.
func (s Set) Disjoint(t Set) bool {
	i, j := 0, 0
	for i < len(s) && j < len(t) {
		switch {
		case s[i] < t[j]:
			i++
		case s[i] > t[j]:
			j++
		default:
			return false
		}
	}

	return true
}

// IsSubsetOf reports s ⊆ t.
func (s Set) IsSubsetOf(t Set) bool {
	if len(s) > len(t) {
		return false
	}
	j := 0
	for _, x := range s {
		for j < len(t) && t[j] < x {
			j++
		}
		if j == len(t) || t[j] != x {
			return false
		}
		j++
	}

	return true
}

// Equal reports element-wise equality.
func (s Set) Equal(t Set) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}

	return true
}

// Compare orders sets lexicographically by their sorted elements; a proper
// prefix sorts first. Returns -1, 0 or +1.
func (s Set) Compare(t Set) int {
	for i := 0; i < len(s) && i < len(t); i++ {
		switch {
		case s[i] < t[i]:
			return -1
		case s[i] > t[i]:
			return 1
		}
	}
	switch {
	case len(s) < len(t):
		return -1
	case len(s) > len(t):
		return 1
	}

	return 0
}

// Subsets returns every k-element subset of s in lexicographic order.
func (s Set) Subsets(k int) []Set {
	if k < 0 || k > len(s) {
		return nil
	}
	var out []Set
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		sub := make(Set, k)
		for i, p := range idx {
			sub[i] = s[p]
		}
		out = append(out, sub)

		// advance the rightmost index that still has room
		i := k - 1
		for i >= 0 && idx[i] == len(s)-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// String renders the set as "{0 1 2}".
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, x := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(x))
	}
	b.WriteByte('}')

	return b.String()
}

func (s Set) clone() Set {
	out := make(Set, len(s))
	copy(out, s)

	return out
}

// UnionAll folds Union over sets.
func UnionAll(sets ...Set) Set {
	out := Set{}
	for _, s := range sets {
		out = out.Union(s)
	}

	return out
}

// SortSets orders a slice of sets lexicographically in place.
func SortSets(sets []Set) {
	sort.Slice(sets, func(i, j int) bool { return sets[i].Compare(sets[j]) < 0 })
}

// MaximalSets drops every set contained in another set of the list and
// removes duplicates. The survivors keep their relative input order.
func MaximalSets(sets []Set) []Set {
	out := make([]Set, 0, len(sets))
	for i, s := range sets {
		dominated := false
		for j, t := range sets {
			if i == j {
				continue
			}
			// equal sets: keep the first occurrence only
			if s.Equal(t) {
				if j < i {
					dominated = true
					break
				}
				continue
			}
			if s.IsSubsetOf(t) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, s)
		}
	}

	return out
}
