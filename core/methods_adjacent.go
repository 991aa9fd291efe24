// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighbourhood and degree queries.
// Determinism:
//   - All neighbour lists are returned in ascending order as fresh copies.

package core

// OutAdjacent returns the out-neighbours of n.
func (g *Graph) OutAdjacent(n int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkNode(n); err != nil {
		return nil, err
	}

	return cloneInts(g.out[n]), nil
}

// InAdjacent returns the in-neighbours of n.
func (g *Graph) InAdjacent(n int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkNode(n); err != nil {
		return nil, err
	}

	return cloneInts(g.inList(n)), nil
}

// Adjacent returns the union of in- and out-neighbours of n.
func (g *Graph) Adjacent(n int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkNode(n); err != nil {
		return nil, err
	}
	if !g.directed {
		return cloneInts(g.out[n]), nil
	}

	return mergeSorted(g.out[n], g.in[n]), nil
}

// OutDegree returns |OutAdjacent(n)|, or 0 for invalid ids.
func (g *Graph) OutDegree(n int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.checkNode(n) != nil {
		return 0
	}

	return len(g.out[n])
}

// InDegree returns |InAdjacent(n)|, or 0 for invalid ids.
func (g *Graph) InDegree(n int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.checkNode(n) != nil {
		return 0
	}

	return len(g.inList(n))
}

// Degree returns the number of incident edges (in + out for directed graphs).
func (g *Graph) Degree(n int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.checkNode(n) != nil {
		return 0
	}
	if !g.directed {
		return len(g.out[n])
	}

	return len(g.out[n]) + len(g.in[n])
}

// Neighbors returns out-neighbours without copying. The returned slice must
// not be modified and is only valid until the next mutation; traversal
// iterators use it on their hot path.
func (g *Graph) Neighbors(n int, dir Direction) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if n < 0 || n >= len(g.out) || !g.alive[n] {
		return nil
	}
	switch dir {
	case In:
		return g.inList(n)
	case Both:
		if g.directed {
			return mergeSorted(g.out[n], g.in[n])
		}
	}

	return g.out[n]
}

// Direction selects which adjacency a traversal follows.
type Direction int

const (
	Out  Direction = iota // follow out-edges (default)
	In                    // follow in-edges
	Both                  // ignore orientation
)

func cloneInts(a []int) []int {
	out := make([]int, len(a))
	copy(out, a)

	return out
}

// mergeSorted returns the sorted union of two sorted lists.
func mergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)

	return append(out, b[j:]...)
}
