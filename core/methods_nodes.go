// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle (add, delete, gap tracking, squeeze).

package core

import "fmt"

// Nodes returns the size of the id space, including deleted slots.
func (g *Graph) Nodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.out)
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.out) - g.gaps
}

// HasGaps reports whether any node was deleted since the last Squeeze.
func (g *Graph) HasGaps() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.gaps > 0
}

// NodeExists reports whether n is in range and not deleted.
func (g *Graph) NodeExists(n int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return n >= 0 && n < len(g.out) && g.alive[n]
}

// checkNode validates n under an already-held lock.
func (g *Graph) checkNode(n int) error {
	if n < 0 || n >= len(g.out) {
		return fmt.Errorf("%w: %d (nodes=%d)", ErrNodeOutOfRange, n, len(g.out))
	}
	if !g.alive[n] {
		return fmt.Errorf("%w: %d", ErrNodeDeleted, n)
	}

	return nil
}

// AddNode appends one isolated node and returns its id.
// Complexity: amortised O(1).
func (g *Graph) AddNode() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNodeLocked()
}

func (g *Graph) addNodeLocked() int {
	id := len(g.out)
	g.out = append(g.out, nil)
	g.alive = append(g.alive, true)
	if g.directed {
		g.in = append(g.in, nil)
	}

	return id
}

// AddNodes appends k isolated nodes and returns the id of the first.
func (g *Graph) AddNodes(k int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	first := len(g.out)
	for i := 0; i < k; i++ {
		g.addNodeLocked()
	}

	return first
}

// ValidNodes lists live node ids in ascending order.
func (g *Graph) ValidNodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, len(g.out)-g.gaps)
	for i, ok := range g.alive {
		if ok {
			out = append(out, i)
		}
	}

	return out
}

// DeleteNode removes every edge incident to n and marks the slot deleted.
// The id is not reused; HasGaps becomes true until Squeeze.
//
// Complexity: O(deg(n) · log d) for the neighbour list updates.
func (g *Graph) DeleteNode(n int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkNode(n); err != nil {
		return err
	}
	for _, v := range g.out[n] {
		if g.directed {
			g.in[v] = removeSorted(g.in[v], n)
		} else if v != n {
			g.out[v] = removeSorted(g.out[v], n)
		}
		g.edges--
	}
	g.out[n] = nil
	if g.directed {
		for _, u := range g.in[n] {
			if u == n {
				continue // loop already counted above
			}
			g.out[u] = removeSorted(g.out[u], n)
			g.edges--
		}
		g.in[n] = nil
	}
	g.alive[n] = false
	g.gaps++

	return nil
}

// Squeeze renumbers live nodes densely, preserving their relative order,
// and returns the old→new id map (-1 for deleted ids).
// Complexity: O(V + E).
func (g *Graph) Squeeze() []int {
	g.mu.Lock()
	defer g.mu.Unlock()

	renum := make([]int, len(g.out))
	next := 0
	for i, ok := range g.alive {
		if ok {
			renum[i] = next
			next++
		} else {
			renum[i] = -1
		}
	}
	if g.gaps == 0 {
		return renum
	}

	out := make([][]int, next)
	var in [][]int
	if g.directed {
		in = make([][]int, next)
	}
	for i, ok := range g.alive {
		if !ok {
			continue
		}
		out[renum[i]] = remap(g.out[i], renum)
		if g.directed {
			in[renum[i]] = remap(g.in[i], renum)
		}
	}
	g.out, g.in = out, in
	g.alive = make([]bool, next)
	for i := range g.alive {
		g.alive[i] = true
	}
	g.gaps = 0

	return renum
}

// remap applies a monotone renumbering to a sorted list; order is preserved
// because renum is increasing on live ids.
func remap(list []int, renum []int) []int {
	if len(list) == 0 {
		return nil
	}
	out := make([]int, len(list))
	for i, v := range list {
		out[i] = renum[v]
	}

	return out
}
