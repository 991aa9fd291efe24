package components

import (
	"github.com/katalvlaran/polylattice/core"
	"github.com/katalvlaran/polylattice/dfs"
	"github.com/katalvlaran/polylattice/set"
)

// bicoVisitor is the Tarjan state machine for biconnected components:
// discovery times, low-links, DFS-tree parents and a node stack from which
// a component is cut whenever a child cannot reach above its parent.
type bicoVisitor struct {
	clock  int
	disc   []int
	low    []int
	parent []int
	stack  []int

	rootChildren int // components closed at the current root
	comps        []set.Set
	artic        map[int]bool
}

func (v *bicoVisitor) Clear(n int) {
	v.clock = 0
	v.disc = make([]int, n)
	v.low = make([]int, n)
	v.parent = make([]int, n)
	for i := range v.disc {
		v.disc[i] = -1
		v.parent[i] = -1
	}
	v.stack = v.stack[:0]
	v.comps = nil
	v.artic = make(map[int]bool)
}

func (v *bicoVisitor) discover(n int) {
	v.disc[n] = v.clock
	v.low[n] = v.clock
	v.clock++
	v.stack = append(v.stack, n)
}

func (v *bicoVisitor) Start(n int) {
	v.rootChildren = 0
	v.discover(n)
}

func (v *bicoVisitor) Seen(n int) bool { return v.disc[n] >= 0 }

func (v *bicoVisitor) Edge(from, to int) bool {
	if v.disc[to] < 0 {
		v.parent[to] = from
		v.discover(to)
		return true
	}
	// back edge; the tree edge to the parent does not count
	if to != v.parent[from] && v.disc[to] < v.low[from] {
		v.low[from] = v.disc[to]
	}

	return false
}

func (v *bicoVisitor) Leave(n, p int) {
	if p < 0 {
		// the root stays alone on the stack unless it was isolated
		v.stack = v.stack[:0]
		if v.rootChildren > 1 {
			v.artic[n] = true
		}
		return
	}
	if v.low[n] < v.low[p] {
		v.low[p] = v.low[n]
	}
	if v.low[n] < v.disc[p] {
		return
	}

	// p separates the subtree of n: cut the component off the stack
	comp := []int{p}
	for {
		top := v.stack[len(v.stack)-1]
		v.stack = v.stack[:len(v.stack)-1]
		comp = append(comp, top)
		if top == n {
			break
		}
	}
	v.comps = append(v.comps, set.New(comp...))
	if v.parent[p] < 0 {
		v.rootChildren++
	} else {
		v.artic[p] = true
	}
}

// Biconnected returns the biconnected components of g (read as undirected)
// and its articulation nodes. A bridge forms a two-node component; isolated
// nodes belong to no component.
//
// Implementation:
//   - Stage 1: DFS from every undiscovered node via dfs.Iterator.
//   - Stage 2: the visitor keeps discovery/low-link arrays and a node stack.
//   - Stage 3: when a child n finishes with low[n] >= disc[parent], the stack
//     down to n plus the parent forms one component; the parent is an
//     articulation node unless it is a root with a single such child.
//
// Complexity: O(V + E).
func Biconnected(g *core.Graph) (comps []set.Set, articulation set.Set, err error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	v := &bicoVisitor{}
	it, err := dfs.New(g, v, dfs.WithDirection(core.Both))
	if err != nil {
		return nil, nil, err
	}
	if err = it.ForEachRoot(nil); err != nil {
		return nil, nil, err
	}
	arts := make([]int, 0, len(v.artic))
	for n := range v.artic {
		arts = append(arts, n)
	}

	return v.comps, set.New(arts...), nil
}
