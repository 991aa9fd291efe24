package components

import (
	"sort"

	"github.com/katalvlaran/polylattice/core"
	"github.com/katalvlaran/polylattice/dfs"
)

// sccVisitor runs Tarjan's low-link bookkeeping on top of dfs.Iterator.
type sccVisitor struct {
	clock   int
	index   []int
	low     []int
	onStack []bool
	stack   []int
	comps   [][]int
}

func (v *sccVisitor) Clear(n int) {
	v.clock = 0
	v.index = make([]int, n)
	v.low = make([]int, n)
	v.onStack = make([]bool, n)
	for i := range v.index {
		v.index[i] = -1
	}
	v.stack = v.stack[:0]
	v.comps = nil
}

func (v *sccVisitor) discover(n int) {
	v.index[n] = v.clock
	v.low[n] = v.clock
	v.clock++
	v.stack = append(v.stack, n)
	v.onStack[n] = true
}

func (v *sccVisitor) Start(n int)     { v.discover(n) }
func (v *sccVisitor) Seen(n int) bool { return v.index[n] >= 0 }

func (v *sccVisitor) Edge(from, to int) bool {
	if v.index[to] < 0 {
		v.discover(to)
		return true
	}
	if v.onStack[to] && v.index[to] < v.low[from] {
		v.low[from] = v.index[to]
	}

	return false
}

func (v *sccVisitor) Leave(n, p int) {
	if p >= 0 && v.low[n] < v.low[p] {
		v.low[p] = v.low[n]
	}
	if v.low[n] != v.index[n] {
		return
	}
	var comp []int
	for {
		top := v.stack[len(v.stack)-1]
		v.stack = v.stack[:len(v.stack)-1]
		v.onStack[top] = false
		comp = append(comp, top)
		if top == n {
			break
		}
	}
	sort.Ints(comp)
	v.comps = append(v.comps, comp)
}

// StronglyConnected returns the strongly connected components of a directed
// graph. Components are emitted in reverse topological order of the
// condensation (a component appears before any component that reaches it);
// nodes inside a component are sorted. Undirected graphs degenerate to their
// connected components.
//
// Complexity: O(V + E).
func StronglyConnected(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	v := &sccVisitor{}
	it, err := dfs.New(g, v)
	if err != nil {
		return nil, err
	}
	if err = it.ForEachRoot(nil); err != nil {
		return nil, err
	}

	return v.comps, nil
}

// IsStronglyConnected reports whether every live node reaches every other.
func IsStronglyConnected(g *core.Graph) (bool, error) {
	comps, err := StronglyConnected(g)
	if err != nil {
		return false, err
	}

	return len(comps) <= 1, nil
}

// Condensation contracts every strongly connected component of g to a
// single node. It returns the acyclic quotient graph and, per node slot of
// g, the component it belongs to (-1 for deleted slots). Component ids
// follow the order of StronglyConnected, so every quotient edge runs from a
// higher id to a lower one.
func Condensation(g *core.Graph) (*core.Graph, []int, error) {
	comps, err := StronglyConnected(g)
	if err != nil {
		return nil, nil, err
	}
	compOf := make([]int, g.Nodes())
	for i := range compOf {
		compOf[i] = -1
	}
	for c, comp := range comps {
		for _, n := range comp {
			compOf[n] = c
		}
	}

	dag := core.NewGraph(len(comps))
	for _, e := range g.Edges() {
		a, b := compOf[e.From], compOf[e.To]
		if a == b {
			continue
		}
		if err = dag.AddEdge(a, b); err != nil {
			return nil, nil, err
		}
	}

	return dag, compOf, nil
}
