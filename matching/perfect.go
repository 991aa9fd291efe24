package matching

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/polylattice/bfs"
	"github.com/katalvlaran/polylattice/core"
	"github.com/katalvlaran/polylattice/dfs"
	"github.com/katalvlaran/polylattice/set"
)

// bipartite is the validated view of an undirected graph with a given
// left part: all edges oriented left→right and sorted.
type bipartite struct {
	nodes int
	left  set.Set
	right set.Set
	edges []core.Edge
}

func newBipartite(g *core.Graph, part set.Set) (*bipartite, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	for _, n := range part {
		if !g.NodeExists(n) {
			return nil, fmt.Errorf("%w: node %d in part does not exist", ErrNotBipartite, n)
		}
	}
	bp := &bipartite{nodes: g.Nodes(), left: part, right: set.New(g.ValidNodes()...).Minus(part)}
	for _, e := range g.Edges() {
		inFrom, inTo := part.Contains(e.From), part.Contains(e.To)
		switch {
		case inFrom && !inTo:
			bp.edges = append(bp.edges, e)
		case inTo && !inFrom:
			bp.edges = append(bp.edges, core.Edge{From: e.To, To: e.From})
		default:
			return nil, fmt.Errorf("%w: edge %d-%d", ErrNotBipartite, e.From, e.To)
		}
	}
	sort.Slice(bp.edges, func(i, j int) bool { return lessEdge(bp.edges[i], bp.edges[j]) })

	return bp, nil
}

// residual orients the allowed edges for an alternating search: matched
// pairs left→right, the rest right→left, or the opposite when
// matchedForward is false.
func (bp *bipartite) residual(mate []int, allowed []bool, matchedForward bool) (*core.Graph, error) {
	d := core.NewGraph(bp.nodes)
	for k, e := range bp.edges {
		if allowed != nil && !allowed[k] {
			continue
		}
		u, v := e.From, e.To
		if (mate[u] == v) != matchedForward {
			u, v = v, u
		}
		if err := d.AddEdge(u, v); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func newMate(n int) []int {
	mate := make([]int, n)
	for i := range mate {
		mate[i] = -1
	}

	return mate
}

// maximum grows mate by augmenting paths found with a BFS tree from every
// exposed left node in ascending order.
func (bp *bipartite) maximum() ([]int, error) {
	mate := newMate(bp.nodes)
	for _, root := range bp.left {
		// unmatched edges left→right, matched edges right→left
		d, err := bp.residual(mate, nil, false)
		if err != nil {
			return nil, err
		}
		tv := bfs.NewTreeVisitor()
		it, err := bfs.New(d, tv)
		if err != nil {
			return nil, err
		}
		if err = it.Reset(root); err != nil {
			return nil, err
		}
		leaf := -1
		for ; !it.Done() && leaf < 0; it.Next() {
			if n := it.Current(); n != root && !bp.left.Contains(n) && mate[n] < 0 {
				leaf = n
			}
		}
		if leaf < 0 {
			continue
		}
		path := tv.PathTo(leaf)
		for k := 0; k+1 < len(path); k += 2 {
			mate[path[k]] = path[k+1]
			mate[path[k+1]] = path[k]
		}
	}

	return mate, nil
}

func (bp *bipartite) edgesOf(mate []int) []core.Edge {
	out := make([]core.Edge, 0, len(bp.left))
	for _, u := range bp.left {
		if mate[u] >= 0 {
			out = append(out, core.Edge{From: u, To: mate[u]})
		}
	}

	return out
}

// MaximumMatching returns a maximum matching of an undirected bipartite
// graph as left→right edges sorted by left node.
//
// Errors: ErrGraphNil, ErrNotBipartite.
// Complexity: O(V·(V + E)).
func MaximumMatching(g *core.Graph, part set.Set) ([]core.Edge, error) {
	bp, err := newBipartite(g, part)
	if err != nil {
		return nil, err
	}
	mate, err := bp.maximum()
	if err != nil {
		return nil, err
	}

	return bp.edgesOf(mate), nil
}

// cycleVisitor colours nodes and captures the first directed cycle from
// the iterator's current path when a back edge appears.
type cycleVisitor struct {
	it    *dfs.Iterator
	state []int
	cycle []int
}

func (v *cycleVisitor) Clear(n int) {
	v.state = make([]int, n)
	v.cycle = nil
}
func (v *cycleVisitor) Start(n int)     { v.state[n] = dfs.Gray }
func (v *cycleVisitor) Seen(n int) bool { return v.state[n] != dfs.White || v.cycle != nil }

func (v *cycleVisitor) Edge(from, to int) bool {
	if v.cycle != nil {
		return false
	}
	switch v.state[to] {
	case dfs.White:
		v.state[to] = dfs.Gray
		return true
	case dfs.Gray:
		path := v.it.Path()
		v.cycle = path[slices.Index(path, to):]
	}

	return false
}

func (v *cycleVisitor) Leave(n, _ int) { v.state[n] = dfs.Black }

// findCycle returns the nodes of some directed cycle of d in path order,
// or nil when d is acyclic.
func findCycle(d *core.Graph) ([]int, error) {
	v := &cycleVisitor{}
	it, err := dfs.New(d, v)
	if err != nil {
		return nil, err
	}
	v.it = it
	if err = it.ForEachRoot(nil); err != nil {
		return nil, err
	}

	return v.cycle, nil
}

// enumerator implements the binary partition scheme for perfect matchings:
// an alternating cycle of the current matching M yields a second matching
// M'; the set splits into matchings containing a chosen edge e of M∩C and
// those avoiding it, each side seeded with M resp. M'.
type enumerator struct {
	bp      *bipartite
	index   map[core.Edge]int
	allowed []bool
	out     [][]core.Edge
}

func (en *enumerator) run(mate []int) error {
	d, err := en.bp.residual(mate, en.allowed, true)
	if err != nil {
		return err
	}
	cyc, err := findCycle(d)
	if err != nil {
		return err
	}
	if cyc == nil {
		en.out = append(en.out, en.bp.edgesOf(mate))
		return nil
	}

	// matched edges run left→right, so a left node on the cycle starts one
	k := 0
	for !en.bp.left.Contains(cyc[k]) {
		k++
	}
	forced := core.Edge{From: cyc[k], To: cyc[(k+1)%len(cyc)]}

	other := slices.Clone(mate)
	for i, u := range cyc {
		if en.bp.left.Contains(u) {
			prev := cyc[(i+len(cyc)-1)%len(cyc)]
			other[u], other[prev] = prev, u
		}
	}

	saved := slices.Clone(en.allowed)
	for i, e := range en.bp.edges {
		if e != forced && (e.From == forced.From || e.To == forced.To) {
			en.allowed[i] = false
		}
	}
	if err = en.run(mate); err != nil {
		return err
	}
	copy(en.allowed, saved)

	en.allowed[en.index[forced]] = false
	if err = en.run(other); err != nil {
		return err
	}
	copy(en.allowed, saved)

	return nil
}

// PerfectMatchings enumerates every perfect matching of an undirected
// bipartite graph whose left part is part. Each matching is a list of
// left→right edges sorted by left node; the list of matchings is sorted
// lexicographically.
//
// Implementation:
//   - Stage 1: validate the bipartition and find one perfect matching by
//     augmenting paths.
//   - Stage 2: orient matched edges left→right and the others right→left;
//     a directed cycle is an alternating cycle. Without one, the current
//     matching is the only one left.
//   - Stage 3: split on a matched cycle edge: force it in (drop the edges
//     touching its endpoints) with the current matching, or forbid it with
//     the matching flipped along the cycle. Both sides are non-empty, so
//     every leaf of the recursion reports a distinct matching.
//
// Errors: ErrGraphNil, ErrNotBipartite, ErrNoPerfectMatching.
// Complexity: O((V + E)·E) per reported matching.
func PerfectMatchings(g *core.Graph, part set.Set) ([][]core.Edge, error) {
	bp, err := newBipartite(g, part)
	if err != nil {
		return nil, err
	}
	if bp.left.Len() != bp.right.Len() {
		return nil, fmt.Errorf("%w: parts of size %d and %d", ErrNoPerfectMatching, bp.left.Len(), bp.right.Len())
	}
	mate, err := bp.maximum()
	if err != nil {
		return nil, err
	}
	if got := len(bp.edgesOf(mate)); got != bp.left.Len() {
		return nil, fmt.Errorf("%w: maximum matching has %d of %d edges", ErrNoPerfectMatching, got, bp.left.Len())
	}

	en := &enumerator{bp: bp, index: make(map[core.Edge]int, len(bp.edges)), allowed: make([]bool, len(bp.edges))}
	for i, e := range bp.edges {
		en.index[e] = i
		en.allowed[i] = true
	}
	if err = en.run(mate); err != nil {
		return nil, err
	}
	sort.Slice(en.out, func(i, j int) bool {
		a, b := en.out[i], en.out[j]
		for k := range a {
			if a[k] != b[k] {
				return lessEdge(a[k], b[k])
			}
		}
		return false
	})

	return en.out, nil
}
