// Package dfs provides a depth-first iterator over a core.Graph that keeps
// an explicit stack of edge cursors, one frame per path depth.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/polylattice/core"
)

// frame is one stack level: the node and a cursor into its neighbours.
type frame struct {
	node int
	nbrs []int
	pos  int
}

// Iterator walks a graph depth-first.
//
// In ParentFirst order Current is the most recently discovered node and
// Next descends along the first edge the visitor accepts, popping exhausted
// frames on the way. In ChildrenFirst order Current is the node about to be
// left, reported only once its whole subtree is done.
//
// An Iterator is not safe for concurrent use.
type Iterator struct {
	graph   *core.Graph
	visitor Visitor
	opts    Options

	stack        []frame
	ready        bool // ChildrenFirst: stack top is fully explored
	undiscovered int
	err          error
}

// New prepares an iterator; call Reset to seed it.
// Errors: ErrGraphNil, ErrVisitorNil.
func New(g *core.Graph, v Visitor, opts ...Option) (*Iterator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if v == nil {
		return nil, ErrVisitorNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Iterator{graph: g, visitor: v, opts: o}, nil
}

// Visitor returns the visitor driving this iterator.
func (it *Iterator) Visitor() Visitor { return it.visitor }

// Reset clears the visitor and stack, then seeds start.
func (it *Iterator) Reset(start int) error {
	it.visitor.Clear(it.graph.Nodes())
	it.undiscovered = it.graph.NodeCount()

	return it.Restart(start)
}

// Restart clears the stack and seeds start, keeping the visitor's state.
// Seeding an already seen node leaves the iterator Done.
func (it *Iterator) Restart(start int) error {
	it.stack = it.stack[:0]
	it.ready = false
	it.err = nil
	if !it.graph.NodeExists(start) {
		it.err = fmt.Errorf("%w: %d", ErrStartNode, start)
		return it.err
	}
	if it.visitor.Seen(start) {
		return nil
	}
	it.visitor.Start(start)
	it.undiscovered--
	it.push(start)
	if it.opts.Order == ChildrenFirst {
		it.descend()
	}

	return nil
}

func (it *Iterator) push(n int) {
	it.stack = append(it.stack, frame{node: n, nbrs: it.graph.Neighbors(n, it.opts.Direction)})
}

func (it *Iterator) pop() {
	top := len(it.stack) - 1
	n := it.stack[top].node
	parent := -1
	if top > 0 {
		parent = it.stack[top-1].node
	}
	it.stack = it.stack[:top]
	it.visitor.Leave(n, parent)
}

// advance moves the top frame's cursor to the next accepted edge and pushes
// its target; false when the top frame is exhausted.
func (it *Iterator) advance() bool {
	f := &it.stack[len(it.stack)-1]
	for f.pos < len(f.nbrs) {
		to := f.nbrs[f.pos]
		f.pos++
		if !it.opts.Filter(f.node, to) {
			continue
		}
		if it.visitor.Edge(f.node, to) {
			it.undiscovered--
			it.push(to)
			return true
		}
	}

	return false
}

// descend pushes along accepted edges until the top frame is exhausted;
// used by ChildrenFirst order.
func (it *Iterator) descend() {
	for len(it.stack) > 0 {
		if !it.advance() {
			it.ready = true
			return
		}
	}
}

// Done reports whether the traversal is exhausted.
func (it *Iterator) Done() bool { return len(it.stack) == 0 }

// Current returns the reported node; -1 when Done.
func (it *Iterator) Current() int {
	if len(it.stack) == 0 {
		return -1
	}

	return it.stack[len(it.stack)-1].node
}

// Depth returns the length of the current path minus one.
func (it *Iterator) Depth() int { return len(it.stack) - 1 }

// Path returns a copy of the nodes on the stack, root first.
func (it *Iterator) Path() []int {
	out := make([]int, len(it.stack))
	for i, f := range it.stack {
		out[i] = f.node
	}

	return out
}

// Next moves to the next reported node.
func (it *Iterator) Next() {
	if len(it.stack) == 0 {
		return
	}
	select {
	case <-it.opts.Ctx.Done():
		it.err = it.opts.Ctx.Err()
		it.stack = it.stack[:0]
		return
	default:
	}

	if it.opts.Order == ChildrenFirst {
		it.pop()
		it.ready = false
		if len(it.stack) > 0 {
			it.descend()
		}
		return
	}
	for len(it.stack) > 0 {
		if it.advance() {
			return
		}
		it.pop()
	}
}

// Drain runs the traversal to completion.
func (it *Iterator) Drain() error {
	for !it.Done() {
		it.Next()
	}

	return it.err
}

// UndiscoveredNodes returns how many live nodes were not discovered yet.
func (it *Iterator) UndiscoveredNodes() int { return it.undiscovered }

// Err returns the error recorded by Restart or Next.
func (it *Iterator) Err() error { return it.err }

// ForEachRoot restarts the iterator at every undiscovered live node in
// ascending order and drains each traversal. fn, when non-nil, runs before
// each restart with the new root.
func (it *Iterator) ForEachRoot(fn func(root int)) error {
	it.visitor.Clear(it.graph.Nodes())
	it.undiscovered = it.graph.NodeCount()
	for _, n := range it.graph.ValidNodes() {
		if it.visitor.Seen(n) {
			continue
		}
		if fn != nil {
			fn(n)
		}
		if err := it.Restart(n); err != nil {
			return err
		}
		if err := it.Drain(); err != nil {
			return err
		}
	}

	return nil
}

// Walk returns nodes of the traversal from start in the requested order.
func Walk(g *core.Graph, start int, opts ...Option) ([]int, error) {
	it, err := New(g, NewNodeVisitor(), opts...)
	if err != nil {
		return nil, err
	}
	if err = it.Reset(start); err != nil {
		return nil, err
	}
	var order []int
	for ; !it.Done(); it.Next() {
		order = append(order, it.Current())
	}

	return order, it.Err()
}
