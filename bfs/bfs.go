// Package bfs provides a breadth-first iterator over a core.Graph whose
// discovery rule is supplied by a Visitor.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/polylattice/core"
)

// Iterator walks a graph breadth-first. The front of its queue is the
// current node; Next expands the current node (enqueueing neighbours the
// visitor discovers) and pops it.
//
//	it, _ := bfs.New(g, bfs.NewNodeVisitor())
//	for it.Reset(0); !it.Done(); it.Next() {
//	    n := it.Current()
//	    ...
//	}
//	if err := it.Err(); err != nil { ... }
//
// An Iterator is not safe for concurrent use.
type Iterator struct {
	graph   *core.Graph
	visitor Visitor
	opts    Options

	queue        []int
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

// Reset clears the visitor and the queue, then seeds start.
// Errors: ErrStartNode.
func (it *Iterator) Reset(start int) error {
	it.visitor.Clear(it.graph.Nodes())
	it.undiscovered = it.graph.NodeCount()
	it.queue = it.queue[:0]
	it.err = nil

	return it.seed(start)
}

// Restart clears the queue and seeds start, preserving what the visitor
// has already discovered. A start node that was already seen leaves the
// iterator Done. Use it to sweep every component:
//
//	for it.UndiscoveredNodes() > 0 { it.Restart(nextUnseen) ... }
func (it *Iterator) Restart(start int) error {
	it.queue = it.queue[:0]
	it.err = nil

	return it.seed(start)
}

func (it *Iterator) seed(start int) error {
	if !it.graph.NodeExists(start) {
		it.err = fmt.Errorf("%w: %d", ErrStartNode, start)
		return it.err
	}
	if it.visitor.Seen(start) {
		return nil
	}
	it.visitor.Start(start)
	it.undiscovered--
	it.queue = append(it.queue, start)

	return nil
}

// Done reports whether the queue is exhausted.
func (it *Iterator) Done() bool { return len(it.queue) == 0 }

// Current returns the node at the queue front; -1 when Done.
func (it *Iterator) Current() int {
	if len(it.queue) == 0 {
		return -1
	}

	return it.queue[0]
}

// Next expands the current node and pops it. If the context is cancelled
// the queue is dropped and Err reports the cause.
func (it *Iterator) Next() {
	if len(it.queue) == 0 {
		return
	}
	select {
	case <-it.opts.Ctx.Done():
		it.err = it.opts.Ctx.Err()
		it.queue = it.queue[:0]
		return
	default:
	}

	n := it.queue[0]
	it.queue = it.queue[1:]
	for _, to := range it.graph.Neighbors(n, it.opts.Direction) {
		if it.visitor.Seen(to) || !it.opts.Filter(n, to) {
			continue
		}
		if it.visitor.Discover(n, to) {
			it.undiscovered--
			it.queue = append(it.queue, to)
		}
	}
}

// Skip pops the current node without expanding it.
func (it *Iterator) Skip() {
	if len(it.queue) > 0 {
		it.queue = it.queue[1:]
	}
}

// UndiscoveredNodes returns how many live nodes the visitor has not seen.
func (it *Iterator) UndiscoveredNodes() int { return it.undiscovered }

// Err returns the first error recorded by Reset, Restart or Next.
func (it *Iterator) Err() error { return it.err }

// Walk drains the iterator from start and returns the visit order.
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
