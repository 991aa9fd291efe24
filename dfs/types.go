// Package dfs defines visitors, options and errors for depth-first
// traversal, including cancellation and neighbour filtering.
package dfs

import (
	"context"
	"errors"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/polylattice/core"
)

// Vertex states used by colouring visitors.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the current path.
	Black        // Black: the node and all its descendants are explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVisitorNil is returned when a nil Visitor is passed.
	ErrVisitorNil = errors.New("dfs: visitor is nil")

	// ErrStartNode indicates that the start node is out of range or deleted.
	ErrStartNode = errors.New("dfs: invalid start node")

	// ErrCycleDetected indicates that a directed cycle was encountered.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirected indicates an algorithm that needs a directed graph.
	ErrUndirected = errors.New("dfs: directed graph required")
)

// Visitor drives a depth-first Iterator.
//
// Edge is called for every edge leaving an expanded node, including edges
// to nodes already on the stack or finished; returning true descends into
// to. Visitors implement their state machines (colouring, low-links,
// ranks) by choosing what to record here and in Leave.
type Visitor interface {
	// Clear forgets all state for a graph with n node slots.
	Clear(n int)
	// Start is called for each traversal root.
	Start(node int)
	// Seen reports whether node was discovered already.
	Seen(node int) bool
	// Edge inspects from→to; true means "discover to and descend".
	Edge(from, to int) bool
	// Leave is called when node is popped; parent is -1 for a root.
	Leave(node, parent int)
}

// NodeVisitor discovers every unseen node exactly once.
type NodeVisitor struct {
	visited *bitset.BitSet
}

// NewNodeVisitor returns an empty NodeVisitor.
func NewNodeVisitor() *NodeVisitor { return &NodeVisitor{visited: bitset.New(0)} }

func (v *NodeVisitor) Clear(n int)        { v.visited = bitset.New(uint(n)) }
func (v *NodeVisitor) Start(node int)     { v.visited.Set(uint(node)) }
func (v *NodeVisitor) Seen(node int) bool { return v.visited.Test(uint(node)) }
func (v *NodeVisitor) Leave(_, _ int)     {}

func (v *NodeVisitor) Edge(_, to int) bool {
	if v.visited.Test(uint(to)) {
		return false
	}
	v.visited.Set(uint(to))
	return true
}

// Order selects when Iterator reports a node.
type Order int

const (
	// ParentFirst reports a node when it is discovered (pre-order).
	ParentFirst Order = iota
	// ChildrenFirst reports a node after all its descendants (post-order).
	ChildrenFirst
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds traversal parameters.
type Options struct {
	// Ctx allows cancellation; checked once per Next.
	Ctx context.Context

	// Order selects pre- or post-order reporting.
	Order Order

	// Direction selects the adjacency followed.
	Direction core.Direction

	// Filter can skip edges by returning false.
	Filter func(from, to int) bool
}

// DefaultOptions returns background context, pre-order, out-edges.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Order:     ParentFirst,
		Direction: core.Out,
		Filter:    func(_, _ int) bool { return true },
	}
}

// WithContext sets a cancellation context. Passing nil has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder selects pre- or post-order reporting.
func WithOrder(ord Order) Option {
	return func(o *Options) { o.Order = ord }
}

// WithDirection selects the adjacency followed.
func WithDirection(d core.Direction) Option {
	return func(o *Options) { o.Direction = d }
}

// WithFilter skips edges when fn returns false.
func WithFilter(fn func(from, to int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Filter = fn
		}
	}
}
