// Package bfs provides tunable options, visitors and error definitions
// for breadth-first traversal over a core.Graph.
package bfs

import (
	"context"
	"errors"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/polylattice/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrVisitorNil is returned if a nil Visitor is passed.
	ErrVisitorNil = errors.New("bfs: visitor is nil")

	// ErrStartNode is returned when the start node is out of range or deleted.
	ErrStartNode = errors.New("bfs: invalid start node")

	// ErrDisconnected is returned by Diameter when some node is unreachable.
	ErrDisconnected = errors.New("bfs: graph is not connected")
)

// Visitor decides which edges discover new nodes. The iterator calls Clear
// once per Reset, Start for the seed node, and Discover for every edge
// from an expanded node to a node for which Seen is false.
type Visitor interface {
	// Clear forgets all state for a graph with n node slots.
	Clear(n int)
	// Start records the seed node of a traversal.
	Start(node int)
	// Seen reports whether node was discovered already.
	Seen(node int) bool
	// Discover is called for edge from→to with to unseen; returning true
	// marks to as discovered and enqueues it.
	Discover(from, to int) bool
}

// NodeVisitor marks discovered nodes in a bitset and nothing else.
type NodeVisitor struct {
	visited *bitset.BitSet
}

// NewNodeVisitor returns an empty NodeVisitor.
func NewNodeVisitor() *NodeVisitor { return &NodeVisitor{visited: bitset.New(0)} }

func (v *NodeVisitor) Clear(n int)        { v.visited = bitset.New(uint(n)) }
func (v *NodeVisitor) Start(node int)     { v.visited.Set(uint(node)) }
func (v *NodeVisitor) Seen(node int) bool { return v.visited.Test(uint(node)) }

func (v *NodeVisitor) Discover(_, to int) bool {
	v.visited.Set(uint(to))
	return true
}

// Visited returns the number of discovered nodes.
func (v *NodeVisitor) Visited() int { return int(v.visited.Count()) }

// DistanceVisitor records the hop distance from the seed; -1 marks
// undiscovered nodes.
type DistanceVisitor struct {
	Dist []int
}

// NewDistanceVisitor returns an empty DistanceVisitor.
func NewDistanceVisitor() *DistanceVisitor { return &DistanceVisitor{} }

func (v *DistanceVisitor) Clear(n int) {
	if cap(v.Dist) >= n {
		v.Dist = v.Dist[:n]
	} else {
		v.Dist = make([]int, n)
	}
	for i := range v.Dist {
		v.Dist[i] = -1
	}
}
func (v *DistanceVisitor) Start(node int)     { v.Dist[node] = 0 }
func (v *DistanceVisitor) Seen(node int) bool { return v.Dist[node] >= 0 }

func (v *DistanceVisitor) Discover(from, to int) bool {
	v.Dist[to] = v.Dist[from] + 1
	return true
}

// TreeVisitor records the BFS tree as a parent array; the seed and
// undiscovered nodes have parent -1.
type TreeVisitor struct {
	NodeVisitor
	Parent []int
}

// NewTreeVisitor returns an empty TreeVisitor.
func NewTreeVisitor() *TreeVisitor { return &TreeVisitor{NodeVisitor: *NewNodeVisitor()} }

func (v *TreeVisitor) Clear(n int) {
	v.NodeVisitor.Clear(n)
	v.Parent = make([]int, n)
	for i := range v.Parent {
		v.Parent[i] = -1
	}
}

func (v *TreeVisitor) Discover(from, to int) bool {
	v.NodeVisitor.Discover(from, to)
	v.Parent[to] = from
	return true
}

// PathTo walks parents back from dest to the seed; nil when dest was not reached.
func (v *TreeVisitor) PathTo(dest int) []int {
	if dest < 0 || dest >= len(v.Parent) || !v.Seen(dest) {
		return nil
	}
	var path []int
	for cur := dest; cur != -1; cur = v.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Option configures the iterator via functional arguments.
type Option func(*Options)

// Options holds traversal parameters.
type Options struct {
	// Ctx allows cancellation; checked once per expanded node.
	Ctx context.Context

	// Direction selects out-, in- or both-way adjacency (default core.Out).
	Direction core.Direction

	// Filter can skip edges by returning false.
	Filter func(from, to int) bool
}

// DefaultOptions returns background context, out-edges, no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Direction: core.Out,
		Filter:    func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects which adjacency the traversal follows.
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
