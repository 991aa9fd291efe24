// Package dfs implements a depth-first Iterator over core.Graph and the
// algorithms that ride on it.
//
// The iterator keeps one frame per path depth, each holding a cursor into
// that node's neighbour list. A Visitor sees every edge leaving an
// expanded node and decides whether to descend; the same skeleton
// therefore serves plain reachability (NodeVisitor), cycle detection and
// topological sorting (colouring visitor) and Tarjan low-link computations
// (package components).
//
// Orders:
//
//	ParentFirst    nodes are reported on discovery (pre-order).
//	ChildrenFirst  nodes are reported once all descendants are done.
//
// Algorithms:
//
//	TopologicalSort(g)  reverse post-order plus longest-path ranks.
//	HasCycle(g)         directed cycle detection.
//
// Complexity: O(V + E) time, O(V) memory for the stack and visitor state.
package dfs
