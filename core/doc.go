// Package core defines Graph, the adjacency-list storage substrate for
// lattices and for every traversal in polylattice.
//
// Node ids are dense integers. A graph is created with a fixed number of
// isolated nodes (NewGraph) and grows with AddNode/AddNodes; DeleteNode
// leaves a gap that HasGaps reports until Squeeze renumbers densely.
//
//	g := core.NewGraph(3)           // directed by default
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//	out, _ := g.OutAdjacent(1)      // [2]
//
// Every node-addressed method validates its ids and returns
// ErrNodeOutOfRange or ErrNodeDeleted instead of panicking. Adjacency lists
// are sorted; Edges, ValidNodes and the neighbour queries are deterministic.
//
// Errors:
//
//	ErrNodeOutOfRange  - node id outside 0..Nodes()-1.
//	ErrNodeDeleted     - node removed by DeleteNode.
//	ErrEdgeNotFound    - DeleteEdge on a missing edge.
//	ErrLoopNotAllowed  - self-loop without WithLoops.
//	ErrBadPermutation  - Permute with a non-bijection.
package core
