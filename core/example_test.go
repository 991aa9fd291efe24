package core_test

import (
	"fmt"

	"github.com/katalvlaran/polylattice/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) A directed graph with three nodes:
	g := core.NewGraph(3)

	// 2) Add covering edges 0→1→2:
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)

	// 3) Inspect adjacency:
	out, _ := g.OutAdjacent(1)
	in, _ := g.InAdjacent(1)
	fmt.Println("out(1):", out, "in(1):", in)

	// 4) Remove a node and its edges:
	_ = g.DeleteNode(1)
	fmt.Println("edges:", g.EdgeCount(), "gaps:", g.HasGaps())

	// Output:
	// out(1): [2] in(1): [0]
	// edges: 0 gaps: true
}
