package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polylattice/core"
	"github.com/katalvlaran/polylattice/set"
)

func TestAddEdge_DirectedAdjacency(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(3, 1))
	require.NoError(t, g.AddEdge(0, 1)) // duplicate is a no-op

	out, err := g.OutAdjacent(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, out)

	in, err := g.InAdjacent(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, in)

	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 2, g.OutDegree(0))
	assert.Equal(t, 2, g.InDegree(1))
	assert.True(t, g.HasEdge(3, 1))
	assert.False(t, g.HasEdge(1, 3))
	assert.Equal(t, []core.Edge{{0, 1}, {0, 2}, {3, 1}}, g.Edges())
}

func TestAddEdge_Undirected(t *testing.T) {
	g := core.NewGraph(3, core.WithDirected(false))
	require.NoError(t, g.AddEdge(2, 0))
	require.NoError(t, g.AddEdge(0, 2))

	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 2))
	assert.True(t, g.HasEdge(2, 0))
	assert.Equal(t, []core.Edge{{0, 2}}, g.Edges())

	in, _ := g.InAdjacent(0)
	out, _ := g.OutAdjacent(0)
	assert.Equal(t, in, out)
}

func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph(2)
	assert.ErrorIs(t, g.AddEdge(0, 5), core.ErrNodeOutOfRange)
	assert.ErrorIs(t, g.AddEdge(1, 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.DeleteEdge(0, 1), core.ErrEdgeNotFound)

	_, err := g.OutAdjacent(-1)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)

	loops := core.NewGraph(1, core.WithLoops())
	assert.NoError(t, loops.AddEdge(0, 0))
}

func TestDeleteNode_GapsAndSqueeze(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 1))

	require.NoError(t, g.DeleteNode(1))
	assert.True(t, g.HasGaps())
	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.NodeExists(1))
	assert.Equal(t, []int{0, 2, 3}, g.ValidNodes())
	assert.ErrorIs(t, g.AddEdge(0, 1), core.ErrNodeDeleted)

	renum := g.Squeeze()
	assert.Equal(t, []int{0, -1, 1, 2}, renum)
	assert.False(t, g.HasGaps())
	assert.Equal(t, 3, g.Nodes())
	assert.Equal(t, []core.Edge{{1, 2}}, g.Edges())
}

func TestPermuteAndReverse(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	p, err := g.Permute([]int{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{0, 1}, {2, 0}}, p.Edges())

	_, err = g.Permute([]int{0, 0, 1})
	assert.ErrorIs(t, err, core.ErrBadPermutation)

	r := g.Reverse()
	assert.Equal(t, []core.Edge{{1, 0}, {2, 1}}, r.Edges())
	// source untouched
	assert.True(t, g.HasEdge(0, 1))
}

func TestInducedSubgraph(t *testing.T) {
	g := core.NewGraph(4, core.WithDirected(false))
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	sub, back, err := g.InducedSubgraph(set.New(0, 1, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, back)
	assert.Equal(t, 2, sub.EdgeCount())
	assert.True(t, sub.HasEdge(0, 2)) // old 0-3
}

func TestClone_IsDeep(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1))
	c := g.Clone()
	require.NoError(t, c.DeleteEdge(0, 1))
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, c.HasEdge(0, 1))
}
