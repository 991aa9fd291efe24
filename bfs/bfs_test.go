package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polylattice/bfs"
	"github.com/katalvlaran/polylattice/builder"
	"github.com/katalvlaran/polylattice/core"
)

// TestNew_Errors verifies that invalid inputs are rejected.
func TestNew_Errors(t *testing.T) {
	_, err := bfs.New(nil, bfs.NewNodeVisitor())
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.New(core.NewGraph(1), nil)
	assert.ErrorIs(t, err, bfs.ErrVisitorNil)

	it, err := bfs.New(core.NewGraph(1), bfs.NewNodeVisitor())
	require.NoError(t, err)
	assert.ErrorIs(t, it.Reset(3), bfs.ErrStartNode)
}

// TestWalk_CycleLayers covers a 4-cycle and checks layering.
func TestWalk_CycleLayers(t *testing.T) {
	g, err := builder.BuildGraph(builder.Cycle(4))
	require.NoError(t, err)

	order, err := bfs.Walk(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2}, order)
}

// TestRestart_SweepsComponents keeps visited state across restarts.
func TestRestart_SweepsComponents(t *testing.T) {
	g := core.NewGraph(5, core.WithDirected(false))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 3))

	nv := bfs.NewNodeVisitor()
	it, err := bfs.New(g, nv)
	require.NoError(t, err)

	components := 0
	require.NoError(t, it.Reset(0))
	for n := 0; n < g.Nodes(); n++ {
		if n > 0 {
			require.NoError(t, it.Restart(n))
		}
		if it.Done() {
			continue // already seen
		}
		components++
		for !it.Done() {
			it.Next()
		}
	}
	assert.Equal(t, 3, components)
	assert.Equal(t, 0, it.UndiscoveredNodes())
	assert.Equal(t, 5, nv.Visited())
}

func TestTreeVisitor_PathTo(t *testing.T) {
	g, err := builder.BuildGraph(builder.Path(5))
	require.NoError(t, err)

	tv := bfs.NewTreeVisitor()
	it, err := bfs.New(g, tv)
	require.NoError(t, err)
	require.NoError(t, it.Reset(0))
	for !it.Done() {
		it.Next()
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, tv.PathTo(4))
	assert.Nil(t, tv.PathTo(9))
}

func TestDirectionAndFilter(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 1))

	order, err := bfs.Walk(g, 1, bfs.WithDirection(core.In))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, order)

	order, err = bfs.Walk(g, 1, bfs.WithDirection(core.In), bfs.WithFilter(func(_, to int) bool { return to != 0 }))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, order)
}

func TestContextCancellation(t *testing.T) {
	g, err := builder.BuildGraph(builder.Path(10))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = bfs.Walk(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDiameter(t *testing.T) {
	path, err := builder.BuildGraph(builder.Path(4))
	require.NoError(t, err)
	d, err := bfs.Diameter(path)
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	cycle, err := builder.BuildGraph(builder.Cycle(7))
	require.NoError(t, err)
	d, err = bfs.Diameter(cycle)
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	k5, err := builder.BuildGraph(builder.Complete(5))
	require.NoError(t, err)
	d, err = bfs.Diameter(k5)
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	split := core.NewGraph(3, core.WithDirected(false))
	require.NoError(t, split.AddEdge(0, 1))
	_, err = bfs.Diameter(split)
	assert.ErrorIs(t, err, bfs.ErrDisconnected)

	d, err = bfs.Diameter(core.NewGraph(1))
	require.NoError(t, err)
	assert.Equal(t, 0, d)
}

func TestDistances(t *testing.T) {
	g, err := builder.BuildGraph(builder.Star(4))
	require.NoError(t, err)
	dist, err := bfs.Distances(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2, 2}, dist)
}
