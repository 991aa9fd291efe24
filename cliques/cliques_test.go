package cliques_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polylattice/builder"
	"github.com/katalvlaran/polylattice/cliques"
	"github.com/katalvlaran/polylattice/core"
	"github.com/katalvlaran/polylattice/set"
)

func TestMaximal_Windmill(t *testing.T) {
	g, err := builder.BuildGraph(builder.Windmill(3))
	require.NoError(t, err)
	got, err := cliques.Maximal(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {0, 3, 4}, {0, 5, 6}}, got)
}

func TestMaximal_DirectedAndIsolated(t *testing.T) {
	// orientation is ignored; node 3 is isolated
	g := core.NewGraph(4)
	for _, e := range [][2]int{{0, 1}, {2, 0}, {1, 2}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	got, err := cliques.Maximal(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {3}}, got)
}

func TestMaximal_Cycle(t *testing.T) {
	g, err := builder.BuildGraph(builder.Cycle(5))
	require.NoError(t, err)
	got, err := cliques.Maximal(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {0, 4}, {1, 2}, {2, 3}, {3, 4}}, got)
}

func TestCliqueNumber(t *testing.T) {
	g, err := builder.BuildGraph(builder.Complete(5), builder.Path(3))
	require.NoError(t, err)
	omega, err := cliques.CliqueNumber(g)
	require.NoError(t, err)
	assert.Equal(t, 5, omega)

	omega, err = cliques.CliqueNumber(core.NewGraph(0))
	require.NoError(t, err)
	assert.Zero(t, omega)

	_, err = cliques.Maximal(nil)
	assert.ErrorIs(t, err, cliques.ErrGraphNil)
}

func TestEach_Stop(t *testing.T) {
	g, err := builder.BuildGraph(builder.Windmill(4))
	require.NoError(t, err)
	calls := 0
	require.NoError(t, cliques.Each(g, func(set.Set) bool {
		calls++
		return false
	}))
	assert.Equal(t, 1, calls)
}

func ExampleMaximal() {
	g, _ := builder.BuildGraph(builder.Wheel(5))
	cs, _ := cliques.Maximal(g)
	fmt.Println(cs)
	// Output: [[0 1 2] [0 1 4] [0 2 3] [0 3 4]]
}
