// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polylattice/builder"
	"github.com/katalvlaran/polylattice/core"
)

func TestClassicShapes(t *testing.T) {
	cases := []struct {
		name  string
		con   builder.Constructor
		nodes int
		edges int
	}{
		{"path", builder.Path(5), 5, 4},
		{"cycle", builder.Cycle(6), 6, 6},
		{"complete", builder.Complete(5), 5, 10},
		{"star", builder.Star(4), 4, 3},
		{"wheel", builder.Wheel(5), 5, 8},
		{"bipartite", builder.CompleteBipartite(2, 3), 5, 6},
		{"windmill", builder.Windmill(2), 5, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, g.Nodes())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestComposeIsDisjointUnion(t *testing.T) {
	g, err := builder.BuildGraph(builder.Cycle(3), builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.Nodes())
	assert.True(t, g.HasEdge(3, 5))
	assert.False(t, g.HasEdge(2, 3))
}

func TestValidation(t *testing.T) {
	_, err := builder.BuildGraph(builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(builder.RandomSparse(4, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Build(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(4, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42)}
	gopts := []core.GraphOption{core.WithDirected(false)}
	a, err := builder.Build(gopts, opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	b, err := builder.Build(gopts, opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())

	full, err := builder.Build(gopts, opts, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, full.EdgeCount())
}

func TestDirectedComplete_IsAcyclicOrder(t *testing.T) {
	g, err := builder.Build(nil, nil, builder.Complete(3))
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.Equal(t, []core.Edge{{0, 1}, {0, 2}, {1, 2}}, g.Edges())
}
