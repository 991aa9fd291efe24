package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polylattice/lattice"
	"github.com/katalvlaran/polylattice/set"
)

func TestRecord_Properties(t *testing.T) {
	rec := twoEdges(t).ToRecord()

	assert.Equal(t, []set.Set{set.New(1, 2), set.New(3), set.New(3), set.New()}, rec.Adjacency)
	assert.Equal(t, 3, rec.TopNode)
	assert.Equal(t, 0, rec.BottomNode)
	assert.Equal(t, "Sequential", rec.InverseRankMap.Kind)
	assert.Equal(t, map[int][]int{0: {0, 0}, 1: {1, 2}, 2: {3, 3}}, rec.InverseRankMap.Ranges)

	out, err := yaml.Marshal(rec)
	require.NoError(t, err)
	for _, key := range []string{"ADJACENCY:", "DECORATION:", "INVERSE_RANK_MAP:", "TOP_NODE: 3", "BOTTOM_NODE: 0", "face: [0, 1]"} {
		assert.Contains(t, string(out), key)
	}
}

func TestRecord_YAMLRoundTrip(t *testing.T) {
	for name, fx := range fixtures {
		t.Run(name, func(t *testing.T) {
			l := primal(t, fx.ground, fx.facets, trivial, lattice.WithArtificialNode(true))

			data, err := lattice.EncodeYAML(l)
			require.NoError(t, err)
			back, err := lattice.DecodeYAML[deco](data)
			require.NoError(t, err)

			assert.Equal(t, faceRanks(l), faceRanks(back))
			assert.Equal(t, l.Edges(), back.Edges())
			assert.Equal(t, l.TopNode(), back.TopNode())
			assert.Equal(t, l.BottomNode(), back.BottomNode())
			assert.Equal(t, l.Kind(), back.Kind())
		})
	}
}

func TestRecord_NonsequentialRoundTrip(t *testing.T) {
	fx := fixtures["square"]
	l := primal(t, fx.ground, fx.facets, trivial, lattice.WithKind(lattice.Nonsequential))

	back, err := lattice.FromRecord(l.ToRecord())
	require.NoError(t, err)
	assert.Equal(t, lattice.Nonsequential, back.Kind())
	assert.Equal(t, l.NodesOfRank(1), back.NodesOfRank(1))
}

func TestFromRecord_Rejects(t *testing.T) {
	good := func() *lattice.Record[deco] { return twoEdges(t).ToRecord() }

	cases := map[string]func(r *lattice.Record[deco]){
		"length mismatch": func(r *lattice.Record[deco]) { r.Adjacency = r.Adjacency[:2] },
		"edge target":     func(r *lattice.Record[deco]) { r.Adjacency[0] = set.New(9) },
		"top index":       func(r *lattice.Record[deco]) { r.TopNode = 4 },
		"rank map":        func(r *lattice.Record[deco]) { r.InverseRankMap.Ranges[1] = []int{1, 1} },
		"kind":            func(r *lattice.Record[deco]) { r.InverseRankMap.Kind = "Sparse" },
		"downward edge":   func(r *lattice.Record[deco]) { r.Adjacency[3] = set.New(0) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			rec := good()
			mutate(rec)
			_, err := lattice.FromRecord(rec)
			assert.ErrorIs(t, err, lattice.ErrInconsistent)
		})
	}

	_, err := lattice.FromRecord[deco](nil)
	assert.ErrorIs(t, err, lattice.ErrInconsistent)
}
