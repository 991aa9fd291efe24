package fan_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polylattice/fan"
	"github.com/katalvlaran/polylattice/lattice"
	"github.com/katalvlaran/polylattice/set"
)

// projectivePlane is the complete fan of P^2: three rays, three 2-cones.
func projectivePlane(t *testing.T) *fan.Complex {
	t.Helper()
	c, err := fan.New([]set.Set{set.New(0, 1), set.New(1, 2), set.New(0, 2)}, 3, 1)
	require.NoError(t, err)

	return c
}

// twoTriangles is a polygonal complex of two triangles glued along {1,2}.
func twoTriangles(t *testing.T) *fan.Complex {
	t.Helper()
	c, err := fan.New([]set.Set{set.New(0, 1, 2), set.New(1, 2, 3)}, 4, 2,
		fan.WithCellFacets([][]set.Set{
			{set.New(0, 1), set.New(1, 2), set.New(0, 2)},
			{set.New(1, 2), set.New(2, 3), set.New(1, 3)},
		}))
	require.NoError(t, err)

	return c
}

func facesByRank[D lattice.Decorated[D]](l *lattice.Lattice[D]) map[int][]set.Set {
	out := make(map[int][]set.Set)
	for n := 0; n < l.Nodes(); n++ {
		d, _ := l.Decoration(n)
		out[d.GetRank()] = append(out[d.GetRank()], d.GetFace())
	}
	for _, fs := range out {
		set.SortSets(fs)
	}

	return out
}

func nodeOf[D lattice.Decorated[D]](t *testing.T, l *lattice.Lattice[D], face set.Set) int {
	t.Helper()
	for n := 0; n < l.Nodes(); n++ {
		if l.Face(n).Equal(face) {
			return n
		}
	}
	t.Fatalf("no node with face %v", face)

	return -1
}

func TestHasseDiagram_CompleteFan(t *testing.T) {
	l, err := fan.HasseDiagram(projectivePlane(t))
	require.NoError(t, err)
	require.NoError(t, lattice.Validate(l))

	assert.Equal(t, 8, l.Nodes())
	assert.Equal(t, 12, l.EdgeCount())
	assert.Equal(t, []int{3, 3}, l.FVector())
	assert.True(t, l.Face(l.BottomNode()).Empty())
	assert.Equal(t, lattice.ArtificialFace(), l.Face(l.TopNode()))
	r, _ := l.NodeRank(l.TopNode())
	assert.Equal(t, 3, r)
}

func TestHasseDiagram_PrimalMatchesDual(t *testing.T) {
	for name, c := range map[string]*fan.Complex{
		"complete fan":  projectivePlane(t),
		"two triangles": twoTriangles(t),
	} {
		t.Run(name, func(t *testing.T) {
			dual, err := fan.HasseDiagram(c)
			require.NoError(t, err)

			// an upper bound just below the top forces the upward build
			primal, err := fan.HasseDiagram(c, fan.WithRankUpperBound(c.Dimension()+1))
			require.NoError(t, err)
			require.NoError(t, lattice.Validate(primal))

			assert.Equal(t, facesByRank(dual), facesByRank(primal))
			assert.Equal(t, dual.EdgeCount(), primal.EdgeCount())
		})
	}
}

func TestHasseDiagram_TwoTriangles(t *testing.T) {
	l, err := fan.HasseDiagram(twoTriangles(t))
	require.NoError(t, err)
	require.NoError(t, lattice.Validate(l))

	assert.Equal(t, 13, l.Nodes())
	assert.Equal(t, 22, l.EdgeCount())
	assert.Equal(t, []int{4, 5, 2}, l.FVector())
}

func TestHasseDiagram_RankBounds(t *testing.T) {
	c := projectivePlane(t)

	upper, err := fan.HasseDiagram(c, fan.WithRankUpperBound(1))
	require.NoError(t, err)
	require.NoError(t, lattice.Validate(upper))
	assert.Equal(t, 5, upper.Nodes())
	assert.Equal(t, lattice.ArtificialFace(), upper.Face(upper.TopNode()))
	r, _ := upper.NodeRank(upper.TopNode())
	assert.Equal(t, 2, r)

	lower, err := fan.HasseDiagram(c, fan.WithRankLowerBound(2))
	require.NoError(t, err)
	require.NoError(t, lattice.Validate(lower))
	assert.Equal(t, 5, lower.Nodes())
	assert.Equal(t, 6, lower.EdgeCount())
	assert.True(t, lower.Face(lower.BottomNode()).Empty())

	// bounds that exclude nothing are ignored
	trivial, err := fan.HasseDiagram(c, fan.WithRankLowerBound(0))
	require.NoError(t, err)
	assert.Equal(t, 8, trivial.Nodes())
}

func TestHasseDiagram_FarVertices(t *testing.T) {
	l, err := fan.HasseDiagram(twoTriangles(t), fan.WithFarVertices(set.New(3)))
	require.NoError(t, err)
	require.NoError(t, lattice.Validate(l))

	assert.Equal(t, 9, l.Nodes())
	for n := 0; n < l.Nodes(); n++ {
		assert.False(t, l.Face(n).Contains(3), "node %d", n)
	}
	r, _ := l.NodeRank(l.TopNode())
	assert.Equal(t, 4, r)
}

func TestHasseDiagram_NonPure(t *testing.T) {
	c, err := fan.New([]set.Set{set.New(0, 1, 2), set.New(2, 3)}, 4, 2,
		fan.WithCellFacets([][]set.Set{
			{set.New(0, 1), set.New(1, 2), set.New(0, 2)},
			{set.New(2), set.New(3)},
		}),
		fan.WithCellDims([]int{2, 1}))
	require.NoError(t, err)
	assert.False(t, c.IsPure())

	l, err := fan.HasseDiagram(c)
	require.NoError(t, err)
	require.NoError(t, lattice.Validate(l))

	assert.Equal(t, 11, l.Nodes())
	assert.Equal(t, []int{4, 4, 1}, l.FVector())
	byRank := facesByRank(l)
	assert.Equal(t, []set.Set{set.New(0, 1), set.New(0, 2), set.New(1, 2), set.New(2, 3)}, byRank[2])
}

func TestEmptyHasseDiagram(t *testing.T) {
	c, err := fan.New(nil, 0, -1)
	require.NoError(t, err)
	l, err := fan.HasseDiagram(c)
	require.NoError(t, err)

	require.Equal(t, 2, l.Nodes())
	assert.Equal(t, 0, l.BottomNode())
	assert.Equal(t, 1, l.TopNode())
	assert.Equal(t, lattice.ArtificialFace(), l.Face(1))
	assert.Equal(t, fan.EmptyHasseDiagram().Edges(), l.Edges())
}

func TestComputeOldClosure(t *testing.T) {
	l, err := fan.HasseDiagram(projectivePlane(t))
	require.NoError(t, err)

	for _, s := range []set.Set{set.New(0), set.New(0, 1), set.New(2)} {
		n, err := fan.ComputeOldClosure(l, s)
		require.NoError(t, err)
		assert.Equal(t, s, l.Face(n))
	}

	n, err := fan.ComputeOldClosure(l, set.Set{})
	require.NoError(t, err)
	assert.Equal(t, l.BottomNode(), n)

	// no cell holds all three rays
	n, err = fan.ComputeOldClosure(l, set.New(0, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, l.TopNode(), n)

	_, err = fan.ComputeOldClosure(lattice.New[lattice.BasicDecoration](lattice.Sequential), set.New(0))
	assert.ErrorIs(t, err, lattice.ErrNoTopNode)
}

func TestSedentarityHasseDiagram(t *testing.T) {
	far := set.New(3)
	l, err := fan.SedentarityHasseDiagram(twoTriangles(t), far)
	require.NoError(t, err)
	require.NoError(t, lattice.Validate(l))
	require.Equal(t, 13, l.Nodes())

	cases := []struct {
		face, sedentarity, realisation set.Set
	}{
		{set.New(0, 1, 2), set.Set{}, set.New(0, 1, 2)},
		{set.New(1, 2, 3), set.New(3), set.New(1, 2)},
		{set.New(1, 3), set.New(3), set.New(1)},
		{set.New(3), set.New(3), set.Set{}},
	}
	for _, tc := range cases {
		d, err := l.Decoration(nodeOf(t, l, tc.face))
		require.NoError(t, err)
		assert.True(t, tc.sedentarity.Equal(d.Sedentarity), "sedentarity of %v: %v", tc.face, d.Sedentarity)
		assert.True(t, tc.realisation.Equal(d.Realisation), "realisation of %v: %v", tc.face, d.Realisation)
	}

	top, _ := l.Decoration(l.TopNode())
	assert.Equal(t, lattice.ArtificialFace(), top.Realisation)
	assert.True(t, top.Sedentarity.Empty())
}

func TestNew_Errors(t *testing.T) {
	_, err := fan.New([]set.Set{set.New(0, 4)}, 3, 1)
	assert.ErrorIs(t, err, fan.ErrVertexRange)

	_, err = fan.New([]set.Set{set.New(0, 1)}, 3, 1, fan.WithCellFacets([][]set.Set{}))
	assert.ErrorIs(t, err, fan.ErrShape)

	_, err = fan.New([]set.Set{set.New(0, 1)}, 3, 1, fan.WithCellFacets([][]set.Set{{set.New(2)}}))
	assert.ErrorIs(t, err, fan.ErrVertexRange)

	_, err = fan.New([]set.Set{set.New(0, 1)}, 3, 1, fan.WithCellDims([]int{2}))
	assert.ErrorIs(t, err, fan.ErrDimension)

	_, err = fan.New([]set.Set{set.New(0, 1)}, 3, -1)
	assert.ErrorIs(t, err, fan.ErrDimension)

	_, err = fan.HasseDiagram(projectivePlane(t), fan.WithTopologicalClosure(false))
	assert.ErrorIs(t, err, fan.ErrNoCellFacets)
}

func ExampleHasseDiagram() {
	c, _ := fan.New([]set.Set{set.New(0, 1), set.New(1, 2), set.New(0, 2)}, 3, 1)
	l, _ := fan.HasseDiagram(c)
	for _, r := range l.InverseRankMap().Ranks() {
		var faces []set.Set
		for _, n := range l.NodesOfRank(r) {
			faces = append(faces, l.Face(n))
		}
		set.SortSets(faces)
		fmt.Println(r, faces)
	}
	// Output:
	// 0 [{}]
	// 1 [{0} {1} {2}]
	// 2 [{0 1} {0 2} {1 2}]
	// 3 [{-1}]
}
