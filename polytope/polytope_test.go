package polytope_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polylattice/lattice"
	"github.com/katalvlaran/polylattice/matrix"
	"github.com/katalvlaran/polylattice/polytope"
	"github.com/katalvlaran/polylattice/set"
)

// cube returns the facet/vertex incidence of the 3-cube; vertex v has
// coordinates given by its bits.
func cube() *matrix.Incidence {
	var facets []set.Set
	for bit := 0; bit < 3; bit++ {
		for val := 0; val < 2; val++ {
			var f []int
			for v := 0; v < 8; v++ {
				if (v>>bit)&1 == val {
					f = append(f, v)
				}
			}
			facets = append(facets, set.New(f...))
		}
	}

	return matrix.MustFromRows(8, facets)
}

func faceRanks(l *polytope.Lattice) []string {
	var out []string
	for _, d := range l.Decorations() {
		out = append(out, fmt.Sprintf("%v@%d", d.Face, d.Rank))
	}
	sort.Strings(out)

	return out
}

func TestFaceLattice_Cube(t *testing.T) {
	l, err := polytope.FaceLattice(cube())
	require.NoError(t, err)
	require.NoError(t, lattice.Validate(l))

	assert.Equal(t, []int{8, 12, 6}, polytope.FVector(l))
	assert.Equal(t, 28, l.Nodes())
	assert.Equal(t, set.Range(8), l.Face(l.TopNode()))
	assert.Equal(t, 4, l.Rank())
}

func TestFaceLattice_DualMatchesPrimal(t *testing.T) {
	p, err := polytope.FaceLattice(cube())
	require.NoError(t, err)
	d, err := polytope.FaceLattice(cube(), polytope.WithDual(true))
	require.NoError(t, err)
	require.NoError(t, lattice.Validate(d))

	assert.Equal(t, faceRanks(p), faceRanks(d))
	assert.Equal(t, p.EdgeCount(), d.EdgeCount())
	bottom, err := d.Decoration(d.BottomNode())
	require.NoError(t, err)
	assert.Equal(t, 0, bottom.Rank)
	assert.True(t, bottom.Face.Empty())
}

func TestFaceLattice_RankBounded(t *testing.T) {
	l, err := polytope.FaceLattice(cube(), polytope.RankBounded(2), polytope.WithDual(true))
	require.NoError(t, err)

	assert.Equal(t, 22, l.Nodes())
	assert.Equal(t, []int{8, 12}, l.FVector())
}

func TestFaceLattice_Trivial(t *testing.T) {
	empty, err := polytope.FaceLattice(matrix.MustFromRows(0, nil))
	require.NoError(t, err)
	assert.Equal(t, 1, empty.Nodes())
	assert.Equal(t, 0, empty.TopNode())

	point, err := polytope.FaceLattice(matrix.MustFromRows(1, nil))
	require.NoError(t, err)
	assert.Equal(t, 2, point.Nodes())
	assert.Equal(t, set.New(0), point.Face(point.TopNode()))

	_, err = polytope.FaceLattice(nil)
	assert.ErrorIs(t, err, polytope.ErrNilIncidence)
}

func TestGraphs_Cube(t *testing.T) {
	l, err := polytope.FaceLattice(cube())
	require.NoError(t, err)

	vg := polytope.VertexGraph(l)
	assert.Equal(t, 8, vg.Nodes())
	assert.Equal(t, 12, vg.EdgeCount())
	for v := 0; v < 8; v++ {
		assert.Equal(t, 3, vg.Degree(v))
		assert.True(t, vg.HasEdge(v, v^1))
	}

	fg, err := polytope.FacetGraph(l)
	require.NoError(t, err)
	assert.Equal(t, 6, fg.Nodes())
	assert.Equal(t, 12, fg.EdgeCount(), "the octahedron graph")
}

func TestBoundedFaceLattice(t *testing.T) {
	// unbounded polygon: bounded path 0-1-2, rays 3 and 4
	vif := matrix.MustFromRows(5, []set.Set{
		set.New(0, 1), set.New(1, 2), set.New(0, 3), set.New(2, 4), set.New(3, 4),
	})
	l, err := polytope.BoundedFaceLattice(vif, set.New(3, 4))
	require.NoError(t, err)
	require.NoError(t, lattice.Validate(l))

	assert.Equal(t, 7, l.Nodes())
	assert.Equal(t, set.New(0, 1, 2), l.Face(l.TopNode()))
	assert.Equal(t, []int{3, 2}, l.FVector())

	// strip: a single maximal bounded face becomes the top itself
	strip := matrix.MustFromRows(3, []set.Set{set.New(0, 1), set.New(0, 2), set.New(1, 2)})
	s, err := polytope.BoundedFaceLattice(strip, set.New(2))
	require.NoError(t, err)
	assert.Equal(t, 4, s.Nodes())
	assert.Equal(t, set.New(0, 1), s.Face(s.TopNode()))
}
