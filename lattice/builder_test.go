package lattice_test

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polylattice/closure"
	"github.com/katalvlaran/polylattice/lattice"
	"github.com/katalvlaran/polylattice/matrix"
	"github.com/katalvlaran/polylattice/set"
)

type (
	deco = lattice.BasicDecoration
	lat  = lattice.Lattice[deco]
)

var trivial lattice.Cut[deco] = lattice.TrivialCut[deco]{}

// fixtures are facet lists over a ground set.
var fixtures = map[string]struct {
	ground int
	facets []set.Set
}{
	"two-edges": {3, []set.Set{set.New(0, 1), set.New(1, 2)}},
	"square":    {4, []set.Set{set.New(0, 1), set.New(1, 2), set.New(2, 3), set.New(0, 3)}},
	"pyramid": {5, []set.Set{
		set.New(0, 1, 2, 3), set.New(0, 1, 4), set.New(1, 2, 4), set.New(2, 3, 4), set.New(0, 3, 4),
	}},
	"bowtie": {5, []set.Set{set.New(0, 1, 2), set.New(2, 3, 4)}},
	"coupled": {4, []set.Set{set.New(0, 1, 2), set.New(0, 1, 3), set.New(2, 3)}},
}

func primal(t *testing.T, ground int, facets []set.Set, cut lattice.Cut[deco], opts ...lattice.BuildOption) *lat {
	t.Helper()
	op, err := closure.NewBasic(matrix.MustFromRows(ground, facets))
	require.NoError(t, err)
	l, err := lattice.Build[*closure.Data, deco](op, cut, lattice.NewPrimalDecorator[*closure.Data](0, set.Range(ground)), opts...)
	require.NoError(t, err)

	return l
}

// faceEdges renders the edge set by faces, independent of node numbering.
func faceEdges(l *lat) []string {
	var out []string
	for _, e := range l.Edges() {
		out = append(out, l.Face(e.From).String()+"->"+l.Face(e.To).String())
	}
	sort.Strings(out)

	return out
}

func faceRanks(l *lat) []string {
	var out []string
	for _, d := range l.Decorations() {
		out = append(out, fmt.Sprintf("%v@%d", d.Face, d.Rank))
	}
	sort.Strings(out)

	return out
}

// bruteClosed returns every proper closed subset of the ground set: the
// intersections of the facets containing some subset.
func bruteClosed(ground int, facets []set.Set) []set.Set {
	m := matrix.MustFromRows(ground, facets)
	seen := map[string]set.Set{}
	for mask := 0; mask < 1<<ground; mask++ {
		var elems []int
		for i := 0; i < ground; i++ {
			if mask&(1<<i) != 0 {
				elems = append(elems, i)
			}
		}
		c := m.IntersectRows(m.RowsContaining(set.New(elems...)))
		if c.Len() < ground {
			seen[c.String()] = c
		}
	}
	out := make([]set.Set, 0, len(seen))
	for _, c := range seen {
		out = append(out, c)
	}
	set.SortSets(out)

	return out
}

// bruteCovers lists a->b for closed a ⊂ b with nothing closed in between,
// plus maximal->full for the artificial top.
func bruteCovers(ground int, closed []set.Set) []string {
	full := set.Range(ground)
	isMax := make([]bool, len(closed))
	var out []string
	for i, a := range closed {
		isMax[i] = true
		for j, b := range closed {
			if i == j || !a.IsSubsetOf(b) {
				continue
			}
			isMax[i] = false
			cover := true
			for k, c := range closed {
				if k != i && k != j && a.IsSubsetOf(c) && c.IsSubsetOf(b) {
					cover = false
					break
				}
			}
			if cover {
				out = append(out, a.String()+"->"+b.String())
			}
		}
	}
	for i, a := range closed {
		if isMax[i] {
			out = append(out, a.String()+"->"+full.String())
		}
	}
	sort.Strings(out)

	return out
}

func TestBuild_MatchesBruteForceCovers(t *testing.T) {
	for name, fx := range fixtures {
		t.Run(name, func(t *testing.T) {
			l := primal(t, fx.ground, fx.facets, trivial, lattice.WithArtificialNode(true))
			require.NoError(t, lattice.Validate(l))

			closed := bruteClosed(fx.ground, fx.facets)
			assert.Equal(t, len(closed)+1, l.Nodes())
			assert.Equal(t, bruteCovers(fx.ground, closed), faceEdges(l))
		})
	}
}

func TestBuild_RanksIncreaseByOneAlongEdges(t *testing.T) {
	for name, fx := range fixtures {
		t.Run(name, func(t *testing.T) {
			l := primal(t, fx.ground, fx.facets, trivial)
			for _, e := range l.Edges() {
				rf, _ := l.NodeRank(e.From)
				rt, _ := l.NodeRank(e.To)
				assert.Equal(t, rf+1, rt, "edge %v", e)
			}
		})
	}
}

func TestBuild_FacesAreClosed(t *testing.T) {
	fx := fixtures["pyramid"]
	m := matrix.MustFromRows(fx.ground, fx.facets)
	l := primal(t, fx.ground, fx.facets, trivial)
	for n := 0; n < l.Nodes(); n++ {
		f := l.Face(n)
		assert.Equal(t, f, m.IntersectRows(m.RowsContaining(f)), "node %d", n)
	}
}

func TestBuild_TopAndBottom(t *testing.T) {
	fx := fixtures["two-edges"]

	withTop := primal(t, fx.ground, fx.facets, trivial, lattice.WithArtificialNode(true))
	assert.Equal(t, 0, withTop.BottomNode())
	assert.Equal(t, 3, withTop.TopNode())

	noTop := primal(t, fx.ground, fx.facets, trivial)
	assert.Equal(t, 0, noTop.BottomNode())
	assert.Equal(t, -1, noTop.TopNode(), "two maximal faces, no unique top")
	assert.Equal(t, []int{2}, noTop.FVector())

	single := primal(t, 3, []set.Set{set.New(0, 1), set.New(0)}, trivial)
	assert.Equal(t, 1, single.TopNode())
	assert.Equal(t, []int{single.TopNode()}, single.NodesOfRank(1))
}

func TestBuild_RankCutEqualsRestriction(t *testing.T) {
	for name, fx := range fixtures {
		t.Run(name, func(t *testing.T) {
			full := primal(t, fx.ground, fx.facets, trivial)
			cut := lattice.RankCut[deco]{Bound: 1, Direction: lattice.LessEqual}
			bounded := primal(t, fx.ground, fx.facets, cut)

			for n := 0; n < bounded.Nodes(); n++ {
				d, _ := bounded.Decoration(n)
				assert.True(t, cut.Accept(d))
			}

			var want []string
			for _, e := range full.Edges() {
				if r, _ := full.NodeRank(e.To); r <= 1 {
					want = append(want, full.Face(e.From).String()+"->"+full.Face(e.To).String())
				}
			}
			sort.Strings(want)
			assert.Equal(t, want, faceEdges(bounded))
			assert.Len(t, bounded.NodesOfRankRange(0, 1), bounded.Nodes())
			assert.Equal(t, full.NodesOfRankRange(0, 1), bounded.NodesOfRankRange(0, 1))
		})
	}
}

func TestBuild_SetAvoidingCut(t *testing.T) {
	fx := fixtures["square"]
	cut := lattice.SetAvoidingCut[deco]{Avoid: set.New(3)}
	l := primal(t, fx.ground, fx.facets, cut, lattice.WithArtificialNode(true))

	for n := 0; n < l.Nodes(); n++ {
		if n == l.TopNode() {
			continue
		}
		assert.False(t, l.Face(n).Contains(3))
	}
	// ∅, {0},{1},{2}, {0,1},{1,2}, top
	assert.Equal(t, 7, l.Nodes())
	assert.Equal(t, []int{3, 2}, l.FVector())
}

func TestBuild_DualAgreesWithPrimal(t *testing.T) {
	// the dual build has an empty artificial bottom, so only fixtures whose
	// facets have an empty common intersection are comparable
	for _, name := range []string{"square", "pyramid", "coupled"} {
		fx := fixtures[name]
		t.Run(name, func(t *testing.T) {
			p := primal(t, fx.ground, fx.facets, trivial, lattice.WithArtificialNode(true))

			vif := matrix.MustFromRows(fx.ground, fx.facets)
			op, err := closure.NewBasic(vif.Transpose(), closure.WithDualDecorations())
			require.NoError(t, err)
			d, err := lattice.Build[*closure.Data, deco](op, trivial,
				lattice.NewDualDecorator[*closure.Data](0, set.Range(fx.ground)),
				lattice.WithDual(true), lattice.WithArtificialNode(true))
			require.NoError(t, err)

			assert.Equal(t, 0, d.TopNode())
			bottom, err := d.Decoration(d.BottomNode())
			require.NoError(t, err)
			assert.True(t, bottom.Face.Empty())

			shifted, err := d.ShiftRanks(-bottom.Rank)
			require.NoError(t, err)
			require.NoError(t, lattice.Validate(shifted))
			assert.Equal(t, faceEdges(p), faceEdges(shifted))
		})
	}
}

func TestExtend_CompletesRankBoundedBuild(t *testing.T) {
	fx := fixtures["pyramid"]
	want := primal(t, fx.ground, fx.facets, trivial, lattice.WithArtificialNode(true))

	l := primal(t, fx.ground, fx.facets, lattice.RankCut[deco]{Bound: 1, Direction: lattice.LessEqual})
	op, err := closure.NewBasic(matrix.MustFromRows(fx.ground, fx.facets))
	require.NoError(t, err)

	var added []int
	err = lattice.Extend[*closure.Data, deco](l, op, trivial,
		lattice.NewPrimalDecorator[*closure.Data](0, set.Range(fx.ground)),
		set.New(l.NodesOfRank(1)...),
		lattice.WithArtificialNode(true),
		lattice.WithOnNode(func(n int) { added = append(added, n) }))
	require.NoError(t, err)

	assert.Equal(t, lattice.Nonsequential, l.Kind())
	assert.Equal(t, faceRanks(want), faceRanks(l))
	assert.Equal(t, faceEdges(want), faceEdges(l))
	assert.Equal(t, l.Nodes()-1, l.TopNode())
	assert.Equal(t, want.Nodes()-6, len(added)) // bottom and five vertices existed
	require.NoError(t, lattice.Validate(l))
}

func TestBuild_Errors(t *testing.T) {
	fx := fixtures["square"]
	op, err := closure.NewBasic(matrix.MustFromRows(fx.ground, fx.facets))
	require.NoError(t, err)
	dec := lattice.NewPrimalDecorator[*closure.Data](0, set.Range(fx.ground))

	_, err = lattice.Build[*closure.Data, deco](nil, trivial, dec)
	assert.ErrorIs(t, err, lattice.ErrNilStrategy)

	_, err = lattice.Build[*closure.Data, deco](op, trivial, dec, lattice.WithMaxNodes(3))
	assert.ErrorIs(t, err, lattice.ErrTooManyNodes)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	op, err = closure.NewBasic(matrix.MustFromRows(fx.ground, fx.facets))
	require.NoError(t, err)
	_, err = lattice.Build[*closure.Data, deco](op, trivial, dec, lattice.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuild_OnNodeSeesEveryNode(t *testing.T) {
	fx := fixtures["square"]
	var seen []int
	l := primal(t, fx.ground, fx.facets, trivial,
		lattice.WithArtificialNode(true),
		lattice.WithOnNode(func(n int) { seen = append(seen, n) }))

	require.Len(t, seen, l.Nodes())
	for i, n := range seen {
		assert.Equal(t, i, n)
	}
}

func BenchmarkBuild_Cube(b *testing.B) {
	// cube: vertices 0..7 as bit patterns, facets fix one coordinate
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
	m := matrix.MustFromRows(8, facets)
	dec := lattice.NewPrimalDecorator[*closure.Data](0, set.Range(8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		op, _ := closure.NewBasic(m)
		if _, err := lattice.Build[*closure.Data, deco](op, trivial, dec, lattice.WithArtificialNode(true)); err != nil {
			b.Fatal(err)
		}
	}
}
