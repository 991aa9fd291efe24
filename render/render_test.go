package render_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polylattice/closure"
	"github.com/katalvlaran/polylattice/fan"
	"github.com/katalvlaran/polylattice/lattice"
	"github.com/katalvlaran/polylattice/matrix"
	"github.com/katalvlaran/polylattice/render"
	"github.com/katalvlaran/polylattice/set"
)

func twoEdges(t *testing.T) *lattice.Lattice[lattice.BasicDecoration] {
	t.Helper()
	op, err := closure.NewBasic(matrix.MustFromRows(3, []set.Set{set.New(0, 1), set.New(1, 2)}))
	require.NoError(t, err)
	l, err := lattice.Build[*closure.Data, lattice.BasicDecoration](op,
		lattice.TrivialCut[lattice.BasicDecoration]{},
		lattice.NewPrimalDecorator[*closure.Data](0, set.Range(3)),
		lattice.WithArtificialNode(true))
	require.NoError(t, err)

	return l
}

func TestDOT_Golden(t *testing.T) {
	g := goldie.New(t)

	out, err := render.DOTBytes(twoEdges(t))
	require.NoError(t, err)
	g.Assert(t, "two_edges", out)

	c, err := fan.New([]set.Set{set.New(0, 1), set.New(1, 2), set.New(0, 2)}, 3, 1)
	require.NoError(t, err)
	l, err := fan.HasseDiagram(c)
	require.NoError(t, err)
	out, err = render.DOTBytes(l, render.WithTitle("P2"))
	require.NoError(t, err)
	g.Assert(t, "projective_plane", out)
}

func TestDOT_Options(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.DOT(&buf, twoEdges(t), render.WithRankDir("TB"), render.WithRankLabels(false)))

	out := buf.String()
	assert.Contains(t, out, `rankdir="TB";`)
	assert.Contains(t, out, `"n1" [ label="{0 1}" ];`)
	assert.NotContains(t, out, "rank 1")
}

func TestParseFormat(t *testing.T) {
	f, err := render.ParseFormat("SVG")
	require.NoError(t, err)
	assert.EqualValues(t, "svg", f)

	f, err = render.FormatOf(filepath.Join("out", "hasse.png"))
	require.NoError(t, err)
	assert.EqualValues(t, "png", f)

	_, err = render.ParseFormat("bmp")
	assert.ErrorIs(t, err, render.ErrFormat)
}

func TestImage_SVG(t *testing.T) {
	dot, err := render.DOTBytes(twoEdges(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Image(dot, "svg", &buf))
	assert.Contains(t, buf.String(), "<svg")

	path := filepath.Join(t.TempDir(), "two_edges.svg")
	require.NoError(t, render.ImageFile(dot, path))
	assert.FileExists(t, path)
}
