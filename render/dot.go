// Package render draws lattices as Graphviz documents.
//
// DOT writes the DOT text of a lattice: one box per node labelled with its
// face and rank, nodes of equal rank kept on one row, and edges pointing
// from lower to higher rank. Image lays out such a document with the
// embedded Graphviz engine.
package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/katalvlaran/polylattice/lattice"
)

// Option configures DOT.
type Option func(*options)

type options struct {
	title   string
	rankDir string
	ranks   bool
}

// WithTitle names the digraph (default "lattice").
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithRankDir sets the Graphviz rankdir (default "BT", bottom to top).
func WithRankDir(dir string) Option {
	return func(o *options) { o.rankDir = dir }
}

// WithRankLabels toggles the "rank r" line of node labels (default on).
func WithRankLabels(on bool) Option {
	return func(o *options) { o.ranks = on }
}

const tmplGraph = `digraph {{printf "%q" .Title}} {
	rankdir="{{.RankDir}}";
	node [shape="box" style="rounded" fontname="Helvetica"];
{{range .Levels}}	{rank=same;{{range .}} {{printf "%q" .}};{{end}} }
{{end}}{{range .Nodes}}	{{printf "%q" .ID}} [ {{.Attrs}} ];
{{end}}{{range .Edges}}	{{printf "%q -> %q" .From .To}};
{{end}}}
`

var graphTemplate = template.Must(template.New("dot").Parse(tmplGraph))

// attrs renders as space-separated key="value" pairs in key order.
type attrs map[string]string

func (a attrs) String() string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%q", k, a[k])
	}

	return strings.Join(parts, " ")
}

type dotNode struct {
	ID    string
	Attrs attrs
}

type dotEdge struct {
	From, To string
}

type dotGraph struct {
	Title   string
	RankDir string
	Levels  [][]string
	Nodes   []dotNode
	Edges   []dotEdge
}

func nodeID(n int) string { return fmt.Sprintf("n%d", n) }

// DOT writes l as a Graphviz digraph to w. Nodes are listed rank by rank;
// the top and bottom nodes are drawn with a bold border.
func DOT[D lattice.Decorated[D]](w io.Writer, l *lattice.Lattice[D], opts ...Option) error {
	o := options{title: "lattice", rankDir: "BT", ranks: true}
	for _, opt := range opts {
		opt(&o)
	}

	g := dotGraph{Title: o.title, RankDir: o.rankDir}
	for _, r := range l.InverseRankMap().Ranks() {
		var level []string
		for _, n := range l.NodesOfRank(r) {
			level = append(level, nodeID(n))
			label := l.Face(n).String()
			if o.ranks {
				label += fmt.Sprintf("\nrank %d", r)
			}
			a := attrs{"label": label}
			if n == l.TopNode() || n == l.BottomNode() {
				a["penwidth"] = "2"
			}
			g.Nodes = append(g.Nodes, dotNode{ID: nodeID(n), Attrs: a})
		}
		g.Levels = append(g.Levels, level)
	}
	for _, e := range l.Edges() {
		g.Edges = append(g.Edges, dotEdge{From: nodeID(e.From), To: nodeID(e.To)})
	}

	var buf bytes.Buffer
	if err := graphTemplate.Execute(&buf, g); err != nil {
		return fmt.Errorf("render: dot template: %w", err)
	}
	_, err := buf.WriteTo(w)

	return err
}

// DOTBytes is DOT into a byte slice.
func DOTBytes[D lattice.Decorated[D]](l *lattice.Lattice[D], opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := DOT(&buf, l, opts...); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
