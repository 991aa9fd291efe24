package fan

import (
	"github.com/katalvlaran/polylattice/lattice"
	"github.com/katalvlaran/polylattice/set"
)

// Lattice is the decorated lattice returned by HasseDiagram.
type Lattice = lattice.Lattice[lattice.BasicDecoration]

// Option configures HasseDiagram and SedentarityHasseDiagram.
type Option func(*options)

type options struct {
	bounded   bool
	bound     int
	direction lattice.RankDirection
	far       set.Set
	complete  *bool
	build     []lattice.BuildOption
}

// WithRankUpperBound keeps only cells of rank at most k, plus an artificial
// top. The diagram is then enumerated upwards.
func WithRankUpperBound(k int) Option {
	return func(o *options) { o.bounded, o.bound, o.direction = true, k, lattice.LessEqual }
}

// WithRankLowerBound keeps only cells of rank at least k, plus an artificial
// empty bottom at rank 0.
func WithRankLowerBound(k int) Option {
	return func(o *options) { o.bounded, o.bound, o.direction = true, k, lattice.GreaterEqual }
}

// WithFarVertices restricts the diagram to the bounded cells, those
// avoiding far. The diagram is then enumerated upwards with an artificial
// top.
func WithFarVertices(far set.Set) Option {
	return func(o *options) { o.far = far }
}

// WithTopologicalClosure overrides whether the maximal cells are taken to
// generate all cells by intersection. It defaults to Complex.IsComplete.
func WithTopologicalClosure(on bool) Option {
	return func(o *options) { o.complete = &on }
}

// WithBuildOptions forwards options (context, logger, limits) to the
// lattice builder.
func WithBuildOptions(opts ...lattice.BuildOption) Option {
	return func(o *options) { o.build = append(o.build, opts...) }
}

// EmptyHasseDiagram returns the diagram of a complex without vertices: the
// empty face at rank 0 below the artificial top {-1} at rank 1.
func EmptyHasseDiagram() *Lattice {
	return emptyDiagram[lattice.BasicDecoration](Basic)
}

func emptyDiagram[D lattice.Decorated[D]](mk Maker[D]) *lattice.Lattice[D] {
	l := lattice.New[D](lattice.Sequential)
	_, _ = l.AddNode(mk(set.Set{}, 0))
	_, _ = l.AddNode(mk(lattice.ArtificialFace(), 1))
	_ = l.AddEdge(0, 1)
	_ = l.SetBottomNode(0)
	_ = l.SetTopNode(1)

	return l
}

// HasseDiagram returns the face lattice of c.
//
// Implementation:
//   - Stage 1: drop rank bounds that exclude nothing (a lower bound <= 0, an
//     upper bound >= Dimension()+2).
//   - Stage 2: enumerate downwards unless an upper bound or far vertices are
//     set. Far vertices select the upward operator with a set-avoiding cut
//     (and the rank cut, if any) and an artificial top. A lower bound runs
//     downwards behind a not-full-set cut and the rank cut with an
//     artificial bottom; an upper bound runs upwards behind the same
//     not-full-set cut with an artificial top.
//   - Stage 3: renumber nodes rank by rank.
//
// Without bounds, an upward build over several maximal cells reaches the
// whole vertex set as a closure and relabels it as the artificial top; a
// single cell gets an artificial top instead. A downward build of a
// complete complex whose maximal cells share more than two vertices gets
// an artificial empty bottom, since intersections never go below the
// common part.
//
// Errors: ErrNoCellFacets, builder errors.
func HasseDiagram(c *Complex, opts ...Option) (*Lattice, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return build[lattice.BasicDecoration](c, o, Basic)
}

func build[D lattice.Decorated[D]](c *Complex, o options, mk Maker[D]) (*lattice.Lattice[D], error) {
	if c.vertices == 0 {
		return emptyDiagram(mk), nil
	}
	complete := c.IsComplete()
	if o.complete != nil {
		complete = *o.complete
	}
	if o.bounded {
		if (o.direction == lattice.GreaterEqual && o.bound <= 0) ||
			(o.direction == lattice.LessEqual && o.bound >= c.dim+2) {
			o.bounded = false
		}
	}
	dual := !(o.bounded && o.direction == lattice.LessEqual) && o.far.Empty()

	var (
		cut        lattice.Cut[D] = lattice.TrivialCut[D]{}
		artificial bool
	)
	rankCut := lattice.RankCut[D]{Bound: o.bound, Direction: o.direction}
	switch {
	case !o.far.Empty():
		cut = lattice.SetAvoidingCut[D]{Avoid: o.far}
		if o.bounded {
			cut = lattice.And[D](cut, rankCut)
		}
		artificial = true
	case o.bounded:
		cut = lattice.And[D](lattice.NotFullSetCut[D]{Total: c.vertices}, rankCut)
		artificial = true
	case dual:
		common := set.Set(nil)
		for i, cell := range c.cells {
			if i == 0 {
				common = cell
				continue
			}
			common = common.Intersect(cell)
		}
		artificial = complete && common.Len() > 2
	default:
		artificial = len(c.cells) == 1
	}

	bopts := append([]lattice.BuildOption{
		lattice.WithKind(lattice.Nonsequential),
		lattice.WithArtificialNode(artificial),
		lattice.WithDual(dual),
	}, o.build...)

	var l *lattice.Lattice[D]
	if dual {
		op, err := NewDualClosure[D](c, complete)
		if err != nil {
			return nil, err
		}
		l, err = lattice.Build[*Data, D](op, cut, NewDualComplexDecorator(c, mk), bopts...)
		if err != nil {
			return nil, err
		}
	} else {
		op, err := NewPrimalClosure[D](c, complete)
		if err != nil {
			return nil, err
		}
		fullIsArtificial := len(c.cells) > 1 && o.far.Empty()
		l, err = lattice.Build[*Data, D](op, cut, NewPrimalComplexDecorator(c, fullIsArtificial, mk), bopts...)
		if err != nil {
			return nil, err
		}
	}
	seq, _, err := l.Sequentialize()

	return seq, err
}
