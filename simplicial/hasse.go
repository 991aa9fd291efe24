package simplicial

import (
	"github.com/katalvlaran/polylattice/lattice"
)

// Option configures HasseDiagram.
type Option func(*options)

type options struct {
	upperBound int
	dual       bool
	build      []lattice.BuildOption
}

// WithUpperBound keeps only simplices of rank (size) at most k. The
// artificial top is still added. Negative k means no bound.
func WithUpperBound(k int) Option {
	return func(o *options) { o.upperBound = k }
}

// WithDual enumerates from the facets downwards. It is ignored when an
// upper bound is set, since a bounded lattice is cheaper to grow from the
// bottom.
func WithDual(on bool) Option {
	return func(o *options) { o.dual = on }
}

// WithBuildOptions forwards options (context, logger, limits) to the
// lattice builder.
func WithBuildOptions(opts ...lattice.BuildOption) Option {
	return func(o *options) { o.build = append(o.build, opts...) }
}

// HasseDiagram returns the face lattice of c: the empty simplex at rank 0,
// every simplex at rank equal to its size, and an artificial top with face
// {-1} one rank above the largest facet. Nodes are numbered rank by rank.
func HasseDiagram(c *Complex, opts ...Option) (*lattice.Lattice[lattice.BasicDecoration], error) {
	o := options{upperBound: -1}
	for _, opt := range opts {
		opt(&o)
	}
	dec := decorator{topRank: c.Dimension() + 2}

	var cut lattice.Cut[lattice.BasicDecoration] = lattice.TrivialCut[lattice.BasicDecoration]{}
	if o.upperBound >= 0 {
		cut = lattice.RankCut[lattice.BasicDecoration]{Bound: o.upperBound, Direction: lattice.LessEqual}
		o.dual = false
	}

	build := append([]lattice.BuildOption{lattice.WithKind(lattice.Nonsequential)}, o.build...)
	var (
		l   *lattice.Lattice[lattice.BasicDecoration]
		err error
	)
	if o.dual {
		build = append(build, lattice.WithDual(true))
		l, err = lattice.Build[*Data, lattice.BasicDecoration](NewDualClosure(c), cut, dec, build...)
	} else {
		build = append(build, lattice.WithArtificialNode(true))
		l, err = lattice.Build[*Data, lattice.BasicDecoration](NewClosure(c), cut, dec, build...)
	}
	if err != nil {
		return nil, err
	}
	seq, _, err := l.Sequentialize()

	return seq, err
}
