// Package matching solves assignment and matching problems on bipartite
// structures: the Hungarian method on a square weight matrix, maximum
// matchings and the enumeration of all perfect matchings of a bipartite
// core.Graph.
package matching

import (
	"context"
	"errors"

	"github.com/katalvlaran/polylattice/core"
)

// Sentinel errors.
var (
	// ErrNilMatrix is returned for a nil weight matrix.
	ErrNilMatrix = errors.New("matching: weight matrix is nil")

	// ErrNotSquare is returned when the weight matrix is not n×n.
	ErrNotSquare = errors.New("matching: weight matrix is not square")

	// ErrInvalidWeight is returned for weights the method cannot handle
	// (-Inf when minimising, +Inf when maximising).
	ErrInvalidWeight = errors.New("matching: invalid weight")

	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrNotBipartite is returned when an edge does not cross the given
	// bipartition, or the part names deleted or unknown nodes.
	ErrNotBipartite = errors.New("matching: graph is not bipartite w.r.t. the given part")

	// ErrNoPerfectMatching is returned when the graph has no perfect matching.
	ErrNoPerfectMatching = errors.New("matching: no perfect matching")
)

// Assignment is the result of the Hungarian method.
//
// Matching[i] is the column assigned to row i (-1 for rows left unmatched
// when the problem is infeasible). RowDual and ColDual are the final dual
// variables; for a minimising run RowDual[i]+ColDual[j] <= w[i][j] with
// equality on every matched pair.
type Assignment struct {
	Matching []int
	Value    float64
	Infinite bool
	RowDual  []float64
	ColDual  []float64
}

// Option configures the Hungarian method.
type Option func(*Options)

// Options holds solver parameters.
type Options struct {
	// Ctx is checked once per tree growth.
	Ctx context.Context

	// Maximize solves the maximum-weight assignment instead.
	Maximize bool

	// Tolerance decides when a reduced cost counts as zero. Zero selects
	// 1e-9 scaled by the largest finite weight magnitude.
	Tolerance float64
}

// DefaultOptions returns a minimising configuration with background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaximize switches to maximum-weight assignment.
func WithMaximize() Option {
	return func(o *Options) { o.Maximize = true }
}

// WithTolerance sets the zero tolerance for reduced costs.
// Panics on a negative value (programmer error).
func WithTolerance(eps float64) Option {
	if eps < 0 {
		panic("matching: WithTolerance requires eps >= 0")
	}

	return func(o *Options) { o.Tolerance = eps }
}

// lessEdge orders edges by (From, To).
func lessEdge(a, b core.Edge) bool {
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}
