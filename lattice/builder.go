// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Breadth-first construction of a lattice from a closure operator,
//       a cut and a decorator.
// Determinism:
//   - The queue is FIFO and closures are consumed in the order the operator
//     yields them, so node ids are reproducible for a given operator.

package lattice

import (
	"context"
	"fmt"
	"time"

	"github.com/inconshreveable/log15"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/polylattice/set"
)

// BuildOption configures Build and Extend.
type BuildOption func(*buildConfig)

type buildConfig struct {
	ctx        context.Context
	artificial bool
	dual       bool
	kind       Kind
	maxNodes   int
	logger     log15.Logger
	onNode     func(node int)
}

func defaultBuildConfig() buildConfig {
	return buildConfig{
		ctx:    context.Background(),
		kind:   Sequential,
		logger: log15.New("module", "lattice"),
	}
}

// WithArtificialNode requests a synthesized top (bottom, if dual) node
// joined to every maximal (minimal) node.
func WithArtificialNode(on bool) BuildOption {
	return func(c *buildConfig) { c.artificial = on }
}

// WithDual builds top-down: edges are stored from the discovered node to
// its discoverer, so they still point from lower to higher rank.
func WithDual(on bool) BuildOption {
	return func(c *buildConfig) { c.dual = on }
}

// WithKind selects the rank map representation of a fresh lattice
// (default Sequential).
func WithKind(k Kind) BuildOption {
	return func(c *buildConfig) { c.kind = k }
}

// WithContext sets a cancellation context, checked once per expanded node.
func WithContext(ctx context.Context) BuildOption {
	return func(c *buildConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithLogger routes build logs to l.
func WithLogger(l log15.Logger) BuildOption {
	return func(c *buildConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxNodes aborts the build with ErrTooManyNodes once the lattice would
// exceed n nodes. n <= 0 means unlimited.
func WithMaxNodes(n int) BuildOption {
	return func(c *buildConfig) { c.maxNodes = n }
}

// WithOnNode registers a hook called with every node id the build adds,
// including the artificial node.
func WithOnNode(fn func(node int)) BuildOption {
	return func(c *buildConfig) { c.onNode = fn }
}

// queueEntry is a closed set whose covers are still to be explored.
type queueEntry[C any] struct {
	data C
	node int
}

// runner carries the state of one build.
type runner[C any, D Decorated[D]] struct {
	cfg buildConfig
	op  ClosureOperator[C, D]
	cut Cut[D]
	dec Decorator[C, D]
	l   *Lattice[D]

	queue    []queueEntry[C]
	maxFaces []int
	rejected int
}

func (r *runner[C, D]) addNode(d D) (int, error) {
	if r.cfg.maxNodes > 0 && r.l.Nodes() >= r.cfg.maxNodes {
		return -1, fmt.Errorf("%w: limit %d", ErrTooManyNodes, r.cfg.maxNodes)
	}
	n, err := r.l.AddNode(d)
	if err != nil {
		return -1, err
	}
	if r.cfg.onNode != nil {
		r.cfg.onNode(n)
	}

	return n, nil
}

func (r *runner[C, D]) addEdge(lower, upper int) error {
	if r.cfg.dual {
		lower, upper = upper, lower
	}

	return r.l.AddEdge(lower, upper)
}

// expand drains the queue. For every closed set above the dequeued one it
// either creates a node (unknown and accepted), skips it (rejected now or
// before) or links to the existing node.
func (r *runner[C, D]) expand() error {
	for len(r.queue) > 0 {
		if err := r.cfg.ctx.Err(); err != nil {
			return err
		}
		h := r.queue[0]
		r.queue = r.queue[1:]
		pred := r.l.decor[h.node]

		isMax := true
		for c := range r.op.ClosuresAbove(h.data) {
			fi := r.op.IndexingData(c)
			switch {
			case fi.IsUnknown():
				d := r.dec.Decoration(c, pred)
				if !r.cut.Accept(d) {
					fi.MarkUnwanted()
					r.rejected++
					continue
				}
				n, err := r.addNode(d)
				if err != nil {
					return err
				}
				fi.SetIndex(n)
				r.queue = append(r.queue, queueEntry[C]{data: c, node: n})
			case fi.IsUnwanted():
				continue
			}
			if err := r.addEdge(h.node, fi.Index()); err != nil {
				return err
			}
			isMax = false
		}
		if isMax {
			r.maxFaces = append(r.maxFaces, h.node)
		}
	}

	return nil
}

// finish adds the artificial node and designates the extremes.
func (r *runner[C, D]) finish(start int) error {
	origin, far := &r.l.bottom, &r.l.top
	if r.cfg.dual {
		origin, far = far, origin
	}
	if start >= 0 {
		*origin = start
	}

	if r.cfg.artificial {
		n, err := r.addNode(r.dec.ArtificialDecoration(r.l.decor, r.maxFaces))
		if err != nil {
			return err
		}
		for _, m := range r.maxFaces {
			if err = r.addEdge(m, n); err != nil {
				return err
			}
		}
		*far = n
		r.cfg.logger.Debug("artificial node added", "node", n, "joins", len(r.maxFaces))
		return nil
	}
	if len(r.maxFaces) == 1 {
		*far = r.maxFaces[0]
	}

	return nil
}

func (r *runner[C, D]) run(mode string, seed func() (int, error)) (err error) {
	ctx, span := startBuildSpan(r.cfg.ctx, mode, r.cfg.dual, r.cfg.artificial)
	defer span.End()
	r.cfg.ctx = ctx
	began := time.Now()
	r.cfg.logger.Debug("lattice build started", "mode", mode, "dual", r.cfg.dual, "artificial", r.cfg.artificial)

	defer func() {
		recordBuildMetrics(ctx, mode, time.Since(began), r.l.Nodes(), r.l.EdgeCount(), r.rejected, err == nil)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			r.cfg.logger.Warn("lattice build failed", "mode", mode, "err", err)
			return
		}
		setBuildSpanResult(span, r.l.Nodes(), r.l.EdgeCount(), len(r.maxFaces))
		r.cfg.logger.Debug("lattice build finished", "mode", mode,
			"nodes", r.l.Nodes(), "edges", r.l.EdgeCount(), "rejected", r.rejected,
			"elapsed", time.Since(began))
	}()

	start, err := seed()
	if err != nil {
		return err
	}
	if err = r.expand(); err != nil {
		return err
	}

	return r.finish(start)
}

func newRunner[C any, D Decorated[D]](op ClosureOperator[C, D], cut Cut[D], dec Decorator[C, D], opts []BuildOption) (*runner[C, D], error) {
	if op == nil || cut == nil || dec == nil {
		return nil, ErrNilStrategy
	}
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &runner[C, D]{cfg: cfg, op: op, cut: cut, dec: dec}, nil
}

// Build constructs the lattice of closed sets of op.
//
// Implementation:
//   - Stage 1: the closure of the empty set, decorated by InitialDecoration,
//     becomes node 0 (the bottom, or the top when dual) and is queued.
//   - Stage 2: FIFO expansion. Every closed set yielded above a dequeued node
//     is looked up in the operator's face map: an unknown set is decorated
//     and, if the cut accepts it, added and queued, otherwise marked unwanted;
//     a known accepted set only gains the covering edge. A node with no
//     accepted cover is recorded as maximal.
//   - Stage 3: optionally an artificial node joins all maximal nodes.
//
// Edges always run from lower to higher rank: discoverer→discovered in
// primal builds, reversed when dual.
//
// Errors: ErrNilStrategy, ErrTooManyNodes, ErrNotSequential, context errors.
// Complexity: O(N · cost(ClosuresAbove)) for N closed sets reached.
func Build[C any, D Decorated[D]](op ClosureOperator[C, D], cut Cut[D], dec Decorator[C, D], opts ...BuildOption) (*Lattice[D], error) {
	r, err := newRunner(op, cut, dec, opts)
	if err != nil {
		return nil, err
	}
	r.l = New[D](r.cfg.kind)

	err = r.run("build", func() (int, error) {
		c := op.ClosureOfEmptySet()
		n, err := r.addNode(dec.InitialDecoration(c))
		if err != nil {
			return -1, err
		}
		op.IndexingData(c).SetIndex(n)
		r.queue = append(r.queue, queueEntry[C]{data: c, node: n})
		return n, nil
	})
	if err != nil {
		return nil, err
	}

	return r.l, nil
}

// Extend continues the construction of an existing lattice in place. The
// closure data of every node is recomputed and registered in the operator's
// face map; nodes in queueing (all nodes when queueing is nil) are queued
// for expansion. Covers found for them are linked or added exactly as in
// Build. A Sequential lattice is converted to Nonsequential first, since new
// nodes may join existing ranks.
//
// The lattice's existing extremes are kept unless the artificial node or a
// unique maximal node replaces the far one.
func Extend[C any, D Decorated[D]](l *Lattice[D], op ClosureOperator[C, D], cut Cut[D], dec Decorator[C, D], queueing set.Set, opts ...BuildOption) error {
	if l == nil {
		return ErrNilStrategy
	}
	r, err := newRunner(op, cut, dec, opts)
	if err != nil {
		return err
	}
	if l.ranks.Kind() == Sequential {
		l.ranks = l.ranks.toNonsequential()
	}
	r.l = l

	return r.run("extend", func() (int, error) {
		for n, d := range l.decor {
			c := op.ComputeClosureData(d)
			op.IndexingData(c).SetIndex(n)
			if queueing == nil || queueing.Contains(n) {
				r.queue = append(r.queue, queueEntry[C]{data: c, node: n})
			}
		}
		return -1, nil
	})
}
