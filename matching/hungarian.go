package matching

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polylattice/bfs"
	"github.com/katalvlaran/polylattice/core"
	"github.com/katalvlaran/polylattice/matrix"
)

// treeGrowVisitor grows a Hungarian tree inside the equality subgraph.
// label[n] is the node n was discovered from (the seed labels itself, -1
// means unlabeled); leaf is the first exposed column reached, -1 if none.
type treeGrowVisitor struct {
	dim   int
	eq    *core.Graph
	label []int
	leaf  int
}

func (v *treeGrowVisitor) Clear(n int) {
	if cap(v.label) >= n {
		v.label = v.label[:n]
	} else {
		v.label = make([]int, n)
	}
	for i := range v.label {
		v.label[i] = -1
	}
	v.leaf = -1
}

func (v *treeGrowVisitor) Start(n int)     { v.label[n] = n }
func (v *treeGrowVisitor) Seen(n int) bool { return v.label[n] >= 0 }

func (v *treeGrowVisitor) Discover(from, to int) bool {
	v.label[to] = from
	// a column without outgoing (matched) edge ends an augmenting path
	if to >= v.dim && v.leaf < 0 && v.eq.OutDegree(to) == 0 {
		v.leaf = to
	}

	return true
}

// Solver runs the primal-dual Hungarian method on an n×n weight matrix.
//
// The equality subgraph is a directed bipartite graph on 2n nodes: rows
// are 0..n-1, columns n..2n-1. A tight unmatched pair (i, j) is the edge
// i→n+j; a matched pair is stored reversed, n+j→i. Hence exposed columns
// have no out-edges and exposed rows have no in-edges.
type Solver struct {
	opts Options
	dim  int
	w    [][]float64 // minimisation weights
	a, b []float64
	eps  float64

	eq      *core.Graph
	visitor *treeGrowVisitor
	it      *bfs.Iterator

	infeasible bool
}

// NewSolver validates weights and builds the initial equality subgraph with
// row duals 0 and column duals set to the column minima.
//
// Errors: ErrNilMatrix, ErrNotSquare, ErrInvalidWeight.
func NewSolver(weights *matrix.Dense, opts ...Option) (*Solver, error) {
	if weights == nil {
		return nil, ErrNilMatrix
	}
	if !weights.IsSquare() {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, weights.Rows(), weights.Cols())
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Maximize {
		weights = weights.Scale(-1)
	}

	n := weights.Rows()
	s := &Solver{opts: o, dim: n, w: make([][]float64, n), a: make([]float64, n), b: make([]float64, n)}
	maxAbs := 1.0
	for i := 0; i < n; i++ {
		row, err := weights.Row(i)
		if err != nil {
			return nil, err
		}
		for j, x := range row {
			if math.IsInf(x, -1) {
				return nil, fmt.Errorf("%w: entry (%d,%d) is unbounded", ErrInvalidWeight, i, j)
			}
			if !math.IsInf(x, 1) && math.Abs(x) > maxAbs {
				maxAbs = math.Abs(x)
			}
		}
		s.w[i] = row
	}
	s.eps = o.Tolerance
	if s.eps == 0 {
		s.eps = 1e-9 * maxAbs
	}

	for j := 0; j < n; j++ {
		s.b[j] = math.Inf(1)
		for i := 0; i < n; i++ {
			s.b[j] = math.Min(s.b[j], s.w[i][j])
		}
		if math.IsInf(s.b[j], 1) {
			s.infeasible = true
		}
	}

	s.eq = core.NewGraph(2 * n)
	if !s.infeasible {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if s.tight(i, j) {
					if err := s.eq.AddEdge(i, n+j); err != nil {
						return nil, err
					}
				}
			}
		}
	}
	s.visitor = &treeGrowVisitor{dim: n, eq: s.eq}
	it, err := bfs.New(s.eq, s.visitor, bfs.WithContext(o.Ctx))
	if err != nil {
		return nil, err
	}
	s.it = it

	return s, nil
}

// slack returns the reduced cost of (i, j); +Inf for forbidden pairs.
func (s *Solver) slack(i, j int) float64 {
	if math.IsInf(s.w[i][j], 1) {
		return math.Inf(1)
	}

	return s.w[i][j] - s.a[i] - s.b[j]
}

func (s *Solver) tight(i, j int) bool { return math.Abs(s.slack(i, j)) <= s.eps }

// EqualitySubgraph returns a copy of the current equality subgraph.
func (s *Solver) EqualitySubgraph() *core.Graph { return s.eq.Clone() }

// growTree runs the BFS from an exposed row until an exposed column shows
// up or the tree cannot grow further; returns the leaf or -1.
func (s *Solver) growTree(root int) (int, error) {
	if err := s.it.Reset(root); err != nil {
		return -1, err
	}
	for !s.it.Done() && s.visitor.leaf < 0 {
		s.it.Next()
	}

	return s.visitor.leaf, s.it.Err()
}

// augment flips every edge on the tree path root→leaf, growing the
// matching by one pair.
func (s *Solver) augment(root, leaf int) error {
	for node := leaf; node != root; {
		pred := s.visitor.label[node]
		if err := s.eq.DeleteEdge(pred, node); err != nil {
			return err
		}
		if err := s.eq.AddEdge(node, pred); err != nil {
			return err
		}
		node = pred
	}

	return nil
}

// theta is the least reduced cost from a labeled row to an unlabeled column.
func (s *Solver) theta() float64 {
	th := math.Inf(1)
	for i := 0; i < s.dim; i++ {
		if s.visitor.label[i] < 0 {
			continue
		}
		for j := 0; j < s.dim; j++ {
			if s.visitor.label[s.dim+j] >= 0 {
				continue
			}
			th = math.Min(th, s.slack(i, j))
		}
	}

	return th
}

// modify shifts the duals by theta (labeled rows up, labeled columns down)
// and re-derives the unmatched tight edges. Matched pairs stay tight: a
// labeled non-root row is always reached through its labeled mate.
func (s *Solver) modify(theta float64) error {
	n := s.dim
	for k := 0; k < n; k++ {
		if s.visitor.label[k] >= 0 {
			s.a[k] += theta
		}
		if s.visitor.label[n+k] >= 0 {
			s.b[k] -= theta
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if s.eq.HasEdge(n+j, i) {
				continue
			}
			tight, has := s.tight(i, j), s.eq.HasEdge(i, n+j)
			switch {
			case tight && !has:
				if err := s.eq.AddEdge(i, n+j); err != nil {
					return err
				}
			case !tight && has:
				if err := s.eq.DeleteEdge(i, n+j); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// Solve matches every row, alternating tree growth and dual updates.
//
// Implementation:
//   - Stage 1: rows are processed in ascending order; each is exposed when
//     reached since augmentation never unmatches a row.
//   - Stage 2: grow a Hungarian tree by BFS in the equality subgraph; an
//     exposed column ends an augmenting path, which is flipped.
//   - Stage 3: otherwise shift the duals by theta, the least positive slack
//     between labeled rows and unlabeled columns, and grow again. A theta of
//     +Inf means no finite perfect assignment exists.
//
// Errors: context cancellation.
// Complexity: O(n^4) worst case (n augmentations, each up to n dual updates
// with an O(n^2) rebuild).
func (s *Solver) Solve() (*Assignment, error) {
	if s.infeasible {
		return s.result(true), nil
	}
	for r := 0; r < s.dim; r++ {
		for {
			if err := s.opts.Ctx.Err(); err != nil {
				return nil, err
			}
			leaf, err := s.growTree(r)
			if err != nil {
				return nil, err
			}
			if leaf >= 0 {
				if err = s.augment(r, leaf); err != nil {
					return nil, err
				}
				break
			}
			th := s.theta()
			if math.IsInf(th, 1) {
				return s.result(true), nil
			}
			if err = s.modify(th); err != nil {
				return nil, err
			}
		}
	}

	return s.result(false), nil
}

// result reads the matching off the reversed edges and restores the
// caller's sign convention.
func (s *Solver) result(infinite bool) *Assignment {
	n := s.dim
	res := &Assignment{
		Matching: make([]int, n),
		Infinite: infinite,
		RowDual:  make([]float64, n),
		ColDual:  make([]float64, n),
	}
	sign := 1.0
	if s.opts.Maximize {
		sign = -1
	}
	for i := 0; i < n; i++ {
		res.Matching[i] = -1
		if in := s.eq.Neighbors(i, core.In); len(in) > 0 {
			res.Matching[i] = in[0] - n
		}
		res.RowDual[i] = sign * s.a[i]
		res.ColDual[i] = sign * s.b[i]
	}
	if infinite {
		res.Value = sign * math.Inf(1)
		return res
	}
	for i, j := range res.Matching {
		res.Value += s.w[i][j]
	}
	res.Value *= sign

	return res
}

// Hungarian solves the assignment problem for a square weight matrix:
// a permutation minimising (or, WithMaximize, maximising) the summed
// weights. Forbidden pairs are +Inf (-Inf when maximising); an instance
// without any finite assignment yields Infinite=true rather than an error.
//
//	w, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {2, 1}})
//	a, _ := matching.Hungarian(w)
//	// a.Matching == [0 1], a.Value == 2
func Hungarian(weights *matrix.Dense, opts ...Option) (*Assignment, error) {
	s, err := NewSolver(weights, opts...)
	if err != nil {
		return nil, err
	}

	return s.Solve()
}
