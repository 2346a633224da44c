// Package ged computes a bounded exact graph edit distance between a Truth
// and a Model graph, all resource and link kinds together.
package ged

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/domain"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/matching"
)

const SkipReason = "skipped: exceeded bound"

var ErrBoundExceeded = errors.New(SkipReason)

type Options struct {
	Mode Mode
	// MaxNodes bounds the number of resources on either side.
	MaxNodes int
	// Timeout bounds the search wall clock. Zero means no limit besides ctx.
	Timeout time.Duration
}

// NodeOp substitutes Model for Truth. A nil Model is a deletion and a nil
// Truth an insertion.
type NodeOp struct {
	Truth *domain.Resource
	Model *domain.Resource
}

type EdgeOp struct {
	Truth *domain.Link
	Model *domain.Link
}

type EditPath struct {
	Nodes []NodeOp
	Edges []EdgeOp
}

type Result struct {
	Mode     Mode      `json:"mode" yaml:"mode"`
	Computed bool      `json:"computed" yaml:"computed"`
	Distance int       `json:"distance" yaml:"distance"`
	Reason   string    `json:"reason,omitempty" yaml:"reason,omitempty"`
	Path     *EditPath `json:"-" yaml:"-"`
}

// Compute searches for the cheapest edit path. When the graphs exceed
// MaxNodes or the search outlives its deadline, the result is not computed
// and carries SkipReason.
func Compute(ctx context.Context, truth, model *domain.Graph, opts Options) Result {
	res := Result{Mode: opts.Mode}
	s := newSearch(truth, model, modelFor(opts.Mode))
	if opts.MaxNodes > 0 && (len(s.t) > opts.MaxNodes || len(s.m) > opts.MaxNodes) {
		res.Reason = SkipReason
		return res
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	if err := s.run(ctx); err != nil {
		res.Reason = SkipReason
		return res
	}
	res.Computed = true
	res.Distance = s.best
	res.Path = s.path(s.bestMap)
	return res
}

type pairKey [2]int

type search struct {
	cm     costModel
	t, m   []*domain.Resource
	tEdges map[pairKey][]*domain.Link
	mEdges map[pairKey][]*domain.Link
	// candidates[i] lists model indices of the same kind, cheapest first
	candidates [][]int

	assign  []int // truth index -> model index, -1 deleted
	used    []bool
	best    int
	bestMap []int
	steps   int
	ctx     context.Context
}

func newSearch(truth, model *domain.Graph, cm costModel) *search {
	s := &search{cm: cm, t: truth.AllResources(), m: model.AllResources()}
	s.tEdges = groupEdges(truth, s.t)
	s.mEdges = groupEdges(model, s.m)
	s.candidates = make([][]int, len(s.t))
	for i, tr := range s.t {
		var c []int
		for j, mr := range s.m {
			if mr.Kind == tr.Kind {
				c = append(c, j)
			}
		}
		sort.SliceStable(c, func(a, b int) bool {
			return cm.nodeSub(tr, s.m[c[a]]) < cm.nodeSub(tr, s.m[c[b]])
		})
		s.candidates[i] = c
	}
	return s
}

func groupEdges(g *domain.Graph, rs []*domain.Resource) map[pairKey][]*domain.Link {
	idx := make(map[domain.ResourceKey]int, len(rs))
	for i, r := range rs {
		idx[r.Key()] = i
	}
	out := map[pairKey][]*domain.Link{}
	for _, l := range g.Links {
		k := pairKey{idx[l.Source()], idx[l.Dest()]}
		out[k] = append(out[k], l)
	}
	return out
}

func (s *search) run(ctx context.Context) error {
	s.ctx = ctx
	s.assign = make([]int, len(s.t))
	s.used = make([]bool, len(s.m))

	// a bipartite node assignment gives the first upper bound
	s.bestMap = s.initialMapping()
	s.best = s.total(s.bestMap)
	return s.expand(0, 0)
}

func (s *search) expand(i, acc int) error {
	s.steps++
	if s.steps%1024 == 1 {
		if err := s.ctx.Err(); err != nil {
			return ErrBoundExceeded
		}
	}
	if acc+s.lowerBound(i) >= s.best {
		return nil
	}
	if i == len(s.t) {
		total := acc + s.insertions()
		if total < s.best {
			s.best = total
			s.bestMap = append(s.bestMap[:0], s.assign...)
		}
		return nil
	}

	tr := s.t[i]
	for _, j := range s.candidates[i] {
		if s.used[j] {
			continue
		}
		s.assign[i] = j
		s.used[j] = true
		step := s.cm.nodeSub(tr, s.m[j]) + s.edgeStep(i)
		err := s.expand(i+1, acc+step)
		s.used[j] = false
		if err != nil {
			return err
		}
	}
	s.assign[i] = -1
	return s.expand(i+1, acc+s.cm.nodeDel(tr)+s.edgeStep(i))
}

// edgeStep costs the edges between truth node i and every earlier truth node,
// together with the model edges between their images.
func (s *search) edgeStep(i int) int {
	c := 0
	for k := 0; k <= i; k++ {
		c += s.pairCost(i, k)
		if k != i {
			c += s.pairCost(k, i)
		}
	}
	return c
}

func (s *search) pairCost(a, b int) int {
	ts := s.tEdges[pairKey{a, b}]
	var ms []*domain.Link
	if ja, jb := s.assign[a], s.assign[b]; ja >= 0 && jb >= 0 {
		ms = s.mEdges[pairKey{ja, jb}]
	}
	c, _ := s.edgeGroup(ts, ms)
	return c
}

// insertions costs the unused model nodes and every model edge touching them.
func (s *search) insertions() int {
	c := 0
	for j, u := range s.used {
		if !u {
			c += s.cm.nodeDel(s.m[j])
		}
	}
	for k, ls := range s.mEdges {
		if s.used[k[0]] && s.used[k[1]] {
			continue
		}
		for _, l := range ls {
			c += s.cm.edgeDel(l)
		}
	}
	return c
}

// lowerBound charges the kind surplus left after truth node i-1: surplus
// items of a kind must be inserted or deleted whatever the mapping.
func (s *search) lowerBound(i int) int {
	type side struct{ n, min int }
	rest := map[domain.ResourceKind]*[2]side{}
	get := func(k domain.ResourceKind) *[2]side {
		v, ok := rest[k]
		if !ok {
			v = &[2]side{}
			rest[k] = v
		}
		return v
	}
	for _, r := range s.t[i:] {
		v := get(r.Kind)
		c := s.cm.nodeDel(r)
		if v[0].n == 0 || c < v[0].min {
			v[0].min = c
		}
		v[0].n++
	}
	for j, r := range s.m {
		if s.used[j] {
			continue
		}
		v := get(r.Kind)
		c := s.cm.nodeDel(r)
		if v[1].n == 0 || c < v[1].min {
			v[1].min = c
		}
		v[1].n++
	}
	lb := 0
	for _, v := range rest {
		switch {
		case v[0].n > v[1].n:
			lb += (v[0].n - v[1].n) * v[0].min
		case v[1].n > v[0].n:
			lb += (v[1].n - v[0].n) * v[1].min
		}
	}
	return lb
}

func (s *search) initialMapping() []int {
	n, m := len(s.t), len(s.m)
	out := make([]int, n)
	for i := range out {
		out[i] = -1
	}
	if n == 0 {
		return out
	}
	const far = 1e12
	size := n + m
	w := make([][]float64, size)
	for i := range w {
		w[i] = make([]float64, size)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < size; j++ {
			switch {
			case j < m && s.m[j].Kind == s.t[i].Kind:
				w[i][j] = float64(s.cm.nodeSub(s.t[i], s.m[j]))
			case j == m+i:
				w[i][j] = float64(s.cm.nodeDel(s.t[i]))
			default:
				w[i][j] = far
			}
		}
	}
	for i := n; i < size; i++ {
		for j := 0; j < size; j++ {
			switch {
			case j < m && i-n == j:
				w[i][j] = float64(s.cm.nodeDel(s.m[j]))
			case j >= m:
				w[i][j] = 0
			default:
				w[i][j] = far
			}
		}
	}
	for i, j := range matching.Assign(w)[:n] {
		if j < m {
			out[i] = j
		}
	}
	return out
}

// total evaluates a complete mapping.
func (s *search) total(mapping []int) int {
	saved := s.assign
	s.assign = mapping
	for j := range s.used {
		s.used[j] = false
	}
	c := 0
	for i, j := range mapping {
		if j >= 0 {
			s.used[j] = true
			c += s.cm.nodeSub(s.t[i], s.m[j])
		} else {
			c += s.cm.nodeDel(s.t[i])
		}
		c += s.edgeStep(i)
	}
	c += s.insertions()
	for j := range s.used {
		s.used[j] = false
	}
	s.assign = saved
	return c
}

func (s *search) path(mapping []int) *EditPath {
	p := &EditPath{}
	used := make([]bool, len(s.m))
	for i, j := range mapping {
		op := NodeOp{Truth: s.t[i]}
		if j >= 0 {
			op.Model = s.m[j]
			used[j] = true
		}
		p.Nodes = append(p.Nodes, op)
	}
	for j, u := range used {
		if !u {
			p.Nodes = append(p.Nodes, NodeOp{Model: s.m[j]})
		}
	}

	covered := map[pairKey]bool{}
	for _, k := range sortedKeys(s.tEdges) {
		var ms []*domain.Link
		if ja, jb := mapping[k[0]], mapping[k[1]]; ja >= 0 && jb >= 0 {
			mk := pairKey{ja, jb}
			ms = s.mEdges[mk]
			covered[mk] = true
		}
		_, ops := s.edgeGroup(s.tEdges[k], ms)
		p.Edges = append(p.Edges, ops...)
	}
	for _, k := range sortedKeys(s.mEdges) {
		if covered[k] {
			continue
		}
		for _, l := range s.mEdges[k] {
			p.Edges = append(p.Edges, EdgeOp{Model: l})
		}
	}
	return p
}

// edgeGroup pairs the parallel edges between two mapped node pairs.
func (s *search) edgeGroup(ts, ms []*domain.Link) (int, []EdgeOp) {
	switch {
	case len(ts) == 0 && len(ms) == 0:
		return 0, nil
	case len(ts) == 1 && len(ms) == 1:
		sub := s.cm.edgeSub(ts[0], ms[0])
		if delIns := s.cm.edgeDel(ts[0]) + s.cm.edgeDel(ms[0]); delIns < sub {
			return delIns, []EdgeOp{{Truth: ts[0]}, {Model: ms[0]}}
		}
		return sub, []EdgeOp{{Truth: ts[0], Model: ms[0]}}
	}

	n, m := len(ts), len(ms)
	size := n + m
	const far = 1e12
	w := make([][]float64, size)
	for i := range w {
		w[i] = make([]float64, size)
		for j := range w[i] {
			switch {
			case i < n && j < m:
				w[i][j] = float64(s.cm.edgeSub(ts[i], ms[j]))
			case i < n && j == m+i:
				w[i][j] = float64(s.cm.edgeDel(ts[i]))
			case i >= n && j < m && i-n == j:
				w[i][j] = float64(s.cm.edgeDel(ms[j]))
			case i >= n && j >= m:
				w[i][j] = 0
			default:
				w[i][j] = far
			}
		}
	}
	c := 0
	var ops []EdgeOp
	for i, j := range matching.Assign(w) {
		c += int(w[i][j])
		switch {
		case i < n && j < m:
			ops = append(ops, EdgeOp{Truth: ts[i], Model: ms[j]})
		case i < n:
			ops = append(ops, EdgeOp{Truth: ts[i]})
		case j < m:
			ops = append(ops, EdgeOp{Model: ms[j]})
		}
	}
	return c, ops
}

func sortedKeys(m map[pairKey][]*domain.Link) []pairKey {
	keys := make([]pairKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a][0] != keys[b][0] {
			return keys[a][0] < keys[b][0]
		}
		return keys[a][1] < keys[b][1]
	})
	return keys
}
