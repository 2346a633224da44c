// Package matching pairs Truth items with Model items of the same kind by
// minimum-cost bipartite assignment.
package matching

import (
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/domain"
)

type Pair[T any] struct {
	Truth  T
	Model  T
	Weight float64
}

// Matching is the outcome for one item kind. Unmatched Truth items are
// missing and unmatched Model items are spurious.
type Matching[T any] struct {
	Kind     domain.ItemKind
	Matched  []Pair[T]
	Missing  []T
	Spurious []T
}

type Result struct {
	Strategy  string
	Resources []*Matching[*domain.Resource]
	Links     []*Matching[*domain.Link]
}

// Partition splits a graph into the item lists scored by the engine, in
// domain.MatchedKinds order.
type Partition struct {
	Resources map[domain.ResourceKind][]*domain.Resource
	Links     map[domain.LinkKind][]*domain.Link
}

func PartitionGraph(g *domain.Graph) Partition {
	p := Partition{
		Resources: map[domain.ResourceKind][]*domain.Resource{},
		Links:     map[domain.LinkKind][]*domain.Link{},
	}
	for _, k := range domain.MatchedKinds {
		if k.IsLink() {
			p.Links[k.Link] = g.LinksOf(k.Link)
		} else {
			p.Resources[k.Resource] = g.ResourcesOf(k.Resource)
		}
	}
	return p
}

// Match pairs every scored kind of truth against model with the strategy.
func Match(truth, model *domain.Graph, s Strategy) *Result {
	tp, mp := PartitionGraph(truth), PartitionGraph(model)
	res := &Result{Strategy: s.Name()}
	for _, k := range domain.MatchedKinds {
		if k.IsLink() {
			m := match(tp.Links[k.Link], mp.Links[k.Link], s.Link)
			m.Kind = k
			res.Links = append(res.Links, m)
			continue
		}
		m := match(tp.Resources[k.Resource], mp.Resources[k.Resource], s.Resource)
		m.Kind = k
		res.Resources = append(res.Resources, m)
	}
	return res
}

func match[T any](truth, model []T, weight func(truth, model T) float64) *Matching[T] {
	out := &Matching[T]{}
	if len(truth) == 0 || len(model) == 0 {
		out.Missing = append(out.Missing, truth...)
		out.Spurious = append(out.Spurious, model...)
		return out
	}

	w := make([][]float64, len(truth))
	for i, t := range truth {
		w[i] = make([]float64, len(model))
		for j, m := range model {
			w[i][j] = weight(t, m)
		}
	}

	taken := make([]bool, len(model))
	for i, j := range Assign(w) {
		if j < 0 {
			out.Missing = append(out.Missing, truth[i])
			continue
		}
		taken[j] = true
		out.Matched = append(out.Matched, Pair[T]{Truth: truth[i], Model: model[j], Weight: w[i][j]})
	}
	for j, m := range model {
		if !taken[j] {
			out.Spurious = append(out.Spurious, m)
		}
	}
	return out
}

// ResourceMatching returns the matching of one resource kind, or nil.
func (r *Result) ResourceMatching(k domain.ResourceKind) *Matching[*domain.Resource] {
	for _, m := range r.Resources {
		if m.Kind.Resource == k {
			return m
		}
	}
	return nil
}

func (r *Result) LinkMatching(k domain.LinkKind) *Matching[*domain.Link] {
	for _, m := range r.Links {
		if m.Kind.Link == k {
			return m
		}
	}
	return nil
}
