package metrics

import (
	"fmt"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/diff"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/domain"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/ged"
)

// Hierarchy holds one set of counters per granularity level.
type Hierarchy struct {
	Lv1 Counters
	Lv2 Counters
	Lv3 Counters
}

func (h *Hierarchy) At(lv Level) *Counters {
	switch lv {
	case Identity:
		return &h.Lv1
	case Typed:
		return &h.Lv2
	}
	return &h.Lv3
}

func (h *Hierarchy) Add(o Hierarchy) {
	h.Lv1.Add(o.Lv1)
	h.Lv2.Add(o.Lv2)
	h.Lv3.Add(o.Lv3)
}

func (h Hierarchy) Tuples() Levelled {
	return Levelled{Lv1: h.Lv1.Tuple(), Lv2: h.Lv2.Tuple(), Lv3: h.Lv3.Tuple()}
}

type Levelled struct {
	Lv1 Tuple `json:"lv1" yaml:"lv1"`
	Lv2 Tuple `json:"lv2" yaml:"lv2"`
	Lv3 Tuple `json:"lv3" yaml:"lv3"`
}

func (l Levelled) At(lv Level) Tuple {
	switch lv {
	case Identity:
		return l.Lv1
	case Typed:
		return l.Lv2
	}
	return l.Lv3
}

type KindMetrics struct {
	Kind domain.ItemKind `json:"kind" yaml:"kind"`
	Levelled `yaml:",inline"`
}

type Report struct {
	Strategy  string        `json:"strategy" yaml:"strategy"`
	Kinds     []KindMetrics `json:"kinds" yaml:"kinds"`
	Launch    Levelled      `json:"launch" yaml:"launch"`
	Source    Levelled      `json:"source" yaml:"source"`
	Overall   Levelled      `json:"overall" yaml:"overall"`
	Diff      *diff.Diff    `json:"diff" yaml:"diff"`
	SimpleGED *ged.Result   `json:"simple_ged,omitempty" yaml:"simple_ged,omitempty"`
	FullGED   *ged.Result   `json:"full_ged,omitempty" yaml:"full_ged,omitempty"`
}

// Aggregate counts every entry of d per kind and level, then rolls the kind
// counters up into the launch, source and overall views.
func Aggregate(d *diff.Diff) map[domain.ItemKind]*Hierarchy {
	out := make(map[domain.ItemKind]*Hierarchy, len(domain.MatchedKinds))
	for _, k := range domain.MatchedKinds {
		out[k] = &Hierarchy{}
	}
	for _, e := range d.Entries {
		h, ok := out[e.Kind]
		if !ok {
			// topics and services are scored through their links
			continue
		}
		for _, lv := range Levels {
			h.At(lv).Count(classAt(e, lv))
		}
	}
	return out
}

func NewReport(strategy string, d *diff.Diff) *Report {
	perKind := Aggregate(d)
	r := &Report{Strategy: strategy, Diff: d}
	var launch, source, overall Hierarchy
	for _, k := range domain.MatchedKinds {
		h := *perKind[k]
		r.Kinds = append(r.Kinds, KindMetrics{Kind: k, Levelled: h.Tuples()})
		if k.IsLink() {
			source.Add(h)
		} else {
			launch.Add(h)
		}
		overall.Add(h)
	}
	r.Launch = launch.Tuples()
	r.Source = source.Tuples()
	r.Overall = overall.Tuples()
	return r
}

// Kind returns the metrics of one item kind.
func (r *Report) Kind(k domain.ItemKind) (Levelled, bool) {
	for _, km := range r.Kinds {
		if km.Kind == k {
			return km.Levelled, true
		}
	}
	return Levelled{}, false
}

// GEDSummary renders both distances, or the reason one was not computed.
func (r *Report) GEDSummary() string {
	return fmt.Sprintf("Simple GED: %s, Full GED: %s", gedValue(r.SimpleGED), gedValue(r.FullGED))
}

func gedValue(res *ged.Result) string {
	switch {
	case res == nil:
		return "n/a"
	case !res.Computed:
		return res.Reason
	}
	return fmt.Sprint(res.Distance)
}
