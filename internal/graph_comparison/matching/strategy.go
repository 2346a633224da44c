package matching

import (
	"fmt"
	"sort"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/cost"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/domain"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/traceability"
)

// Strategy weighs candidate pairs for the bipartite assignment. Weights only
// need to order candidates; they are not normalized.
type Strategy interface {
	Name() string
	Resource(truth, model *domain.Resource) float64
	Link(truth, model *domain.Link) float64
}

const DefaultStrategy = "name_type_loc"

var registered = map[string]Strategy{}

func Register(s Strategy) {
	if s == nil {
		return
	}
	registered[s.Name()] = s
}

func Lookup(name string) (Strategy, error) {
	if name == "" {
		name = DefaultStrategy
	}
	s, ok := registered[name]
	if !ok {
		return nil, fmt.Errorf("matching: unknown strategy %q", name)
	}
	return s, nil
}

func Names() []string {
	out := make([]string, 0, len(registered))
	for n := range registered {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// weighted combines per-aspect costs lexicographically: every weight is
// larger than the maximum of the aspects after it.
type weighted struct {
	name  string
	terms []term
}

type term struct {
	weight float64
	aspect aspect
}

type aspect int

const (
	aspectName aspect = iota
	aspectType
	aspectLocation
	aspectDistance
)

func (w weighted) Name() string { return w.name }

func (w weighted) Resource(truth, model *domain.Resource) float64 {
	var c float64
	for _, t := range w.terms {
		var v float64
		switch t.aspect {
		case aspectName:
			v = cost.Name("rosname", truth.RosName, model.RosName, nil)
		case aspectType:
			v = cost.Type("type", truth.Type, model.Type, nil)
		case aspectLocation:
			v = traceability.LocationRatio(truth.Location, model.Location, nil)
		case aspectDistance:
			v = float64(traceability.Distance(truth.Location, model.Location))
		}
		c += t.weight * v
	}
	return c
}

func (w weighted) Link(truth, model *domain.Link) float64 {
	var c float64
	for _, t := range w.terms {
		var v float64
		switch t.aspect {
		case aspectName:
			v = cost.Name("node", truth.Node, model.Node, nil) +
				cost.Name("target", truth.Target, model.Target, nil)
		case aspectType:
			v = cost.Type("type", truth.Type, model.Type, nil)
		case aspectLocation:
			v = traceability.LocationRatio(truth.Location, model.Location, nil)
		case aspectDistance:
			v = float64(traceability.Distance(truth.Location, model.Location))
		}
		c += t.weight * v
	}
	return c
}

func init() {
	Register(weighted{name: "name", terms: []term{{1, aspectName}}})
	Register(weighted{name: "name_type", terms: []term{{10, aspectName}, {1, aspectType}}})
	Register(weighted{name: "name_type_loc", terms: []term{{100, aspectName}, {10, aspectType}, {1, aspectLocation}}})
	Register(weighted{name: "loc", terms: []term{{1, aspectDistance}}})
	Register(weighted{name: "loc_name", terms: []term{{10, aspectDistance}, {1, aspectName}}})
	Register(weighted{name: "loc_name_type", terms: []term{{100, aspectDistance}, {10, aspectName}, {1, aspectType}}})
}
