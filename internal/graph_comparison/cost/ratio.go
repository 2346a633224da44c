package cost

import (
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/conditions"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/domain"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/traceability"
)

// accumulator sums attribute penalties and counts compared attributes.
type accumulator struct {
	sum   float64
	count int
}

func (a *accumulator) add(c float64) {
	a.sum += c
	a.count++
}

func (a accumulator) normalized() float64 {
	if a.count == 0 {
		return 0.0
	}
	return a.sum / float64(a.count)
}

// Resource is the normalized cost of substituting model for truth.
func Resource(truth, model *domain.Resource, d *domain.Deltas) float64 {
	if truth.Kind != model.Kind {
		return KindMismatch
	}
	var a accumulator
	a.add(Name("rosname", truth.RosName, model.RosName, d))
	a.add(Type(TypeAttribute(truth.Kind), truth.Type, model.Type, d))
	switch truth.Kind {
	case domain.ResourceNode:
		a.add(Value("args", truth.Args, model.Args, d))
		a.add(conditions.RatioCost(truth.Conditions, model.Conditions, d))
		a.add(traceability.LocationRatio(truth.Location, model.Location, d))
		return a.normalized()
	case domain.ResourceParameter:
		a.add(Value("default_value", truth.Value, model.Value, d))
	}
	a.add(conditions.RatioCost(truth.Conditions, model.Conditions, d))
	a.add(traceability.ListRatio(truth.Traceability(), model.Traceability(), d))
	return a.normalized()
}

// Link is the normalized cost of substituting model for truth, endpoints
// included.
func Link(truth, model *domain.Link, d *domain.Deltas) float64 {
	if truth.Kind != model.Kind {
		return KindMismatch
	}
	var a accumulator
	a.add(Name("node", truth.Node, model.Node, d))
	a.add(Name(TargetAttribute(truth.Kind), truth.Target, model.Target, d))
	a.add(Name("rosname", truth.RosName, model.RosName, d))
	a.add(Type(TypeAttribute(truth.Kind.Target()), truth.Type, model.Type, d))
	switch truth.Kind {
	case domain.LinkPublisher:
		a.add(Value("queue_size", truth.QueueSize, model.QueueSize, d))
		a.add(Value("latched", truth.Latched, model.Latched, d))
	case domain.LinkSubscriber:
		a.add(Value("queue_size", truth.QueueSize, model.QueueSize, d))
	case domain.LinkGetter, domain.LinkSetter:
		a.add(Value("value", truth.Value, model.Value, d))
	}
	a.add(conditions.RatioCost(truth.Conditions, model.Conditions, d))
	a.add(traceability.LocationRatio(truth.Location, model.Location, d))
	return a.normalized()
}

// ResourceDeltas lists every divergence of model from truth.
func ResourceDeltas(truth, model *domain.Resource) domain.Deltas {
	d := domain.Deltas{}
	Resource(truth, model, &d)
	return d
}

func LinkDeltas(truth, model *domain.Link) domain.Deltas {
	d := domain.Deltas{}
	Link(truth, model, &d)
	return d
}

// TypeAttribute names the type field of a resource kind in reports.
func TypeAttribute(k domain.ResourceKind) string {
	switch k {
	case domain.ResourceNode:
		return "node_type"
	case domain.ResourceTopic:
		return "msg_type"
	case domain.ResourceService:
		return "srv_type"
	}
	return "param_type"
}

func TargetAttribute(k domain.LinkKind) string {
	return k.Target().String()
}
