package cost

import (
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/conditions"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/domain"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/traceability"
)

// UnitResource is the count-scale substitution cost of two resources.
func UnitResource(truth, model *domain.Resource, d *domain.Deltas) int {
	if truth.Kind != model.Kind {
		return ImpossibleResource(truth, model)
	}
	c := unitValue("rosname", truth.RosName, model.RosName, d)
	switch truth.Kind {
	case domain.ResourceNode:
		c += unitValue("node_type", truth.Type, model.Type, d)
		c += unitValue("args", truth.Args, model.Args, d)
		c += conditions.CountCost(truth.Conditions, model.Conditions, d)
		c += traceability.LocationUnit(truth.Location, model.Location, d)
		return c
	case domain.ResourceParameter:
		c += unitValue("default_value", truth.Value, model.Value, d)
	default:
		c += unitValue(TypeAttribute(truth.Kind), truth.Type, model.Type, d)
	}
	c += conditions.CountCost(truth.Conditions, model.Conditions, d)
	c += traceability.ListUnit(truth.Traceability(), model.Traceability(), d)
	return c
}

// UnitLink is the count-scale substitution cost of two links. Endpoints are
// not compared; the edit distance accounts for them through the node mapping.
func UnitLink(truth, model *domain.Link, d *domain.Deltas) int {
	if truth.Kind != model.Kind {
		return ImpossibleLink(truth, model)
	}
	c := unitValue("rosname", truth.RosName, model.RosName, d)
	c += conditions.CountCost(truth.Conditions, model.Conditions, d)
	c += traceability.LocationUnit(truth.Location, model.Location, d)
	switch truth.Kind {
	case domain.LinkPublisher, domain.LinkSubscriber:
		c += unitValue("queue_size", truth.QueueSize, model.QueueSize, d)
	}
	c += unitValue(TypeAttribute(truth.Kind.Target()), truth.Type, model.Type, d)
	return c
}

// ResourceSize counts the attributes a resource carries on the count scale.
func ResourceSize(r *domain.Resource) int {
	n := r.Conditions.Size()
	if r.Kind == domain.ResourceNode {
		return 3 + n + traceability.CostLocNone
	}
	return 2 + n + traceability.ListSize(r.Traceability())
}

func LinkSize(l *domain.Link) int {
	n := l.Conditions.Size() + traceability.CostLocNone
	switch l.Kind {
	case domain.LinkPublisher, domain.LinkSubscriber:
		return 3 + n
	}
	return 2 + n
}

// ImpossibleResource exceeds deleting u and inserting v so a substitution
// across kinds is never chosen.
func ImpossibleResource(u, v *domain.Resource) int {
	return 2*max(ResourceSize(u), ResourceSize(v)) + 1
}

func ImpossibleLink(a, b *domain.Link) int {
	return 2*max(LinkSize(a), LinkSize(b)) + 1
}

// SimpleResource compares names only.
func SimpleResource(truth, model *domain.Resource) int {
	if truth.Kind != model.Kind {
		return ImpossibleResource(truth, model)
	}
	if truth.RosName == model.RosName {
		return 0
	}
	return 1
}

// SimpleLink only checks kinds; endpoints are covered by the node mapping.
func SimpleLink(truth, model *domain.Link) int {
	if truth.Kind != model.Kind {
		return ImpossibleLink(truth, model)
	}
	return 0
}
