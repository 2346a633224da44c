package mapper

import (
	"fmt"
	"sort"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/domain"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/ingest/parser"
)

func toLocation(l *parser.YLocation) (domain.Location, error) {
	if l == nil {
		return domain.Location{}, nil
	}
	loc := domain.Location{Package: l.Package, File: l.File, Line: l.Line, Column: l.Column}
	return loc, loc.Validate()
}

func toConditions(paths []parser.YPath) domain.ConditionTree {
	var t domain.ConditionTree
	for _, p := range paths {
		guards := make([]domain.Guard, 0, len(p))
		for _, g := range p {
			guards = append(guards, domain.Guard{
				Statement: g.Statement,
				Condition: g.Condition,
				Location:  domain.Location{Package: g.Package, File: g.File, Line: g.Line, Column: g.Column},
			})
		}
		t = t.AddPath(guards)
	}
	return t
}

func queueSize(q *int) int {
	if q == nil {
		return domain.UnknownQueueSize
	}
	return *q
}

func orDefault(name, target string) string {
	if name == "" {
		return target
	}
	return name
}

func sortedNames[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ToGraph builds the graph a document describes. Without ext only kinds,
// names and link endpoints are kept, which is what the simple edit distance
// looks at.
func ToGraph(d *parser.YDocument, ext bool) (*domain.Graph, error) {
	g := domain.NewGraph()

	for _, name := range sortedNames(d.Launch.Nodes) {
		n := d.Launch.Nodes[name]
		loc, err := toLocation(n.Traceability)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", name, err)
		}
		if err := g.AddResource(&domain.Resource{
			Kind:       domain.ResourceNode,
			RosName:    name,
			Type:       n.NodeType,
			Args:       n.Args,
			Conditions: toConditions(n.Conditions),
			Location:   loc,
		}); err != nil {
			return nil, err
		}
	}

	for _, name := range sortedNames(d.Launch.Parameters) {
		p := d.Launch.Parameters[name]
		loc, err := toLocation(p.Traceability)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		if err := g.AddResource(&domain.Resource{
			Kind:       domain.ResourceParameter,
			RosName:    name,
			Type:       p.ParamType,
			Value:      p.DefaultValue,
			Conditions: toConditions(p.Conditions),
			Location:   loc,
		}); err != nil {
			return nil, err
		}
	}

	var links []*domain.Link
	topicLinks := func(kind domain.LinkKind, ls []parser.YTopicLink) error {
		for _, l := range ls {
			loc, err := toLocation(l.Traceability)
			if err != nil {
				return fmt.Errorf("%s %s -> %s: %w", kind, l.Node, l.Topic, err)
			}
			links = append(links, &domain.Link{
				Kind:       kind,
				Node:       l.Node,
				Target:     l.Topic,
				RosName:    orDefault(l.RosName, l.Topic),
				Type:       l.MsgType,
				QueueSize:  queueSize(l.QueueSize),
				Latched:    l.Latched,
				Conditions: toConditions(l.Conditions),
				Location:   loc,
			})
		}
		return nil
	}
	serviceLinks := func(kind domain.LinkKind, ls []parser.YServiceLink) error {
		for _, l := range ls {
			loc, err := toLocation(l.Traceability)
			if err != nil {
				return fmt.Errorf("%s %s -> %s: %w", kind, l.Node, l.Service, err)
			}
			links = append(links, &domain.Link{
				Kind:       kind,
				Node:       l.Node,
				Target:     l.Service,
				RosName:    orDefault(l.RosName, l.Service),
				Type:       l.SrvType,
				Conditions: toConditions(l.Conditions),
				Location:   loc,
			})
		}
		return nil
	}
	paramLinks := func(kind domain.LinkKind, ls []parser.YParamLink) error {
		for _, l := range ls {
			loc, err := toLocation(l.Traceability)
			if err != nil {
				return fmt.Errorf("%s %s -> %s: %w", kind, l.Node, l.Parameter, err)
			}
			links = append(links, &domain.Link{
				Kind:       kind,
				Node:       l.Node,
				Target:     l.Parameter,
				RosName:    orDefault(l.RosName, l.Parameter),
				Type:       l.ParamType,
				Value:      l.Value,
				Conditions: toConditions(l.Conditions),
				Location:   loc,
			})
		}
		return nil
	}

	steps := []func() error{
		func() error { return topicLinks(domain.LinkPublisher, d.Links.Publishers) },
		func() error { return topicLinks(domain.LinkSubscriber, d.Links.Subscribers) },
		func() error { return serviceLinks(domain.LinkClient, d.Links.Clients) },
		func() error { return serviceLinks(domain.LinkServer, d.Links.Servers) },
		func() error { return paramLinks(domain.LinkSetter, d.Links.Sets) },
		func() error { return paramLinks(domain.LinkGetter, d.Links.Gets) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	for _, l := range links {
		if err := g.AddLink(l); err != nil {
			return nil, err
		}
	}

	if !ext {
		return g.Skeleton(), nil
	}
	return g, nil
}
