package domain

import (
	"fmt"
	"sort"
)

// UnknownQueueSize marks a publisher or subscriber whose queue size was not resolved.
const UnknownQueueSize = -1

type Resource struct {
	Kind    ResourceKind `json:"kind"`
	RosName string       `json:"rosname"`
	// node type, message type, service type or parameter type
	Type       string        `json:"type,omitempty"`
	Args       []string      `json:"args,omitempty"`
	Value      any           `json:"value,omitempty"`
	Conditions ConditionTree `json:"conditions,omitempty"`
	// declaration site; unknown for resources that only appear through links
	Location   Location   `json:"location"`
	References []Location `json:"references,omitempty"`

	derived       bool
	unconditional bool
}

func (r *Resource) Key() ResourceKey { return ResourceKey{Kind: r.Kind, RosName: r.RosName} }

// Traceability lists every known location of the resource without duplicates.
func (r *Resource) Traceability() []Location {
	out := make([]Location, 0, len(r.References)+1)
	seen := map[Location]bool{}
	add := func(l Location) {
		if !l.Known() || seen[l] {
			return
		}
		seen[l] = true
		out = append(out, l)
	}
	add(r.Location)
	for _, l := range r.References {
		add(l)
	}
	return out
}

type Link struct {
	Kind LinkKind `json:"kind"`
	// rosname of the owning node
	Node string `json:"node"`
	// rosname of the topic, service or parameter
	Target string `json:"target"`
	// name as written at the call site, before remapping
	RosName    string        `json:"rosname,omitempty"`
	Type       string        `json:"type,omitempty"`
	QueueSize  int           `json:"queue_size,omitempty"`
	Latched    bool          `json:"latched,omitempty"`
	Value      any           `json:"value,omitempty"`
	Conditions ConditionTree `json:"conditions,omitempty"`
	Location   Location      `json:"location"`
}

func (l *Link) Key() LinkKey { return LinkKey{Kind: l.Kind, Node: l.Node, Target: l.Target} }

// Source and Dest return the endpoints in edge direction.
func (l *Link) Source() ResourceKey {
	if l.Kind.Inbound() {
		return ResourceKey{Kind: l.Kind.Target(), RosName: l.Target}
	}
	return ResourceKey{Kind: ResourceNode, RosName: l.Node}
}

func (l *Link) Dest() ResourceKey {
	if l.Kind.Inbound() {
		return ResourceKey{Kind: ResourceNode, RosName: l.Node}
	}
	return ResourceKey{Kind: l.Kind.Target(), RosName: l.Target}
}

type ResourceKey struct {
	Kind    ResourceKind
	RosName string
}

func (k ResourceKey) String() string { return "[" + k.Kind.String() + "]" + k.RosName }

type LinkKey struct {
	Kind   LinkKind
	Node   string
	Target string
}

func (k LinkKey) String() string {
	return fmt.Sprintf("%s %s -> %s", k.Kind, k.Node, k.Target)
}

// Graph is a directed multigraph of resources and links.
type Graph struct {
	Resources map[ResourceKey]*Resource `json:"-"`
	Links     []*Link                   `json:"links"`
}

func NewGraph() *Graph {
	return &Graph{
		Resources: map[ResourceKey]*Resource{},
		Links:     []*Link{},
	}
}

func (g *Graph) AddResource(r *Resource) error {
	k := r.Key()
	if existing, ok := g.Resources[k]; ok {
		if !existing.derived {
			return fmt.Errorf("%w: %s", ErrDuplicateResource, k)
		}
		// a declaration replaces a resource inferred from links
		r.References = append(r.References, existing.References...)
	}
	g.Resources[k] = r
	return nil
}

func (g *Graph) Resource(kind ResourceKind, rosname string) (*Resource, bool) {
	r, ok := g.Resources[ResourceKey{Kind: kind, RosName: rosname}]
	return r, ok
}

// AddLink appends l and derives its target resource when it was not declared.
// The owning node must already be present.
func (g *Graph) AddLink(l *Link) error {
	if _, ok := g.Resource(ResourceNode, l.Node); !ok {
		return fmt.Errorf("%w: %s", ErrUndeclaredNode, l.Key())
	}
	tk := ResourceKey{Kind: l.Kind.Target(), RosName: l.Target}
	if tk.Kind == 0 {
		return fmt.Errorf("%w: %d", ErrKindMismatch, l.Kind)
	}
	r, ok := g.Resources[tk]
	if !ok {
		r = &Resource{Kind: tk.Kind, RosName: l.Target, Type: l.Type, derived: true}
		g.Resources[tk] = r
	}
	if l.Location.Known() {
		r.References = append(r.References, l.Location)
	}
	if r.derived {
		// the resource is conditional only while every link to it is
		switch {
		case r.unconditional:
		case l.Conditions.Empty():
			r.unconditional = true
			r.Conditions = nil
		default:
			r.Conditions = r.Conditions.Merge(l.Conditions)
		}
	}
	g.Links = append(g.Links, l)
	return nil
}

// ResourcesOf returns the resources of one kind sorted by rosname.
func (g *Graph) ResourcesOf(kind ResourceKind) []*Resource {
	var out []*Resource
	for k, r := range g.Resources {
		if k.Kind == kind {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RosName < out[j].RosName })
	return out
}

// LinksOf returns the links of one kind in insertion order.
func (g *Graph) LinksOf(kind LinkKind) []*Link {
	var out []*Link
	for _, l := range g.Links {
		if l.Kind == kind {
			out = append(out, l)
		}
	}
	return out
}

// AllResources returns every resource ordered by kind then rosname.
func (g *Graph) AllResources() []*Resource {
	var out []*Resource
	for _, k := range ResourceKinds {
		out = append(out, g.ResourcesOf(k)...)
	}
	return out
}

func (g *Graph) Size() (resources, links int) {
	return len(g.Resources), len(g.Links)
}

// Skeleton copies g keeping only kinds, names and link endpoints.
func (g *Graph) Skeleton() *Graph {
	out := NewGraph()
	for k, r := range g.Resources {
		out.Resources[k] = &Resource{Kind: r.Kind, RosName: r.RosName, derived: r.derived}
	}
	for _, l := range g.Links {
		out.Links = append(out.Links, &Link{Kind: l.Kind, Node: l.Node, Target: l.Target, RosName: l.RosName})
	}
	return out
}
