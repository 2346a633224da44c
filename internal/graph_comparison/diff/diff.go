// Package diff classifies matched items and reports what separates a Model
// from its Ground Truth.
package diff

import (
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/cost"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/domain"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/rosname"
)

type Class string

const (
	Correct   Class = "correct"
	Partial   Class = "partial"
	Incorrect Class = "incorrect"
	Missing   Class = "missing"
	Spurious  Class = "spurious"
)

// Identity grades how the names of a matched pair agree.
type Identity string

const (
	SameName     Identity = "exact"
	WildcardName Identity = "wildcard"
	OtherName    Identity = "mismatch"
)

type Entry struct {
	Kind  domain.ItemKind `json:"kind" yaml:"kind"`
	Class Class           `json:"class" yaml:"class"`
	Truth string          `json:"truth,omitempty" yaml:"truth,omitempty"`
	Model string          `json:"model,omitempty" yaml:"model,omitempty"`
	// set for matched pairs only
	Identity  Identity      `json:"identity,omitempty" yaml:"identity,omitempty"`
	SameType  bool          `json:"same_type,omitempty" yaml:"same_type,omitempty"`
	Deltas    domain.Deltas `json:"deltas,omitempty" yaml:"deltas,omitempty"`
	Cost      float64       `json:"cost" yaml:"cost"`
}

// Diff groups entries the way reports present them. Resources are the graph
// nodes and links the graph edges.
type Diff struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}

func (d *Diff) add(e Entry) { d.Entries = append(d.Entries, e) }

func (d *Diff) filter(resources bool, c Class) []Entry {
	var out []Entry
	for _, e := range d.Entries {
		if e.Class == c && e.Kind.IsLink() != resources {
			out = append(out, e)
		}
	}
	return out
}

func (d *Diff) PartialNodes() []Entry   { return d.filter(true, Partial) }
func (d *Diff) IncorrectNodes() []Entry { return d.filter(true, Incorrect) }
func (d *Diff) MissedNodes() []Entry    { return d.filter(true, Missing) }
func (d *Diff) SpuriousNodes() []Entry  { return d.filter(true, Spurious) }
func (d *Diff) PartialEdges() []Entry   { return d.filter(false, Partial) }
func (d *Diff) IncorrectEdges() []Entry { return d.filter(false, Incorrect) }
func (d *Diff) MissedEdges() []Entry    { return d.filter(false, Missing) }
func (d *Diff) SpuriousEdges() []Entry  { return d.filter(false, Spurious) }

// OfKind returns the entries of one item kind.
func (d *Diff) OfKind(k domain.ItemKind) []Entry {
	var out []Entry
	for _, e := range d.Entries {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

func nameIdentity(truth, model string) Identity {
	switch {
	case truth == model:
		return SameName
	case rosname.HasWildcard(model) && rosname.Match(model, truth):
		return WildcardName
	}
	return OtherName
}

func worst(a, b Identity) Identity {
	if a == OtherName || b == OtherName {
		return OtherName
	}
	if a == WildcardName || b == WildcardName {
		return WildcardName
	}
	return SameName
}

func classify(id Identity, deltas domain.Deltas) Class {
	switch {
	case id == OtherName:
		return Incorrect
	case id == SameName && len(deltas) == 0:
		return Correct
	}
	return Partial
}

func resourcePair(truth, model *domain.Resource) Entry {
	d := domain.Deltas{}
	c := cost.Resource(truth, model, &d)
	id := nameIdentity(truth.RosName, model.RosName)
	return Entry{
		Kind:     domain.ResourceItem(truth.Kind),
		Class:    classify(id, d),
		Truth:    truth.RosName,
		Model:    model.RosName,
		Identity: id,
		SameType: truth.Type == model.Type,
		Deltas:   d,
		Cost:     c,
	}
}

func linkPair(truth, model *domain.Link) Entry {
	d := domain.Deltas{}
	c := cost.Link(truth, model, &d)
	id := worst(nameIdentity(truth.Node, model.Node), nameIdentity(truth.Target, model.Target))
	return Entry{
		Kind:     domain.LinkItem(truth.Kind),
		Class:    classify(id, d),
		Truth:    truth.Key().String(),
		Model:    model.Key().String(),
		Identity: id,
		SameType: truth.Type == model.Type,
		Deltas:   d,
		Cost:     c,
	}
}

func missingResource(r *domain.Resource) Entry {
	return Entry{Kind: domain.ResourceItem(r.Kind), Class: Missing, Truth: r.RosName, Cost: 1}
}

func spuriousResource(r *domain.Resource) Entry {
	return Entry{Kind: domain.ResourceItem(r.Kind), Class: Spurious, Model: r.RosName, Cost: 1}
}

func missingLink(l *domain.Link) Entry {
	return Entry{Kind: domain.LinkItem(l.Kind), Class: Missing, Truth: l.Key().String(), Cost: 1}
}

func spuriousLink(l *domain.Link) Entry {
	return Entry{Kind: domain.LinkItem(l.Kind), Class: Spurious, Model: l.Key().String(), Cost: 1}
}
