package diff

import (
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/ged"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/matching"
)

// FromMatching classifies every pair of a bipartite matching and lists the
// unmatched items, kind by kind.
func FromMatching(res *matching.Result) *Diff {
	d := &Diff{Entries: []Entry{}}
	for _, m := range res.Resources {
		for _, p := range m.Matched {
			d.add(resourcePair(p.Truth, p.Model))
		}
		for _, r := range m.Missing {
			d.add(missingResource(r))
		}
		for _, r := range m.Spurious {
			d.add(spuriousResource(r))
		}
	}
	for _, m := range res.Links {
		for _, p := range m.Matched {
			d.add(linkPair(p.Truth, p.Model))
		}
		for _, l := range m.Missing {
			d.add(missingLink(l))
		}
		for _, l := range m.Spurious {
			d.add(spuriousLink(l))
		}
	}
	return d
}

// FromEditPath reads the same classification out of an edit path:
// substitutions are compared, deletions are missing, insertions spurious.
func FromEditPath(p *ged.EditPath) *Diff {
	d := &Diff{Entries: []Entry{}}
	if p == nil {
		return d
	}
	for _, op := range p.Nodes {
		switch {
		case op.Model == nil:
			d.add(missingResource(op.Truth))
		case op.Truth == nil:
			d.add(spuriousResource(op.Model))
		default:
			d.add(resourcePair(op.Truth, op.Model))
		}
	}
	for _, op := range p.Edges {
		switch {
		case op.Model == nil:
			d.add(missingLink(op.Truth))
		case op.Truth == nil:
			d.add(spuriousLink(op.Model))
		default:
			d.add(linkPair(op.Truth, op.Model))
		}
	}
	return d
}
