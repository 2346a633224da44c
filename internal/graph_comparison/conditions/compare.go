// Package conditions compares the guard trees under which resources and
// links exist.
package conditions

import (
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/domain"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/scoring"
)

const Attribute = "conditions"

// Counts are taken over the flattened guards of both trees. A guard only
// matches when every guard above it matched too.
type Counts struct {
	Expected int
	Matched  int
	Spurious int
}

type pair struct {
	truth, model domain.ConditionTree
}

// Compare walks both trees level by level, descending only into guards
// present on both sides. Unmatched guards are counted together with their
// whole subtree and reported to d.
func Compare(truth, model domain.ConditionTree, d *domain.Deltas) Counts {
	var c Counts
	queue := []pair{{truth, model}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		for _, n := range p.truth {
			c.Expected++
			if sub, ok := p.model.Find(n.Guard); ok {
				c.Matched++
				if len(n.Children) > 0 || len(sub) > 0 {
					queue = append(queue, pair{n.Children, sub})
				}
				continue
			}
			d.Add(Attribute, nil, n.Guard)
			c.Expected += n.Children.Size()
			n.Children.Walk(func(g domain.Guard) { d.Add(Attribute, nil, g) })
		}

		for _, n := range p.model {
			if _, ok := p.truth.Find(n.Guard); ok {
				continue
			}
			c.Spurious += 1 + n.Children.Size()
			d.Add(Attribute, n.Guard, nil)
			n.Children.Walk(func(g domain.Guard) { d.Add(Attribute, g, nil) })
		}
	}
	return c
}

// CountCost is the size of the symmetric difference between both trees.
// When one tree is empty it equals the size of the other.
func CountCost(truth, model domain.ConditionTree, d *domain.Deltas) int {
	c := Compare(truth, model, d)
	return (c.Expected - c.Matched) + c.Spurious
}

// RatioCost is 1 - F1 of the guard counts, or 1 when exactly one side is
// unconditional.
func RatioCost(truth, model domain.ConditionTree, d *domain.Deltas) float64 {
	c := Compare(truth, model, d)
	if truth.Empty() != model.Empty() {
		return 1.0
	}
	return 1.0 - scoring.F1(float64(c.Expected), float64(c.Matched), float64(c.Spurious))
}
