// Package metrics turns a classified diff into precision, recall and F1 at
// three attribute granularity levels.
package metrics

import (
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/diff"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/scoring"
)

type Level int

const (
	// Identity compares rosnames only.
	Identity Level = iota + 1
	// Typed adds the declared type.
	Typed
	// Full adds every remaining attribute.
	Full
)

var Levels = []Level{Identity, Typed, Full}

func (l Level) String() string {
	switch l {
	case Identity:
		return "lv1"
	case Typed:
		return "lv2"
	case Full:
		return "lv3"
	}
	return "unknown"
}

// Counters hold the five classification totals. Rollups add counters and
// recompute ratios; ratios are never averaged.
type Counters struct {
	COR int `json:"cor" yaml:"cor"`
	INC int `json:"inc" yaml:"inc"`
	PAR int `json:"par" yaml:"par"`
	MIS int `json:"mis" yaml:"mis"`
	SPU int `json:"spu" yaml:"spu"`
}

func (c *Counters) Add(o Counters) {
	c.COR += o.COR
	c.INC += o.INC
	c.PAR += o.PAR
	c.MIS += o.MIS
	c.SPU += o.SPU
}

func (c *Counters) Count(class diff.Class) {
	switch class {
	case diff.Correct:
		c.COR++
	case diff.Incorrect:
		c.INC++
	case diff.Partial:
		c.PAR++
	case diff.Missing:
		c.MIS++
	case diff.Spurious:
		c.SPU++
	}
}

func (c Counters) credit() float64 { return float64(c.COR) + 0.5*float64(c.PAR) }

// Precision is 1.0 when nothing was predicted.
func (c Counters) Precision() float64 {
	return scoring.Ratio(c.credit(), float64(c.COR+c.INC+c.PAR+c.SPU))
}

// Recall is 1.0 when nothing was expected.
func (c Counters) Recall() float64 {
	return scoring.Ratio(c.credit(), float64(c.COR+c.INC+c.PAR+c.MIS))
}

func (c Counters) F1() float64 {
	return scoring.Harmonic(c.Precision(), c.Recall())
}

// Tuple is the flattened form exposed in reports.
type Tuple struct {
	Counters  `yaml:",inline"`
	Precision float64 `json:"precision" yaml:"precision"`
	Recall    float64 `json:"recall" yaml:"recall"`
	F1        float64 `json:"f1" yaml:"f1"`
}

func (c Counters) Tuple() Tuple {
	return Tuple{Counters: c, Precision: c.Precision(), Recall: c.Recall(), F1: c.F1()}
}

// classAt reclassifies a diff entry for a coarser level. Missing, spurious
// and incorrect entries keep their class at every level.
func classAt(e diff.Entry, lv Level) diff.Class {
	switch e.Class {
	case diff.Missing, diff.Spurious, diff.Incorrect:
		return e.Class
	}
	if lv == Full {
		return e.Class
	}
	if e.Identity != diff.SameName {
		return diff.Partial
	}
	if lv == Typed && !e.SameType {
		return diff.Partial
	}
	return diff.Correct
}
