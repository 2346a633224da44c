// Package traceability compares the source locations recorded for Truth and
// Model items.
package traceability

import "github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/domain"

const Attribute = "traceability"

// Count-model penalties for a location right up to the named granularity.
const (
	CostLocNone    = 3
	CostLocPackage = 2
	CostLocFile    = 1
)

// LocationRatio penalizes a Model location in [0, 1]: wrong package 1,
// wrong file 1/2, wrong line or column 1/6. A Truth location that is not
// known cannot be assessed and costs nothing.
func LocationRatio(truth, model domain.Location, d *domain.Deltas) float64 {
	if !truth.Known() || truth == model {
		return 0.0
	}
	var cost float64
	switch {
	case model.Package != truth.Package:
		cost = 1.0
	case model.File != truth.File:
		cost = 0.5
	case model.Line != truth.Line:
		cost = 1.0 / 6.0
	case model.Column != 0 && truth.Column != 0 && model.Column != truth.Column:
		cost = 1.0 / 6.0
	default:
		return 0.0
	}
	d.Add(Attribute, model, truth)
	return cost
}

// LocationUnit is the count-model variant of LocationRatio.
func LocationUnit(truth, model domain.Location, d *domain.Deltas) int {
	if !truth.Known() || truth == model {
		return 0
	}
	d.Add(Attribute, model, truth)
	switch {
	case model.Package != truth.Package:
		return CostLocNone
	case model.File != truth.File:
		return CostLocPackage
	}
	return CostLocFile
}

// Distance grades how far a Model call site is from the Truth one, from 0
// (same position) to 8 (other package). Used to match items by location first.
func Distance(truth, model domain.Location) int {
	if !model.Known() || model.Package != truth.Package {
		return 8
	}
	if model.File == "" || model.File != truth.File {
		return 4
	}
	if model.Line == 0 || model.Column == 0 {
		return 3
	}
	dLine := abs(truth.Line - model.Line)
	dCol := abs(truth.Column - model.Column)
	switch {
	case dLine == 1 && dCol == 0:
		return 1
	case dLine == 1:
		return 2
	case dLine > 1:
		return 3
	case dCol == 0:
		return 0
	case dCol <= 8:
		return 1
	case dCol < 50:
		return 2
	}
	return 3
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
