package domain

// Delta is one attribute-level divergence between a Model item and its
// Truth counterpart. A nil Predicted means the value is missing from the
// Model; a nil Expected means it is spurious.
type Delta struct {
	Attribute string `json:"attribute" yaml:"attribute"`
	Predicted any    `json:"predicted" yaml:"predicted"`
	Expected  any    `json:"expected" yaml:"expected"`
}

// Deltas collects divergences. Comparators accept a nil *Deltas when only
// the cost is wanted.
type Deltas []Delta

func (d *Deltas) Add(attribute string, predicted, expected any) {
	if d == nil {
		return
	}
	*d = append(*d, Delta{Attribute: attribute, Predicted: predicted, Expected: expected})
}

func (d *Deltas) Len() int {
	if d == nil {
		return 0
	}
	return len(*d)
}
