// Package cost scores how far a Model item is from its Truth counterpart.
//
// Two scales are provided. The ratio scale normalizes every item to [0, 1]
// and drives bipartite matching and the diff. The count scale sums integer
// attribute penalties and drives the whole-graph edit distance.
package cost

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/domain"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/rosname"
)

// KindMismatch is the ratio cost of comparing items of different kinds.
const KindMismatch = 2.0

// Name costs 0 for equal names, 0.5 when a wildcard Model name matches the
// Truth name and 1 otherwise.
func Name(attr, truth, model string, d *domain.Deltas) float64 {
	if truth == model {
		return 0.0
	}
	d.Add(attr, model, truth)
	if rosname.HasWildcard(model) && rosname.Match(model, truth) {
		return 0.5
	}
	return 1.0
}

// Type is Name with partial credit for a Model type that was not resolved.
func Type(attr, truth, model string, d *domain.Deltas) float64 {
	if truth == model {
		return 0.0
	}
	if model == "" {
		d.Add(attr, nil, truth)
		return 0.5
	}
	return Name(attr, truth, model, d)
}

// Value costs 0 for equal values and 1 otherwise.
func Value(attr string, truth, model any, d *domain.Deltas) float64 {
	if Equal(truth, model) {
		return 0.0
	}
	d.Add(attr, model, truth)
	return 1.0
}

func unitValue(attr string, truth, model any, d *domain.Deltas) int {
	if Equal(truth, model) {
		return 0
	}
	d.Add(attr, model, truth)
	return 1
}

// Equal compares attribute values, tolerating numeric and string forms of
// the same scalar (10, 10.0 and "10").
func Equal(truth, model any) bool {
	if truth == nil || model == nil {
		return isEmpty(truth) && isEmpty(model)
	}
	if reflect.DeepEqual(truth, model) {
		return true
	}
	if isEmpty(truth) && isEmpty(model) {
		return true
	}
	ts, tok := formatScalar(truth)
	ms, mok := formatScalar(model)
	return tok && mok && ts == ms
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	}
	return false
}

func formatScalar(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x), true
	}
	return "", false
}
