package service

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/metrics"
)

// Pair is one Truth and Model document to compare.
type Pair struct {
	Label string `json:"label"`
	Truth []byte `json:"-"`
	Model []byte `json:"-"`
}

type BatchResult struct {
	Label  string          `json:"label" yaml:"label"`
	Report *metrics.Report `json:"report,omitempty" yaml:"report,omitempty"`
	Err    error           `json:"-" yaml:"-"`
}

// CompareBatch compares every pair on a bounded worker pool. Results keep
// the order of pairs and a failing pair does not stop the others.
func CompareBatch(ctx context.Context, pairs []Pair, opts Options) []BatchResult {
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	results := make([]BatchResult, len(pairs))
	p := pool.New().WithMaxGoroutines(workers)
	for i, pair := range pairs {
		p.Go(func() {
			r := BatchResult{Label: pair.Label}
			if err := ctx.Err(); err != nil {
				r.Err = err
			} else {
				r.Report, r.Err = CompareDocuments(ctx, pair.Truth, pair.Model, opts)
			}
			results[i] = r
		})
	}
	p.Wait()
	return results
}
