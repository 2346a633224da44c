package service

import (
	"context"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/diff"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/domain"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/ged"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/ingest/mapper"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/ingest/parser"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/ingest/validator"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/matching"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/metrics"
)

type Options struct {
	Strategy string `json:"strategy,omitempty"`
	// GED enables the bounded whole-graph edit distances.
	GED         bool          `json:"ged,omitempty"`
	GEDMaxNodes int           `json:"ged_max_nodes,omitempty"`
	GEDTimeout  time.Duration `json:"ged_timeout,omitempty"`
	Workers     int           `json:"workers,omitempty"`
	// NamesOnly drops every Model attribute but the rosnames.
	NamesOnly bool `json:"names_only,omitempty"`
}

func DefaultOptions() Options {
	return Options{
		Strategy:    matching.DefaultStrategy,
		GEDMaxNodes: 12,
		GEDTimeout:  5 * time.Second,
		Workers:     4,
	}
}

// Compare scores model against truth. The graphs are only read.
func Compare(ctx context.Context, truth, model *domain.Graph, opts Options) (*metrics.Report, error) {
	s, err := matching.Lookup(opts.Strategy)
	if err != nil {
		return nil, err
	}

	res := matching.Match(truth, model, s)
	report := metrics.NewReport(s.Name(), diff.FromMatching(res))

	if opts.GED {
		bound := ged.Options{MaxNodes: opts.GEDMaxNodes, Timeout: opts.GEDTimeout}

		bound.Mode = ged.Simple
		simple := ged.Compute(ctx, truth.Skeleton(), model.Skeleton(), bound)
		report.SimpleGED = &simple

		bound.Mode = ged.Full
		full := ged.Compute(ctx, truth, model, bound)
		report.FullGED = &full
	}
	return report, nil
}

// LoadGraphs parses, validates and maps a Truth and a Model document. Either
// may be YAML or JSON. namesOnly keeps only the rosnames of the Model.
func LoadGraphs(truthDoc, modelDoc []byte, namesOnly bool) (truth, model *domain.Graph, err error) {
	td, err := parser.Parse(truthDoc)
	if err != nil {
		return nil, nil, fmt.Errorf("parse truth: %w", err)
	}
	md, err := parser.Parse(modelDoc)
	if err != nil {
		return nil, nil, fmt.Errorf("parse model: %w", err)
	}
	return LoadDocuments(td, md, namesOnly)
}

func LoadDocuments(td, md *parser.YDocument, namesOnly bool) (truth, model *domain.Graph, err error) {
	if err := validator.ValidateTruth(td); err != nil {
		return nil, nil, fmt.Errorf("truth: %w", err)
	}
	if err := validator.Validate(md); err != nil {
		return nil, nil, fmt.Errorf("model: %w", err)
	}

	if truth, err = mapper.ToGraph(td, true); err != nil {
		return nil, nil, fmt.Errorf("truth: %w", err)
	}
	if model, err = mapper.ToGraph(md, !namesOnly); err != nil {
		return nil, nil, fmt.Errorf("model: %w", err)
	}
	return truth, model, nil
}

func CompareDocuments(ctx context.Context, truthYAML, modelYAML []byte, opts Options) (*metrics.Report, error) {
	truth, model, err := LoadGraphs(truthYAML, modelYAML, opts.NamesOnly)
	if err != nil {
		return nil, err
	}
	return Compare(ctx, truth, model, opts)
}
