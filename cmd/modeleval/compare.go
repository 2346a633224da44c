package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/graph/export"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/ingest/parser"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/metrics"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/service"
)

type compareCommand struct {
	opts *Options

	Out    string `short:"o" long:"out" description:"write the report here; .json, .yaml or .dot (graphviz of the truth colored by diff class)"`
	DotBin string `long:"dot-bin" description:"graphviz binary used to render .svg/.png output" default:"dot"`

	Args struct {
		Truth string `positional-arg-name:"truth" description:"ground truth YAML or JSON"`
		Model string `positional-arg-name:"model" description:"extracted model YAML or JSON"`
	} `positional-args:"yes" required:"yes"`
}

func (c *compareCommand) Execute([]string) error {
	td, err := parser.ParseFile(c.Args.Truth)
	if err != nil {
		return fmt.Errorf("truth: %w", err)
	}
	md, err := parser.ParseFile(c.Args.Model)
	if err != nil {
		return fmt.Errorf("model: %w", err)
	}

	opts := c.opts.compareOptions()
	truth, model, err := service.LoadDocuments(td, md, opts.NamesOnly)
	if err != nil {
		return err
	}
	report, err := service.Compare(context.Background(), truth, model, opts)
	if err != nil {
		return err
	}

	c.opts.log.Info("comparison finished",
		"strategy", report.Strategy,
		"lv1_f1", report.Overall.Lv1.F1,
		"lv3_f1", report.Overall.Lv3.F1,
	)
	if c.Out == "" {
		enc := json.NewEncoder(c.opts.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	writeSummary(c.opts.stdout, report)

	switch ext := strings.ToLower(filepath.Ext(c.Out)); ext {
	case ".json":
		return export.WriteJSON(c.Out, report)
	case ".yaml", ".yml":
		return export.WriteYAML(c.Out, report)
	case ".dot":
		return os.WriteFile(c.Out, []byte(export.ToDOT(truth, report.Diff, filepath.Base(c.Args.Truth))), 0o644)
	case ".svg", ".png":
		dotPath := strings.TrimSuffix(c.Out, ext) + ".dot"
		if err := os.WriteFile(dotPath, []byte(export.ToDOT(truth, report.Diff, filepath.Base(c.Args.Truth))), 0o644); err != nil {
			return err
		}
		return export.Render(dotPath, c.Out, ext[1:], c.DotBin)
	default:
		return fmt.Errorf("unsupported output %q", c.Out)
	}
}

func writeSummary(w io.Writer, r *metrics.Report) {
	fmt.Fprintf(w, "strategy %s\n", r.Strategy)
	for _, lv := range metrics.Levels {
		t := r.Overall.At(lv)
		fmt.Fprintf(w, "%s  P=%.3f R=%.3f F1=%.3f\n", lv, t.Precision, t.Recall, t.F1)
	}
	if r.SimpleGED != nil || r.FullGED != nil {
		fmt.Fprintln(w, r.GEDSummary())
	}
}
