package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/graph/export"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/service"
)

type batchCommand struct {
	opts *Options

	Workers int    `short:"w" long:"workers" description:"concurrent comparisons" default:"4"`
	Out     string `short:"o" long:"out" description:"also write every report to this .json or .yaml file"`

	Args struct {
		Manifest string `positional-arg-name:"manifest" description:"YAML list of label/truth/model entries"`
	} `positional-args:"yes" required:"yes"`
}

// manifest paths are relative to the manifest file
type manifest struct {
	Pairs []struct {
		Label string `yaml:"label"`
		Truth string `yaml:"truth"`
		Model string `yaml:"model"`
	} `yaml:"pairs"`
}

func loadManifest(path string) ([]service.Pair, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if len(m.Pairs) == 0 {
		return nil, fmt.Errorf("manifest %s lists no pairs", path)
	}

	dir := filepath.Dir(path)
	pairs := make([]service.Pair, 0, len(m.Pairs))
	for i, e := range m.Pairs {
		label := e.Label
		if label == "" {
			label = fmt.Sprintf("pair-%d", i+1)
		}
		truth, err := os.ReadFile(resolve(dir, e.Truth))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", label, err)
		}
		model, err := os.ReadFile(resolve(dir, e.Model))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", label, err)
		}
		pairs = append(pairs, service.Pair{Label: label, Truth: truth, Model: model})
	}
	return pairs, nil
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func (c *batchCommand) Execute([]string) error {
	pairs, err := loadManifest(c.Args.Manifest)
	if err != nil {
		return err
	}

	opts := c.opts.compareOptions()
	opts.Workers = c.Workers
	results := service.CompareBatch(context.Background(), pairs, opts)

	tw := tabwriter.NewWriter(c.opts.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LABEL\tLV1 F1\tLV2 F1\tLV3 F1\tGED")
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			c.opts.log.Error("comparison failed", "label", r.Label, "error", r.Err)
			fmt.Fprintf(tw, "%s\t-\t-\t-\t%v\n", r.Label, r.Err)
			continue
		}
		o := r.Report.Overall
		ged := "-"
		if r.Report.SimpleGED != nil || r.Report.FullGED != nil {
			ged = r.Report.GEDSummary()
		}
		fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.3f\t%s\n", r.Label, o.Lv1.F1, o.Lv2.F1, o.Lv3.F1, ged)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if c.Out != "" {
		var err error
		switch filepath.Ext(c.Out) {
		case ".yaml", ".yml":
			err = export.WriteYAML(c.Out, results)
		default:
			err = export.WriteJSON(c.Out, results)
		}
		if err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d comparisons failed", failed, len(results))
	}
	return nil
}
