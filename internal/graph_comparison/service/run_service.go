package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/metrics"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/repository"
)

var ErrInvalidInput = errors.New("invalid comparison input")

type RunStore interface {
	Create(ctx context.Context, run *repository.Run) error
	Get(ctx context.Context, runID string) (*repository.Run, error)
	ListRecent(ctx context.Context, limit int) ([]string, error)
	Delete(ctx context.Context, runID string) error
}

type SummaryStore interface {
	CreateOrUpdate(ctx context.Context, s *repository.Summary) error
	GetByRunID(ctx context.Context, runID string) (*repository.Summary, error)
	ListRecent(ctx context.Context, limit int) ([]*repository.Summary, error)
}

type RunRequest struct {
	Label string
	Truth []byte
	Model []byte
	// Strategy and GED override the service defaults when set.
	Strategy  string
	GED       *bool
	NamesOnly bool
}

// RunService runs comparisons and keeps their results. Either store may be
// nil: without a run store results are not retrievable later, without a
// summary store no history row is written.
type RunService struct {
	runs      RunStore
	summaries SummaryStore
	opts      Options
	log       *slog.Logger
}

func NewRunService(runs RunStore, summaries SummaryStore, opts Options, log *slog.Logger) *RunService {
	if log == nil {
		log = slog.Default()
	}
	return &RunService{runs: runs, summaries: summaries, opts: opts, log: log}
}

func (s *RunService) options(req RunRequest) Options {
	opts := s.opts
	if req.Strategy != "" {
		opts.Strategy = req.Strategy
	}
	if req.GED != nil {
		opts.GED = *req.GED
	}
	if req.NamesOnly {
		opts.NamesOnly = true
	}
	return opts
}

// Run compares the request documents. A comparison rejected as invalid is
// still recorded as a failed run when a run store is configured.
func (s *RunService) Run(ctx context.Context, req RunRequest) (*repository.Run, error) {
	opts := s.options(req)
	start := time.Now()
	run := &repository.Run{
		RunID:     uuid.NewString(),
		Label:     req.Label,
		Strategy:  opts.Strategy,
		CreatedAt: start,
	}

	report, err := CompareDocuments(ctx, req.Truth, req.Model, opts)
	done := time.Now()
	run.CompletedAt = &done
	if err != nil {
		run.Status = repository.StatusFailed
		run.Error = err.Error()
		s.log.Warn("comparison rejected", "run_id", run.RunID, "error", err)
		if s.runs != nil {
			if serr := s.runs.Create(ctx, run); serr != nil {
				s.log.Warn("failed to store run", "run_id", run.RunID, "error", serr)
			}
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	run.Status = repository.StatusCompleted
	run.Strategy = report.Strategy
	run.Report = report

	if s.runs != nil {
		if err := s.runs.Create(ctx, run); err != nil {
			return nil, fmt.Errorf("store run: %w", err)
		}
	}

	s.logSkipped(run.RunID, report)
	s.log.Info("comparison finished",
		"run_id", run.RunID,
		"strategy", run.Strategy,
		"duration", done.Sub(start),
		"overall_f1", report.Overall.Lv3.F1,
	)

	if s.summaries != nil {
		if err := s.summaries.CreateOrUpdate(ctx, repository.SummaryFromRun(run)); err != nil {
			// the cached run is still served
			s.log.Warn("failed to store summary", "run_id", run.RunID, "error", err)
		}
	}
	return run, nil
}

func (s *RunService) logSkipped(runID string, r *metrics.Report) {
	if r.SimpleGED != nil && !r.SimpleGED.Computed {
		s.log.Warn("edit distance skipped", "run_id", runID, "mode", r.SimpleGED.Mode.String(), "reason", r.SimpleGED.Reason)
	}
	if r.FullGED != nil && !r.FullGED.Computed {
		s.log.Warn("edit distance skipped", "run_id", runID, "mode", r.FullGED.Mode.String(), "reason", r.FullGED.Reason)
	}
}

func (s *RunService) Get(ctx context.Context, runID string) (*repository.Run, error) {
	if s.runs == nil {
		return nil, repository.ErrRunNotFound
	}
	return s.runs.Get(ctx, runID)
}

// Summary prefers the history row and falls back to condensing the cached run.
func (s *RunService) Summary(ctx context.Context, runID string) (*repository.Summary, error) {
	if s.summaries != nil {
		sum, err := s.summaries.GetByRunID(ctx, runID)
		if err == nil {
			return sum, nil
		}
		if !errors.Is(err, repository.ErrRunNotFound) {
			return nil, err
		}
	}
	run, err := s.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	return repository.SummaryFromRun(run), nil
}

// Delete drops a cached run. Its summary row is history and stays.
func (s *RunService) Delete(ctx context.Context, runID string) error {
	if s.runs == nil {
		return repository.ErrRunNotFound
	}
	return s.runs.Delete(ctx, runID)
}

func (s *RunService) RecentSummaries(ctx context.Context, limit int) ([]*repository.Summary, error) {
	if s.summaries == nil {
		return []*repository.Summary{}, nil
	}
	out, err := s.summaries.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []*repository.Summary{}
	}
	return out, nil
}

func (s *RunService) Recent(ctx context.Context, limit int) ([]string, error) {
	if s.runs == nil {
		return []string{}, nil
	}
	return s.runs.ListRecent(ctx, limit)
}
