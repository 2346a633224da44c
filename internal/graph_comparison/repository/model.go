package repository

import (
	"errors"
	"time"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/metrics"
)

var ErrRunNotFound = errors.New("comparison run not found")

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Run is one comparison of a Model against its Ground Truth.
type Run struct {
	RunID       string          `json:"run_id"`
	Label       string          `json:"label,omitempty"`
	Strategy    string          `json:"strategy"`
	Status      string          `json:"status"`
	Error       string          `json:"error,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	Report      *metrics.Report `json:"report,omitempty"`
}

// Summary is the row kept in the comparison history.
type Summary struct {
	ID        string           `json:"id"`
	RunID     string           `json:"run_id"`
	Label     string           `json:"label,omitempty"`
	Strategy  string           `json:"strategy"`
	OverallF1 float64          `json:"overall_f1"`
	LaunchF1  float64          `json:"launch_f1"`
	SourceF1  float64          `json:"source_f1"`
	SimpleGED *int             `json:"simple_ged,omitempty"`
	FullGED   *int             `json:"full_ged,omitempty"`
	Overall   metrics.Levelled `json:"overall"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// SummaryFromRun condenses a completed run. Distances that were skipped stay nil.
func SummaryFromRun(run *Run) *Summary {
	s := &Summary{RunID: run.RunID, Label: run.Label, Strategy: run.Strategy}
	if run.Report == nil {
		return s
	}
	r := run.Report
	s.OverallF1 = r.Overall.Lv3.F1
	s.LaunchF1 = r.Launch.Lv3.F1
	s.SourceF1 = r.Source.Lv3.F1
	s.Overall = r.Overall
	if r.SimpleGED != nil && r.SimpleGED.Computed {
		v := r.SimpleGED.Distance
		s.SimpleGED = &v
	}
	if r.FullGED != nil && r.FullGED.Computed {
		v := r.FullGED.Distance
		s.FullGED = &v
	}
	return s
}
