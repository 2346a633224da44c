package http

import (
	"context"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/repository"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/service"
	"github.com/gin-gonic/gin"
)

// Runner is the part of service.RunService the handlers need.
type Runner interface {
	Run(ctx context.Context, req service.RunRequest) (*repository.Run, error)
	Get(ctx context.Context, runID string) (*repository.Run, error)
	Summary(ctx context.Context, runID string) (*repository.Summary, error)
	Recent(ctx context.Context, limit int) ([]string, error)
	Delete(ctx context.Context, runID string) error
	RecentSummaries(ctx context.Context, limit int) ([]*repository.Summary, error)
}

// Handler serves comparison runs.
type Handler struct {
	runs  Runner
	guard []gin.HandlerFunc
}

func New(runs Runner) *Handler {
	return &Handler{runs: runs}
}

// WithRateLimit guards comparison creation, the only expensive route.
func (h *Handler) WithRateLimit(perSecond float64, burst int) *Handler {
	h.guard = append(h.guard, RateLimit(perSecond, burst))
	return h
}

// CompareRequest carries both launch documents as YAML or JSON text.
type CompareRequest struct {
	Label     string `json:"label,omitempty"`
	Truth     string `json:"truth" binding:"required"`
	Model     string `json:"model" binding:"required"`
	Strategy  string `json:"strategy,omitempty"`
	GED       *bool  `json:"ged,omitempty"`
	NamesOnly bool   `json:"names_only,omitempty"`
}

type ListResponse struct {
	Runs []string `json:"runs"`
}

type SummariesResponse struct {
	Summaries []*repository.Summary `json:"summaries"`
}
