package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/repository"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/service"
	"github.com/gin-gonic/gin"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// CreateComparison scores the posted model against the posted truth
func (h *Handler) CreateComparison(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	run, err := h.runs.Run(c.Request.Context(), service.RunRequest{
		Label:     req.Label,
		Truth:     []byte(req.Truth),
		Model:     []byte(req.Model),
		Strategy:  req.Strategy,
		GED:       req.GED,
		NamesOnly: req.NamesOnly,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to run comparison"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"run": run})
}

func (h *Handler) GetComparison(c *gin.Context) {
	run, err := h.runs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"run": run})
}

func (h *Handler) GetSummary(c *gin.Context) {
	sum, err := h.runs.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": sum})
}

func (h *Handler) DeleteComparison(c *gin.Context) {
	if err := h.runs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeLookupError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSummaries returns the summary history, newest first
func (h *Handler) ListSummaries(c *gin.Context) {
	limit, ok := listLimit(c)
	if !ok {
		return
	}
	sums, err := h.runs.RecentSummaries(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list summaries"})
		return
	}
	c.JSON(http.StatusOK, SummariesResponse{Summaries: sums})
}

// ListComparisons returns the most recent run ids, newest first
func (h *Handler) ListComparisons(c *gin.Context) {
	limit, ok := listLimit(c)
	if !ok {
		return
	}

	ids, err := h.runs.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list runs"})
		return
	}
	c.JSON(http.StatusOK, ListResponse{Runs: ids})
}

func listLimit(c *gin.Context) (int, bool) {
	v := c.Query("limit")
	if v == "" {
		return defaultListLimit, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return 0, false
	}
	return min(n, maxListLimit), true
}

func writeLookupError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrRunNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get run"})
}
