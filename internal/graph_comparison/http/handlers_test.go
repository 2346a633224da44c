package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/repository"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/service"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile("../ingest/testdata/" + name)
	require.NoError(t, err)
	return string(b)
}

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	svc := service.NewRunService(repository.NewRunRepository(client, time.Hour), nil, service.DefaultOptions(), nil)

	router := gin.New()
	New(svc).Register(router.Group("/api/v1"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestComparisonLifecycle(t *testing.T) {
	router := setupRouter(t)
	ged := true

	rr := doJSON(t, router, http.MethodPost, "/api/v1/comparisons", CompareRequest{
		Label: "fixtures",
		Truth: readFixture(t, "truth.yaml"),
		Model: readFixture(t, "model.yaml"),
		GED:   &ged,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created struct {
		Run repository.Run `json:"run"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	id := created.Run.RunID
	require.NotEmpty(t, id)
	assert.Equal(t, "name_type_loc", created.Run.Strategy)

	rr = doJSON(t, router, http.MethodGet, "/api/v1/comparisons/"+id, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/api/v1/comparisons/"+id+"/summary", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var summary struct {
		Summary repository.Summary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	require.NotNil(t, summary.Summary.SimpleGED)
	assert.Equal(t, 3, *summary.Summary.SimpleGED)

	rr = doJSON(t, router, http.MethodGet, "/api/v1/comparisons?limit=5", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list ListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Equal(t, []string{id}, list.Runs)
}

func TestCreateComparison_BadRequests(t *testing.T) {
	router := setupRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/v1/comparisons", map[string]string{"truth": "launch: {}"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// wildcards are not allowed in the truth document
	model := readFixture(t, "model.yaml")
	rr = doJSON(t, router, http.MethodPost, "/api/v1/comparisons", CompareRequest{Truth: model, Model: model})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "wildcard")

	rr = doJSON(t, router, http.MethodGet, "/api/v1/comparisons?limit=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetComparison_NotFound(t *testing.T) {
	router := setupRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/v1/comparisons/missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/api/v1/comparisons/missing/summary", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

type failingRunner struct{}

func (failingRunner) Run(context.Context, service.RunRequest) (*repository.Run, error) {
	return nil, context.DeadlineExceeded
}
func (failingRunner) Get(context.Context, string) (*repository.Run, error) {
	return nil, context.DeadlineExceeded
}
func (failingRunner) Summary(context.Context, string) (*repository.Summary, error) {
	return nil, context.DeadlineExceeded
}
func (failingRunner) Recent(context.Context, int) ([]string, error) {
	return nil, context.DeadlineExceeded
}
func (failingRunner) Delete(context.Context, string) error {
	return context.DeadlineExceeded
}
func (failingRunner) RecentSummaries(context.Context, int) ([]*repository.Summary, error) {
	return nil, context.DeadlineExceeded
}

func TestHandler_InternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	New(failingRunner{}).Register(router.Group(""))

	rr := doJSON(t, router, http.MethodPost, "/comparisons", CompareRequest{Truth: "a", Model: "b"})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	rr = doJSON(t, router, http.MethodGet, "/comparisons/x", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	rr = doJSON(t, router, http.MethodGet, "/comparisons", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	rr = doJSON(t, router, http.MethodDelete, "/comparisons/x", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	rr = doJSON(t, router, http.MethodGet, "/summaries", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestDeleteComparison(t *testing.T) {
	router := setupRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/v1/comparisons", CompareRequest{
		Truth:     readFixture(t, "truth.yaml"),
		Model:     readFixture(t, "model.yaml"),
		NamesOnly: true,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created struct {
		Run repository.Run `json:"run"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.NotNil(t, created.Run.Report)
	assert.Zero(t, created.Run.Report.Overall.Lv3.COR)

	rr = doJSON(t, router, http.MethodDelete, "/api/v1/comparisons/"+created.Run.RunID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = doJSON(t, router, http.MethodGet, "/api/v1/comparisons/"+created.Run.RunID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	rr = doJSON(t, router, http.MethodDelete, "/api/v1/comparisons/"+created.Run.RunID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListSummaries(t *testing.T) {
	router := setupRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/v1/summaries?limit=3", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var got SummariesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.NotNil(t, got.Summaries)
	assert.Empty(t, got.Summaries)

	rr = doJSON(t, router, http.MethodGet, "/api/v1/summaries?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateComparison_RateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	New(failingRunner{}).WithRateLimit(0.001, 1).Register(router.Group(""))

	assert.Equal(t, http.StatusBadRequest, doJSON(t, router, http.MethodPost, "/comparisons", map[string]string{}).Code)
	assert.Equal(t, http.StatusTooManyRequests, doJSON(t, router, http.MethodPost, "/comparisons", map[string]string{}).Code)
	for range 3 {
		assert.Equal(t, http.StatusInternalServerError, doJSON(t, router, http.MethodGet, "/comparisons", nil).Code)
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimit(0.001, 2))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for range 3 {
		codes = append(codes, doJSON(t, router, http.MethodGet, "/ping", nil).Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	open := gin.New()
	open.Use(RateLimit(0, 0))
	open.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	for range 5 {
		assert.Equal(t, http.StatusNoContent, doJSON(t, open, http.MethodGet, "/ping", nil).Code)
	}
}
