package service

import (
	"context"
	"os"
	"testing"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/domain"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile("../ingest/testdata/" + name)
	require.NoError(t, err)
	return b
}

func TestCompareDocuments(t *testing.T) {
	opts := DefaultOptions()
	opts.GED = true

	r, err := CompareDocuments(context.Background(), fixture(t, "truth.yaml"), fixture(t, "model.yaml"), opts)
	require.NoError(t, err)
	assert.Equal(t, "name_type_loc", r.Strategy)

	assert.Equal(t, metrics.Counters{COR: 5, PAR: 1}, r.Overall.Lv1.Counters)
	assert.Equal(t, metrics.Counters{COR: 4, PAR: 2}, r.Overall.Lv3.Counters)

	subs, ok := r.Kind(domain.LinkItem(domain.LinkSubscriber))
	require.True(t, ok)
	assert.Equal(t, 1, subs.Lv1.PAR)

	partial := r.Diff.PartialEdges()
	require.Len(t, partial, 1)
	var attrs []string
	for _, d := range partial[0].Deltas {
		attrs = append(attrs, d.Attribute)
	}
	assert.Contains(t, attrs, "topic")
	assert.Contains(t, attrs, "queue_size")
	assert.Contains(t, attrs, "conditions")

	require.NotNil(t, r.SimpleGED)
	require.True(t, r.SimpleGED.Computed)
	assert.Equal(t, 3, r.SimpleGED.Distance)
	require.NotNil(t, r.FullGED)
	assert.True(t, r.FullGED.Computed)
	assert.Greater(t, r.FullGED.Distance, 0)
}

func TestCompareDocuments_Identity(t *testing.T) {
	truth := fixture(t, "truth.yaml")
	opts := DefaultOptions()
	opts.GED = true

	r, err := CompareDocuments(context.Background(), truth, truth, opts)
	require.NoError(t, err)
	for _, lv := range []metrics.Tuple{r.Overall.Lv1, r.Overall.Lv2, r.Overall.Lv3} {
		assert.Equal(t, metrics.Counters{COR: 6}, lv.Counters)
		assert.Equal(t, 1.0, lv.F1)
	}
	assert.Equal(t, "Simple GED: 0, Full GED: 0", r.GEDSummary())
}

func TestCompareDocuments_Bounded(t *testing.T) {
	opts := DefaultOptions()
	opts.GED = true
	opts.GEDMaxNodes = 2

	r, err := CompareDocuments(context.Background(), fixture(t, "truth.yaml"), fixture(t, "model.yaml"), opts)
	require.NoError(t, err)
	assert.False(t, r.SimpleGED.Computed)
	assert.False(t, r.FullGED.Computed)
	assert.Equal(t, "Simple GED: skipped: exceeded bound, Full GED: skipped: exceeded bound", r.GEDSummary())
}

func TestCompareDocuments_Errors(t *testing.T) {
	ctx := context.Background()
	truth, model := fixture(t, "truth.yaml"), fixture(t, "model.yaml")

	_, err := CompareDocuments(ctx, model, truth, DefaultOptions())
	assert.ErrorIs(t, err, domain.ErrWildcardInTruth)

	_, err = CompareDocuments(ctx, []byte("launch: ["), model, DefaultOptions())
	assert.Error(t, err)

	opts := DefaultOptions()
	opts.Strategy = "nope"
	_, err = CompareDocuments(ctx, truth, model, opts)
	assert.Error(t, err)
}

func TestCompareBatch(t *testing.T) {
	truth, model := fixture(t, "truth.yaml"), fixture(t, "model.yaml")
	pairs := []Pair{
		{Label: "same", Truth: truth, Model: truth},
		{Label: "broken", Truth: []byte("launch: ["), Model: model},
		{Label: "model", Truth: truth, Model: model},
	}

	opts := DefaultOptions()
	opts.Workers = 2
	results := CompareBatch(context.Background(), pairs, opts)
	require.Len(t, results, 3)

	assert.Equal(t, "same", results[0].Label)
	require.NoError(t, results[0].Err)
	assert.Equal(t, 1.0, results[0].Report.Overall.Lv3.F1)

	assert.Equal(t, "broken", results[1].Label)
	assert.Error(t, results[1].Err)

	assert.Equal(t, "model", results[2].Label)
	require.NoError(t, results[2].Err)
	assert.Less(t, results[2].Report.Overall.Lv3.F1, 1.0)
}

func TestCompareBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	truth := fixture(t, "truth.yaml")
	results := CompareBatch(ctx, []Pair{{Label: "a", Truth: truth, Model: truth}}, DefaultOptions())
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
}

func TestCompareDocuments_NamesOnly(t *testing.T) {
	full, err := CompareDocuments(context.Background(), fixture(t, "truth.yaml"), fixture(t, "model.yaml"), DefaultOptions())
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.NamesOnly = true
	names, err := CompareDocuments(context.Background(), fixture(t, "truth.yaml"), fixture(t, "model.yaml"), opts)
	require.NoError(t, err)

	assert.Equal(t, full.Overall.Lv1.Counters, names.Overall.Lv1.Counters)
	assert.Less(t, names.Overall.Lv3.F1, full.Overall.Lv3.F1)
	assert.Zero(t, names.Overall.Lv3.COR)
}

func TestCompareDocuments_JSON(t *testing.T) {
	doc := []byte(`{
  "launch": {"nodes": {"/cam": {"node_type": "drv/cam", "traceability": {"package": "drv", "file": "launch/cam.launch", "line": 2, "column": 3}}}},
  "links": {"publishers": [{"node": "/cam", "topic": "/image", "msg_type": "sensor_msgs/Image", "queue_size": 1,
    "traceability": {"package": "drv", "file": "src/cam.cpp", "line": 40, "column": 7}}]}
}`)

	r, err := CompareDocuments(context.Background(), doc, fixture(t, "truth.yaml"), DefaultOptions())
	require.NoError(t, err)
	pubs, ok := r.Kind(domain.LinkItem(domain.LinkPublisher))
	require.True(t, ok)
	assert.Equal(t, 1, pubs.Lv3.INC+pubs.Lv3.MIS)

	r, err = CompareDocuments(context.Background(), doc, doc, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, metrics.Counters{COR: 2}, r.Overall.Lv3.Counters)
}
