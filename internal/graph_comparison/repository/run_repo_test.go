package repository

import (
	"context"
	"testing"
	"time"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/metrics"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	require.NoError(t, client.Ping(context.Background()).Err())

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client, mr
}

func TestRunRepository_CreateAndGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := NewRunRepository(client, time.Hour)
	ctx := context.Background()

	run := &Run{
		Label:    "demo",
		Strategy: "name_type_loc",
		Status:   StatusCompleted,
		Report:   &metrics.Report{Strategy: "name_type_loc", Overall: metrics.Levelled{Lv1: metrics.Counters{COR: 2}.Tuple()}},
	}
	require.NoError(t, repo.Create(ctx, run))
	assert.NotEmpty(t, run.RunID)
	assert.False(t, run.CreatedAt.IsZero())
	assert.True(t, mr.Exists("eval:run:"+run.RunID))
	assert.Equal(t, time.Hour, mr.TTL("eval:run:"+run.RunID))

	got, err := repo.Get(ctx, run.RunID)
	require.NoError(t, err)
	assert.Equal(t, "demo", got.Label)
	require.NotNil(t, got.Report)
	assert.Equal(t, 2, got.Report.Overall.Lv1.COR)
	assert.Equal(t, 1.0, got.Report.Overall.Lv1.Precision)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestRunRepository_ListRecent(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := NewRunRepository(client, 0)
	ctx := context.Background()

	base := time.Now()
	for i, id := range []string{"r1", "r2", "r3"} {
		require.NoError(t, repo.Create(ctx, &Run{RunID: id, CreatedAt: base.Add(time.Duration(i) * time.Second)}))
	}

	ids, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"r3", "r2"}, ids)

	// an expired run drops out of the index
	mr.Del("eval:run:r3")
	ids, err = repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"r2", "r1"}, ids)
}

func TestRunRepository_Delete(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewRunRepository(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &Run{RunID: "r1"}))
	require.NoError(t, repo.Delete(ctx, "r1"))
	_, err := repo.Get(ctx, "r1")
	assert.ErrorIs(t, err, ErrRunNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "r1"), ErrRunNotFound)
}
