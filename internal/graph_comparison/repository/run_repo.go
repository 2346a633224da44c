package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	runKeyPrefix = "eval:run:" // eval:run:{run_id} -> run JSON
	runIndexKey  = "eval:runs" // sorted set of run IDs scored by creation time
	defaultTTL   = 24 * time.Hour
)

// RunRepository caches comparison runs, reports included, in Redis.
type RunRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRunRepository(client *redis.Client, ttl time.Duration) *RunRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RunRepository{client: client, ttl: ttl}
}

// Create stores run, assigning its ID and creation time when unset.
func (r *RunRepository) Create(ctx context.Context, run *Run) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run data: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.runKey(run.RunID), data, r.ttl)
	pipe.ZAdd(ctx, runIndexKey, redis.Z{Score: float64(run.CreatedAt.UnixNano()), Member: run.RunID})
	pipe.Expire(ctx, runIndexKey, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	return nil
}

func (r *RunRepository) Get(ctx context.Context, runID string) (*Run, error) {
	data, err := r.client.Get(ctx, r.runKey(runID)).Result()
	if err == redis.Nil {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	var run Run
	if err := json.Unmarshal([]byte(data), &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run data: %w", err)
	}
	return &run, nil
}

// ListRecent returns up to limit run IDs, newest first. Expired runs are
// pruned from the index on the way.
func (r *RunRepository) ListRecent(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 20
	}
	ids, err := r.client.ZRevRange(ctx, runIndexKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		n, err := r.client.Exists(ctx, r.runKey(id)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to check run: %w", err)
		}
		if n == 0 {
			r.client.ZRem(ctx, runIndexKey, id)
			continue
		}
		out = append(out, id)
	}
	return out, nil
}

func (r *RunRepository) Delete(ctx context.Context, runID string) error {
	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, r.runKey(runID))
	pipe.ZRem(ctx, runIndexKey, runID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if del.Val() == 0 {
		return ErrRunNotFound
	}
	return nil
}

func (r *RunRepository) runKey(runID string) string {
	return fmt.Sprintf("%s%s", runKeyPrefix, runID)
}
