package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/GoSim-25-26J-441/go-model-eval/config"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/repository"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/service"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/storage/postgres"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/storage/rediscache"
	"github.com/redis/go-redis/v9"
)

// Stores holds the optional backing stores. Runs and Summaries stay nil
// interfaces when the matching store is not configured.
type Stores struct {
	DB        *sql.DB
	Redis     *redis.Client
	Runs      service.RunStore
	Summaries service.SummaryStore
}

func OpenStores(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Stores, error) {
	s := &Stores{}

	if cfg.Redis.Enabled() {
		client, err := rediscache.NewClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		s.Redis = client
		s.Runs = repository.NewRunRepository(client, cfg.Redis.RunTTL)
	} else {
		log.Warn("REDIS_ADDR not set, comparison runs will not be retrievable")
	}

	if cfg.Database.Enabled() {
		db, err := postgres.NewConnection(ctx, &cfg.Database)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("postgres: %w", err)
		}
		summaries := repository.NewSummaryRepository(db)
		if err := summaries.EnsureSchema(ctx); err != nil {
			db.Close()
			s.Close()
			return nil, fmt.Errorf("postgres schema: %w", err)
		}
		s.DB = db
		s.Summaries = summaries
	} else {
		log.Warn("DB_HOST not set, summary history disabled")
	}

	return s, nil
}

func (s *Stores) Close() {
	if s.Redis != nil {
		s.Redis.Close()
	}
	if s.DB != nil {
		s.DB.Close()
	}
}

func (s *Stores) pingDB() func(context.Context) error {
	if s.DB == nil {
		return nil
	}
	return s.DB.PingContext
}

func (s *Stores) pingRedis() func(context.Context) error {
	if s.Redis == nil {
		return nil
	}
	return func(ctx context.Context) error { return s.Redis.Ping(ctx).Err() }
}
