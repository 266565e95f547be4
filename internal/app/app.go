// Package app assembles the assistant from configuration. Both the HTTP
// server and the CLI build their pipeline and store through it.
package app

import (
	"context"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"travel-assistant/config"
	"travel-assistant/internal/agent/handlers"
	"travel-assistant/internal/agent/orchestrator"
	"travel-assistant/internal/conversation/repository"
	"travel-assistant/internal/conversation/repository/memory"
	"travel-assistant/internal/conversation/repository/postgre"
	redisRepo "travel-assistant/internal/conversation/repository/redis"
	"travel-assistant/internal/conversation/repository/sqlite"
	"travel-assistant/internal/router"
	"travel-assistant/pkg/datemath"
	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"
	"travel-assistant/pkg/travelmock"
)

// NewPipeline wires language model, router, handlers and orchestrator.
// m may be nil.
func NewPipeline(cfg *config.Config, l log.Logger, m *metrics.Metrics) (*orchestrator.Orchestrator, error) {
	ctx := context.Background()

	llm := llmprovider.New(&cfg.LLM, l, llmprovider.WithObserver(m))
	l.Infof(ctx, "Language model: %s (%s)", llm.Name(), llm.Model())

	loc, err := time.LoadLocation(cfg.LLM.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}
	dates, err := datemath.NewParser(cfg.LLM.Timezone)
	if err != nil {
		return nil, fmt.Errorf("date parser: %w", err)
	}
	data, err := travelmock.New()
	if err != nil {
		return nil, fmt.Errorf("travel data: %w", err)
	}

	r := router.New(llm, l, loc)
	registry := handlers.NewRegistry(data, dates, l)
	return orchestrator.New(r, registry, llm, l,
		orchestrator.WithMetrics(m),
		orchestrator.WithContextWindow(cfg.Assistant.ContextWindow),
	), nil
}

// NewRepository opens the configured conversation store. The returned
// close func releases its connection.
func NewRepository(ctx context.Context, cfg config.StorageConfig, l log.Logger) (repository.Repository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.StorageMemory:
		l.Info(ctx, "Conversation store: memory")
		return memory.New(cfg.Memory.Size, cfg.Memory.TTL), noop, nil

	case config.StoragePostgres:
		db, err := postgre.Open(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, nil, err
		}
		l.Info(ctx, "Conversation store: postgres")
		return postgre.New(db, l), db.Close, nil

	case config.StorageRedis:
		client := backend.NewClient(&backend.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		l.Infof(ctx, "Conversation store: redis at %s", cfg.Redis.Addr)
		opts := []redisRepo.Option{redisRepo.WithTTL(cfg.Redis.TTL)}
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redisRepo.WithPrefix(cfg.Redis.Prefix))
		}
		return redisRepo.New(client, l, opts...), client.Close, nil

	case config.StorageSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		l.Infof(ctx, "Conversation store: sqlite at %s", cfg.SQLite.Path)
		return sqlite.New(db, l), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
