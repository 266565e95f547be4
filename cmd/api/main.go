package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"travel-assistant/config"
	_ "travel-assistant/docs" // Swagger docs
	"travel-assistant/internal/app"
	"travel-assistant/internal/conversation/usecase"
	"travel-assistant/internal/httpserver"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"
)

// @title       AI Travel Assistant API
// @description Conversational travel planning: intent routing, trip drafts, mock flight/hotel search and destination info.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Travel Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Pipeline
	m := metrics.New()
	pipeline, err := app.NewPipeline(cfg, logger, m)
	if err != nil {
		logger.Error(ctx, "Failed to build pipeline: ", err)
		return
	}

	// 4. Conversation store
	repo, closeRepo, err := app.NewRepository(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open conversation store: ", err)
		return
	}
	defer func() {
		if err := closeRepo(); err != nil {
			logger.Warnf(ctx, "Closing conversation store: %v", err)
		}
	}()

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		RateLimit:           cfg.RateLimit,
		CORS:                cfg.CORS,
		ConversationUseCase: usecase.New(pipeline, repo, logger),
		Metrics:             m,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
