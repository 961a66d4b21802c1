package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/config"
	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/app"
	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/logging"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Server.Environment, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting cpl service v1.0.0",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port))
	logger.Info("content endpoints",
		zap.String("publish", cfg.Content.PublishURL),
		zap.String("author", cfg.Content.AuthorURL),
		zap.String("legacy_publish", cfg.Content.LegacyPublishURL),
		zap.String("legacy_author", cfg.Content.LegacyAuthorURL),
		zap.Duration("timeout", cfg.Content.Timeout),
		zap.Float64("rate_limit", cfg.Content.RateLimit))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.NewServer(cfg, logger).Run(ctx); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
