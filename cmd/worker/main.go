package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/channel-lens/channel-analyzer-go/internal/config"
	"github.com/channel-lens/channel-analyzer-go/internal/db"
	"github.com/channel-lens/channel-analyzer-go/internal/db/repository"
	"github.com/channel-lens/channel-analyzer-go/internal/queue"
	"github.com/channel-lens/channel-analyzer-go/pkg/logger"
)

const defaultConcurrency = 4

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Cache.RedisURL == "" {
		logger.Log.Fatal("redis URL is required for the snapshot worker (APP_CACHE_REDISURL)")
	}

	ctx := context.Background()

	pool, err := db.NewPool(ctx, &cfg.Database)
	if err != nil {
		logger.Log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	snapshotRepo := repository.NewSnapshotRepository(pool)
	snapshotHandler := queue.NewSnapshotHandler(snapshotRepo)

	srv, err := queue.NewServer(cfg.Cache.RedisURL, defaultConcurrency, snapshotHandler)
	if err != nil {
		logger.Log.Fatal("failed to initialize task server", zap.Error(err))
	}

	retentionCtx, cancelRetention := context.WithCancel(ctx)
	defer cancelRetention()
	retention := queue.NewRetention(snapshotRepo, cfg.Retention.MaxAge, cfg.Retention.SweepInterval)
	go retention.Run(retentionCtx)

	logger.Log.Info("snapshot worker starting",
		zap.Int("concurrency", defaultConcurrency),
		zap.Duration("retention_max_age", cfg.Retention.MaxAge),
	)

	// Run blocks until SIGTERM/SIGINT and drains in-flight tasks.
	if err := srv.Run(); err != nil {
		logger.Log.Fatal("task server exited", zap.Error(err))
	}

	logger.Log.Info("snapshot worker stopped")
}
