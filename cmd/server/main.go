package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/channel-lens/channel-analyzer-go/internal/cache"
	"github.com/channel-lens/channel-analyzer-go/internal/config"
	"github.com/channel-lens/channel-analyzer-go/internal/db"
	"github.com/channel-lens/channel-analyzer-go/internal/db/repository"
	"github.com/channel-lens/channel-analyzer-go/internal/handler"
	"github.com/channel-lens/channel-analyzer-go/internal/metrics"
	"github.com/channel-lens/channel-analyzer-go/internal/middleware"
	"github.com/channel-lens/channel-analyzer-go/internal/queue"
	"github.com/channel-lens/channel-analyzer-go/internal/service"
	"github.com/channel-lens/channel-analyzer-go/internal/service/quota"
	"github.com/channel-lens/channel-analyzer-go/internal/service/youtube"
	"github.com/channel-lens/channel-analyzer-go/pkg/logger"
)

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

	if cfg.YouTube.APIKey == "" {
		logger.Log.Fatal("YouTube API key is required (APP_YOUTUBE_APIKEY)")
	}

	ctx := context.Background()

	pool, err := db.NewPool(ctx, &cfg.Database)
	if err != nil {
		logger.Log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()
	logger.Log.Info("database connection established",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Name),
	)

	metrics.Init(pool)

	snapshotRepo := repository.NewSnapshotRepository(pool)

	responseCache := cache.New(cfg.Cache.RedisURL, cfg.Cache.TTL)
	defer responseCache.Close()

	var enqueuer handler.SnapshotEnqueuer = queue.NewSyncStore(snapshotRepo)
	if cfg.Cache.RedisURL != "" {
		queueClient, err := queue.NewClient(cfg.Cache.RedisURL)
		if err != nil {
			logger.Log.Warn("failed to initialize queue client, snapshots will be stored synchronously",
				zap.Error(err),
			)
		} else {
			defer queueClient.Close()
			enqueuer = queueClient
			logger.Log.Info("queue client initialized, snapshots will be persisted asynchronously")
		}
	}

	youtubeClient, err := youtube.NewClient(cfg.YouTube.APIKey, cfg.YouTube.RegionCode)
	if err != nil {
		logger.Log.Fatal("failed to initialize YouTube API client", zap.Error(err))
	}

	quotaManager := quota.NewManager(cfg.YouTube.DailyQuota, cfg.YouTube.QuotaThreshold)
	analyzer := service.NewAnalyzer(youtubeClient, quotaManager)

	analyzeHandler := handler.NewAnalyzeHandler(analyzer, responseCache, enqueuer)
	historyHandler := handler.NewHistoryHandler(snapshotRepo)
	healthHandler := handler.NewHealthHandler(pool, responseCache)

	router := setupRouter(analyzeHandler, historyHandler, healthHandler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Log.Info("server starting", zap.Int("port", cfg.Server.Port))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Log.Fatal("server error", zap.Error(err))
	case sig := <-shutdown:
		logger.Log.Info("shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Log.Error("graceful shutdown failed", zap.Error(err))
			if err := server.Close(); err != nil {
				logger.Log.Error("failed to close server", zap.Error(err))
			}
			os.Exit(1)
		}

		logger.Log.Info("server stopped gracefully")
	}
}

func setupRouter(
	analyzeHandler *handler.AnalyzeHandler,
	historyHandler *handler.HistoryHandler,
	healthHandler *handler.HealthHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(metrics.Middleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", healthHandler.ReadinessProbe)
	router.GET("/health/live", healthHandler.LivenessProbe)
	router.GET("/health/ready", healthHandler.ReadinessProbe)
	router.GET("/metrics", metrics.Handler())

	api := router.Group("/api")
	{
		api.GET("/", healthHandler.Root)
		api.POST("/analyze-channel", analyzeHandler.HandleAnalyzeChannel)
		api.GET("/analyses", historyHandler.HandleList)
		api.GET("/analyses/:id", historyHandler.HandleGet)
	}

	return router
}
