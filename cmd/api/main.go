package main

// @title Epi Dashboard API
// @version 1.0.0
// @description Synthetic epidemiological data for the Explorer and Gallery dashboards.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/epi-dashboard/docs"
	"github.com/epi-dashboard/internal/config"
	httpDelivery "github.com/epi-dashboard/internal/delivery/http"
	"github.com/epi-dashboard/internal/delivery/http/handler"
	"github.com/epi-dashboard/internal/domain/repository"
	"github.com/epi-dashboard/internal/pkg/logger"
	"github.com/epi-dashboard/internal/pkg/metrics"
	"github.com/epi-dashboard/internal/repository/cache"
	"github.com/epi-dashboard/internal/usecase"
	"github.com/epi-dashboard/internal/usecase/generator"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Epi Dashboard API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Strings("cors_origins", cfg.CORS.AllowOrigins),
		zap.Int64("rng_seed", cfg.Generator.Seed),
	)
	if len(cfg.CORS.Rejected) > 0 {
		log.Warn("Invalid CORS origins ignored", zap.Strings("origins", cfg.CORS.Rejected))
	}

	// 3. Optional Redis cache for reference data
	var cacheRepo repository.CacheRepository
	var redisClient *cache.Redis
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Warn("Redis unavailable, reference cache disabled", zap.Error(err))
		} else {
			cacheRepo = cache.NewCacheRepository(redisClient)
		}
	}

	// 4. Metrics, generator, use cases
	m := metrics.New()
	gen := generator.New(cfg.Generator.Seed)
	dashboardUC := usecase.NewDashboardUseCase(gen, cacheRepo, m, log, cfg.Cache.ReferenceCacheTTL)

	// 5. HTTP
	dashboardHandler := handler.NewDashboardHandler(dashboardUC, log)
	server := httpDelivery.NewServer(cfg, log, m, dashboardHandler)

	// Port bind failure is fatal
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
