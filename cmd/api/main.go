// ABOUTME: Main entry point for the Article Viewer API server
// ABOUTME: Wires configuration, logging, caches, the wiki client, fetch workers and viewer sessions

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"article-viewer-api/api"
	"article-viewer-api/api/handlers"
	"article-viewer-api/api/middleware"
	"article-viewer-api/core/interfaces"
	"article-viewer-api/core/viewer"
	"article-viewer-api/core/wiki"
	"article-viewer-api/core/workers"
	"article-viewer-api/infrastructure/cache/memory"
	"article-viewer-api/infrastructure/cache/redis"
	"article-viewer-api/infrastructure/cache/sqlite"
	stdhttp "article-viewer-api/infrastructure/http/standard"
	logruslogger "article-viewer-api/infrastructure/logger/logrus"
	"article-viewer-api/pkg/config"
	"article-viewer-api/pkg/featureflags"
	"github.com/joho/godotenv"
)

func main() {
	// a missing .env is fine; the environment may already be set
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logruslogger.New(logruslogger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	flags := featureflags.NewEnvManager("")
	logger.Info("Starting Article Viewer API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"flags":      flags.GetAllFlags(),
	})

	var cache interfaces.Cache
	if flags.IsEnabled(context.Background(), featureflags.CacheEnabled) {
		var closer io.Closer
		cache, closer = newCache(cfg.Cache, logger)
		if closer != nil {
			defer closer.Close()
		}
	}

	httpClient := stdhttp.NewStandardHTTPClientWithOptions(stdhttp.Options{
		Timeout:   cfg.Wiki.Timeout,
		UserAgent: cfg.Wiki.UserAgent,
		Attempts:  cfg.Wiki.Attempts,
		Transport: &middleware.LoggingRoundTripper{Transport: http.DefaultTransport, Logger: logger},
	})

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	source := wiki.NewClient(deps, wiki.Config{
		DiffServiceBase:   cfg.Wiki.DiffServiceBase,
		CacheTTL:          cfg.Wiki.CacheTTL,
		RequestsPerSecond: cfg.Wiki.RequestsPerSecond,
		Burst:             cfg.Wiki.Burst,
	})

	pool := workers.NewFetchPool(workers.PoolConfig{
		MaxWorkers: cfg.Viewer.Workers,
		QueueSize:  cfg.Viewer.QueueSize,
		SubmitWait: workers.DefaultPoolConfig().SubmitWait,
	}, logger)
	if err := pool.Start(); err != nil {
		log.Fatalf("Failed to start fetch workers: %v", err)
	}

	service := viewer.NewService(source, viewer.ServiceOptions{
		Palette:    cfg.Viewer.Palette,
		Dispatcher: pool,
		Logger:     logger,
	})
	registry := viewer.NewRegistry(service, cfg.Viewer.SessionTTL, logger)

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:      logger,
		Flags:       flags,
		RateLimit:   cfg.Server.RateLimit,
		RateWindow:  cfg.Server.RateWindow,
		CORSOrigins: cfg.Server.CORSOrigins,
	})
	handlers.NewViewerHandler(registry, logger).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(registry).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Wiki.Timeout + 15*time.Second, // reveal?wait=true waits on the wiki
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	registry.Close()
	if err := pool.Stop(); err != nil {
		logger.Warn("Fetch workers did not stop cleanly", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the configured response cache, falling back to memory when
// the configured backend is unavailable.
func newCache(cfg config.CacheConfig, logger interfaces.Logger) (interfaces.Cache, io.Closer) {
	switch cfg.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(), nil
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Redis.Address,
		})
		return redisCache, redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCacheWithLogger(cfg.SQLite.Path, logger)
		if err != nil {
			logger.Error("Failed to open SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(), nil
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.SQLite.Path,
		})
		return sqliteCache, sqliteCache
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache(), nil
	}
}

func init() {
	fmt.Println(`
   ___       __  _     __      _   ___                      
  / _ | ____/ /_(_)___/ /__   | | / (_)__ _    _____ ____   
 / __ |/ __/ __/ / __/ / -_)  | |/ / / -_) |/|/ / -_) __/   
/_/ |_/_/  \__/_/\__/_/\__/   |___/_/\__/|__,__/\__/_/      
	`)
}
