// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, CORS, request logging, feature flags and rate limiting

package api

import (
	"context"
	"time"

	"article-viewer-api/api/middleware"
	"article-viewer-api/core/interfaces"
	"article-viewer-api/pkg/featureflags"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	title   = "Article Viewer API"
	version = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// Flags is injected into every request context; nil disables all flags
	Flags featureflags.Manager

	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window

	// CORSOrigins defaults to any origin
	CORSOrigins []string
}

func newRouter(origins []string) chi.Router {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	return router
}

func newHumaConfig() huma.Config {
	config := huma.DefaultConfig(title, version)
	config.Info.Description = "Embeds the current version of a wiki article, optionally highlighting " +
		"the contributions of chosen authors"
	return config
}

// NewAPI creates a Huma API without logging or rate limiting
func NewAPI() (huma.API, chi.Router) {
	router := newRouter(nil)
	return humachi.New(router, newHumaConfig()), router
}

// NewAPIWithMiddleware creates a new API with middleware configured. Rate
// limiting is applied only when the rate_limit_enabled flag is on.
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := newRouter(cfg.CORSOrigins)

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	flags := cfg.Flags
	if flags == nil {
		flags = featureflags.NewStaticManager(nil)
	}
	router.Use(middleware.FeatureFlags(flags))

	if flags.IsEnabled(context.Background(), featureflags.RateLimitEnabled) && cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	return humachi.New(router, newHumaConfig()), router
}
