// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, middleware and the metrics endpoint

package api

import (
	"context"
	"time"

	"textlens-api/api/middleware"
	"textlens-api/core/interfaces"
	"textlens-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	apiTitle   = "TextLens API"
	apiVersion = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger         interfaces.Logger
	RateLimiter    *middleware.RateLimiter // nil disables rate limiting
	AllowedOrigins []string
	Flags          featureflags.Manager

	// MetricsGatherer backs /metrics, nil disables the endpoint
	MetricsGatherer prometheus.Gatherer
}

// RateLimiterFor builds a limiter from request and window settings, or nil
// when either is not positive
func RateLimiterFor(requests int, window time.Duration) *middleware.RateLimiter {
	if requests <= 0 || window <= 0 {
		return nil
	}
	return middleware.NewRateLimiter(requests, window)
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}
}

func humaConfig() huma.Config {
	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = "Character statistics, keyword frequencies, sentiment and reports for text typed in or fetched from the web"
	return config
}

// newRouter builds the chi router with CORS as the first middleware
func newRouter(origins []string) chi.Router {
	router := chi.NewRouter()
	router.Use(cors.Handler(corsOptions(origins)))
	return router
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := newRouter(cfg.AllowedOrigins)

	// The OpenAPI spec is automatically available at /openapi.json
	// The Swagger UI is automatically available at /docs

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	flags := cfg.Flags
	if flags == nil {
		flags = featureflags.NewStaticManager(featureflags.Defaults())
	}
	router.Use(featureflags.Middleware(flags))

	if cfg.RateLimiter != nil && flags.IsEnabled(context.Background(), featureflags.RateLimitEnabled) {
		router.Use(middleware.RateLimitMiddleware(cfg.RateLimiter))
	}

	if cfg.MetricsGatherer != nil && flags.IsEnabled(context.Background(), featureflags.MetricsEnabled) {
		router.Handle("/metrics", promhttp.HandlerFor(cfg.MetricsGatherer, promhttp.HandlerOpts{}))
	}

	return humachi.New(router, humaConfig()), router
}
