// ABOUTME: Builds the storage, fetch and analysis services from configuration
// ABOUTME: Shared by the HTTP server and the command line tool

package bootstrap

import (
	"fmt"
	"net/http"

	"textlens-api/api/middleware"
	"textlens-api/core/analysis"
	"textlens-api/core/fetcher"
	"textlens-api/core/interfaces"
	"textlens-api/core/keywords"
	"textlens-api/core/presentation"
	"textlens-api/core/session"
	"textlens-api/infrastructure/cache/memory"
	"textlens-api/infrastructure/cache/redis"
	"textlens-api/infrastructure/cache/sqlite"
	stdhttp "textlens-api/infrastructure/http/standard"
	prommetrics "textlens-api/infrastructure/metrics/prometheus"
	"textlens-api/infrastructure/segmenter/gse"
	"textlens-api/infrastructure/segmenter/unicode"
	"textlens-api/infrastructure/sentiment/lexicon"
	"textlens-api/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsNamespace prefixes every exported metric
const MetricsNamespace = "textlens"

// Services holds the wired application services
type Services struct {
	Deps      interfaces.Dependencies
	Fetcher   *fetcher.Service
	Sessions  *session.Service
	Analyzer  *analysis.Service
	Renderers *presentation.Registry

	// Registry gathers the pipeline metrics for /metrics
	Registry *prometheus.Registry

	closers []func() error
}

// New wires every service from cfg
func New(cfg *config.Config, logger interfaces.Logger) (*Services, error) {
	s := &Services{Renderers: presentation.DefaultRegistry()}

	cache, closer := newCache(cfg, logger)
	if closer != nil {
		s.closers = append(s.closers, closer)
	}

	s.Registry = prometheus.NewRegistry()
	metrics, err := prommetrics.NewMetrics(MetricsNamespace, s.Registry)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	httpClient := stdhttp.NewStandardHTTPClient(
		cfg.Fetch.Timeout,
		stdhttp.WithUserAgent(cfg.Fetch.UserAgent),
		stdhttp.WithTransport(&middleware.LoggingRoundTripper{Transport: http.DefaultTransport, Logger: logger}),
	)

	s.Deps = interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
		Metrics:    metrics,
	}

	segmenter, err := newSegmenter(cfg.Analysis.Segmenter)
	if err != nil {
		s.Close()
		return nil, err
	}
	logger.Info("Segmenter ready", map[string]interface{}{
		"segmenter": cfg.Analysis.Segmenter,
	})

	scorer, err := lexicon.NewScorer(segmenter, cfg.Analysis.Stopwords)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to load sentiment lexicon: %w", err)
	}

	s.Fetcher = fetcher.NewService(s.Deps, fetcher.Config{
		MinContentRunes: cfg.Fetch.MinContentRunes,
		MaxBodyBytes:    cfg.Fetch.MaxBodyBytes,
	})
	s.Sessions = session.NewService(s.Deps, s.Fetcher, cfg.Cache.SessionTTL)
	s.Analyzer = analysis.NewService(s.Deps, segmenter, scorer, keywords.NewFilter(cfg.Analysis.Stopwords)).
		WithDefaultTopN(cfg.Analysis.DefaultTopN)

	return s, nil
}

// Close releases the storage backend
func (s *Services) Close() error {
	var firstErr error
	for _, closer := range s.closers {
		if err := closer(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.closers = nil
	return firstErr
}

// newCache picks the session store, falling back to memory when a backend
// cannot be reached
func newCache(cfg *config.Config, logger interfaces.Logger) (interfaces.Cache, func() error) {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(), nil
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache, redisCache.Close
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path, logger)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(), nil
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache, sqliteCache.Close
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache(), nil
	}
}

func newSegmenter(name string) (interfaces.Segmenter, error) {
	switch name {
	case "unicode":
		return unicode.NewSegmenter(true), nil
	case "gse", "":
		seg, err := gse.NewSegmenter()
		if err != nil {
			return nil, fmt.Errorf("failed to load gse dictionary: %w", err)
		}
		return seg, nil
	default:
		return nil, fmt.Errorf("unknown segmenter %q", name)
	}
}
