// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging, segmentation and scoring.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backed by patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: SQLite-based cache implementation
// - http/standard: Standard library HTTP client, one attempt per call
// - logger/structured: logrus-backed structured logger
// - metrics/prometheus: Prometheus pipeline metrics
// - segmenter/gse: Chinese dictionary segmentation with go-ego/gse
// - segmenter/unicode: UAX #29 word segmentation
// - sentiment/lexicon: Lexicon sentiment scorer and extractive summarizer
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// A missing key is reported as interfaces.ErrCacheMiss by every backend.
//
// # HTTP Client
//
// The HTTP client sends a browser-like User-Agent and never retries:
//
//	client := standard.NewStandardHTTPClient(15*time.Second)
//	resp, err := client.Get(ctx, "https://example.com/article")
package infrastructure
