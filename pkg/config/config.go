// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, fetching, analysis and logging

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains session store configuration
	Cache CacheConfig

	// Fetch contains web page fetching configuration
	Fetch FetchConfig

	// Analysis contains text analysis configuration
	Analysis AnalysisConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests allowed per RateWindow per client IP
	RateLimit int

	// RateWindow is the rate limit window
	RateWindow time.Duration

	// AllowedOrigins lists CORS origins
	AllowedOrigins []string
}

// CacheConfig holds session store backend configuration
type CacheConfig struct {
	// Type specifies the backend (memory/redis/sqlite)
	Type string

	// SessionTTL is how long an idle session slot is kept
	SessionTTL time.Duration

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int

	// KeyPrefix namespaces every key
	KeyPrefix string
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string
}

// FetchConfig holds web page fetching configuration
type FetchConfig struct {
	// Timeout bounds a single fetch
	Timeout time.Duration

	// UserAgent overrides the browser-like default when set
	UserAgent string

	// MinContentRunes is the shortest extracted text treated as usable
	MinContentRunes int

	// MaxBodyBytes caps the downloaded body
	MaxBodyBytes int64
}

// AnalysisConfig holds text analysis configuration
type AnalysisConfig struct {
	// Segmenter selects the tokenizer backend (gse/unicode)
	Segmenter string

	// DefaultTopN is used when a request does not specify top_n
	DefaultTopN int

	// Stopwords overrides the built-in stopword list when non-empty
	Stopwords []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string

	// Format is json or text
	Format string
}

// LoadFromEnv loads configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8000"),
			RateLimit:      getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindow:     time.Duration(getEnvAsIntOrDefault("RATE_WINDOW_SECONDS", 60)) * time.Second,
			AllowedOrigins: getEnvAsListOrDefault("ALLOWED_ORIGINS", []string{"*"}),
		},
		Cache: CacheConfig{
			Type:       getEnvOrDefault("CACHE_TYPE", "memory"),
			SessionTTL: time.Duration(getEnvAsIntOrDefault("SESSION_TTL_MINUTES", 60)) * time.Minute,
			Redis: RedisConfig{
				Address:   getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:  getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:        getEnvAsIntOrDefault("REDIS_DB", 0),
				KeyPrefix: getEnvOrDefault("REDIS_KEY_PREFIX", "textlens:"),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "textlens.db"),
			},
		},
		Fetch: FetchConfig{
			Timeout:         time.Duration(getEnvAsIntOrDefault("FETCH_TIMEOUT_SECONDS", 15)) * time.Second,
			UserAgent:       getEnvOrDefault("FETCH_USER_AGENT", ""),
			MinContentRunes: getEnvAsIntOrDefault("FETCH_MIN_CONTENT", 50),
			MaxBodyBytes:    int64(getEnvAsIntOrDefault("FETCH_MAX_BYTES", 5<<20)),
		},
		Analysis: AnalysisConfig{
			Segmenter:   getEnvOrDefault("SEGMENTER", "gse"),
			DefaultTopN: getEnvAsIntOrDefault("DEFAULT_TOP_N", 10),
			Stopwords:   getEnvAsListOrDefault("STOPWORDS", nil),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma separated variable, dropping blanks
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Fetch.Timeout <= 0 {
		return errors.New("fetch timeout must be positive")
	}

	if c.Fetch.MinContentRunes < 0 {
		return errors.New("minimum content length cannot be negative")
	}

	if c.Analysis.Segmenter != "gse" && c.Analysis.Segmenter != "unicode" {
		return errors.New("segmenter must be 'gse' or 'unicode'")
	}

	if c.Analysis.DefaultTopN < 1 {
		return errors.New("default top_n must be at least 1")
	}

	return nil
}
