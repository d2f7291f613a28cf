// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package textlens

import (
	"io"
	"os"
	"time"

	"textlens-api/core/interfaces"
	stdhttp "textlens-api/infrastructure/http/standard"
	"textlens-api/infrastructure/logger/structured"
	"textlens-api/infrastructure/segmenter/gse"
	"textlens-api/infrastructure/segmenter/unicode"
)

// DefaultFetchTimeout bounds a single page fetch
const DefaultFetchTimeout = 15 * time.Second

// DefaultHTTPClient creates a default HTTP client with a browser-like User-Agent
func DefaultHTTPClient() interfaces.HTTPClient {
	return stdhttp.NewStandardHTTPClient(DefaultFetchTimeout)
}

// DefaultSegmenter loads the gse dictionary segmenter
func DefaultSegmenter() (interfaces.Segmenter, error) {
	return gse.NewSegmenter()
}

// UnicodeSegmenter splits on UAX #29 word boundaries, lowercasing tokens.
// Use it for space-delimited languages.
func UnicodeSegmenter() interfaces.Segmenter {
	return unicode.NewSegmenter(true)
}

// DefaultLogger creates a JSON logger that writes to stderr
func DefaultLogger() interfaces.Logger {
	return structured.NewLogger(structured.Options{Output: os.Stderr})
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return structured.NewLogger(structured.Options{Level: "panic", Output: io.Discard})
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// WithVerboseLogging logs to stderr at debug level
func WithVerboseLogging() Option {
	return func(c *Config) error {
		c.Logger = structured.NewLogger(structured.Options{Level: "debug", Format: "text", Output: os.Stderr})
		return nil
	}
}

// HTTPClientConfig holds configuration for the HTTP client
type HTTPClientConfig struct {
	Timeout   time.Duration
	UserAgent string
}

// WithHTTPClientConfig creates an HTTP client with custom configuration
func WithHTTPClientConfig(config HTTPClientConfig) Option {
	return func(c *Config) error {
		if config.Timeout <= 0 {
			return NewError(ErrorTypeConfiguration, "HTTP timeout must be positive").
				WithContext("timeout", config.Timeout.String())
		}
		c.HTTPClient = stdhttp.NewStandardHTTPClient(config.Timeout, stdhttp.WithUserAgent(config.UserAgent))
		return nil
	}
}
