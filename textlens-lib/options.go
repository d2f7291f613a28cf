// ABOUTME: Configuration options for the TextLens library client
// ABOUTME: Provides functional options for the client and for single analyses

package textlens

import (
	"textlens-api/core/analysis"
	"textlens-api/core/interfaces"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithSegmenter sets the tokenizer
func WithSegmenter(segmenter interfaces.Segmenter) Option {
	return func(c *Config) error {
		c.Segmenter = segmenter
		return nil
	}
}

// WithScorer sets the sentiment scorer and summarizer
func WithScorer(scorer interfaces.SentimentScorer) Option {
	return func(c *Config) error {
		c.Scorer = scorer
		return nil
	}
}

// WithMetrics records pipeline events
func WithMetrics(metrics interfaces.Metrics) Option {
	return func(c *Config) error {
		c.Metrics = metrics
		return nil
	}
}

// WithStopwords replaces the built-in stopword list
func WithStopwords(words ...string) Option {
	return func(c *Config) error {
		c.Stopwords = words
		return nil
	}
}

// WithDefaultTopN sets the keyword count used when an analysis does not pick one
func WithDefaultTopN(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewError(ErrorTypeConfiguration, "default top N must be at least 1").
				WithContext("default_top_n", n)
		}
		c.DefaultTopN = n
		return nil
	}
}

// WithMinContentRunes sets the shortest fetched text treated as usable
func WithMinContentRunes(n int) Option {
	return func(c *Config) error {
		c.Fetch.MinContentRunes = n
		return nil
	}
}

// AnalyzeOption is a functional option for a single analysis
type AnalyzeOption func(*AnalyzeOptions)

// AnalyzeOptions holds per-analysis parameters
type AnalyzeOptions struct {
	TopN   int
	Source string
	Title  string
}

// WithTopN caps the keyword list
func WithTopN(n int) AnalyzeOption {
	return func(o *AnalyzeOptions) {
		o.TopN = n
	}
}

// WithSource records where the text came from
func WithSource(source string) AnalyzeOption {
	return func(o *AnalyzeOptions) {
		o.Source = source
	}
}

// WithTitle sets the report title
func WithTitle(title string) AnalyzeOption {
	return func(o *AnalyzeOptions) {
		o.Title = title
	}
}

func applyAnalyzeOptions(opts []AnalyzeOption) AnalyzeOptions {
	var options AnalyzeOptions
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		HTTPClient:  DefaultHTTPClient(),
		Logger:      QuietLogger(),
		DefaultTopN: analysis.DefaultTopN,
	}
}
