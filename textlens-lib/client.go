// ABOUTME: Main client for the TextLens library providing text analysis and page fetching
// ABOUTME: Offers a clean API for using core functionality without HTTP server dependencies

package textlens

import (
	"context"
	"io"
	"strings"

	"textlens-api/core/analysis"
	"textlens-api/core/domain"
	"textlens-api/core/fetcher"
	"textlens-api/core/interfaces"
	"textlens-api/core/keywords"
	"textlens-api/core/presentation"
	"textlens-api/infrastructure/sentiment/lexicon"
)

// Client is the main entry point for the TextLens library
type Client struct {
	analyzer  *analysis.Service
	fetcher   *fetcher.Service
	renderers *presentation.Registry
	config    Config
}

// Config holds the configuration for the client
type Config struct {
	// HTTPClient performs page fetches
	HTTPClient interfaces.HTTPClient

	// Logger receives pipeline logs
	Logger interfaces.Logger

	// Segmenter tokenizes text. Defaults to the gse dictionary segmenter.
	Segmenter interfaces.Segmenter

	// Scorer provides sentiment and summaries. Defaults to the lexicon scorer.
	Scorer interfaces.SentimentScorer

	// Metrics is optional
	Metrics interfaces.Metrics

	// Stopwords overrides the built-in stopword list when non-empty
	Stopwords []string

	// DefaultTopN is used when an analysis does not set one
	DefaultTopN int

	// Fetch tunes page fetching
	Fetch fetcher.Config
}

// NewClient creates a new TextLens client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := resolveDefaults(&config); err != nil {
		return nil, err
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
		Metrics:    config.Metrics,
	}

	return &Client{
		analyzer: analysis.NewService(deps, config.Segmenter, config.Scorer, keywords.NewFilter(config.Stopwords)).
			WithDefaultTopN(config.DefaultTopN),
		fetcher:   fetcher.NewService(deps, config.Fetch),
		renderers: presentation.DefaultRegistry(),
		config:    config,
	}, nil
}

// Close releases client resources
func (c *Client) Close() error {
	return nil
}

// Analyze runs the full pipeline over text
func (c *Client) Analyze(ctx context.Context, text string, opts ...AnalyzeOption) (*Analysis, error) {
	options := applyAnalyzeOptions(opts)

	result, err := c.analyzer.Analyze(ctx, domain.AnalysisInput{
		Text:   text,
		TopN:   options.TopN,
		Source: options.Source,
		Title:  options.Title,
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Fetch downloads a page and reduces it to plain text
func (c *Client) Fetch(ctx context.Context, url string) (*Page, error) {
	page, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, wrapError(err)
	}
	return page, nil
}

// AnalyzeURL fetches a page and analyzes its text. The page URL and title are
// carried into the result.
func (c *Client) AnalyzeURL(ctx context.Context, url string, opts ...AnalyzeOption) (*Analysis, error) {
	page, err := c.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	opts = append([]AnalyzeOption{WithSource(page.URL), WithTitle(page.Title)}, opts...)
	return c.Analyze(ctx, page.Text, opts...)
}

// Render writes a in the named report format
func (c *Client) Render(w io.Writer, a *Analysis, format string) error {
	renderer, err := c.renderers.Get(format)
	if err != nil {
		return wrapError(err)
	}
	if err := renderer.Render(w, a); err != nil {
		return NewError(ErrorTypeInternal, "failed to render report").WithCause(err)
	}
	return nil
}

// Formats lists the available report formats
func (c *Client) Formats() []string {
	return c.renderers.Formats()
}

// resolveDefaults builds the heavy default dependencies only when no
// override was supplied
func resolveDefaults(config *Config) error {
	if config.Segmenter == nil {
		seg, err := DefaultSegmenter()
		if err != nil {
			return NewError(ErrorTypeConfiguration, "failed to load segmenter").WithCause(err)
		}
		config.Segmenter = seg
	}

	if config.Scorer == nil {
		scorer, err := lexicon.NewScorer(config.Segmenter, config.Stopwords)
		if err != nil {
			return NewError(ErrorTypeConfiguration, "failed to load sentiment lexicon").WithCause(err)
		}
		config.Scorer = scorer
	}
	return nil
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.HTTPClient == nil {
		return NewError(ErrorTypeConfiguration, "HTTP client is required")
	}

	if config.Logger == nil {
		return NewError(ErrorTypeConfiguration, "logger is required")
	}

	if config.DefaultTopN < 1 {
		return NewError(ErrorTypeConfiguration, "default top N must be at least 1").
			WithContext("default_top_n", config.DefaultTopN)
	}

	for i, word := range config.Stopwords {
		if strings.TrimSpace(word) == "" {
			return NewError(ErrorTypeConfiguration, "stopwords cannot be blank").
				WithContext("index", i)
		}
	}

	return nil
}
