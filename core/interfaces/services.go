// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines the pluggable segmentation, sentiment and fetch capabilities

package interfaces

import (
	"context"

	"textlens-api/core/domain"
)

// Segmenter splits text into an ordered sequence of tokens.
// Implementations must be deterministic for identical input.
type Segmenter interface {
	Tokenize(text string) []string
}

// SentimentScorer scores the polarity of a text and picks representative
// sentences from it.
type SentimentScorer interface {
	// Score returns a polarity in [0,1], higher is more positive.
	Score(ctx context.Context, text string) (float64, error)

	// Summarize returns up to n sentences of text in their original order.
	Summarize(ctx context.Context, text string, n int) ([]string, error)
}

// PageFetcher downloads a URL and reduces it to plain text
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*domain.FetchedPage, error)
}

// Metrics records pipeline events
type Metrics interface {
	// ObserveAnalysis records one completed analysis and its duration in seconds
	ObserveAnalysis(seconds float64, keywords int, label domain.SentimentLabel)

	// IncFetch records a fetch outcome such as "ok", "timeout" or "http"
	IncFetch(outcome string)

	// IncDegraded records a stage that fell back to a degraded result
	IncDegraded(stage string)
}

// SessionService manages the per-session "last known text" slot
type SessionService interface {
	Create(ctx context.Context, mode domain.InputMode) (*domain.Session, error)
	Get(ctx context.Context, id string) (*domain.Session, error)
	SetMode(ctx context.Context, id string, mode domain.InputMode) (*domain.Session, error)
	ConfirmText(ctx context.Context, id, text string) (*domain.Session, error)
	FetchURL(ctx context.Context, id, url string) (*domain.Session, *domain.FetchedPage, error)
	Clear(ctx context.Context, id string) error
}

// AnalysisService runs the analysis pipeline over one text
type AnalysisService interface {
	Analyze(ctx context.Context, in domain.AnalysisInput) (*domain.Analysis, error)
}
