// ABOUTME: Domain model for a complete analysis of one text
// ABOUTME: Aggregates stats, keywords, sentiment and chart series for rendering

package domain

import "time"

// Analysis is the result of running the pipeline over a single text
type Analysis struct {
	// Source is the URL the text was fetched from, empty for manual input
	Source string `json:"source,omitempty"`

	// Title is the page title for fetched text
	Title string `json:"title,omitempty"`

	TopN      int             `json:"topN"`
	Stats     TextStats       `json:"stats"`
	Keywords  []KeywordCount  `json:"keywords"`
	Sentiment SentimentResult `json:"sentiment"`
	Charts    Charts          `json:"charts"`

	// Warnings lists non-fatal problems hit while analysing
	Warnings []string `json:"warnings,omitempty"`

	AnalyzedAt time.Time `json:"analyzedAt"`
}

// ChartPoint is a single labelled value in a chart series
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Charts holds the data series for the bar, line and pie visualisations.
// All series are keyed by keyword and share the keyword ranking order.
type Charts struct {
	Bar  []ChartPoint `json:"bar"`
	Line []ChartPoint `json:"line"`

	// Pie values are shares of the top-N total, in percent
	Pie []ChartPoint `json:"pie"`
}

// AnalysisInput is one text to analyse with optional provenance
type AnalysisInput struct {
	Text string

	// TopN is the number of keywords to keep, 0 means the default
	TopN int

	Source string
	Title  string
}
