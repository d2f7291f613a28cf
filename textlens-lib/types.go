// ABOUTME: Public types for the TextLens library API
// ABOUTME: Aliases the core domain models so results can be used without extra imports

package textlens

import "textlens-api/core/domain"

// Analysis is the full result of one analysis
type Analysis = domain.Analysis

// TextStats holds character and sentence counts
type TextStats = domain.TextStats

// KeywordCount is one ranked keyword
type KeywordCount = domain.KeywordCount

// Sentiment is the polarity, label and summary of a text
type Sentiment = domain.SentimentResult

// SentimentLabel is one of positive, neutral or negative
type SentimentLabel = domain.SentimentLabel

// Charts holds the bar, line and pie series
type Charts = domain.Charts

// Page is a fetched web page reduced to plain text
type Page = domain.FetchedPage

// Sentiment labels
const (
	Positive = domain.SentimentPositive
	Neutral  = domain.SentimentNeutral
	Negative = domain.SentimentNegative
)
