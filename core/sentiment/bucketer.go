// ABOUTME: Sentiment bucketer turns a scorer's polarity into a three-level label
// ABOUTME: Guards empty and very short text before delegating to the scorer

package sentiment

import (
	"context"
	"math"
	"unicode/utf8"

	"textlens-api/core/domain"
	"textlens-api/core/errors"
	"textlens-api/core/interfaces"
)

const (
	// PositiveThreshold and above is positive
	PositiveThreshold = 0.7

	// NegativeThreshold and below is negative
	NegativeThreshold = 0.3

	// SummarySentences is the number of sentences requested for the summary
	SummarySentences = 3

	// MinSummaryRunes is the shortest pure text handed to the summarizer
	MinSummaryRunes = 11
)

// ShortTextSummary is returned instead of a summary for very short text
const ShortTextSummary = "文本过短，无法生成摘要"

// Bucketer analyses the sentiment of pure text
type Bucketer struct {
	scorer interfaces.SentimentScorer

	// summaries disables the summary when false
	summaries bool
}

// NewBucketer creates a bucketer backed by scorer
func NewBucketer(scorer interfaces.SentimentScorer) *Bucketer {
	return &Bucketer{
		scorer:    scorer,
		summaries: true,
	}
}

// WithoutSummary returns a copy of the bucketer that never summarizes
func (b *Bucketer) WithoutSummary() *Bucketer {
	clone := *b
	clone.summaries = false
	return &clone
}

// Label buckets a score. The boundaries belong to the outer buckets:
// 0.3 is negative and 0.7 is positive.
func Label(score float64) domain.SentimentLabel {
	switch {
	case score >= PositiveThreshold:
		return domain.SentimentPositive
	case score <= NegativeThreshold:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

// Round4 rounds a score to 4 decimal digits
func Round4(score float64) float64 {
	return math.Round(score*10000) / 10000
}

// Analyze scores pureText. Empty text returns the neutral default without
// calling the scorer.
func (b *Bucketer) Analyze(ctx context.Context, pureText string) (domain.SentimentResult, error) {
	if pureText == "" {
		return domain.NeutralSentiment(), nil
	}

	raw, err := b.scorer.Score(ctx, pureText)
	if err != nil {
		return domain.NeutralSentiment(), errors.WrapError(err, "sentiment scoring failed")
	}

	score := Round4(clamp(raw))
	result := domain.SentimentResult{
		Score:   score,
		Label:   Label(score),
		Summary: []string{},
	}

	if !b.summaries {
		return result, nil
	}

	summary, err := b.Summarize(ctx, pureText)
	if err != nil {
		return result, err
	}
	result.Summary = summary
	return result, nil
}

// Summarize asks the scorer for representative sentences. Text of 10 runes
// or fewer gets a fixed placeholder and the scorer is not called.
func (b *Bucketer) Summarize(ctx context.Context, pureText string) ([]string, error) {
	if utf8.RuneCountInString(pureText) < MinSummaryRunes {
		return []string{ShortTextSummary}, nil
	}

	summary, err := b.scorer.Summarize(ctx, pureText, SummarySentences)
	if err != nil {
		return []string{}, errors.WrapError(err, "summary failed")
	}
	if summary == nil {
		summary = []string{}
	}
	return summary, nil
}

func clamp(score float64) float64 {
	if math.IsNaN(score) {
		return 0.5
	}
	return math.Max(0, math.Min(1, score))
}
