// ABOUTME: Domain models for sentiment polarity results
// ABOUTME: Defines the three-level label and the neutral default

package domain

// SentimentLabel is the bucketed polarity of a text
type SentimentLabel string

const (
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentPositive SentimentLabel = "positive"
)

// SentimentResult holds the polarity score, its label and a short summary
type SentimentResult struct {
	// Score is in [0,1], higher is more positive
	Score float64 `json:"score"`

	Label SentimentLabel `json:"label"`

	// Summary contains representative sentences in their original order
	Summary []string `json:"summary"`
}

// NeutralSentiment returns the result used for empty text
func NeutralSentiment() SentimentResult {
	return SentimentResult{
		Score:   0.5,
		Label:   SentimentNeutral,
		Summary: []string{},
	}
}
