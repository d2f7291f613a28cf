// ABOUTME: Response DTOs for session and analysis API endpoints
// ABOUTME: Keeps the wire format independent from the domain models

package responses

import (
	"time"

	"textlens-api/core/domain"
)

// SessionResponse is the public view of a session slot
type SessionResponse struct {
	ID        string    `json:"id"`
	Mode      string    `json:"mode"`
	HasText   bool      `json:"has_text"`
	Text      string    `json:"text"`
	TextRunes int       `json:"text_runes"`
	Source    string    `json:"source,omitempty"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FetchResponse reports a successful fetch
type FetchResponse struct {
	Session SessionResponse `json:"session"`
	Charset string          `json:"charset"`
}

// StatsResponse carries the character statistics
type StatsResponse struct {
	CharsWithWhitespace    int `json:"chars_with_whitespace"`
	CharsWithoutWhitespace int `json:"chars_without_whitespace"`
	SentenceCount          int `json:"sentence_count"`
	PunctuationCount       int `json:"punctuation_count"`
	PlainWordCount         int `json:"plain_word_count"`
}

// SentimentResponse carries the sentiment panel
type SentimentResponse struct {
	Score   float64  `json:"score"`
	Label   string   `json:"label"`
	Summary []string `json:"summary"`
}

// AnalysisResponse is the full result of one analysis
type AnalysisResponse struct {
	Source     string                `json:"source,omitempty"`
	Title      string                `json:"title,omitempty"`
	TopN       int                   `json:"top_n"`
	Stats      StatsResponse         `json:"stats"`
	Keywords   []domain.KeywordCount `json:"keywords"`
	Sentiment  SentimentResponse     `json:"sentiment"`
	Charts     domain.Charts         `json:"charts"`
	Warnings   []string              `json:"warnings,omitempty"`
	AnalyzedAt time.Time             `json:"analyzed_at"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status string          `json:"status"`
	Flags  map[string]bool `json:"flags,omitempty"`
}
