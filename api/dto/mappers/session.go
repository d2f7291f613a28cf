// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"unicode/utf8"

	"textlens-api/api/dto/responses"
	"textlens-api/core/domain"
)

// ToSessionResponse converts a domain Session to a SessionResponse DTO
func ToSessionResponse(sess *domain.Session) *responses.SessionResponse {
	if sess == nil {
		return nil
	}

	return &responses.SessionResponse{
		ID:        sess.ID,
		Mode:      string(sess.Mode),
		HasText:   sess.HasText(),
		Text:      sess.Text,
		TextRunes: utf8.RuneCountInString(sess.Text),
		Source:    sess.Source,
		Title:     sess.Title,
		CreatedAt: sess.CreatedAt,
		UpdatedAt: sess.UpdatedAt,
	}
}

// ToAnalysisResponse converts a domain Analysis to an AnalysisResponse DTO
func ToAnalysisResponse(a *domain.Analysis) *responses.AnalysisResponse {
	if a == nil {
		return nil
	}

	keywords := a.Keywords
	if keywords == nil {
		keywords = []domain.KeywordCount{}
	}
	summary := a.Sentiment.Summary
	if summary == nil {
		summary = []string{}
	}

	return &responses.AnalysisResponse{
		Source: a.Source,
		Title:  a.Title,
		TopN:   a.TopN,
		Stats: responses.StatsResponse{
			CharsWithWhitespace:    a.Stats.CharsWithWhitespace,
			CharsWithoutWhitespace: a.Stats.CharsWithoutWhitespace,
			SentenceCount:          a.Stats.SentenceCount,
			PunctuationCount:       a.Stats.PunctuationCount,
			PlainWordCount:         a.Stats.PlainWordCount,
		},
		Keywords: keywords,
		Sentiment: responses.SentimentResponse{
			Score:   a.Sentiment.Score,
			Label:   string(a.Sentiment.Label),
			Summary: summary,
		},
		Charts:     a.Charts,
		Warnings:   a.Warnings,
		AnalyzedAt: a.AnalyzedAt,
	}
}
