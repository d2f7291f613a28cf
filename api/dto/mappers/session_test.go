package mappers

import (
	"testing"
	"time"

	"textlens-api/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSessionResponse(t *testing.T) {
	now := time.Now()
	sess := &domain.Session{
		ID:        "abc",
		Mode:      domain.ModeURL,
		Text:      "你好世界",
		Source:    "https://example.com",
		Title:     "示例",
		CreatedAt: now,
		UpdatedAt: now,
	}

	resp := ToSessionResponse(sess)

	require.NotNil(t, resp)
	assert.Equal(t, "abc", resp.ID)
	assert.Equal(t, "url", resp.Mode)
	assert.True(t, resp.HasText)
	assert.Equal(t, 4, resp.TextRunes)
	assert.Equal(t, "https://example.com", resp.Source)
}

func TestToSessionResponse_Nil(t *testing.T) {
	assert.Nil(t, ToSessionResponse(nil))
	assert.Nil(t, ToAnalysisResponse(nil))
}

func TestToAnalysisResponse_NilSlicesBecomeEmpty(t *testing.T) {
	a := &domain.Analysis{
		TopN:  10,
		Stats: domain.TextStats{CharsWithWhitespace: 7, SentenceCount: 2},
		Sentiment: domain.SentimentResult{
			Score: 0.3,
			Label: domain.SentimentNegative,
		},
	}

	resp := ToAnalysisResponse(a)

	require.NotNil(t, resp)
	assert.NotNil(t, resp.Keywords)
	assert.NotNil(t, resp.Sentiment.Summary)
	assert.Equal(t, "negative", resp.Sentiment.Label)
	assert.Equal(t, 7, resp.Stats.CharsWithWhitespace)
	assert.Equal(t, 2, resp.Stats.SentenceCount)
}
