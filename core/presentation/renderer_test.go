package presentation

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"textlens-api/core/domain"
	coreerrors "textlens-api/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAnalysis() *domain.Analysis {
	keywords := []domain.KeywordCount{
		{Keyword: "天气", Count: 3},
		{Keyword: "公园", Count: 2},
	}
	return &domain.Analysis{
		Source: "https://example.com/post",
		Title:  "周末散步",
		TopN:   10,
		Stats: domain.TextStats{
			PureText:               "天气很好。",
			CharsWithWhitespace:    5,
			CharsWithoutWhitespace: 5,
			SentenceCount:          2,
			PunctuationCount:       1,
			PlainWordCount:         4,
		},
		Keywords: keywords,
		Sentiment: domain.SentimentResult{
			Score:   0.8123,
			Label:   domain.SentimentPositive,
			Summary: []string{"天气很好。", "公园很美。"},
		},
		Charts:     BuildCharts(keywords),
		Warnings:   []string{"summary unavailable"},
		AnalyzedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRegistry_Get(t *testing.T) {
	registry := DefaultRegistry()

	for _, format := range []string{"json", "markdown", " Markdown "} {
		renderer, err := registry.Get(format)
		require.NoError(t, err, format)
		assert.NotNil(t, renderer)
	}

	_, err := registry.Get("pdf")
	assert.True(t, coreerrors.IsValidation(err))
	assert.Contains(t, err.Error(), "json, markdown")
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	registry := NewRegistry(NewJSONRenderer())
	replacement := &JSONRenderer{indent: "\t"}

	registry.Register(replacement)

	renderer, err := registry.Get("json")
	require.NoError(t, err)
	assert.Same(t, replacement, renderer)
	assert.Equal(t, []string{"json"}, registry.Formats())
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer

	err := NewJSONRenderer().Render(&buf, sampleAnalysis())

	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "周末散步", decoded["title"])
	assert.Contains(t, decoded, "charts")
	assert.NotContains(t, buf.String(), "PureText")
	assert.Contains(t, buf.String(), "天气")
}

func TestMarkdownRenderer(t *testing.T) {
	var buf bytes.Buffer

	err := NewMarkdownRenderer().Render(&buf, sampleAnalysis())

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "# 周末散步")
	assert.Contains(t, out, "## Statistics")
	assert.Contains(t, out, "## Keywords")
	assert.Contains(t, out, "```mermaid")
	assert.Contains(t, out, "pie")
	assert.Contains(t, out, "天气")
	assert.Contains(t, out, "0.8123")
	assert.Contains(t, out, "positive")
	assert.Contains(t, out, "公园很美。")
	assert.Contains(t, out, "summary unavailable")
	assert.Contains(t, out, "https://example.com/post")
}

func TestMarkdownRenderer_NoKeywords(t *testing.T) {
	a := sampleAnalysis()
	a.Keywords = []domain.KeywordCount{}
	a.Charts = BuildCharts(a.Keywords)
	a.Sentiment = domain.NeutralSentiment()
	a.Warnings = nil
	a.Title = ""

	var buf bytes.Buffer
	require.NoError(t, NewMarkdownRenderer().Render(&buf, a))

	out := buf.String()
	assert.Contains(t, out, "# Text Analysis Report")
	assert.Contains(t, out, "No keywords found.")
	assert.NotContains(t, out, "```mermaid")
	assert.NotContains(t, out, "### Summary")
}
