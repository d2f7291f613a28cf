// ABOUTME: Markdown report backend built with nao1215/markdown
// ABOUTME: Renders stats and keyword tables, a mermaid pie chart and the sentiment panel

package presentation

import (
	"fmt"
	"io"
	"strconv"

	"textlens-api/core/domain"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// MarkdownRenderer renders an analysis as a GitHub-flavoured markdown report
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a markdown renderer
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Format implements Renderer
func (r *MarkdownRenderer) Format() string { return "markdown" }

// ContentType implements Renderer
func (r *MarkdownRenderer) ContentType() string { return "text/markdown; charset=utf-8" }

// Render implements Renderer
func (r *MarkdownRenderer) Render(w io.Writer, a *domain.Analysis) error {
	md := markdown.NewMarkdown(w)

	writeHeader(md, a)
	writeStats(md, a.Stats)
	writeKeywords(md, a.Keywords)
	writeSentiment(md, a.Sentiment)
	writeWarnings(md, a.Warnings)

	return md.Build()
}

func writeHeader(md *markdown.Markdown, a *domain.Analysis) {
	title := "Text Analysis Report"
	if a.Title != "" {
		title = a.Title
	}
	md.H1(title)
	md.PlainText("")

	if a.Source != "" {
		md.PlainTextf("Source: %s", a.Source)
		md.PlainText("")
	}
	if !a.AnalyzedAt.IsZero() {
		md.PlainTextf("Analyzed at %s", a.AnalyzedAt.Format("2006-01-02 15:04:05 MST"))
		md.PlainText("")
	}
}

func writeStats(md *markdown.Markdown, stats domain.TextStats) {
	md.H2("Statistics")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Characters (with whitespace)", strconv.Itoa(stats.CharsWithWhitespace)},
			{"Characters (without whitespace)", strconv.Itoa(stats.CharsWithoutWhitespace)},
			{"Sentences", strconv.Itoa(stats.SentenceCount)},
			{"Punctuation", strconv.Itoa(stats.PunctuationCount)},
			{"Plain characters", strconv.Itoa(stats.PlainWordCount)},
		},
	})
	md.PlainText("")
}

func writeKeywords(md *markdown.Markdown, keywords []domain.KeywordCount) {
	md.H2("Keywords")
	md.PlainText("")

	if len(keywords) == 0 {
		md.PlainText("No keywords found.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(keywords))
	for i, kw := range keywords {
		rows[i] = []string{strconv.Itoa(i + 1), kw.Keyword, strconv.Itoa(kw.Count)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Keyword", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Keyword Distribution"),
		piechart.WithShowData(true),
	)
	for _, kw := range keywords {
		chart.LabelAndIntValue(kw.Keyword, uint64(kw.Count))
	}
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func writeSentiment(md *markdown.Markdown, s domain.SentimentResult) {
	md.H2("Sentiment")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Score", "Label"},
		Rows: [][]string{
			{fmt.Sprintf("%.4f", s.Score), sentimentBadge(s.Label)},
		},
	})
	md.PlainText("")

	if len(s.Summary) == 0 {
		return
	}
	md.H3("Summary")
	md.PlainText("")
	md.BulletList(s.Summary...)
	md.PlainText("")
}

func writeWarnings(md *markdown.Markdown, warnings []string) {
	for _, warning := range warnings {
		md.Warningf("%s", warning)
		md.PlainText("")
	}
}

func sentimentBadge(label domain.SentimentLabel) string {
	switch label {
	case domain.SentimentPositive:
		return "🟢 positive"
	case domain.SentimentNegative:
		return "🔴 negative"
	default:
		return "⚪ neutral"
	}
}
