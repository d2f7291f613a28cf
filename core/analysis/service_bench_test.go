package analysis

import (
	"context"
	"strings"
	"testing"

	"textlens-api/core/domain"
	"textlens-api/core/interfaces"
	"textlens-api/infrastructure/segmenter/unicode"
	"textlens-api/infrastructure/sentiment/lexicon"
)

type benchLogger struct{}

func (benchLogger) Debug(msg string, fields map[string]interface{}) {}
func (benchLogger) Info(msg string, fields map[string]interface{})  {}
func (benchLogger) Warn(msg string, fields map[string]interface{})  {}
func (benchLogger) Error(msg string, fields map[string]interface{}) {}

func newBenchService(b *testing.B) *Service {
	b.Helper()
	seg := unicode.NewSegmenter(true)
	scorer, err := lexicon.NewScorer(seg, nil)
	if err != nil {
		b.Fatal(err)
	}
	return NewService(interfaces.Dependencies{Logger: benchLogger{}}, seg, scorer, nil)
}

func benchmarkAnalyze(b *testing.B, paragraphs int) {
	service := newBenchService(b)
	text := strings.Repeat("The weather was wonderful and the park looked great. Nobody enjoyed the terrible traffic on the way home.\n", paragraphs)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := service.Analyze(ctx, domain.AnalysisInput{Text: text, TopN: 10})
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAnalyze_ShortText(b *testing.B) {
	benchmarkAnalyze(b, 1)
}

func BenchmarkAnalyze_100Paragraphs(b *testing.B) {
	benchmarkAnalyze(b, 100)
}
