// ABOUTME: Analysis pipeline runs normalisation, keywords, sentiment and charts over one text
// ABOUTME: Keyword and sentiment failures degrade to defaults with a warning instead of failing

package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"textlens-api/core/domain"
	"textlens-api/core/errors"
	"textlens-api/core/interfaces"
	"textlens-api/core/keywords"
	"textlens-api/core/presentation"
	"textlens-api/core/sentiment"
	"textlens-api/core/textstats"
	"textlens-api/pkg/featureflags"
)

// DefaultTopN is the keyword count used when the caller does not pick one
const DefaultTopN = 10

// Service runs the analysis pipeline
type Service struct {
	defaultTopN int
	extractor   *keywords.Extractor
	bucketer    *sentiment.Bucketer
	logger      interfaces.Logger
	metrics     interfaces.Metrics
	now         func() time.Time
}

// NewService wires the pipeline stages. A nil filter uses the default stopwords.
func NewService(deps interfaces.Dependencies, segmenter interfaces.Segmenter, scorer interfaces.SentimentScorer, filter *keywords.Filter) *Service {
	return &Service{
		defaultTopN: DefaultTopN,
		extractor:   keywords.NewExtractor(segmenter, filter),
		bucketer:    sentiment.NewBucketer(scorer),
		logger:      deps.Logger,
		metrics:     deps.Metrics,
		now:         time.Now,
	}
}

// WithDefaultTopN sets the keyword count used when a request leaves it at 0.
// Values below 1 are ignored.
func (s *Service) WithDefaultTopN(n int) *Service {
	if n >= 1 {
		s.defaultTopN = n
	}
	return s
}

// Analyze runs the full pipeline. Empty or whitespace-only text is rejected.
func (s *Service) Analyze(ctx context.Context, in domain.AnalysisInput) (*domain.Analysis, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, &errors.ValidationError{Field: "text", Message: "no text to analyze"}
	}
	topN := in.TopN
	if topN == 0 {
		topN = s.defaultTopN
	}
	if topN < 1 {
		return nil, &errors.ValidationError{Field: "top_n", Message: "must be at least 1"}
	}

	start := s.now()
	stats := textstats.Normalize(in.Text)

	result := &domain.Analysis{
		Source:    in.Source,
		Title:     in.Title,
		TopN:      topN,
		Stats:     stats,
		Sentiment: domain.NeutralSentiment(),
	}

	result.Keywords = s.extractKeywords(stats.PureText, topN, result)
	result.Sentiment = s.analyzeSentiment(ctx, stats.PureText, result)
	result.Charts = presentation.BuildCharts(result.Keywords)
	result.AnalyzedAt = s.now()

	elapsed := result.AnalyzedAt.Sub(start)
	if s.metrics != nil {
		s.metrics.ObserveAnalysis(elapsed.Seconds(), len(result.Keywords), result.Sentiment.Label)
	}
	s.logger.Info("Analysis completed", map[string]interface{}{
		"source":      in.Source,
		"chars":       stats.CharsWithWhitespace,
		"keywords":    len(result.Keywords),
		"sentiment":   result.Sentiment.Label,
		"warnings":    len(result.Warnings),
		"duration_ms": elapsed.Milliseconds(),
	})
	return result, nil
}

// extractKeywords never fails. Errors and panics from the segmenter yield an
// empty list and a warning.
func (s *Service) extractKeywords(pureText string, topN int, result *domain.Analysis) (kws []domain.KeywordCount) {
	defer func() {
		if r := recover(); r != nil {
			kws = []domain.KeywordCount{}
			s.degrade(result, "keywords", fmt.Errorf("panic: %v", r))
		}
	}()

	kws, err := s.extractor.Extract(pureText, topN)
	if err != nil {
		s.degrade(result, "keywords", err)
		return []domain.KeywordCount{}
	}
	return kws
}

// analyzeSentiment falls back to the neutral default when scoring fails
func (s *Service) analyzeSentiment(ctx context.Context, pureText string, result *domain.Analysis) (sent domain.SentimentResult) {
	defer func() {
		if r := recover(); r != nil {
			sent = domain.NeutralSentiment()
			s.degrade(result, "sentiment", fmt.Errorf("panic: %v", r))
		}
	}()

	if !featureflags.IsEnabled(ctx, featureflags.SentimentEnabled) {
		return domain.NeutralSentiment()
	}

	bucketer := s.bucketer
	if !featureflags.IsEnabled(ctx, featureflags.SummaryEnabled) {
		bucketer = bucketer.WithoutSummary()
	}

	sent, err := bucketer.Analyze(ctx, pureText)
	if err != nil {
		s.degrade(result, "sentiment", err)
	}
	return sent
}

func (s *Service) degrade(result *domain.Analysis, stage string, err error) {
	result.Warnings = append(result.Warnings, fmt.Sprintf("%s unavailable: %v", stage, err))
	if s.metrics != nil {
		s.metrics.IncDegraded(stage)
	}
	s.logger.Warn("Analysis stage degraded", map[string]interface{}{
		"stage": stage,
		"error": err.Error(),
	})
}
