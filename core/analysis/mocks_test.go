package analysis

import (
	"context"

	"textlens-api/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockSegmenter is a mock implementation of interfaces.Segmenter
type MockSegmenter struct {
	mock.Mock
}

func (m *MockSegmenter) Tokenize(text string) []string {
	args := m.Called(text)
	if fn, ok := args.Get(0).(func(string) []string); ok {
		return fn(text)
	}
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

// MockScorer is a mock implementation of interfaces.SentimentScorer
type MockScorer struct {
	mock.Mock
}

func (m *MockScorer) Score(ctx context.Context, text string) (float64, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockScorer) Summarize(ctx context.Context, text string, n int) ([]string, error) {
	args := m.Called(ctx, text, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockLogger is a mock implementation of interfaces.Logger
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Info(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Warn(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Error(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

// MockMetrics is a mock implementation of interfaces.Metrics
type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) ObserveAnalysis(seconds float64, keywords int, label domain.SentimentLabel) {
	m.Called(seconds, keywords, label)
}

func (m *MockMetrics) IncFetch(outcome string) {
	m.Called(outcome)
}

func (m *MockMetrics) IncDegraded(stage string) {
	m.Called(stage)
}
