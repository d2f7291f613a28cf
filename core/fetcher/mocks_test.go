package fetcher

import (
	"context"
	"io"
	"strings"
	"sync"

	"textlens-api/core/domain"
	"textlens-api/core/interfaces"
)

type mockHTTPClient struct {
	GetFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return m.GetFunc(ctx, url)
}

type mockResponse struct {
	statusCode int
	status     string
	body       string
	headers    map[string]string
}

func (r *mockResponse) StatusCode() int          { return r.statusCode }
func (r *mockResponse) Status() string           { return r.status }
func (r *mockResponse) Body() io.ReadCloser      { return io.NopCloser(strings.NewReader(r.body)) }
func (r *mockResponse) Header(key string) string { return r.headers[key] }

type mockLogger struct{}

func (mockLogger) Debug(string, map[string]interface{}) {}
func (mockLogger) Info(string, map[string]interface{})  {}
func (mockLogger) Warn(string, map[string]interface{})  {}
func (mockLogger) Error(string, map[string]interface{}) {}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

// recordingLogger keeps every entry for assertions
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) add(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, message: msg, fields: fields})
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.add("debug", msg, fields) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.add("info", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.add("warn", msg, fields) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.add("error", msg, fields) }

func (l *recordingLogger) find(level, msg string) (logEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.level == level && e.message == msg {
			return e, true
		}
	}
	return logEntry{}, false
}

type mockMetrics struct {
	mu      sync.Mutex
	fetches []string
}

func (m *mockMetrics) ObserveAnalysis(float64, int, domain.SentimentLabel) {}
func (m *mockMetrics) IncDegraded(string)                                   {}

func (m *mockMetrics) IncFetch(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches = append(m.fetches, outcome)
}
