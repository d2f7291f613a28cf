package handlers

import (
	"context"
	"time"

	"textlens-api/core/domain"
	"textlens-api/core/errors"
)

// mockSessionService is an in-memory implementation of interfaces.SessionService
type mockSessionService struct {
	sessions  map[string]*domain.Session
	fetchFunc func(ctx context.Context, url string) (*domain.FetchedPage, error)
	cleared   []string
}

func newMockSessionService() *mockSessionService {
	return &mockSessionService{sessions: make(map[string]*domain.Session)}
}

func (m *mockSessionService) put(sess *domain.Session) {
	copied := *sess
	m.sessions[sess.ID] = &copied
}

func (m *mockSessionService) Create(ctx context.Context, mode domain.InputMode) (*domain.Session, error) {
	if !mode.Valid() {
		return nil, &errors.ValidationError{Field: "mode", Message: "must be 'url' or 'text'"}
	}
	sess := &domain.Session{ID: "sess-1", Mode: mode, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.put(sess)
	return sess, nil
}

func (m *mockSessionService) Get(ctx context.Context, id string) (*domain.Session, error) {
	sess, ok := m.sessions[id]
	if !ok {
		return nil, &errors.NotFoundError{Resource: "session", ID: id}
	}
	copied := *sess
	return &copied, nil
}

func (m *mockSessionService) SetMode(ctx context.Context, id string, mode domain.InputMode) (*domain.Session, error) {
	sess, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.Mode = mode
	m.put(sess)
	return sess, nil
}

func (m *mockSessionService) ConfirmText(ctx context.Context, id, text string) (*domain.Session, error) {
	sess, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if text == "" || text == "   " {
		return nil, &errors.ValidationError{Field: "text", Message: "please enter some text"}
	}
	sess.Text = text
	sess.Mode = domain.ModeText
	m.put(sess)
	return sess, nil
}

func (m *mockSessionService) FetchURL(ctx context.Context, id, url string) (*domain.Session, *domain.FetchedPage, error) {
	sess, err := m.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	page, err := m.fetchFunc(ctx, url)
	if err != nil {
		return nil, nil, err
	}
	sess.Text = page.Text
	sess.Source = page.URL
	sess.Title = page.Title
	sess.Mode = domain.ModeURL
	m.put(sess)
	return sess, page, nil
}

func (m *mockSessionService) Clear(ctx context.Context, id string) error {
	delete(m.sessions, id)
	m.cleared = append(m.cleared, id)
	return nil
}

// mockAnalysisService is a mock implementation of interfaces.AnalysisService
type mockAnalysisService struct {
	analyzeFunc func(ctx context.Context, in domain.AnalysisInput) (*domain.Analysis, error)
	lastInput   domain.AnalysisInput
}

func (m *mockAnalysisService) Analyze(ctx context.Context, in domain.AnalysisInput) (*domain.Analysis, error) {
	m.lastInput = in
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, in)
	}
	return &domain.Analysis{
		Source:   in.Source,
		Title:    in.Title,
		TopN:     in.TopN,
		Keywords: []domain.KeywordCount{{Keyword: "天气", Count: 2}},
		Sentiment: domain.SentimentResult{
			Score:   0.75,
			Label:   domain.SentimentPositive,
			Summary: []string{"天气很好。"},
		},
		Charts: domain.Charts{
			Bar:  []domain.ChartPoint{{Label: "天气", Value: 2}},
			Line: []domain.ChartPoint{{Label: "天气", Value: 2}},
			Pie:  []domain.ChartPoint{{Label: "天气", Value: 100}},
		},
		AnalyzedAt: time.Now(),
	}, nil
}
