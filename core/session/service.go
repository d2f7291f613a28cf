// ABOUTME: Session service owns the per-session "last known text" slot
// ABOUTME: Slots live in the cache as JSON and are always replaced wholesale

package session

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"
	"time"

	"textlens-api/core/domain"
	"textlens-api/core/errors"
	"textlens-api/core/interfaces"

	"github.com/google/uuid"
)

// DefaultTTL is how long an idle session slot is kept
const DefaultTTL = time.Hour

const keyPrefix = "session:"

// Service manages session slots
type Service struct {
	cache   interfaces.Cache
	fetcher interfaces.PageFetcher
	logger  interfaces.Logger
	ttl     time.Duration
	now     func() time.Time
}

// NewService creates a session service. A non-positive ttl uses DefaultTTL.
func NewService(deps interfaces.Dependencies, fetcher interfaces.PageFetcher, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		cache:   deps.Cache,
		fetcher: fetcher,
		logger:  deps.Logger,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Create starts an empty session in the given mode. An empty mode means text.
func (s *Service) Create(ctx context.Context, mode domain.InputMode) (*domain.Session, error) {
	if mode == "" {
		mode = domain.ModeText
	}
	if !mode.Valid() {
		return nil, &errors.ValidationError{Field: "mode", Message: "must be 'url' or 'text'"}
	}

	now := s.now()
	sess := &domain.Session{
		ID:        uuid.New().String(),
		Mode:      mode,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	s.logger.Info("Session created", map[string]interface{}{
		"session_id": sess.ID,
		"mode":       sess.Mode,
	})
	return sess, nil
}

// Get returns the session slot or a NotFoundError
func (s *Service) Get(ctx context.Context, id string) (*domain.Session, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &errors.ValidationError{Field: "id", Message: "session ID cannot be empty"}
	}

	data, err := s.cache.Get(ctx, keyPrefix+id)
	if err != nil {
		if stderrors.Is(err, interfaces.ErrCacheMiss) {
			return nil, &errors.NotFoundError{Resource: "session", ID: id}
		}
		return nil, errors.WrapError(err, "failed to load session")
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, errors.WrapError(err, "failed to decode session")
	}
	return &sess, nil
}

// SetMode switches the input mode. The captured text is kept.
func (s *Service) SetMode(ctx context.Context, id string, mode domain.InputMode) (*domain.Session, error) {
	if !mode.Valid() {
		return nil, &errors.ValidationError{Field: "mode", Message: "must be 'url' or 'text'"}
	}

	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *sess
	updated.Mode = mode
	updated.UpdatedAt = s.now()
	if err := s.save(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ConfirmText stores manually entered text. Empty or whitespace-only text is
// rejected and the slot is left as it was.
func (s *Service) ConfirmText(ctx context.Context, id, text string) (*domain.Session, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &errors.ValidationError{Field: "text", Message: "please enter some text"}
	}
	return s.Overwrite(ctx, id, domain.ModeText, text, "", "")
}

// FetchURL downloads rawURL and stores its text. Any fetch failure, including
// empty content, leaves the slot untouched.
func (s *Service) FetchURL(ctx context.Context, id, rawURL string) (*domain.Session, *domain.FetchedPage, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(rawURL) == "" {
		return nil, nil, &errors.ValidationError{Field: "url", Message: "please enter a URL"}
	}

	page, err := s.fetcher.Fetch(ctx, strings.TrimSpace(rawURL))
	if err != nil {
		s.logger.Warn("Fetch failed, session slot unchanged", map[string]interface{}{
			"session_id": id,
			"url":        rawURL,
			"error":      err.Error(),
		})
		return nil, nil, err
	}

	sess, err := s.Overwrite(ctx, id, domain.ModeURL, page.Text, page.URL, page.Title)
	if err != nil {
		return nil, nil, err
	}
	return sess, page, nil
}

// Overwrite replaces the whole slot with new text, mode and source
func (s *Service) Overwrite(ctx context.Context, id string, mode domain.InputMode, text, source, title string) (*domain.Session, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	sess := &domain.Session{
		ID:        current.ID,
		Mode:      mode,
		Text:      text,
		Source:    source,
		Title:     title,
		CreatedAt: current.CreatedAt,
		UpdatedAt: s.now(),
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	s.logger.Debug("Session slot overwritten", map[string]interface{}{
		"session_id": id,
		"mode":       mode,
		"text_runes": len([]rune(text)),
	})
	return sess, nil
}

// Clear removes the session. Clearing an unknown session is not an error.
func (s *Service) Clear(ctx context.Context, id string) error {
	if err := s.cache.Delete(ctx, keyPrefix+id); err != nil {
		return errors.WrapError(err, "failed to clear session")
	}
	s.logger.Info("Session cleared", map[string]interface{}{
		"session_id": id,
	})
	return nil
}

func (s *Service) save(ctx context.Context, sess *domain.Session) error {
	if err := sess.Validate(); err != nil {
		return &errors.ValidationError{Field: "session", Message: err.Error()}
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return errors.WrapError(err, "failed to encode session")
	}
	if err := s.cache.Set(ctx, keyPrefix+sess.ID, data, s.ttl); err != nil {
		return errors.WrapError(err, "failed to store session")
	}
	return nil
}
