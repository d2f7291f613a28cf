// ABOUTME: Domain model for the per-session "last known text" slot
// ABOUTME: A slot is always replaced wholesale, never partially mutated

package domain

import (
	"errors"
	"time"
)

// InputMode selects how the session obtains its text
type InputMode string

const (
	ModeURL  InputMode = "url"
	ModeText InputMode = "text"
)

// Valid reports whether the mode is one of the known input modes
func (m InputMode) Valid() bool {
	return m == ModeURL || m == ModeText
}

// Session holds the last text captured for one interactive session
type Session struct {
	ID   string    `json:"id"`
	Mode InputMode `json:"mode"`

	// Text is the last fetched or confirmed text, empty until captured
	Text string `json:"text"`

	// Source is the URL the text came from in URL mode
	Source string `json:"source,omitempty"`

	// Title is the page title of fetched text
	Title string `json:"title,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasText reports whether the slot holds any text
func (s *Session) HasText() bool {
	return s.Text != ""
}

// Validate checks the session record before it is stored
func (s *Session) Validate() error {
	if s.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if !s.Mode.Valid() {
		return errors.New("session mode must be 'url' or 'text'")
	}
	return nil
}
