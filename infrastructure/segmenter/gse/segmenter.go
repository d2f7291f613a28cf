// ABOUTME: Chinese word segmenter backed by go-ego/gse
// ABOUTME: Loads the embedded dictionary once and cuts text with HMM for unknown words

package gse

import (
	"fmt"
	"sync"

	"github.com/go-ego/gse"
)

// Segmenter implements the Segmenter interface using gse
type Segmenter struct {
	mu  sync.Mutex
	seg gse.Segmenter
}

// NewSegmenter loads the embedded simplified Chinese dictionary
func NewSegmenter() (*Segmenter, error) {
	s := &Segmenter{}
	s.seg.SkipLog = true
	if err := s.seg.LoadDictEmbed(); err != nil {
		return nil, fmt.Errorf("failed to load gse dictionary: %w", err)
	}
	return s, nil
}

// Tokenize cuts text into words. The output is deterministic for the
// same dictionary and input.
func (s *Segmenter) Tokenize(text string) []string {
	if text == "" {
		return []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.seg.Cut(text, true)
}
