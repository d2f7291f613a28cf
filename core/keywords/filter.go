// ABOUTME: Stopword and length filter applied to segmented tokens
// ABOUTME: Filtering is idempotent so already-filtered tokens pass unchanged

package keywords

import (
	"strings"
	"unicode/utf8"
)

// DefaultStopwords is the canonical stopword list
var DefaultStopwords = []string{
	"的", "了", "是", "我", "你", "他", "她", "它", "在", "和", "有", "就", "都", "这", "那",
}

// Filter drops stopwords, single-rune tokens and blank tokens
type Filter struct {
	stopwords map[string]struct{}
}

// NewFilter creates a filter for the given stopwords.
// A nil slice uses DefaultStopwords.
func NewFilter(stopwords []string) *Filter {
	if stopwords == nil {
		stopwords = DefaultStopwords
	}
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[w] = struct{}{}
	}
	return &Filter{stopwords: set}
}

// Keep reports whether a token survives filtering
func (f *Filter) Keep(token string) bool {
	if strings.TrimSpace(token) == "" {
		return false
	}
	if utf8.RuneCountInString(token) <= 1 {
		return false
	}
	_, stop := f.stopwords[token]
	return !stop
}

// Apply returns the surviving tokens in their original order
func (f *Filter) Apply(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if f.Keep(token) {
			kept = append(kept, token)
		}
	}
	return kept
}
