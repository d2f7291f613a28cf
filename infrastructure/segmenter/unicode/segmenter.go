// ABOUTME: Word segmenter following Unicode UAX #29 word boundaries
// ABOUTME: Suited to space-delimited languages, drops whitespace and punctuation segments

package unicode

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
)

// Segmenter implements the Segmenter interface on UAX #29 word boundaries
type Segmenter struct {
	// lower folds tokens to lower case
	lower bool
}

// NewSegmenter creates a segmenter. When lower is true tokens are lower-cased
// so "Go" and "go" count as one keyword.
func NewSegmenter(lower bool) *Segmenter {
	return &Segmenter{lower: lower}
}

// Tokenize returns the word segments of text, skipping segments with no
// letter or digit.
func (s *Segmenter) Tokenize(text string) []string {
	tokens := []string{}

	iter := words.FromString(text)
	for iter.Next() {
		token := iter.Value()
		if !hasWordRune(token) {
			continue
		}
		if s.lower {
			token = strings.ToLower(token)
		}
		tokens = append(tokens, token)
	}
	return tokens
}

func hasWordRune(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
