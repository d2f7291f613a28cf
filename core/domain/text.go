// ABOUTME: Domain models for text statistics and keyword frequencies
// ABOUTME: Values are created fresh for every analysis and never shared

package domain

// TextStats holds the character-level statistics of an input text
type TextStats struct {
	// PureText is the input with spaces and newlines removed
	PureText string `json:"-"`

	// CharsWithWhitespace is the rune count of the raw input
	CharsWithWhitespace int `json:"charsWithWhitespace"`

	// CharsWithoutWhitespace is the rune count of PureText
	CharsWithoutWhitespace int `json:"charsWithoutWhitespace"`

	// SentenceCount is 1 plus the number of sentence delimiters in PureText
	SentenceCount int `json:"sentenceCount"`

	// PunctuationCount is the number of punctuation runes in PureText
	PunctuationCount int `json:"punctuationCount"`

	// PlainWordCount is CharsWithoutWhitespace minus PunctuationCount
	PlainWordCount int `json:"plainWordCount"`
}

// KeywordCount pairs a token with its number of occurrences
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}
