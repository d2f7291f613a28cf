// ABOUTME: Normalizer turns raw input text into pure text and character statistics
// ABOUTME: Uses literal rune sets so every count is reproducible

package textstats

import (
	"strings"
	"unicode/utf8"

	"textlens-api/core/domain"
)

// sentenceDelimiters end a sentence for counting purposes
var sentenceDelimiters = runeSet("。！？；")

// punctuation is the fixed CJK and ASCII punctuation set.
// Membership is a set lookup so no rune is ever counted twice.
var punctuation = runeSet(
	"，。！？；：、…—·“”‘’（）《》〈〉【】「」『』〔〕～" +
		",.!?;:'\"()[]{}<>-_/\\|@#$%^&*+=~`",
)

func runeSet(chars string) map[rune]struct{} {
	set := make(map[rune]struct{}, utf8.RuneCountInString(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return set
}

// PureText removes spaces and newlines from raw. Tabs and other whitespace
// are left untouched.
func PureText(raw string) string {
	return strings.NewReplacer(" ", "", "\n", "").Replace(raw)
}

// IsPunctuation reports whether r belongs to the punctuation set
func IsPunctuation(r rune) bool {
	_, ok := punctuation[r]
	return ok
}

// Normalize computes the statistics of raw. Empty input yields zero counts
// with a sentence count of 1.
func Normalize(raw string) domain.TextStats {
	pure := PureText(raw)

	stats := domain.TextStats{
		PureText:            pure,
		CharsWithWhitespace: utf8.RuneCountInString(raw),
		SentenceCount:       1,
	}

	for _, r := range pure {
		stats.CharsWithoutWhitespace++
		if _, ok := sentenceDelimiters[r]; ok {
			stats.SentenceCount++
		}
		if IsPunctuation(r) {
			stats.PunctuationCount++
		}
	}

	stats.PlainWordCount = stats.CharsWithoutWhitespace - stats.PunctuationCount
	return stats
}
