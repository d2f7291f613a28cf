// ABOUTME: Frequency ranker counts filtered tokens and returns the top N keywords
// ABOUTME: Ties keep first-seen order through an order-preserving tally and a stable sort

package keywords

import (
	"fmt"
	"sort"

	"textlens-api/core/domain"
	"textlens-api/core/errors"
	"textlens-api/core/interfaces"
)

// Rank tallies tokens in first-seen order and returns at most topN
// entries sorted by count, most frequent first.
func Rank(tokens []string, topN int) ([]domain.KeywordCount, error) {
	if topN < 1 {
		return nil, &errors.ValidationError{
			Field:   "top_n",
			Message: fmt.Sprintf("must be at least 1, got %d", topN),
		}
	}

	index := make(map[string]int, len(tokens))
	counts := make([]domain.KeywordCount, 0, len(tokens))
	for _, token := range tokens {
		if i, ok := index[token]; ok {
			counts[i].Count++
			continue
		}
		index[token] = len(counts)
		counts = append(counts, domain.KeywordCount{Keyword: token, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if len(counts) > topN {
		counts = counts[:topN]
	}
	return counts, nil
}

// Extractor runs segmentation, filtering and ranking over pure text
type Extractor struct {
	segmenter interfaces.Segmenter
	filter    *Filter
}

// NewExtractor creates an extractor. A nil filter uses the default stopwords.
func NewExtractor(segmenter interfaces.Segmenter, filter *Filter) *Extractor {
	if filter == nil {
		filter = NewFilter(nil)
	}
	return &Extractor{
		segmenter: segmenter,
		filter:    filter,
	}
}

// Extract returns the topN keywords of pureText. If nothing survives
// filtering the result is an empty, non-nil slice.
func (e *Extractor) Extract(pureText string, topN int) ([]domain.KeywordCount, error) {
	if topN < 1 {
		return Rank(nil, topN)
	}
	if pureText == "" {
		return []domain.KeywordCount{}, nil
	}
	tokens := e.filter.Apply(e.segmenter.Tokenize(pureText))
	return Rank(tokens, topN)
}
