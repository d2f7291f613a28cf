// ABOUTME: Lexicon-based sentiment scorer with an extractive frequency summarizer
// ABOUTME: Polarity is the smoothed share of positive hits among all sentiment hits

package lexicon

import (
	"bufio"
	"context"
	"embed"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"textlens-api/core/interfaces"
)

//go:embed data/*.txt
var data embed.FS

// smoothing keeps the score inside (0,1) and at 0.5 when nothing matched
const smoothing = 0.5

// sentenceEnd terminates a sentence in the summarizer
const sentenceEnd = "。！？；!?;.\n"

// Scorer implements the SentimentScorer interface using word lists
type Scorer struct {
	segmenter interfaces.Segmenter
	positive  map[string]struct{}
	negative  map[string]struct{}
	negators  map[string]struct{}
	stopwords map[string]struct{}
}

// NewScorer loads the embedded word lists. Tokens come from segmenter so
// the scorer agrees with keyword extraction on word boundaries.
func NewScorer(segmenter interfaces.Segmenter, stopwords []string) (*Scorer, error) {
	positive, err := loadWords("data/positive.txt")
	if err != nil {
		return nil, err
	}
	negative, err := loadWords("data/negative.txt")
	if err != nil {
		return nil, err
	}
	negators, err := loadWords("data/negators.txt")
	if err != nil {
		return nil, err
	}

	stop := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stop[w] = struct{}{}
	}

	return &Scorer{
		segmenter: segmenter,
		positive:  positive,
		negative:  negative,
		negators:  negators,
		stopwords: stop,
	}, nil
}

func loadWords(name string) (map[string]struct{}, error) {
	f, err := data.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", name, err)
	}
	defer f.Close()

	set := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", name, err)
	}
	return set, nil
}

// Score returns (pos+0.5)/(pos+neg+1). A negator flips the next sentiment word.
func (s *Scorer) Score(ctx context.Context, text string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	pos, neg := s.tally(s.segmenter.Tokenize(text))
	return (pos + smoothing) / (pos + neg + 2*smoothing), nil
}

func (s *Scorer) tally(tokens []string) (pos, neg float64) {
	negated := false
	for _, token := range tokens {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		if _, ok := s.negators[token]; ok {
			negated = !negated
			continue
		}

		_, isPos := s.positive[token]
		_, isNeg := s.negative[token]
		switch {
		case isPos && !negated, isNeg && negated:
			pos++
		case isNeg && !negated, isPos && negated:
			neg++
		default:
			continue
		}
		negated = false
	}
	return pos, neg
}

// Summarize picks the n sentences with the highest normalised keyword
// frequency and returns them in their original order.
func (s *Scorer) Summarize(ctx context.Context, text string, n int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return []string{}, nil
	}

	sentences := SplitSentences(text)
	if len(sentences) <= n {
		return sentences, nil
	}

	tokenized := make([][]string, len(sentences))
	freq := make(map[string]float64)
	for i, sentence := range sentences {
		tokenized[i] = s.contentTokens(sentence)
		for _, token := range tokenized[i] {
			freq[token]++
		}
	}

	maxF := 0.0
	for _, v := range freq {
		maxF = math.Max(maxF, v)
	}

	type scored struct {
		idx   int
		score float64
	}
	scores := make([]scored, len(sentences))
	for i, tokens := range tokenized {
		total := 0.0
		for _, token := range tokens {
			total += freq[token] / maxF
		}
		// Normalise by length to avoid favouring long sentences
		if len(tokens) > 0 {
			total /= math.Sqrt(float64(len(tokens)))
		}
		scores[i] = scored{idx: i, score: total}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	selected := make([]int, n)
	for i := 0; i < n; i++ {
		selected[i] = scores[i].idx
	}
	sort.Ints(selected)

	out := make([]string, 0, n)
	for _, idx := range selected {
		out = append(out, sentences[idx])
	}
	return out, nil
}

func (s *Scorer) contentTokens(sentence string) []string {
	var tokens []string
	for _, token := range s.segmenter.Tokenize(sentence) {
		token = strings.ToLower(strings.TrimSpace(token))
		if len([]rune(token)) <= 1 {
			continue
		}
		if _, stop := s.stopwords[token]; stop {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// SplitSentences cuts text after each sentence terminator, keeping the
// terminator with its sentence and dropping blank pieces. A period followed
// by a digit is a decimal point, not a terminator.
func SplitSentences(text string) []string {
	sentences := []string{}
	var current strings.Builder
	flush := func() {
		if sentence := strings.TrimSpace(current.String()); sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	runes := []rune(text)
	for i, r := range runes {
		if r != '\n' {
			current.WriteRune(r)
		}
		if r == '.' && i+1 < len(runes) && unicode.IsDigit(runes[i+1]) {
			continue
		}
		if strings.ContainsRune(sentenceEnd, r) {
			flush()
		}
	}
	flush()
	return sentences
}
