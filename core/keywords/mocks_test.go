package keywords

// mockSegmenter is a mock implementation of the Segmenter interface
type mockSegmenter struct {
	tokenizeFunc func(text string) []string
	calls        int
}

func (m *mockSegmenter) Tokenize(text string) []string {
	m.calls++
	if m.tokenizeFunc != nil {
		return m.tokenizeFunc(text)
	}
	return nil
}

// fixedSegmenter always returns the same tokens
func fixedSegmenter(tokens ...string) *mockSegmenter {
	return &mockSegmenter{
		tokenizeFunc: func(string) []string {
			return tokens
		},
	}
}
