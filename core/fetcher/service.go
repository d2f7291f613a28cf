// ABOUTME: Web text fetcher downloads a page and reduces it to plain text
// ABOUTME: Detects the charset from the payload and extracts article or paragraph text with goquery

package fetcher

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"net"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"textlens-api/core/domain"
	"textlens-api/core/errors"
	"textlens-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html/charset"
)

const (
	// DefaultMinContentRunes is the shortest extracted text treated as usable
	DefaultMinContentRunes = 50

	// DefaultMaxBodyBytes caps the downloaded body
	DefaultMaxBodyBytes int64 = 5 << 20
)

// noiseSelector matches elements that never carry article text
const noiseSelector = "script, style, nav, footer, aside, header, iframe"

// Config tunes the fetcher
type Config struct {
	MinContentRunes int
	MaxBodyBytes    int64
}

// Service implements PageFetcher over an HTTPClient
type Service struct {
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger
	metrics    interfaces.Metrics
	cfg        Config
}

// NewService creates a fetcher. Zero config values use the defaults.
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	if cfg.MinContentRunes <= 0 {
		cfg.MinContentRunes = DefaultMinContentRunes
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &Service{
		httpClient: deps.HTTPClient,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		cfg:        cfg,
	}
}

// Fetch downloads rawURL once and extracts its plain text
func (s *Service) Fetch(ctx context.Context, rawURL string) (*domain.FetchedPage, error) {
	pageURL, err := validateURL(rawURL)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Get(ctx, rawURL)
	if err != nil {
		fetchErr := classifyTransportError(rawURL, err)
		s.record(rawURL, fetchErr)
		return nil, fetchErr
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		httpErr := &errors.FetchHTTPError{
			URL:        rawURL,
			StatusCode: resp.StatusCode(),
			Status:     strings.TrimSpace(strings.TrimPrefix(resp.Status(), strconv.Itoa(resp.StatusCode()))),
		}
		s.record(rawURL, httpErr)
		return nil, httpErr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), s.cfg.MaxBodyBytes+1))
	if err != nil {
		fetchErr := classifyTransportError(rawURL, err)
		s.record(rawURL, fetchErr)
		return nil, fetchErr
	}
	if int64(len(body)) > s.cfg.MaxBodyBytes {
		body = truncateBody(body, s.cfg.MaxBodyBytes)
		if s.logger != nil {
			s.logger.Warn("Response body truncated", map[string]interface{}{
				"url":       rawURL,
				"max_bytes": s.cfg.MaxBodyBytes,
			})
		}
	}

	decoded, encodingName := decode(body)

	text, err := ExtractText(decoded)
	if err != nil {
		parseErr := &errors.FetchNetworkError{URL: rawURL, Err: err}
		s.record(rawURL, parseErr)
		return nil, parseErr
	}

	if n := utf8.RuneCountInString(text); n < s.cfg.MinContentRunes {
		emptyErr := &errors.EmptyContentError{URL: rawURL, Length: n, Required: s.cfg.MinContentRunes}
		s.record(rawURL, emptyErr)
		return nil, emptyErr
	}

	page := &domain.FetchedPage{
		URL:     rawURL,
		Title:   pageTitle(decoded, pageURL),
		Text:    text,
		Charset: encodingName,
	}
	s.record(rawURL, nil)
	return page, nil
}

// ExtractText removes noise elements, then returns the text of the first
// article element or, failing that, all paragraphs joined by spaces.
// Runs of whitespace collapse to a single space.
func ExtractText(htmlBody []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBody))
	if err != nil {
		return "", err
	}

	doc.Find(noiseSelector).Remove()

	var text string
	if article := doc.Find("article").First(); article.Length() > 0 {
		text = article.Text()
	} else {
		paragraphs := doc.Find("p").Map(func(_ int, p *goquery.Selection) string {
			return p.Text()
		})
		text = strings.Join(paragraphs, " ")
	}

	return CollapseWhitespace(text), nil
}

// CollapseWhitespace replaces every whitespace run with one space and trims the ends
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// decode converts body to UTF-8 using the encoding sniffed from the payload.
// The Content-Type header is deliberately ignored. Sniffing only sees the
// first 1024 bytes, so its windows-1252 fallback is overridden whenever the
// whole body is valid UTF-8.
func decode(body []byte) ([]byte, string) {
	enc, name, certain := charset.DetermineEncoding(body, "")
	if name == "utf-8" {
		return body, name
	}
	if !certain && name == "windows-1252" && utf8.Valid(body) {
		return body, "utf-8"
	}
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return body, "utf-8"
	}
	return decoded, name
}

// truncateBody cuts body to limit bytes, dropping a UTF-8 sequence split by
// the cut so a UTF-8 page still decodes as UTF-8
func truncateBody(body []byte, limit int64) []byte {
	body = body[:limit]
	for i := len(body) - 1; i >= 0 && i >= len(body)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(body[i]) {
			continue
		}
		if !utf8.FullRune(body[i:]) && utf8.Valid(body[:i]) {
			return body[:i]
		}
		break
	}
	return body
}

// pageTitle asks readability for the title, falling back to <title>
func pageTitle(body []byte, pageURL *url.URL) string {
	if article, err := readability.FromReader(bytes.NewReader(body), pageURL); err == nil && article.Title != "" {
		return CollapseWhitespace(article.Title)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return CollapseWhitespace(doc.Find("title").First().Text())
}

func validateURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return nil, &errors.ValidationError{Field: "url", Message: "must be an absolute http or https URL"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &errors.ValidationError{Field: "url", Message: "only http and https URLs are supported"}
	}
	return u, nil
}

// classifyTransportError separates timeouts from other transport failures
func classifyTransportError(rawURL string, err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return &errors.FetchTimeoutError{URL: rawURL, Err: err}
	}
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return &errors.FetchTimeoutError{URL: rawURL, Err: err}
	}
	return &errors.FetchNetworkError{URL: rawURL, Err: err}
}

func (s *Service) record(rawURL string, err error) {
	outcome := outcomeOf(err)
	if s.metrics != nil {
		s.metrics.IncFetch(outcome)
	}
	if s.logger == nil {
		return
	}

	fields := map[string]interface{}{
		"url":     rawURL,
		"outcome": outcome,
	}
	switch {
	case err == nil:
		s.logger.Info("Fetched page", fields)
	case errors.IsEmptyContent(err):
		fields["error"] = err.Error()
		s.logger.Warn("Fetched page has no usable content", fields)
	default:
		fields["error"] = err.Error()
		s.logger.Error("Failed to fetch page", fields)
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.IsFetchTimeout(err):
		return "timeout"
	case errors.IsFetchHTTP(err):
		return "http"
	case errors.IsEmptyContent(err):
		return "empty"
	case errors.IsFetchFailure(err):
		return "network"
	default:
		return "other"
	}
}
