// ABOUTME: Domain model for text fetched from a web page
// ABOUTME: Carries the cleaned plain text and best-effort page metadata

package domain

// FetchedPage is the plain text extracted from a URL
type FetchedPage struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`

	// Charset is the encoding detected from the payload
	Charset string `json:"charset,omitempty"`
}
