// ABOUTME: JSON report backend
// ABOUTME: Serialises the full analysis including chart series

package presentation

import (
	"encoding/json"
	"io"

	"textlens-api/core/domain"
)

// JSONRenderer renders an analysis as indented JSON
type JSONRenderer struct {
	indent string
}

// NewJSONRenderer creates a JSON renderer with two-space indentation
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{indent: "  "}
}

// Format implements Renderer
func (r *JSONRenderer) Format() string { return "json" }

// ContentType implements Renderer
func (r *JSONRenderer) ContentType() string { return "application/json; charset=utf-8" }

// Render implements Renderer
func (r *JSONRenderer) Render(w io.Writer, a *domain.Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", r.indent)
	return enc.Encode(a)
}
