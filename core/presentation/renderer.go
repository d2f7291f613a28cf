// ABOUTME: Renderer interface and registry for analysis report backends
// ABOUTME: Backends are looked up by format name so callers never depend on a concrete one

package presentation

import (
	"io"
	"sort"
	"strings"

	"textlens-api/core/domain"
	"textlens-api/core/errors"
)

// Renderer writes an analysis in one output format
type Renderer interface {
	// Format is the name used to select the renderer, e.g. "json"
	Format() string

	// ContentType is the MIME type of the rendered output
	ContentType() string

	// Render writes a to w
	Render(w io.Writer, a *domain.Analysis) error
}

// Registry resolves renderers by format name
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry creates a registry holding the given renderers
func NewRegistry(renderers ...Renderer) *Registry {
	r := &Registry{renderers: make(map[string]Renderer, len(renderers))}
	for _, renderer := range renderers {
		r.Register(renderer)
	}
	return r
}

// DefaultRegistry holds the JSON and markdown renderers
func DefaultRegistry() *Registry {
	return NewRegistry(NewJSONRenderer(), NewMarkdownRenderer())
}

// Register adds or replaces a renderer
func (r *Registry) Register(renderer Renderer) {
	r.renderers[strings.ToLower(renderer.Format())] = renderer
}

// Get returns the renderer for format. Unknown formats are a validation error.
func (r *Registry) Get(format string) (Renderer, error) {
	renderer, ok := r.renderers[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, &errors.ValidationError{
			Field:   "format",
			Message: "unsupported format, expected one of: " + strings.Join(r.Formats(), ", "),
		}
	}
	return renderer, nil
}

// Formats lists the registered format names in sorted order
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.renderers))
	for format := range r.renderers {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}
