// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports liveness and the current feature flag states

package handlers

import (
	"context"
	"net/http"

	"textlens-api/api/dto/responses"
	"textlens-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler serves the liveness endpoint
type HealthHandler struct {
	flags featureflags.Manager
}

// NewHealthHandler creates a new health handler. flags may be nil.
func NewHealthHandler(flags featureflags.Manager) *HealthHandler {
	return &HealthHandler{flags: flags}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"System"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health reports that the service is up
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	out := &HealthOutput{Body: responses.HealthResponse{Status: "ok"}}
	if h.flags != nil {
		out.Body.Flags = make(map[string]bool)
		for flag, enabled := range h.flags.GetAllFlags() {
			out.Body.Flags[string(flag)] = enabled
		}
	}
	return out, nil
}
