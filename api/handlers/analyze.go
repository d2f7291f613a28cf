// ABOUTME: One-shot analysis handler for the Huma API
// ABOUTME: Analyzes text posted in the request body without creating a session

package handlers

import (
	"context"
	"net/http"

	"textlens-api/api/dto/mappers"
	"textlens-api/api/dto/requests"
	"textlens-api/core/domain"
	"textlens-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// AnalyzeHandler handles stateless analysis requests
type AnalyzeHandler struct {
	analyzer interfaces.AnalysisService
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(analyzer interfaces.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer}
}

// RegisterRoutes registers the analysis route
func (h *AnalyzeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analyzeText",
		Method:      http.MethodPost,
		Path:        "/analyze",
		Summary:     "Analyze text",
		Description: "Computes statistics, keywords, sentiment and chart series for the posted text",
		Tags:        []string{"Analysis"},
	}, h.AnalyzeText)
}

// AnalyzeTextInput defines the input for the AnalyzeText operation
type AnalyzeTextInput struct {
	Body requests.AnalyzeTextRequest
}

// AnalyzeText runs the pipeline over the request text
func (h *AnalyzeHandler) AnalyzeText(ctx context.Context, input *AnalyzeTextInput) (*AnalysisOutput, error) {
	result, err := h.analyzer.Analyze(ctx, domain.AnalysisInput{
		Text: input.Body.Text,
		TopN: input.Body.TopN,
	})
	if err != nil {
		return nil, toHumaError(err)
	}
	return &AnalysisOutput{Body: mappers.ToAnalysisResponse(result)}, nil
}
