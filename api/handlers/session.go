// ABOUTME: Session handler for the Huma API
// ABOUTME: Maps the mode selector, confirm, fetch, analyze and clear actions onto endpoints

package handlers

import (
	"bytes"
	"context"
	"net/http"

	"textlens-api/api/dto/mappers"
	"textlens-api/api/dto/requests"
	"textlens-api/api/dto/responses"
	"textlens-api/core/domain"
	"textlens-api/core/errors"
	"textlens-api/core/interfaces"
	"textlens-api/core/presentation"

	"github.com/danielgtaylor/huma/v2"
)

// SessionHandler handles the interactive session flow
type SessionHandler struct {
	sessions  interfaces.SessionService
	analyzer  interfaces.AnalysisService
	renderers *presentation.Registry
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions interfaces.SessionService, analyzer interfaces.AnalysisService, renderers *presentation.Registry) *SessionHandler {
	if renderers == nil {
		renderers = presentation.DefaultRegistry()
	}
	return &SessionHandler{
		sessions:  sessions,
		analyzer:  analyzer,
		renderers: renderers,
	}
}

// RegisterRoutes registers all session-related routes
func (h *SessionHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "createSession",
		Method:        http.MethodPost,
		Path:          "/sessions",
		Summary:       "Create a session",
		Description:   "Starts an empty session with its own last-text slot",
		Tags:          []string{"Sessions"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateSession)

	huma.Register(api, huma.Operation{
		OperationID: "getSession",
		Method:      http.MethodGet,
		Path:        "/sessions/{id}",
		Summary:     "Get a session",
		Tags:        []string{"Sessions"},
	}, h.GetSession)

	huma.Register(api, huma.Operation{
		OperationID: "setSessionMode",
		Method:      http.MethodPut,
		Path:        "/sessions/{id}/mode",
		Summary:     "Switch the input mode",
		Tags:        []string{"Sessions"},
	}, h.SetMode)

	huma.Register(api, huma.Operation{
		OperationID: "confirmText",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/text",
		Summary:     "Confirm manually entered text",
		Description: "Stores the text in the session slot. Blank text is rejected and the slot is kept.",
		Tags:        []string{"Sessions"},
	}, h.ConfirmText)

	huma.Register(api, huma.Operation{
		OperationID: "fetchURL",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/fetch",
		Summary:     "Fetch text from a web page",
		Description: "Downloads the page once and stores its text. On any failure the slot is kept.",
		Tags:        []string{"Sessions"},
	}, h.FetchURL)

	huma.Register(api, huma.Operation{
		OperationID: "analyzeSession",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/analyze",
		Summary:     "Analyze the session text",
		Tags:        []string{"Sessions", "Analysis"},
	}, h.Analyze)

	huma.Register(api, huma.Operation{
		OperationID: "getSessionReport",
		Method:      http.MethodGet,
		Path:        "/sessions/{id}/report",
		Summary:     "Render an analysis report",
		Description: "Analyzes the session text and renders it as markdown or JSON",
		Tags:        []string{"Sessions", "Analysis"},
	}, h.Report)

	huma.Register(api, huma.Operation{
		OperationID:   "clearSession",
		Method:        http.MethodDelete,
		Path:          "/sessions/{id}",
		Summary:       "Clear a session",
		Tags:          []string{"Sessions"},
		DefaultStatus: http.StatusNoContent,
	}, h.ClearSession)
}

// SessionPath identifies a session in the URL
type SessionPath struct {
	ID string `path:"id" doc:"Session ID"`
}

// CreateSessionInput defines the input for the CreateSession operation
type CreateSessionInput struct {
	Body *requests.CreateSessionRequest
}

// SessionOutput wraps a session response
type SessionOutput struct {
	Body *responses.SessionResponse
}

// CreateSession handles session creation
func (h *SessionHandler) CreateSession(ctx context.Context, input *CreateSessionInput) (*SessionOutput, error) {
	mode := domain.ModeText
	if input.Body != nil && input.Body.Mode != "" {
		mode = domain.InputMode(input.Body.Mode)
	}

	sess, err := h.sessions.Create(ctx, mode)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SessionOutput{Body: mappers.ToSessionResponse(sess)}, nil
}

// GetSession returns the session slot
func (h *SessionHandler) GetSession(ctx context.Context, input *SessionPath) (*SessionOutput, error) {
	sess, err := h.sessions.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SessionOutput{Body: mappers.ToSessionResponse(sess)}, nil
}

// SetModeInput defines the input for the SetMode operation
type SetModeInput struct {
	SessionPath
	Body requests.SetModeRequest
}

// SetMode switches the session's input mode
func (h *SessionHandler) SetMode(ctx context.Context, input *SetModeInput) (*SessionOutput, error) {
	sess, err := h.sessions.SetMode(ctx, input.ID, domain.InputMode(input.Body.Mode))
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SessionOutput{Body: mappers.ToSessionResponse(sess)}, nil
}

// ConfirmTextInput defines the input for the ConfirmText operation
type ConfirmTextInput struct {
	SessionPath
	Body requests.ConfirmTextRequest
}

// ConfirmText stores manual text in the session
func (h *SessionHandler) ConfirmText(ctx context.Context, input *ConfirmTextInput) (*SessionOutput, error) {
	sess, err := h.sessions.ConfirmText(ctx, input.ID, input.Body.Text)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SessionOutput{Body: mappers.ToSessionResponse(sess)}, nil
}

// FetchURLInput defines the input for the FetchURL operation
type FetchURLInput struct {
	SessionPath
	Body requests.FetchRequest
}

// FetchURLOutput defines the output for the FetchURL operation
type FetchURLOutput struct {
	Body responses.FetchResponse
}

// FetchURL fetches a page into the session
func (h *SessionHandler) FetchURL(ctx context.Context, input *FetchURLInput) (*FetchURLOutput, error) {
	sess, page, err := h.sessions.FetchURL(ctx, input.ID, input.Body.URL)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &FetchURLOutput{Body: responses.FetchResponse{
		Session: *mappers.ToSessionResponse(sess),
		Charset: page.Charset,
	}}, nil
}

// AnalyzeSessionInput defines the input for the Analyze operation
type AnalyzeSessionInput struct {
	SessionPath
	TopN int `query:"top_n" minimum:"5" maximum:"20" default:"10" doc:"Number of keywords to return"`
}

// AnalysisOutput wraps an analysis response
type AnalysisOutput struct {
	Body *responses.AnalysisResponse
}

// Analyze runs the pipeline over the session text
func (h *SessionHandler) Analyze(ctx context.Context, input *AnalyzeSessionInput) (*AnalysisOutput, error) {
	result, err := h.analyzeSession(ctx, input.ID, input.TopN)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &AnalysisOutput{Body: mappers.ToAnalysisResponse(result)}, nil
}

// ReportInput defines the input for the Report operation
type ReportInput struct {
	SessionPath
	Format string `query:"format" enum:"markdown,json" default:"markdown" doc:"Report format"`
	TopN   int    `query:"top_n" minimum:"5" maximum:"20" default:"10" doc:"Number of keywords to return"`
}

// ReportOutput carries a rendered report
type ReportOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// Report renders the session analysis with the requested backend
func (h *SessionHandler) Report(ctx context.Context, input *ReportInput) (*ReportOutput, error) {
	renderer, err := h.renderers.Get(input.Format)
	if err != nil {
		return nil, toHumaError(err)
	}

	result, err := h.analyzeSession(ctx, input.ID, input.TopN)
	if err != nil {
		return nil, toHumaError(err)
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, result); err != nil {
		return nil, toHumaError(errors.WrapError(err, "failed to render report"))
	}
	return &ReportOutput{
		ContentType: renderer.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}

// ClearSession removes the session slot
func (h *SessionHandler) ClearSession(ctx context.Context, input *SessionPath) (*struct{}, error) {
	if err := h.sessions.Clear(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return nil, nil
}

func (h *SessionHandler) analyzeSession(ctx context.Context, id string, topN int) (*domain.Analysis, error) {
	sess, err := h.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !sess.HasText() {
		return nil, &errors.ValidationError{Field: "text", Message: "no text yet, confirm text or fetch a URL first"}
	}

	return h.analyzer.Analyze(ctx, domain.AnalysisInput{
		Text:   sess.Text,
		TopN:   topN,
		Source: sess.Source,
		Title:  sess.Title,
	})
}
