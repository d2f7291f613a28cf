// ABOUTME: Request DTOs for session and analysis API endpoints
// ABOUTME: Validation rules are declared with Huma struct tags

package requests

// CreateSessionRequest starts a new session
type CreateSessionRequest struct {
	Mode string `json:"mode,omitempty" enum:"url,text" default:"text" doc:"Initial input mode"`
}

// SetModeRequest switches the input mode of a session
type SetModeRequest struct {
	Mode string `json:"mode" enum:"url,text" required:"true" doc:"Input mode"`
}

// ConfirmTextRequest stores manually entered text in the session
type ConfirmTextRequest struct {
	Text string `json:"text" required:"true" example:"今天天气很好，我们去公园散步。" doc:"Text to analyze"`
}

// FetchRequest downloads a web page into the session
type FetchRequest struct {
	URL string `json:"url" required:"true" format:"uri" example:"https://example.com/article" doc:"Page to fetch"`
}

// AnalyzeTextRequest runs a one-shot analysis without a session
type AnalyzeTextRequest struct {
	Text string `json:"text" required:"true" doc:"Text to analyze"`
	TopN int    `json:"top_n,omitempty" minimum:"5" maximum:"20" default:"10" doc:"Number of keywords to return"`
}
