// Package api provides the HTTP API layer for the TextLens application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Session Flow
//
// A session mirrors one interactive user. It owns a single "last text" slot:
//
//	POST   /sessions                 create (mode defaults to text)
//	PUT    /sessions/{id}/mode       switch between url and text input
//	POST   /sessions/{id}/text       confirm typed text
//	POST   /sessions/{id}/fetch      fetch a web page into the slot
//	POST   /sessions/{id}/analyze    analyze the slot (top_n 5..20)
//	GET    /sessions/{id}/report     render markdown or JSON
//	DELETE /sessions/{id}            clear the slot
//
// A failed fetch never changes the slot.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:      logger,
//	    RateLimiter: api.RateLimiterFor(100, time.Minute),
//	})
//
//	handlers.NewSessionHandler(sessions, analyzer, nil).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8080", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 502,
//	    "title": "Bad Gateway",
//	    "detail": "Fetching the page failed: fetch failed for https://example.com: HTTP 404 Not Found"
//	}
//
// Domain errors are mapped to status codes: validation 400, not found 404,
// empty page content 422, upstream HTTP or network failure 502, fetch
// timeout 504.
package api
