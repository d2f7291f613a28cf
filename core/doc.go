// Package core contains the business logic for the TextLens API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (TextStats, Analysis, Session, etc.)
// - textstats: Normalizer computing pure text and character statistics
// - keywords: Stopword/length filter and stable frequency ranker
// - sentiment: Score bucketing and summary policy over a pluggable scorer
// - fetcher: Web text fetcher with charset detection and content extraction
// - session: The per-session "last known text" slot
// - analysis: The pipeline tying the stages together
// - presentation: Chart series and swappable report renderers
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, segmenter, scorer)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	analyzer := analysis.NewService(deps, mySegmenter, myScorer, nil)
//
//	result, err := analyzer.Analyze(ctx, domain.AnalysisInput{
//	    Text: "今天天气很好，我们去公园散步。",
//	    TopN: 10,
//	})
package core
