// ABOUTME: Basic example showing text analysis with the TextLens library
// ABOUTME: Demonstrates default configuration, URL analysis and report rendering

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	textlens "textlens-api/textlens-lib"
)

func main() {
	// Example 1: Create a client with default configuration
	client, err := textlens.NewClient()
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	ctx := context.Background()

	// Example 2: Analyze a piece of text
	fmt.Println("=== Analyzing Text ===")
	result, err := client.Analyze(ctx, "今天天气很好，我们去公园散步。公园里的花开得很美！", textlens.WithTopN(5))
	if err != nil {
		log.Printf("Error analyzing text: %v\n", err)
	} else {
		fmt.Printf("Characters: %d\n", result.Stats.CharsWithWhitespace)
		fmt.Printf("Sentences: %d\n", result.Stats.SentenceCount)
		fmt.Printf("Sentiment: %s (%.4f)\n", result.Sentiment.Label, result.Sentiment.Score)
		for _, kw := range result.Keywords {
			fmt.Printf("- %s: %d\n", kw.Keyword, kw.Count)
		}
	}

	// Example 3: Analyze a web page and print a markdown report
	fmt.Println("\n=== Analyzing URL ===")
	pageResult, err := client.AnalyzeURL(ctx, "https://example.com")
	switch {
	case textlens.IsNoContentError(err):
		fmt.Println("Page has too little text to analyze")
	case err != nil:
		log.Printf("Error fetching page: %v\n", err)
	default:
		if err := client.Render(os.Stdout, pageResult, "markdown"); err != nil {
			log.Printf("Error rendering report: %v\n", err)
		}
	}
}
