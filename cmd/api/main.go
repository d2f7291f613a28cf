// ABOUTME: Main entry point for the TextLens API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"textlens-api/api"
	"textlens-api/api/handlers"
	"textlens-api/infrastructure/logger/structured"
	"textlens-api/pkg/bootstrap"
	"textlens-api/pkg/config"
	"textlens-api/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	logger.Info("Starting TextLens API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"segmenter":  cfg.Analysis.Segmenter,
	})

	// Create services
	services, err := bootstrap.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialise services: %v", err)
	}
	defer services.Close()

	flags := featureflags.NewEnvManager("FEATURE_")

	// Create API with middleware
	rateLimiter := api.RateLimiterFor(cfg.Server.RateLimit, cfg.Server.RateWindow)
	if rateLimiter != nil {
		defer rateLimiter.Close()
	}
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:          logger,
		RateLimiter:     rateLimiter,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		Flags:           flags,
		MetricsGatherer: services.Registry,
	})

	// Create and register handlers
	sessionHandler := handlers.NewSessionHandler(services.Sessions, services.Analyzer, services.Renderers)
	sessionHandler.RegisterRoutes(humaAPI)

	analyzeHandler := handlers.NewAnalyzeHandler(services.Analyzer)
	analyzeHandler.RegisterRoutes(humaAPI)

	healthHandler := handlers.NewHealthHandler(flags)
	healthHandler.RegisterRoutes(humaAPI)

	// Create HTTP server. Write timeout leaves room for a full fetch.
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Fetch.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}
