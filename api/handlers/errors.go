// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"textlens-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors.
// Every response detail carries the cause string.
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.IsNotFound(err):
		return huma.Error404NotFound(err.Error())
	case errors.IsValidation(err):
		return huma.Error400BadRequest(err.Error())
	case errors.IsEmptyContent(err):
		return huma.Error422UnprocessableEntity("No usable text was found on the page: " + err.Error())
	case errors.IsFetchTimeout(err):
		return huma.Error504GatewayTimeout("Fetching the page timed out: " + err.Error())
	case errors.IsFetchFailure(err):
		return huma.Error502BadGateway("Fetching the page failed: " + err.Error())
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
