// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for input validation, fetch failures and API responses

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents rejected user input, such as empty text
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// FetchTimeoutError is returned when fetching a URL exceeds the timeout
type FetchTimeoutError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *FetchTimeoutError) Error() string {
	return fmt.Sprintf("fetch timed out for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause
func (e *FetchTimeoutError) Unwrap() error {
	return e.Err
}

// FetchHTTPError is returned when the remote server answers with a non-2xx status
type FetchHTTPError struct {
	URL        string
	StatusCode int
	Status     string
}

// Error implements the error interface
func (e *FetchHTTPError) Error() string {
	return fmt.Sprintf("fetch failed for %s: HTTP %d %s", e.URL, e.StatusCode, e.Status)
}

// FetchNetworkError covers every other transport failure
type FetchNetworkError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *FetchNetworkError) Error() string {
	return fmt.Sprintf("fetch failed for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause
func (e *FetchNetworkError) Unwrap() error {
	return e.Err
}

// EmptyContentError means the fetch succeeded but produced no usable text.
// It is a warning, not a hard failure.
type EmptyContentError struct {
	URL      string
	Length   int
	Required int
}

// Error implements the error interface
func (e *EmptyContentError) Error() string {
	return fmt.Sprintf("no usable content at %s: extracted %d characters, need at least %d", e.URL, e.Length, e.Required)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsFetchTimeout checks if an error is a FetchTimeoutError
func IsFetchTimeout(err error) bool {
	var timeoutErr *FetchTimeoutError
	return errors.As(err, &timeoutErr)
}

// IsFetchHTTP checks if an error is a FetchHTTPError
func IsFetchHTTP(err error) bool {
	var httpErr *FetchHTTPError
	return errors.As(err, &httpErr)
}

// IsFetchNetwork checks if an error is a FetchNetworkError
func IsFetchNetwork(err error) bool {
	var netErr *FetchNetworkError
	return errors.As(err, &netErr)
}

// IsEmptyContent checks if an error is an EmptyContentError
func IsEmptyContent(err error) bool {
	var emptyErr *EmptyContentError
	return errors.As(err, &emptyErr)
}

// IsFetchFailure reports whether err is any of the hard fetch failures
func IsFetchFailure(err error) bool {
	return IsFetchTimeout(err) || IsFetchHTTP(err) || IsFetchNetwork(err)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
