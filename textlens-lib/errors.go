// ABOUTME: Error types and handling for the TextLens library
// ABOUTME: Translates core pipeline errors into structured library errors with context

package textlens

import (
	"errors"
	"fmt"

	coreerrors "textlens-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates rejected input such as blank text
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeTimeout indicates a fetch ran past its deadline
	ErrorTypeTimeout ErrorType = "timeout"

	// ErrorTypeHTTP indicates the remote server answered with a non-2xx status
	ErrorTypeHTTP ErrorType = "http"

	// ErrorTypeNetwork indicates any other transport failure
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeNoContent indicates a fetched page had too little text
	ErrorTypeNoContent ErrorType = "no_content"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// wrapError classifies a core error. The core error stays reachable through
// errors.As.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var (
		timeoutErr *coreerrors.FetchTimeoutError
		httpErr    *coreerrors.FetchHTTPError
		netErr     *coreerrors.FetchNetworkError
		emptyErr   *coreerrors.EmptyContentError
	)

	switch {
	case coreerrors.IsValidation(err):
		return NewError(ErrorTypeValidation, "invalid input").WithCause(err)
	case errors.As(err, &timeoutErr):
		return NewError(ErrorTypeTimeout, "fetch timed out").WithCause(err).
			WithContext("url", timeoutErr.URL)
	case errors.As(err, &httpErr):
		return NewError(ErrorTypeHTTP, "fetch failed").WithCause(err).
			WithContext("url", httpErr.URL).
			WithContext("status_code", httpErr.StatusCode)
	case errors.As(err, &netErr):
		return NewError(ErrorTypeNetwork, "fetch failed").WithCause(err).
			WithContext("url", netErr.URL)
	case errors.As(err, &emptyErr):
		return NewError(ErrorTypeNoContent, "page has no usable text").WithCause(err).
			WithContext("url", emptyErr.URL).
			WithContext("length", emptyErr.Length)
	default:
		return NewError(ErrorTypeInternal, "analysis failed").WithCause(err)
	}
}

func isType(err error, errType ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == errType
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsFetchError checks if an error is a timeout, HTTP or network failure
func IsFetchError(err error) bool {
	return isType(err, ErrorTypeTimeout) || isType(err, ErrorTypeHTTP) || isType(err, ErrorTypeNetwork)
}

// IsNoContentError checks if a fetched page was too short to analyze
func IsNoContentError(err error) bool {
	return isType(err, ErrorTypeNoContent)
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	return isType(err, ErrorTypeConfiguration)
}
