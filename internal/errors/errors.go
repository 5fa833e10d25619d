// Package errors provides structured error handling for the client layer:
// a small taxonomy (validation, not-found, transport) plus mapping from
// HTTP responses and extraction of server-provided detail messages.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the category of error for metrics and notification routing.
type ErrorType string

const (
	// TypeValidation indicates invalid local input; never reaches the network.
	TypeValidation ErrorType = "validation"
	// TypeNotFound indicates the server returned 404 for a single-entity fetch.
	TypeNotFound ErrorType = "not_found"
	// TypeTransport indicates a network failure, timeout, or non-2xx response.
	TypeTransport ErrorType = "transport"
)

// Error represents a structured error with type, message, and context.
type Error struct {
	Type ErrorType
	// Message is the human-readable description.
	Message string
	// Detail is the server-provided message, consumed verbatim by the
	// notification surface. Empty when the server sent none.
	Detail     string
	StatusCode int
	Cause      error
	Context    map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// ValidationError creates a new validation error.
func ValidationError(message string) *Error {
	return &Error{
		Type:    TypeValidation,
		Message: message,
		Context: make(map[string]any),
	}
}

// NotFoundError creates a new not-found error.
func NotFoundError(message string) *Error {
	return &Error{
		Type:       TypeNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
		Context:    make(map[string]any),
	}
}

// TransportError creates a new transport error.
func TransportError(message string, cause error) *Error {
	return &Error{
		Type:    TypeTransport,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// FromStatusCode maps a non-2xx HTTP response to a structured error.
// detail is the server's optional human-readable message; when empty a
// generic message is used.
func FromStatusCode(statusCode int, detail string) *Error {
	message := detail
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", statusCode)
	}

	typ := TypeTransport
	if statusCode == http.StatusNotFound {
		typ = TypeNotFound
	}

	return &Error{
		Type:       typ,
		Message:    message,
		Detail:     detail,
		StatusCode: statusCode,
		Context:    make(map[string]any),
	}
}

// WithContext adds context fields to the error (chainable).
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// IsNotFound reports whether err is (or wraps) a not-found error.
func IsNotFound(err error) bool {
	var structured *Error
	return errors.As(err, &structured) && structured.Type == TypeNotFound
}

// ServerDetail extracts the server-provided message from err, or ""
// when err carries none. Mutation callers use it to prefer the server's
// wording over their fixed fallback text.
func ServerDetail(err error) string {
	var structured *Error
	if errors.As(err, &structured) {
		return structured.Detail
	}
	return ""
}

// AsStructuredError converts any error into a structured Error.
// If err is already an *Error, returns it unchanged. Otherwise wraps it
// as a transport error with a generic message.
func AsStructuredError(err error) *Error {
	if err == nil {
		return nil
	}

	var structured *Error
	if errors.As(err, &structured) {
		return structured
	}

	return TransportError("request failed", err)
}
