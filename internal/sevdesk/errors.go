package sevdesk

import (
	"errors"
	"fmt"
)

// Common client errors
var (
	// ErrMissingToken is returned when a client is constructed without an
	// API token.
	ErrMissingToken = errors.New("SEVDESK_API_TOKEN is required")

	// ErrMalformedResponse is returned when a successful response does not
	// carry the expected envelope.
	ErrMalformedResponse = errors.New("malformed sevDesk response")
)

// APIError is a business-level rejection from the sevDesk API, extracted
// from the {error: {code, message}} envelope of a non-2xx response.
type APIError struct {
	// Code is sevDesk's machine-readable error code.
	Code int

	// Message is the human-readable error description.
	Message string

	// Status is the HTTP status of the response.
	Status int
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("sevDesk API Error (%d): %s", e.Code, e.Message)
}

// RequestError wraps transport-level failures with the operation and path
// that produced them.
type RequestError struct {
	// Op is the verb that failed (e.g., "FetchList", "Create").
	Op string

	// Path is the API path the request was sent to.
	Path string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("sevdesk: %s %s failed: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling.
func (e *RequestError) Is(target error) bool {
	return errors.Is(e.Err, target)
}
