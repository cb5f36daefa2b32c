package api

import (
	"errors"
	"fmt"
)

// Errors returned by NewClient.
var (
	ErrNoToken   = errors.New("api token is required")
	ErrNoBaseURL = errors.New("base URL is required")
)

// ErrorKind classifies a failed call so callers can branch without parsing messages.
type ErrorKind string

const (
	KindUnknown    ErrorKind = "unknown"
	KindTransport  ErrorKind = "transport"
	KindAPI        ErrorKind = "api"
	KindValidation ErrorKind = "validation"
)

// TransportError is returned when the request never produced an HTTP response
// (DNS failure, refused connection, timeout).
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request %s failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is returned for any non-2xx response.
type APIError struct {
	Endpoint   string
	StatusCode int
	// Status is the HTTP status line, e.g. "403 Forbidden".
	Status string
	// Message is the server's "error" field, or Status when the body carried none.
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("API error on %s (status %d): %s: %s", e.Endpoint, e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("API error on %s (status %d): %s", e.Endpoint, e.StatusCode, e.Message)
}

// ValidationError is returned before any network call when arguments are unusable.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// KindOf reports which kind of failure err is.
func KindOf(err error) ErrorKind {
	var (
		transportErr  *TransportError
		apiErr        *APIError
		validationErr *ValidationError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &validationErr):
		return KindValidation
	case errors.As(err, &apiErr):
		return KindAPI
	case errors.As(err, &transportErr):
		return KindTransport
	default:
		return KindUnknown
	}
}
