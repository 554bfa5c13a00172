package domain

import (
	"fmt"
	"time"
)

// ErrorKind classifies an upstream API failure.
type ErrorKind int

const (
	// ErrKindAPI is any non-2xx upstream response not covered by a more
	// specific kind. Carries the numeric status and a best-effort message.
	ErrKindAPI ErrorKind = iota
	// ErrKindAuth means the upstream rejected the supplied credentials
	// (HTTP 401 or 403). Never retryable.
	ErrKindAuth
	// ErrKindRateLimit means the upstream throttled the request (HTTP 429).
	// Carries a suggested pause and is the only retryable kind.
	ErrKindRateLimit
	// ErrKindNotFound is the HTTP 404 specialization of an API error.
	ErrKindNotFound
)

// APIError is the uniform failure produced by the upstream client. Tool
// handlers never see raw HTTP responses, only this type.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	// RetryAfter is the pause the caller should observe before retrying a
	// rate-limited request. Zero for every other kind.
	RetryAfter time.Duration
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	switch e.Kind {
	case ErrKindAuth:
		return fmt.Sprintf("Authentication failed: %s", e.Message)
	case ErrKindRateLimit:
		return fmt.Sprintf("Rate limit exceeded, retry after %s: %s", e.RetryAfter, e.Message)
	case ErrKindNotFound:
		return fmt.Sprintf("Resource not found: %s", e.Message)
	default:
		return e.Message
	}
}

// Retryable reports whether the failure is transient. Only rate limits are
// retryable in the current taxonomy; the decision to retry belongs to the
// caller, never to this process.
func (e *APIError) Retryable() bool {
	return e.Kind == ErrKindRateLimit
}
