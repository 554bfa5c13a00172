package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAPIErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "auth",
			err:  &APIError{Kind: ErrKindAuth, StatusCode: 403, Message: "credentials were rejected by the Gorgias API"},
			want: "Authentication failed: credentials were rejected by the Gorgias API",
		},
		{
			name: "rate limit",
			err:  &APIError{Kind: ErrKindRateLimit, StatusCode: 429, Message: "upstream throttled the request", RetryAfter: 30 * time.Second},
			want: "Rate limit exceeded, retry after 30s: upstream throttled the request",
		},
		{
			name: "not found",
			err:  &APIError{Kind: ErrKindNotFound, StatusCode: 404, Message: "no such ticket"},
			want: "Resource not found: no such ticket",
		},
		{
			name: "generic",
			err:  &APIError{Kind: ErrKindAPI, StatusCode: 500, Message: "boom"},
			want: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAPIErrorRetryable(t *testing.T) {
	assert.True(t, (&APIError{Kind: ErrKindRateLimit}).Retryable())
	assert.False(t, (&APIError{Kind: ErrKindAuth}).Retryable())
	assert.False(t, (&APIError{Kind: ErrKindNotFound}).Retryable())
	assert.False(t, (&APIError{Kind: ErrKindAPI}).Retryable())
}
