package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{name: "nil", err: nil, expected: ""},
		{name: "transport", err: &TransportError{Endpoint: "/usage", Err: errors.New("connection refused")}, expected: KindTransport},
		{name: "api", err: &APIError{Endpoint: "/usage", StatusCode: 500}, expected: KindAPI},
		{name: "validation", err: &ValidationError{Field: "domain"}, expected: KindValidation},
		{name: "wrapped api", err: fmt.Errorf("fetch usage: %w", &APIError{StatusCode: 401}), expected: KindAPI},
		{name: "plain", err: errors.New("boom"), expected: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "api error with details",
			err:      &APIError{Endpoint: "/leaked-data", StatusCode: 403, Message: "Domain not verified", Details: "Contact support."},
			expected: "API error on /leaked-data (status 403): Domain not verified: Contact support.",
		},
		{
			name:     "api error without details",
			err:      &APIError{Endpoint: "/usage", StatusCode: 502, Message: "502 Bad Gateway"},
			expected: "API error on /usage (status 502): 502 Bad Gateway",
		},
		{
			name:     "transport error",
			err:      &TransportError{Endpoint: "/domains", Err: errors.New("dial tcp: connection refused")},
			expected: "request /domains failed: dial tcp: connection refused",
		},
		{
			name:     "validation error",
			err:      &ValidationError{Field: "domain", Message: "domain parameter is required"},
			expected: "invalid domain: domain parameter is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("i/o timeout")
	err := fmt.Errorf("outer: %w", &TransportError{Endpoint: "/usage", Err: cause})
	assert.ErrorIs(t, err, cause)
}
