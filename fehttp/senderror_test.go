// Copyright 2025 G-Core Innovations SARL

package fehttp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gcore/fastedge-sdk-go/internal/abi/fastedge"
)

func TestMapSendError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{
			name:   "destination not allowed",
			err:    fastedge.FastEdgeError{Status: fastedge.FastEdgeStatusDestinationNotAllowed},
			target: ErrDestinationNotAllowed,
		},
		{
			name:   "invalid url",
			err:    fastedge.FastEdgeError{Status: fastedge.FastEdgeStatusInvalidURL},
			target: ErrInvalidURL,
		},
		{
			name:   "request error",
			err:    fastedge.FastEdgeError{Status: fastedge.FastEdgeStatusRequestError},
			target: ErrRequest,
		},
		{
			name:   "runtime error",
			err:    fastedge.FastEdgeError{Status: fastedge.FastEdgeStatusRuntimeError},
			target: ErrRuntime,
		},
		{
			name:   "too many requests",
			err:    fastedge.FastEdgeError{Status: fastedge.FastEdgeStatusTooManyRequests},
			target: ErrTooManyRequests,
		},
		{
			name:   "status outside the send set falls back to runtime",
			err:    fastedge.FastEdgeError{Status: fastedge.FastEdgeStatusAccessDenied},
			target: ErrRuntime,
		},
		{
			name:   "unknown status falls back to runtime",
			err:    fastedge.FastEdgeError{Status: 42},
			target: ErrRuntime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapSendError(tt.err)
			if !errors.Is(mapped, tt.target) {
				t.Errorf("errors.Is(%v, %v) = false", mapped, tt.target)
			}
		})
	}
}

func TestMapSendErrorDetail(t *testing.T) {
	t.Parallel()

	err := fastedge.FastEdgeError{
		Status: fastedge.FastEdgeStatusRequestError,
		Detail: "connection reset",
	}

	mapped := mapSendError(err)
	if !errors.Is(mapped, ErrRequest) {
		t.Fatalf("errors.Is(%v, ErrRequest) = false", mapped)
	}
	if want, have := "fehttp: request failed (connection reset)", mapped.Error(); want != have {
		t.Errorf("message: want %q, have %q", want, have)
	}
}

func TestMapSendErrorPassthrough(t *testing.T) {
	t.Parallel()

	plain := errors.New("not from the host")
	if have := mapSendError(plain); have != plain {
		t.Errorf("passthrough: want %v, have %v", plain, have)
	}

	wrapped := fmt.Errorf("outer: %w", mapSendError(fastedge.FastEdgeError{
		Status: fastedge.FastEdgeStatusInvalidURL,
	}))
	if !errors.Is(wrapped, ErrInvalidURL) {
		t.Errorf("errors.Is(%v, ErrInvalidURL) = false", wrapped)
	}
}
