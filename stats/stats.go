// Copyright 2025 G-Core Innovations SARL

// Package stats reports per-invocation diagnostics to the FastEdge
// platform.
package stats

import (
	"github.com/gcore/fastedge-sdk-go/internal/abi/fastedge"
)

// SetUserDiag attaches a diagnostic message to the current invocation,
// visible in the platform's execution logs. The platform keeps one message
// per invocation; the last write wins. Delivery is fire-and-forget.
//
// Avoid logging sensitive information such as credentials or API keys.
func SetUserDiag(value string) {
	fastedge.SetUserDiag(value)
}
