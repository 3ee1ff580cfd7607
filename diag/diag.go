// Copyright 2025 G-Core Innovations SARL

// Package diag routes guest logging onto the FastEdge invocation
// diagnostic.
//
// The platform keeps a single diagnostic message per invocation, with
// last-write-wins semantics. Writer exposes that channel as an io.Writer
// for ad-hoc use; NewLogHandler adapts it to log/slog by accumulating the
// invocation's records and setting the whole transcript on every write, so
// structured logging composes with the channel's set-semantics.
package diag

import (
	"io"
	"strings"

	"github.com/gcore/fastedge-sdk-go/internal/abi/fastedge"
)

// setDiag is the hostcall seam, swapped out in tests.
var setDiag = fastedge.SetUserDiag

// Writer returns an io.Writer over the invocation diagnostic. Each call
// to Write replaces the current message with p; a single trailing newline
// is dropped so line-oriented writers such as log.Logger set clean
// messages.
func Writer() io.Writer {
	return diagWriter{}
}

type diagWriter struct{}

func (diagWriter) Write(p []byte) (int, error) {
	setDiag(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
