// Copyright 2025 G-Core Innovations SARL

// Package fetest provides helpers for testing FastEdge handlers off-wasm.
//
// Handlers run through [fehttp.ServeRequest], which applies the platform
// serving loop's guarantees natively. The fake capability types in this
// package stand in for their platform counterparts: a handler written
// against small consumer interfaces can take a [kvstore.Store] in
// production and a [Store] in tests.
package fetest

import (
	"fmt"

	"github.com/gcore/fastedge-sdk-go/fehttp"
)

// NewRequest returns a new incoming request suitable for passing to a
// handler under test. It panics if the method or uri are invalid, for ease
// of use in tests.
func NewRequest(method, uri string, body fehttp.Body) *fehttp.Request {
	r, err := fehttp.NewRequest(method, uri, body)
	if err != nil {
		panic(fmt.Sprintf("fetest: NewRequest(%q, %q): %v", method, uri, err))
	}
	return r
}
