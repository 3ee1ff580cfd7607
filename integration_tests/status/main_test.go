//go:build ((tinygo.wasm && wasi) || wasip1 || wasip2) && !nofastedgehostcalls

// Copyright 2025 G-Core Innovations SARL

package main

import (
	"context"
	"testing"

	"github.com/gcore/fastedge-sdk-go/fehttp"
	"github.com/gcore/fastedge-sdk-go/fetest"
)

func TestStatus(t *testing.T) {
	h := fehttp.HandlerFunc(func(ctx context.Context, r *fehttp.Request) (*fehttp.Response, error) {
		return fehttp.TextResponse(fehttp.StatusUnauthorized, "Unauthorized"), nil
	})

	resp := fehttp.ServeRequest(h, fetest.NewRequest("GET", "/", fehttp.NoBody))

	if got, want := resp.StatusCode, fehttp.StatusUnauthorized; got != want {
		t.Errorf("Code = %d, want %d", got, want)
	}
}

func TestStatusOutOfRange(t *testing.T) {
	h := fehttp.HandlerFunc(func(ctx context.Context, r *fehttp.Request) (*fehttp.Response, error) {
		return fehttp.TextResponse(600, "out of range"), nil
	})

	resp := fehttp.ServeRequest(h, fetest.NewRequest("GET", "/", fehttp.NoBody))

	if got, want := resp.StatusCode, fehttp.StatusInternalServerError; got != want {
		t.Errorf("Code = %d, want %d", got, want)
	}
}
