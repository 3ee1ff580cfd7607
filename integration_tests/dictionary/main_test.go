//go:build ((tinygo.wasm && wasi) || wasip1 || wasip2) && !nofastedgehostcalls

// Copyright 2025 G-Core Innovations SARL

package main

import (
	"testing"

	"github.com/gcore/fastedge-sdk-go/edgedict"
)

func TestDictionary(t *testing.T) {
	greeting, ok, err := edgedict.Get("greeting")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("missing key \"greeting\"")
	}
	if got, want := greeting, "Hello, World!"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	_, ok, err = edgedict.Get("missing-key")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("reported a value for a missing key")
	}

	empty, ok, err := edgedict.Get("empty-value")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("missing key \"empty-value\"")
	}
	if empty != "" {
		t.Errorf("got %q, want empty", empty)
	}
}
