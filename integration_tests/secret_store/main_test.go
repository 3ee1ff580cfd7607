//go:build ((tinygo.wasm && wasi) || wasip1 || wasip2) && !nofastedgehostcalls

package main

import (
	"errors"
	"testing"
	"time"

	"github.com/gcore/fastedge-sdk-go/secretstore"
)

func TestSecretGet(t *testing.T) {
	v, ok, err := secretstore.Get("api-token")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("missing secret \"api-token\"")
	}

	if got, want := string(v), "t0ps3cret"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	_, ok, err = secretstore.Get("nonexistent")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("reported a value for an absent secret")
	}
}

func TestSecretGetEffectiveAt(t *testing.T) {
	v, ok, err := secretstore.GetEffectiveAt("api-token", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("missing secret \"api-token\"")
	}

	if got, want := string(v), "t0ps3cret"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSecretDenied(t *testing.T) {
	_, _, err := secretstore.Get("locked")
	if !errors.Is(err, secretstore.ErrAccessDenied) {
		t.Errorf("got %v, want ErrAccessDenied", err)
	}
}
