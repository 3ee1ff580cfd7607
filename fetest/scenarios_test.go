// Copyright 2025 G-Core Innovations SARL

package fetest

import (
	"context"
	"errors"
	"testing"

	"github.com/gcore/fastedge-sdk-go/fehttp"
	"github.com/gcore/fastedge-sdk-go/secretstore"
)

// The tests below run complete handlers through the serving pipeline, the
// way deployed applications behave.

func TestServeHelloWorld(t *testing.T) {
	t.Parallel()

	h := fehttp.HandlerFunc(func(ctx context.Context, r *fehttp.Request) (*fehttp.Response, error) {
		return fehttp.TextResponse(fehttp.StatusOK, "Hello, World!"), nil
	})

	resp := fehttp.ServeRequest(h, NewRequest("GET", "http://app.test/", fehttp.NoBody))
	if want, have := fehttp.StatusOK, resp.StatusCode; want != have {
		t.Errorf("status: want %d, have %d", want, have)
	}
	if want, have := "Hello, World!", resp.Body.String(); want != have {
		t.Errorf("body: want %q, have %q", want, have)
	}
}

func TestServeStoreMiss(t *testing.T) {
	t.Parallel()

	type valueGetter interface {
		Get(key string) ([]byte, bool, error)
	}

	store := NewStore()

	h := fehttp.HandlerFunc(func(ctx context.Context, r *fehttp.Request) (*fehttp.Response, error) {
		var g valueGetter = store
		value, ok, err := g.Get(r.URL.Query().Get("key"))
		if err != nil {
			return nil, err
		}
		if !ok {
			return fehttp.TextResponse(fehttp.StatusNotFound, "Key not found"), nil
		}
		resp := fehttp.NewResponse()
		resp.Body = fehttp.BytesBody(value)
		return resp, nil
	})

	resp := fehttp.ServeRequest(h, NewRequest("GET", "http://app.test/lookup?key=absent", fehttp.NoBody))
	if want, have := fehttp.StatusNotFound, resp.StatusCode; want != have {
		t.Errorf("status: want %d, have %d", want, have)
	}
	if want, have := "Key not found", resp.Body.String(); want != have {
		t.Errorf("body: want %q, have %q", want, have)
	}

	store.Values["present"] = []byte("value")
	resp = fehttp.ServeRequest(h, NewRequest("GET", "http://app.test/lookup?key=present", fehttp.NoBody))
	if want, have := fehttp.StatusOK, resp.StatusCode; want != have {
		t.Errorf("status: want %d, have %d", want, have)
	}
}

func TestServeSecretDenied(t *testing.T) {
	t.Parallel()

	secrets := &Secrets{Denied: map[string]bool{"api-key": true}}

	h := fehttp.HandlerFunc(func(ctx context.Context, r *fehttp.Request) (*fehttp.Response, error) {
		_, _, err := secrets.Get("api-key")
		if errors.Is(err, secretstore.ErrAccessDenied) {
			return fehttp.TextResponse(fehttp.StatusForbidden, "Forbidden"), nil
		}
		if err != nil {
			return nil, err
		}
		return fehttp.NewResponse(), nil
	})

	resp := fehttp.ServeRequest(h, NewRequest("GET", "http://app.test/", fehttp.NoBody))
	if want, have := fehttp.StatusForbidden, resp.StatusCode; want != have {
		t.Errorf("status: want %d, have %d", want, have)
	}
}

func TestServePanickingHandler(t *testing.T) {
	t.Parallel()

	h := fehttp.HandlerFunc(func(ctx context.Context, r *fehttp.Request) (*fehttp.Response, error) {
		panic("handler bug")
	})

	resp := fehttp.ServeRequest(h, NewRequest("GET", "http://app.test/", fehttp.NoBody))
	if resp == nil {
		t.Fatal("response: want non-nil")
	}
	if want, have := fehttp.StatusInternalServerError, resp.StatusCode; want != have {
		t.Errorf("status: want %d, have %d", want, have)
	}
	if want, have := "internal error", resp.Body.String(); want != have {
		t.Errorf("body: want %q, have %q", want, have)
	}
	if resp.Header == nil {
		t.Error("header: want present, have nil")
	}
}
