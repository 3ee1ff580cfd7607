// Copyright 2025 G-Core Innovations SARL

package edgedict

import (
	"errors"
	"testing"

	"github.com/gcore/fastedge-sdk-go/internal/abi/fastedge"
)

func TestMapDictionaryErr(t *testing.T) {
	t.Parallel()

	mapped := mapDictionaryErr(fastedge.FastEdgeError{Status: fastedge.FastEdgeStatusInternal})
	if !errors.Is(mapped, ErrUnexpected) {
		t.Errorf("errors.Is(%v, ErrUnexpected) = false", mapped)
	}
	if want, have := "unexpected dictionary error (Internal)", mapped.Error(); want != have {
		t.Errorf("message: want %q, have %q", want, have)
	}

	mapped = mapDictionaryErr(fastedge.FastEdgeError{
		Status: fastedge.FastEdgeStatusInternal,
		Detail: "missing app config",
	})
	if want, have := "unexpected dictionary error (Internal: missing app config)", mapped.Error(); want != have {
		t.Errorf("message: want %q, have %q", want, have)
	}

	plain := errors.New("plain")
	if have := mapDictionaryErr(plain); have != plain {
		t.Errorf("passthrough: want %v, have %v", plain, have)
	}
}
