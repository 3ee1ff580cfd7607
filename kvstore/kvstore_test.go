// Copyright 2025 G-Core Innovations SARL

package kvstore

import (
	"errors"
	"testing"

	"github.com/gcore/fastedge-sdk-go/internal/abi/fastedge"
)

func TestMapFastEdgeErr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{
			name:   "no such store",
			err:    fastedge.FastEdgeError{Status: fastedge.FastEdgeStatusNoSuchStore},
			target: ErrNoSuchStore,
		},
		{
			name:   "access denied",
			err:    fastedge.FastEdgeError{Status: fastedge.FastEdgeStatusAccessDenied},
			target: ErrAccessDenied,
		},
		{
			name:   "internal",
			err:    fastedge.FastEdgeError{Status: fastedge.FastEdgeStatusInternal},
			target: ErrInternal,
		},
		{
			name:   "unknown status folds into internal",
			err:    fastedge.FastEdgeError{Status: 77},
			target: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapFastEdgeErr(tt.err)
			if !errors.Is(mapped, tt.target) {
				t.Errorf("errors.Is(%v, %v) = false", mapped, tt.target)
			}
		})
	}
}

func TestMapFastEdgeErrDetail(t *testing.T) {
	t.Parallel()

	err := fastedge.FastEdgeError{
		Status: fastedge.FastEdgeStatusInternal,
		Detail: "store backend timeout",
	}
	mapped := mapFastEdgeErr(err)
	if want, have := "kvstore: internal error (store backend timeout)", mapped.Error(); want != have {
		t.Errorf("message: want %q, have %q", want, have)
	}

	plain := errors.New("not a hostcall error")
	if have := mapFastEdgeErr(plain); have != plain {
		t.Errorf("passthrough: want %v, have %v", plain, have)
	}
}

func TestScoredValues(t *testing.T) {
	t.Parallel()

	if have := scoredValues(nil); have != nil {
		t.Errorf("nil members: want nil, have %v", have)
	}

	members := []fastedge.ScoredMember{
		{Value: []byte("a"), Score: 1.5},
		{Value: []byte("b"), Score: -2},
	}
	values := scoredValues(members)
	if want, have := 2, len(values); want != have {
		t.Fatalf("len: want %d, have %d", want, have)
	}
	if want, have := "a", string(values[0].Value); want != have {
		t.Errorf("value: want %q, have %q", want, have)
	}
	if want, have := 1.5, values[0].Score; want != have {
		t.Errorf("score: want %v, have %v", want, have)
	}
}
