// Copyright 2025 G-Core Innovations SARL

package fehttp

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gcore/fastedge-sdk-go/internal/abi/fastedge"
)

func TestResponseStatusBounds(t *testing.T) {
	t.Parallel()

	for _, status := range []int{100, 200, 404, 599} {
		r := TextResponse(status, "ok")
		aresp, err := r.lower()
		if err != nil {
			t.Errorf("%d: unexpected error: %v", status, err)
			continue
		}
		if want, have := uint16(status), aresp.Status; want != have {
			t.Errorf("status: want %d, have %d", want, have)
		}
	}

	for _, status := range []int{0, 99, 600, -1, 1000} {
		_, err := TextResponse(status, "no").lower()
		if !errors.Is(err, ErrInvalidStatusCode) {
			t.Errorf("%d: want ErrInvalidStatusCode, have %v", status, err)
		}
	}
}

func TestResponseLowerLift(t *testing.T) {
	t.Parallel()

	r := NewResponse()
	r.StatusCode = StatusNotFound
	r.Header.Add("Set-Cookie", "a=1")
	r.Header.Add("Set-Cookie", "b=2")
	r.Body = TextBody("Key not found")

	aresp, err := r.lower()
	if err != nil {
		t.Fatal(err)
	}
	wantHeaders := []fastedge.HeaderPair{
		{Name: "Set-Cookie", Value: "a=1"},
		{Name: "Set-Cookie", Value: "b=2"},
		{Name: "Content-Type", Value: MediaTypeText},
	}
	if !reflect.DeepEqual(wantHeaders, aresp.Headers) {
		t.Errorf("headers: want %v, have %v", wantHeaders, aresp.Headers)
	}

	r2 := liftResponse(aresp)
	if want, have := StatusNotFound, r2.StatusCode; want != have {
		t.Errorf("status: want %d, have %d", want, have)
	}
	if got, want := r2.Header.Values("Set-Cookie"), []string{"a=1", "b=2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Set-Cookie: got %q, want %q", got, want)
	}
	if want, have := "Key not found", r2.Body.String(); want != have {
		t.Errorf("body: want %q, have %q", want, have)
	}
	if want, have := MediaTypeText, r2.Body.MediaType(); want != have {
		t.Errorf("media type: want %q, have %q", want, have)
	}
}

func TestResponseLowerEmptyBody(t *testing.T) {
	t.Parallel()

	aresp, err := NewResponse().lower()
	if err != nil {
		t.Fatal(err)
	}
	if aresp.Body != nil {
		t.Errorf("body: want nil, have %v", aresp.Body)
	}
	if aresp.Headers != nil {
		t.Errorf("headers: want omitted, have %v", aresp.Headers)
	}
}
