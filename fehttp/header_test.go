// Copyright 2025 G-Core Innovations SARL

package fehttp

import (
	"reflect"
	"testing"
)

func TestHeaderBasics(t *testing.T) {
	t.Parallel()

	h := NewHeader()

	h.Add("Host", "zombo.com")
	if want, have := "zombo.com", h.Get("host"); want != have {
		t.Errorf("Host: want %q, have %q", want, have)
	}
}

func TestHeaderOrder(t *testing.T) {
	t.Parallel()

	h := NewHeader()
	h.Add("set-cookie", "a=1")
	h.Add("Content-Type", "text/plain")
	h.Add("Set-Cookie", "b=2")

	want := Header{
		{Key: "Set-Cookie", Value: "a=1"},
		{Key: "Content-Type", Value: "text/plain"},
		{Key: "Set-Cookie", Value: "b=2"},
	}
	if !reflect.DeepEqual(want, h) {
		t.Errorf("fields: want %v, have %v", want, h)
	}

	if got, want := h.Values("Set-Cookie"), []string{"a=1", "b=2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Set-Cookie: got %q, want %q", got, want)
	}

	if got, want := h.Keys(), []string{"Set-Cookie", "Content-Type"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys: got %q, want %q", got, want)
	}
}

func TestHeaderSet(t *testing.T) {
	t.Parallel()

	h := NewHeader()
	h.Add("Accept", "text/html")
	h.Add("Host", "zombo.com")
	h.Add("Accept", "text/plain")

	h.Set("accept", "application/json")

	want := Header{
		{Key: "Accept", Value: "application/json"},
		{Key: "Host", Value: "zombo.com"},
	}
	if !reflect.DeepEqual(want, h) {
		t.Errorf("fields: want %v, have %v", want, h)
	}

	h.Set("X-New", "1")
	if want, have := "1", h.Get("X-New"); want != have {
		t.Errorf("X-New: want %q, have %q", want, have)
	}
}

func TestHeaderDel(t *testing.T) {
	t.Parallel()

	h := NewHeader()
	h.Add("Set-Cookie", "a=1")
	h.Add("Host", "zombo.com")
	h.Add("Set-Cookie", "b=2")

	h.Del("SET-COOKIE")

	want := Header{{Key: "Host", Value: "zombo.com"}}
	if !reflect.DeepEqual(want, h) {
		t.Errorf("fields: want %v, have %v", want, h)
	}
}

func TestHeaderClone(t *testing.T) {
	t.Parallel()

	h := NewHeader()
	h.Add("Host", "zombo.com")

	h2 := h.Clone()
	h2.Set("Host", "example.com")

	if want, have := "zombo.com", h.Get("Host"); want != have {
		t.Errorf("Host after clone mutation: want %q, have %q", want, have)
	}
}

func TestHeaderApply(t *testing.T) {
	t.Parallel()

	h := NewHeader()
	h.Add("Host", "zombo.com")

	h2 := NewHeader()
	h2.Add("Host", "zombo2.com")

	h.Apply(h2)

	if got, want := h.Values("Host"), []string{"zombo2.com"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Host: got %q, want %q", got, want)
	}
}

func TestHeaderReset(t *testing.T) {
	t.Parallel()

	h := NewHeader()
	h.Add("Host", "zombo.com")
	h.Add("Accept", "text/html")

	h2 := NewHeader()
	h2.Add("X-Only", "1")

	h.Reset(h2)

	want := Header{{Key: "X-Only", Value: "1"}}
	if !reflect.DeepEqual(want, h) {
		t.Errorf("fields: want %v, have %v", want, h)
	}
}

func TestCanonicalHeaderKey(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]string{
		"accept-encoding": "Accept-Encoding",
		"HOST":            "Host",
		"x-forwarded-for": "X-Forwarded-For",
		"spa ced":         "spa ced",
	} {
		if have := CanonicalHeaderKey(input); want != have {
			t.Errorf("%q: want %q, have %q", input, want, have)
		}
	}
}
