// Copyright 2025 G-Core Innovations SARL

package fehttp

import (
	"net/textproto"
)

// HeaderField is one name-value pair in an ordered header sequence.
type HeaderField struct {
	Key   string
	Value string
}

// Header represents the key-value pairs in a set of HTTP headers. Unlike
// net/http, the field sequence is significant: insertion order and duplicate
// keys are preserved exactly, end to end, because the host hands headers over
// as an ordered pair sequence. Keys are canonicalized by CanonicalHeaderKey.
//
// Ranging over a Header visits the fields in order.
type Header []HeaderField

// NewHeader returns an initialized and empty set of headers.
func NewHeader() Header {
	return Header{}
}

// Add adds the key, value pair to the headers, after any existing fields. The
// key is case insensitive; it is canonicalized by CanonicalHeaderKey.
func (h *Header) Add(key, value string) {
	*h = append(*h, HeaderField{Key: CanonicalHeaderKey(key), Value: value})
}

// Set sets the header entries associated with key to the single element
// value. It replaces any existing values associated with key, keeping the
// position of the first one. The key is case insensitive; it is canonicalized
// by CanonicalHeaderKey.
func (h *Header) Set(key, value string) {
	key = CanonicalHeaderKey(key)
	fields := *h
	out := fields[:0]
	replaced := false
	for _, f := range fields {
		if f.Key == key {
			if replaced {
				continue
			}
			f.Value = value
			replaced = true
		}
		out = append(out, f)
	}
	if !replaced {
		out = append(out, HeaderField{Key: key, Value: value})
	}
	*h = out
}

// Del deletes all values associated with key. The key is case insensitive; it
// is canonicalized by CanonicalHeaderKey.
func (h *Header) Del(key string) {
	key = CanonicalHeaderKey(key)
	fields := *h
	out := fields[:0]
	for _, f := range fields {
		if f.Key != key {
			out = append(out, f)
		}
	}
	*h = out
}

// Get gets the first value associated with the given key. It is case
// insensitive; CanonicalHeaderKey is used to canonicalize the provided key.
// If there are no values associated with the key, Get returns "".
func (h Header) Get(key string) string {
	key = CanonicalHeaderKey(key)
	for _, f := range h {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

// Values returns all values associated with the given key, in field order. It
// is case insensitive; CanonicalHeaderKey is used to canonicalize the
// provided key. The returned slice is built on each call.
func (h Header) Values(key string) []string {
	key = CanonicalHeaderKey(key)
	var values []string
	for _, f := range h {
		if f.Key == key {
			values = append(values, f.Value)
		}
	}
	return values
}

// Keys returns the distinct keys in the header collection, ordered by first
// appearance.
func (h Header) Keys() []string {
	keys := make([]string, 0, len(h))
	seen := make(map[string]bool, len(h))
	for _, f := range h {
		if !seen[f.Key] {
			seen[f.Key] = true
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// Clone returns a copy of the headers.
func (h Header) Clone() Header {
	return append(Header(nil), h...)
}

// Apply adds all of the headers in hs. In the case of key conflict, values
// from hs totally overwrite existing values in h.
func (h *Header) Apply(hs Header) {
	for _, key := range hs.Keys() {
		h.Del(key)
		for _, value := range hs.Values(key) {
			h.Add(key, value)
		}
	}
}

// Reset deletes all existing headers, and adds all of the headers in hs.
func (h *Header) Reset(hs Header) {
	*h = (*h)[:0]
	h.Apply(hs)
}

// CanonicalHeaderKey returns the canonical format of the header key s. The
// canonicalization converts the first letter and any letter following a
// hyphen to upper case; the rest are converted to lowercase. For example, the
// canonical key for "accept-encoding" is "Accept-Encoding". If s contains a
// space or invalid header field bytes, it is returned without modifications.
func CanonicalHeaderKey(s string) string {
	return textproto.CanonicalMIMEHeaderKey(s)
}
