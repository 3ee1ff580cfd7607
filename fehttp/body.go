// Copyright 2025 G-Core Innovations SARL

package fehttp

import (
	"encoding/json"
	"fmt"
)

// Media types assigned by the Body constructors.
const (
	MediaTypeOctetStream = "application/octet-stream"
	MediaTypeText        = "text/plain; charset=utf-8"
	MediaTypeJSON        = "application/json"
)

// Body is a fully materialized request or response payload together with its
// media type. The zero value is an empty body; NoBody names it for call
// sites. Payload bytes are treated as immutable: neither the SDK nor callers
// should modify a slice after handing it to a Body.
type Body struct {
	data      []byte
	mediaType string
}

// NoBody is an empty Body, for requests without a payload.
var NoBody = Body{}

// TextBody returns a Body holding s with the text/plain media type.
func TextBody(s string) Body {
	return Body{data: []byte(s), mediaType: MediaTypeText}
}

// BytesBody returns a Body holding p with the application/octet-stream media
// type.
func BytesBody(p []byte) Body {
	return Body{data: p, mediaType: MediaTypeOctetStream}
}

// JSONBody returns a Body holding the JSON encoding of v with the
// application/json media type. Values json.Marshal rejects fail with
// ErrInvalidBody.
func JSONBody(v any) (Body, error) {
	p, err := json.Marshal(v)
	if err != nil {
		return Body{}, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return Body{data: p, mediaType: MediaTypeJSON}, nil
}

// makeBody wraps payload bytes lifted from a native message. The media type
// records what the peer declared and may be empty.
func makeBody(data []byte, mediaType string) Body {
	return Body{data: data, mediaType: mediaType}
}

// Bytes returns the payload. The returned slice must not be modified.
func (b Body) Bytes() []byte {
	return b.data
}

// String returns the payload as a string.
func (b Body) String() string {
	return string(b.data)
}

// MediaType returns the payload's media type. Bodies without a declared
// media type default to application/octet-stream.
func (b Body) MediaType() string {
	if b.mediaType == "" {
		return MediaTypeOctetStream
	}
	return b.mediaType
}

// Empty reports whether the body holds no payload bytes.
func (b Body) Empty() bool {
	return len(b.data) == 0
}
