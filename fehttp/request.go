// Copyright 2025 G-Core Innovations SARL

package fehttp

import (
	"context"
	"net/url"

	"github.com/gcore/fastedge-sdk-go/internal/abi/fastedge"
)

// HTTP methods accepted by the FastEdge runtime. The set is closed; any
// other method fails with ErrUnsupportedMethod.
const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodDelete  = "DELETE"
	MethodHead    = "HEAD"
	MethodPatch   = "PATCH"
	MethodOptions = "OPTIONS"
)

// Request represents an HTTP request received by this program from a
// requesting client, or to be sent to an origin during this execution.
type Request struct {
	// Method specifies the HTTP method. It must be one of the Method
	// constants above.
	Method string

	// URL is the parsed URL of the request. For incoming requests it
	// carries the path and query the client sent.
	URL *url.URL

	// Header contains the request header fields either received with the
	// incoming request, or to be sent with the outgoing request. Field
	// order and duplicates are preserved.
	Header Header

	// Body is the request's payload. The zero value (NoBody) means the
	// request carries none.
	Body Body
}

// NewRequest constructs an outgoing request with the given HTTP method, URI
// and body. The URI is parsed via url.Parse. Methods outside the supported
// set fail with ErrUnsupportedMethod.
func NewRequest(method, uri string, body Body) (*Request, error) {
	if _, ok := fastedge.ParseHTTPMethod(method); !ok {
		return nil, ErrUnsupportedMethod
	}
	u, err := url.Parse(uri)
	if err != nil {
		return nil, err
	}
	return &Request{
		Method: method,
		URL:    u,
		Header: NewHeader(),
		Body:   body,
	}, nil
}

// Send performs the outbound request and blocks until the response is
// available. The hostcall itself cannot be interrupted; a context that is
// already done fails before the request is issued.
func (r *Request) Send(ctx context.Context) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	areq, err := r.lower()
	if err != nil {
		return nil, err
	}
	aresp, err := fastedge.SendHTTPRequest(areq)
	if err != nil {
		return nil, mapSendError(err)
	}
	return liftResponse(aresp), nil
}

// lower converts the request to its backend-neutral form. It performs no
// hostcalls.
func (r *Request) lower() (*fastedge.HTTPRequest, error) {
	method, ok := fastedge.ParseHTTPMethod(r.Method)
	if !ok {
		return nil, ErrUnsupportedMethod
	}

	areq := &fastedge.HTTPRequest{
		Method:  method,
		URI:     r.URL.String(),
		Headers: lowerHeader(r.Header),
	}
	if !r.Body.Empty() {
		areq.Body = r.Body.Bytes()
		if r.Body.mediaType != "" && r.Header.Get("Content-Type") == "" {
			areq.Headers = append(areq.Headers, fastedge.HeaderPair{
				Name: "Content-Type", Value: r.Body.mediaType,
			})
		}
	}
	return areq, nil
}

// liftRequest converts an incoming native request to its ergonomic form.
func liftRequest(areq *fastedge.HTTPRequest) (*Request, error) {
	name, ok := fastedge.HTTPMethodName(areq.Method)
	if !ok {
		return nil, ErrUnsupportedMethod
	}
	u, err := url.ParseRequestURI(areq.URI)
	if err != nil {
		return nil, err
	}

	req := &Request{
		Method: name,
		URL:    u,
		Header: liftHeader(areq.Headers),
	}
	if areq.Body != nil {
		req.Body = makeBody(areq.Body, req.Header.Get("Content-Type"))
	}
	return req, nil
}

// lowerHeader flattens an ordered header into native pairs, preserving the
// field sequence.
func lowerHeader(h Header) []fastedge.HeaderPair {
	if len(h) == 0 {
		return nil
	}
	pairs := make([]fastedge.HeaderPair, len(h))
	for i, f := range h {
		pairs[i] = fastedge.HeaderPair{Name: f.Key, Value: f.Value}
	}
	return pairs
}

// liftHeader rebuilds an ordered header from native pairs. Keys are
// canonicalized; order and duplicates survive as delivered.
func liftHeader(pairs []fastedge.HeaderPair) Header {
	h := make(Header, 0, len(pairs))
	for _, p := range pairs {
		h.Add(p.Name, p.Value)
	}
	return h
}
