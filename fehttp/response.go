// Copyright 2025 G-Core Innovations SARL

package fehttp

import (
	"fmt"

	"github.com/gcore/fastedge-sdk-go/internal/abi/fastedge"
)

// Response represents an HTTP response, either received from an origin via
// Request.Send, or built by a Handler for the client.
type Response struct {
	// StatusCode is the response's status. Handlers must produce a value
	// in [100, 599]; anything else fails encoding with
	// ErrInvalidStatusCode.
	StatusCode int

	// Header contains the response header fields. Field order and
	// duplicates are preserved.
	Header Header

	// Body is the response's payload.
	Body Body
}

// NewResponse constructs an empty 200 response.
func NewResponse() *Response {
	return &Response{
		StatusCode: StatusOK,
		Header:     NewHeader(),
	}
}

// TextResponse is sugar for a response with a text body.
func TextResponse(status int, body string) *Response {
	return &Response{
		StatusCode: status,
		Header:     NewHeader(),
		Body:       TextBody(body),
	}
}

// lower converts the response to its backend-neutral form, validating the
// status code. It performs no hostcalls.
func (r *Response) lower() (*fastedge.HTTPResponse, error) {
	if r.StatusCode < 100 || r.StatusCode > 599 {
		return nil, fmt.Errorf("%w (%d)", ErrInvalidStatusCode, r.StatusCode)
	}

	aresp := &fastedge.HTTPResponse{
		Status:  uint16(r.StatusCode),
		Headers: lowerHeader(r.Header),
	}
	if !r.Body.Empty() {
		aresp.Body = r.Body.Bytes()
		if r.Body.mediaType != "" && r.Header.Get("Content-Type") == "" {
			aresp.Headers = append(aresp.Headers, fastedge.HeaderPair{
				Name: "Content-Type", Value: r.Body.mediaType,
			})
		}
	}
	return aresp, nil
}

// liftResponse converts a native response to its ergonomic form.
func liftResponse(aresp *fastedge.HTTPResponse) *Response {
	resp := &Response{
		StatusCode: int(aresp.Status),
		Header:     liftHeader(aresp.Headers),
	}
	if aresp.Body != nil {
		resp.Body = makeBody(aresp.Body, resp.Header.Get("Content-Type"))
	}
	return resp
}
