// Copyright 2025 G-Core Innovations SARL

package fehttp

import (
	"context"
	"fmt"

	"github.com/gcore/fastedge-sdk-go/internal/abi/fastedge"
)

// Handler describes anything which can handle, or respond to, an HTTP
// request. Returning an error produces a 500 response carrying the error's
// message.
type Handler interface {
	Serve(ctx context.Context, r *Request) (*Response, error)
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(ctx context.Context, r *Request) (*Response, error)

// Serve implements Handler by calling f(ctx, r).
func (f HandlerFunc) Serve(ctx context.Context, r *Request) (*Response, error) {
	return f(ctx, r)
}

// Serve registers h as the program's request handler. It must be called from
// main before the first request arrives, and so should only be called once
// per program.
func Serve(h Handler) {
	fastedge.SetRequestHandler(func(areq *fastedge.HTTPRequest, decodeErr error) *fastedge.HTTPResponse {
		return respond(h, areq, decodeErr)
	})
}

// ServeFunc is sugar for Serve(HandlerFunc(f)).
func ServeFunc(f HandlerFunc) {
	Serve(f)
}

// Fixed bodies of the generated fallback responses.
const (
	internalErrorBody       = "internal error"
	requestDecodeErrorBody  = "http request decode error"
	responseEncodeErrorBody = "http response encode error"
)

// setUserDiag is the diagnostic seam, swapped out in tests.
var setUserDiag = fastedge.SetUserDiag

// ServeRequest runs h for a single request with the same guarantees as the
// platform serving loop: a handler error, a nil response, an out-of-range
// status code and a panic each collapse to a fixed 500 response, and a
// panic additionally sets the invocation diagnostic. It never returns nil.
// Handler tests can call it directly; handlers registered with Serve go
// through the same path.
func ServeRequest(h Handler, r *Request) (resp *Response) {
	defer func() {
		if v := recover(); v != nil {
			setUserDiag(fmt.Sprintf("panic: %v", v))
			resp = fallbackResponse(internalErrorBody)
		}
	}()

	resp, err := h.Serve(context.Background(), r)
	if err != nil {
		return fallbackResponse(err.Error())
	}
	if resp == nil {
		return fallbackResponse(internalErrorBody)
	}
	if resp.StatusCode < 100 || resp.StatusCode > 599 {
		return fallbackResponse(responseEncodeErrorBody)
	}
	return resp
}

// respond runs h for one native request and always produces a well-formed
// native response: malformed requests and unencodable responses collapse to
// a fixed 500, everything else is ServeRequest's contract.
func respond(h Handler, areq *fastedge.HTTPRequest, decodeErr error) (aresp *fastedge.HTTPResponse) {
	defer func() {
		if v := recover(); v != nil {
			setUserDiag(fmt.Sprintf("panic: %v", v))
			aresp = errorResponse(internalErrorBody)
		}
	}()

	if decodeErr != nil {
		return errorResponse(requestDecodeErrorBody)
	}
	req, err := liftRequest(areq)
	if err != nil {
		return errorResponse(requestDecodeErrorBody)
	}

	aresp, err = ServeRequest(h, req).lower()
	if err != nil {
		return errorResponse(responseEncodeErrorBody)
	}
	return aresp
}

// fallbackResponse builds the fixed 500 in its ergonomic form. The body
// carries no declared media type, matching the native fallback.
func fallbackResponse(body string) *Response {
	return &Response{
		StatusCode: StatusInternalServerError,
		Header:     NewHeader(),
		Body:       makeBody([]byte(body), ""),
	}
}

// errorResponse builds the fixed 500 in its native form. The header list is
// present but empty.
func errorResponse(body string) *fastedge.HTTPResponse {
	return &fastedge.HTTPResponse{
		Status:  StatusInternalServerError,
		Headers: []fastedge.HeaderPair{},
		Body:    []byte(body),
	}
}
