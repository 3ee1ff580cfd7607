//go:build ((tinygo.wasm && wasi) || wasip1 || wasip2) && !nofastedgehostcalls && !proxywasm

// Copyright 2025 G-Core Innovations SARL

package fastedge

import (
	"strings"
	"unsafe"

	"go.bytecodealliance.org/cm"

	"github.com/gcore/fastedge-sdk-go/internal/abi/prim"
)

// componentResponse is the canonical form of the http response record.
type componentResponse struct {
	_       cm.HostLayout
	status  uint16
	headers cm.Option[httpHeaders]
	body    cm.Option[cm.List[uint8]]
}

// httpSendResult's error arm is the http error enum discriminant.
type httpSendResult = cm.Result[componentResponse, componentResponse, uint8]

// wit:
//
//	send-request: func(request: request) -> result<response, error>
//
// The request record flattens into the eight core parameters below; the
// result arrives through the trailing pointer.
//
//go:wasmimport gcore:fastedge/http-client send-request
//go:noescape
func wasmimportSendRequest(method prim.U32, uriData prim.Pointer[prim.Char8], uriLen prim.Usize, headersData prim.Pointer[cm.Tuple[string, string]], headersLen prim.Usize, bodyTag prim.U32, bodyData prim.Pointer[prim.U8], bodyLen prim.Usize, result prim.Pointer[httpSendResult])

// SendHTTPRequest performs an outbound request and blocks until the response
// is available.
func SendHTTPRequest(req *HTTPRequest) (*HTTPResponse, error) {
	headers := make([]cm.Tuple[string, string], len(req.Headers))
	for i, p := range req.Headers {
		headers[i] = cm.Tuple[string, string]{F0: p.Name, F1: p.Value}
	}
	var headersData prim.Pointer[cm.Tuple[string, string]]
	if len(headers) > 0 {
		headersData = prim.ToPointer(&headers[0])
	}

	// The body option is always some on the wire; an absent payload goes
	// out as an empty list.
	bodyTag := prim.U32(1)
	var bodyData prim.Pointer[prim.U8]
	var bodyLen prim.Usize
	if len(req.Body) > 0 {
		body := prim.NewReadBufferFromBytes(req.Body).ArrayU8()
		bodyData, bodyLen = body.Data, body.Len
	}

	uriBuf := prim.NewReadBufferFromString(req.URI)

	var result httpSendResult
	wasmimportSendRequest(
		prim.U32(req.Method),
		uriBuf.Char8Pointer(), uriBuf.Len(),
		headersData, prim.Usize(len(headers)),
		bodyTag, bodyData, bodyLen,
		prim.ToPointer(&result),
	)
	if result.IsErr() {
		return nil, httpVariantError(uint32(*result.Err()))
	}
	return liftResponse(result.OK()), nil
}

// liftResponse copies a host-lifted response record into the neutral form.
func liftResponse(r *componentResponse) *HTTPResponse {
	resp := &HTTPResponse{Status: r.status}
	if hdrs := r.headers.Some(); hdrs != nil {
		pairs := hdrs.Slice()
		resp.Headers = make([]HeaderPair, len(pairs))
		for i := range pairs {
			resp.Headers[i] = HeaderPair{
				Name:  strings.Clone(pairs[i].F0),
				Value: strings.Clone(pairs[i].F1),
			}
		}
	}
	if body, ok := liftOptionBytes(r.body); ok {
		resp.Body = body
	}
	return resp
}

// The process result area stays live from the export's return until the
// post-return export runs.
var (
	processResult  componentResponse
	processHeaders []cm.Tuple[string, string]
	processBody    []byte
)

// wit:
//
//	process: func(req: request) -> response
//
// The host calls this once per incoming request with the request record
// flattened into core parameters. The response doesn't fit one core value,
// so the export returns a pointer into the static result area.
//
//go:wasmexport gcore:fastedge/http-handler#process
func wasmexportProcess(method uint32, uriData uint32, uriLen uint32, headersData uint32, headersLen uint32, bodyTag uint32, bodyData uint32, bodyLen uint32) uint32 {
	req := &HTTPRequest{
		Method: HTTPMethod(method),
		URI:    liftExportString(uriData, uriLen),
	}
	if headersLen > 0 {
		pairs := unsafe.Slice((*cm.Tuple[string, string])(unsafe.Pointer(uintptr(headersData))), headersLen)
		req.Headers = make([]HeaderPair, len(pairs))
		for i := range pairs {
			req.Headers[i] = HeaderPair{
				Name:  strings.Clone(pairs[i].F0),
				Value: strings.Clone(pairs[i].F1),
			}
		}
	}
	if bodyTag != 0 {
		req.Body = liftExportBytes(bodyData, bodyLen)
	}

	return lowerProcessResponse(handleRequest(req, nil))
}

//go:wasmexport cabi_post_gcore:fastedge/http-handler#process
func wasmexportProcessPost(result uint32) {
	processResult = componentResponse{}
	processHeaders = nil
	processBody = nil
}

// lowerProcessResponse stores resp in the static result area and returns its
// address. A nil header slice lowers to an absent option, an allocated one
// to a present list. The body option is always some; a response without a
// payload carries an empty list.
func lowerProcessResponse(resp *HTTPResponse) uint32 {
	processBody = resp.Body

	processResult = componentResponse{
		status:  resp.Status,
		headers: cm.None[httpHeaders](),
		body:    cm.Some(cm.ToList(processBody)),
	}
	if resp.Headers != nil {
		processHeaders = make([]cm.Tuple[string, string], len(resp.Headers))
		for i, p := range resp.Headers {
			processHeaders[i] = cm.Tuple[string, string]{F0: p.Name, F1: p.Value}
		}
		processResult.headers = cm.Some(cm.ToList(processHeaders))
	}
	return uint32(uintptr(unsafe.Pointer(&processResult)))
}

// liftExportString copies a canonical string the host lowered into linear
// memory for an export call.
func liftExportString(data, size uint32) string {
	if size == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(uintptr(data))), size))
}

// liftExportBytes copies a canonical list<u8> the host lowered into linear
// memory for an export call.
func liftExportBytes(data, size uint32) []byte {
	if size == 0 {
		return nil
	}
	return append([]byte(nil), unsafe.Slice((*byte)(unsafe.Pointer(uintptr(data))), size)...)
}
