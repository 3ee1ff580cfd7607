//go:build ((tinygo.wasm && wasi) || wasip1 || wasip2) && !nofastedgehostcalls && proxywasm

// Copyright 2025 G-Core Innovations SARL

package fastedge

import (
	"github.com/gcore/fastedge-sdk-go/internal/abi/prim"
)

// int32_t proxy_http_send_request(int32_t method, const char *uri, size_t uri_len,
//     const char *headers, size_t headers_len, const char *body, size_t body_len,
//     char **response, size_t *response_len);
//
// headers is an encoded item list of alternating names and values; the
// response arrives as an encoded response blob.
//
//go:wasmimport env proxy_http_send_request
//go:noescape
func fastedgeHTTPSendRequest(method prim.U32, uriData prim.Pointer[prim.Char8], uriLen prim.Usize, headersData prim.Pointer[prim.U8], headersLen prim.Usize, bodyData prim.Pointer[prim.U8], bodyLen prim.Usize, response prim.Pointer[prim.U32], size prim.Pointer[prim.Usize]) uint32

// SendHTTPRequest performs an outbound request and blocks until the response
// is available.
func SendHTTPRequest(req *HTTPRequest) (*HTTPResponse, error) {
	headerItems := make([][]byte, 0, 2*len(req.Headers))
	for _, p := range req.Headers {
		headerItems = append(headerItems, []byte(p.Name), []byte(p.Value))
	}

	uriBuf := prim.NewReadBufferFromString(req.URI)
	headersBuf := prim.NewReadBufferFromBytes(encodeList(headerItems))
	bodyBuf := prim.NewReadBufferFromBytes(req.Body)

	var out outBuf
	if err := httpStatusError(fastedgeHTTPSendRequest(
		prim.U32(req.Method),
		uriBuf.Char8Pointer(), uriBuf.Len(),
		headersBuf.ArrayU8().Data, headersBuf.Len(),
		bodyBuf.ArrayU8().Data, bodyBuf.Len(),
		out.dataPtr(), out.sizePtr(),
	)); err != nil {
		return nil, err
	}

	blob, err := out.take()
	if err != nil {
		return nil, err
	}
	// A response is structurally required; a null buffer on success is a
	// host defect, not an absent value.
	if blob == nil {
		return nil, FastEdgeError{Status: FastEdgeStatusInternal, Detail: "no response from host"}
	}
	resp, err := decodeHTTPResponse(blob)
	if err != nil {
		return nil, FastEdgeError{Status: FastEdgeStatusInternal, Detail: err.Error()}
	}
	return resp, nil
}

// lastResponse pins the most recent encoded response for the host. The next
// incoming request releases it; invocations are strictly sequential.
var lastResponse uintptr

// proxyOnRequest is the raw interface's request entry point. The host sends
// the encoded request and receives the packed address and length of the
// encoded response.
//
//go:wasmexport proxy_on_request
func proxyOnRequest(data uint32, size uint32) uint64 {
	if lastResponse != 0 {
		hostBuffers.release(lastResponse)
		lastResponse = 0
	}

	var req *HTTPRequest
	var decodeErr error
	blob, ok := hostBuffers.take(uintptr(data), uintptr(size))
	if !ok {
		decodeErr = FastEdgeError{Status: FastEdgeStatusInternal, Detail: "unknown host buffer"}
	} else {
		req, decodeErr = decodeHTTPRequest(blob)
	}

	respBlob := encodeHTTPResponse(handleRequest(req, decodeErr))
	lastResponse = hostBuffers.pin(respBlob)
	return packPtrLen(lastResponse, len(respBlob))
}
