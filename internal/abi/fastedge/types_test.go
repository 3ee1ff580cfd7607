// Copyright 2025 G-Core Innovations SARL

package fastedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusStrings(t *testing.T) {
	t.Parallel()

	for status, want := range map[FastEdgeStatus]string{
		FastEdgeStatusOK:                    "OK",
		FastEdgeStatusInternal:              "Internal",
		FastEdgeStatusNoSuchStore:           "NoSuchStore",
		FastEdgeStatusAccessDenied:          "AccessDenied",
		FastEdgeStatusDecryptError:          "DecryptError",
		FastEdgeStatusDestinationNotAllowed: "DestinationNotAllowed",
		FastEdgeStatusInvalidURL:            "InvalidURL",
		FastEdgeStatusRequestError:          "RequestError",
		FastEdgeStatusRuntimeError:          "RuntimeError",
		FastEdgeStatusTooManyRequests:       "TooManyRequests",
		FastEdgeStatusUnsupported:           "Unsupported",
		FastEdgeStatus(1000):                "unknown",
	} {
		assert.Equal(t, want, status.String())
	}
}

func TestFastEdgeError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, FastEdgeStatusOK.toError())

	err := FastEdgeStatusAccessDenied.toError()
	require.Error(t, err)
	assert.Equal(t, "FastEdge error: AccessDenied", err.Error())

	detailed := FastEdgeError{Status: FastEdgeStatusInternal, Detail: "unexpected status: 9"}
	assert.Equal(t, "FastEdge error: Internal (unexpected status: 9)", detailed.Error())

	status, ok := IsFastEdgeError(err)
	assert.True(t, ok)
	assert.Equal(t, FastEdgeStatusAccessDenied, status)

	_, ok = IsFastEdgeError(assert.AnError)
	assert.False(t, ok)

	assert.Equal(t, "unexpected status: 9", ErrorDetail(detailed))
	assert.Empty(t, ErrorDetail(assert.AnError))
}

func TestHTTPMethodNames(t *testing.T) {
	t.Parallel()

	for m, want := range map[HTTPMethod]string{
		HTTPMethodGet:     "GET",
		HTTPMethodPost:    "POST",
		HTTPMethodPut:     "PUT",
		HTTPMethodDelete:  "DELETE",
		HTTPMethodHead:    "HEAD",
		HTTPMethodPatch:   "PATCH",
		HTTPMethodOptions: "OPTIONS",
	} {
		name, ok := HTTPMethodName(m)
		require.True(t, ok)
		assert.Equal(t, want, name)

		parsed, ok := ParseHTTPMethod(want)
		require.True(t, ok)
		assert.Equal(t, m, parsed)
	}

	_, ok := HTTPMethodName(HTTPMethod(7))
	assert.False(t, ok)

	for _, name := range []string{"TRACE", "CONNECT", "get", ""} {
		_, ok := ParseHTTPMethod(name)
		assert.False(t, ok, name)
	}
}

func TestHandleRequestWithoutHandler(t *testing.T) {
	prev := requestHandler
	defer SetRequestHandler(prev)

	SetRequestHandler(nil)
	resp := handleRequest(&HTTPRequest{Method: HTTPMethodGet, URI: "/"}, nil)
	require.NotNil(t, resp)
	assert.Equal(t, uint16(500), resp.Status)
	assert.NotNil(t, resp.Headers)
	assert.Equal(t, []byte("internal error"), resp.Body)
}

func TestHandleRequestDispatch(t *testing.T) {
	prev := requestHandler
	defer SetRequestHandler(prev)

	var got *HTTPRequest
	SetRequestHandler(func(req *HTTPRequest, decodeErr error) *HTTPResponse {
		got = req
		require.NoError(t, decodeErr)
		return &HTTPResponse{Status: 204, Headers: []HeaderPair{}}
	})

	in := &HTTPRequest{Method: HTTPMethodDelete, URI: "/items/4"}
	resp := handleRequest(in, nil)
	assert.Same(t, in, got)
	assert.Equal(t, uint16(204), resp.Status)
}
