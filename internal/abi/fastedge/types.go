//lint:file-ignore U1000 Ignore all unused code
//revive:disable:exported

// Copyright 2025 G-Core Innovations SARL

package fastedge

import (
	"fmt"
	"math"
)

type handle uintptr

// FastEdgeStatus is the unified error taxonomy for both host interfaces.
// Every native error encoding, typed variant or raw status code, maps onto
// exactly one of these values before it leaves this package.
type FastEdgeStatus uint32

const (
	// FastEdgeStatusOK means the hostcall succeeded.
	FastEdgeStatusOK FastEdgeStatus = 0

	// FastEdgeStatusInternal is the catch-all for host failures with no
	// dedicated value, including status codes this SDK does not know about.
	// The accompanying detail preserves what the host reported.
	FastEdgeStatusInternal FastEdgeStatus = 1

	// FastEdgeStatusNoSuchStore means the named key-value store doesn't
	// exist, or the application cannot see it.
	FastEdgeStatusNoSuchStore FastEdgeStatus = 2

	// FastEdgeStatusAccessDenied means the application is not authorized
	// for the store or secret it asked for.
	FastEdgeStatusAccessDenied FastEdgeStatus = 3

	// FastEdgeStatusDecryptError means the secret exists but could not be
	// decrypted.
	FastEdgeStatusDecryptError FastEdgeStatus = 4

	// FastEdgeStatusDestinationNotAllowed means the outbound request
	// target is not on the application's allowlist.
	FastEdgeStatusDestinationNotAllowed FastEdgeStatus = 5

	// FastEdgeStatusInvalidURL means the outbound request URI could not be
	// parsed by the host.
	FastEdgeStatusInvalidURL FastEdgeStatus = 6

	// FastEdgeStatusRequestError means the outbound request failed between
	// the host and the destination.
	FastEdgeStatusRequestError FastEdgeStatus = 7

	// FastEdgeStatusRuntimeError means the host HTTP client failed
	// internally.
	FastEdgeStatusRuntimeError FastEdgeStatus = 8

	// FastEdgeStatusTooManyRequests means the application exceeded its
	// outbound request limit.
	FastEdgeStatusTooManyRequests FastEdgeStatus = 9

	// FastEdgeStatusUnsupported means the hostcall is not available in this
	// build, for example when the SDK is compiled for a non-wasm target.
	FastEdgeStatusUnsupported FastEdgeStatus = 10
)

// String implements fmt.Stringer.
func (s FastEdgeStatus) String() string {
	switch s {
	case FastEdgeStatusOK:
		return "OK"
	case FastEdgeStatusInternal:
		return "Internal"
	case FastEdgeStatusNoSuchStore:
		return "NoSuchStore"
	case FastEdgeStatusAccessDenied:
		return "AccessDenied"
	case FastEdgeStatusDecryptError:
		return "DecryptError"
	case FastEdgeStatusDestinationNotAllowed:
		return "DestinationNotAllowed"
	case FastEdgeStatusInvalidURL:
		return "InvalidURL"
	case FastEdgeStatusRequestError:
		return "RequestError"
	case FastEdgeStatusRuntimeError:
		return "RuntimeError"
	case FastEdgeStatusTooManyRequests:
		return "TooManyRequests"
	case FastEdgeStatusUnsupported:
		return "Unsupported"
	default:
		return "unknown"
	}
}

func (s FastEdgeStatus) toError() error {
	switch s {
	case FastEdgeStatusOK:
		return nil
	default:
		return FastEdgeError{Status: s}
	}
}

// FastEdgeError decorates error-class FastEdgeStatus values and implements
// the error interface. Detail preserves the host-provided message or the raw
// status code folded into a catch-all status.
//
// Note that TinyGo currently doesn't support errors.As. Callers can use the
// IsFastEdgeError helper instead.
type FastEdgeError struct {
	Status FastEdgeStatus
	Detail string
}

// Error implements the error interface.
func (e FastEdgeError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("FastEdge error: %s", e.Status.String())
	}
	return fmt.Sprintf("FastEdge error: %s (%s)", e.Status.String(), e.Detail)
}

func (e FastEdgeError) getStatus() FastEdgeStatus {
	return e.Status
}

// IsFastEdgeError detects and unwraps a FastEdgeError to its status.
func IsFastEdgeError(err error) (FastEdgeStatus, bool) {
	if e, ok := err.(interface{ getStatus() FastEdgeStatus }); ok {
		return e.getStatus(), true
	}
	return 0, false
}

// ErrorDetail returns the detail string of a FastEdgeError, if err is one.
func ErrorDetail(err error) string {
	if e, ok := err.(FastEdgeError); ok {
		return e.Detail
	}
	return ""
}

// HTTPMethod is the shared numeric encoding of an HTTP request method: the
// discriminant of the component interface's method enum, and the method code
// on the raw interface's wire.
type HTTPMethod uint32

const (
	HTTPMethodGet     HTTPMethod = 0
	HTTPMethodPost    HTTPMethod = 1
	HTTPMethodPut     HTTPMethod = 2
	HTTPMethodDelete  HTTPMethod = 3
	HTTPMethodHead    HTTPMethod = 4
	HTTPMethodPatch   HTTPMethod = 5
	HTTPMethodOptions HTTPMethod = 6
)

var httpMethodNames = [...]string{
	HTTPMethodGet:     "GET",
	HTTPMethodPost:    "POST",
	HTTPMethodPut:     "PUT",
	HTTPMethodDelete:  "DELETE",
	HTTPMethodHead:    "HEAD",
	HTTPMethodPatch:   "PATCH",
	HTTPMethodOptions: "OPTIONS",
}

// HTTPMethodName returns the request-line spelling of m. The second return
// value reports whether m is one of the methods the host accepts.
func HTTPMethodName(m HTTPMethod) (string, bool) {
	if int(m) < len(httpMethodNames) {
		return httpMethodNames[m], true
	}
	return "", false
}

// ParseHTTPMethod maps a request-line method to its numeric encoding. The
// host accepts a closed set; anything else reports false.
func ParseHTTPMethod(name string) (HTTPMethod, bool) {
	for m, n := range httpMethodNames {
		if n == name {
			return HTTPMethod(m), true
		}
	}
	return 0, false
}

// HeaderPair is one (name, value) element of an HTTP header sequence. Order
// and duplicates are significant and preserved.
type HeaderPair struct {
	Name  string
	Value string
}

// HTTPRequest is the interface-neutral form of an HTTP request.
type HTTPRequest struct {
	Method  HTTPMethod
	URI     string
	Headers []HeaderPair
	Body    []byte // nil when the native form carries no body
}

// HTTPResponse is the interface-neutral form of an HTTP response.
type HTTPResponse struct {
	Status uint16

	// Headers distinguishes nil (omitted from the native message) from an
	// empty non-nil slice (an explicitly present, empty header list).
	Headers []HeaderPair

	Body []byte
}

// RequestHandler is installed once by package fehttp and invoked for each
// incoming request. When the native request cannot be decoded, req is nil and
// decodeErr says why. The handler must always return a usable response.
type RequestHandler func(req *HTTPRequest, decodeErr error) *HTTPResponse

var requestHandler RequestHandler

// SetRequestHandler installs the handler invoked for incoming requests.
func SetRequestHandler(h RequestHandler) {
	requestHandler = h
}

func handleRequest(req *HTTPRequest, decodeErr error) *HTTPResponse {
	if requestHandler == nil {
		return &HTTPResponse{Status: 500, Headers: []HeaderPair{}, Body: []byte("internal error")}
	}
	return requestHandler(req, decodeErr)
}

// ScoredMember is one sorted-set member with its score.
type ScoredMember struct {
	Value []byte
	Score float64
}

type kvStoreHandle handle

const invalidKVStoreHandle = kvStoreHandle(math.MaxUint32 - 1)

// KVStore represents a FastEdge key-value store, a durable collection of
// keys, sorted sets and bloom filters the application has been granted
// access to.
type KVStore struct {
	h kvStoreHandle
}

// Raw-interface status codes, as reported by the env module hostcalls. The
// component interface expresses the same conditions as typed variants; the
// mapping functions below keep the two in lockstep.
const (
	rawStatusOK uint32 = 0

	rawKVStatusNoSuchStore  uint32 = 1
	rawKVStatusAccessDenied uint32 = 2

	rawSecretStatusNotFound     uint32 = 1
	rawSecretStatusAccessDenied uint32 = 2
	rawSecretStatusDecryptError uint32 = 3

	rawDictionaryStatusNotFound uint32 = 1

	rawHTTPStatusDestinationNotAllowed uint32 = 1
	rawHTTPStatusInvalidURL            uint32 = 2
	rawHTTPStatusRequestError          uint32 = 3
	rawHTTPStatusRuntimeError          uint32 = 4
	rawHTTPStatusTooManyRequests       uint32 = 5
)

func unexpectedStatus(code uint32) string {
	return fmt.Sprintf("unexpected status: %d", code)
}

// kvOpenStatusError maps a raw kv open status to the unified taxonomy.
func kvOpenStatusError(code uint32) error {
	switch code {
	case rawStatusOK:
		return nil
	case rawKVStatusNoSuchStore:
		return FastEdgeError{Status: FastEdgeStatusNoSuchStore}
	case rawKVStatusAccessDenied:
		return FastEdgeError{Status: FastEdgeStatusAccessDenied}
	default:
		return FastEdgeError{Status: FastEdgeStatusInternal, Detail: unexpectedStatus(code)}
	}
}

// kvStatusError maps a raw status from the kv data operations. Those
// hostcalls signal every failure, including unknown stores, with a bare
// non-zero status.
func kvStatusError(code uint32) error {
	if code == rawStatusOK {
		return nil
	}
	return FastEdgeError{Status: FastEdgeStatusInternal, Detail: unexpectedStatus(code)}
}

// secretStatusError maps a raw secret status. Status 1 is "no such secret"
// and not an error; callers must handle it before calling this.
func secretStatusError(code uint32) error {
	switch code {
	case rawStatusOK, rawSecretStatusNotFound:
		return nil
	case rawSecretStatusAccessDenied:
		return FastEdgeError{Status: FastEdgeStatusAccessDenied}
	case rawSecretStatusDecryptError:
		return FastEdgeError{Status: FastEdgeStatusDecryptError}
	default:
		return FastEdgeError{Status: FastEdgeStatusInternal, Detail: unexpectedStatus(code)}
	}
}

// dictionaryStatusError maps a raw dictionary status. Status 1 is "no such
// item" and not an error; callers must handle it before calling this.
func dictionaryStatusError(code uint32) error {
	switch code {
	case rawStatusOK, rawDictionaryStatusNotFound:
		return nil
	default:
		return FastEdgeError{Status: FastEdgeStatusInternal, Detail: unexpectedStatus(code)}
	}
}

// httpStatusError maps a raw outbound HTTP status to the unified taxonomy.
func httpStatusError(code uint32) error {
	switch code {
	case rawStatusOK:
		return nil
	case rawHTTPStatusDestinationNotAllowed:
		return FastEdgeError{Status: FastEdgeStatusDestinationNotAllowed}
	case rawHTTPStatusInvalidURL:
		return FastEdgeError{Status: FastEdgeStatusInvalidURL}
	case rawHTTPStatusRequestError:
		return FastEdgeError{Status: FastEdgeStatusRequestError}
	case rawHTTPStatusRuntimeError:
		return FastEdgeError{Status: FastEdgeStatusRuntimeError}
	case rawHTTPStatusTooManyRequests:
		return FastEdgeError{Status: FastEdgeStatusTooManyRequests}
	default:
		return FastEdgeError{Status: FastEdgeStatusRuntimeError, Detail: unexpectedStatus(code)}
	}
}

// Component-interface variant discriminants. The order matches the error
// declarations in wit/fastedge.wit.
const (
	kvVariantNoSuchStore  uint32 = 0
	kvVariantAccessDenied uint32 = 1
	kvVariantOther        uint32 = 2

	secretVariantAccessDenied uint32 = 0
	secretVariantDecryptError uint32 = 1
	secretVariantOther        uint32 = 2

	dictionaryVariantOther uint32 = 0
)

// kvVariantError maps a typed key-value error variant to the unified
// taxonomy. msg is the payload of the other case, empty otherwise.
func kvVariantError(disc uint32, msg string) error {
	switch disc {
	case kvVariantNoSuchStore:
		return FastEdgeError{Status: FastEdgeStatusNoSuchStore}
	case kvVariantAccessDenied:
		return FastEdgeError{Status: FastEdgeStatusAccessDenied}
	case kvVariantOther:
		return FastEdgeError{Status: FastEdgeStatusInternal, Detail: msg}
	default:
		return FastEdgeError{Status: FastEdgeStatusInternal, Detail: unexpectedStatus(disc)}
	}
}

// secretVariantError maps a typed secret error variant to the unified
// taxonomy.
func secretVariantError(disc uint32, msg string) error {
	switch disc {
	case secretVariantAccessDenied:
		return FastEdgeError{Status: FastEdgeStatusAccessDenied}
	case secretVariantDecryptError:
		return FastEdgeError{Status: FastEdgeStatusDecryptError}
	case secretVariantOther:
		return FastEdgeError{Status: FastEdgeStatusInternal, Detail: msg}
	default:
		return FastEdgeError{Status: FastEdgeStatusInternal, Detail: unexpectedStatus(disc)}
	}
}

// dictionaryVariantError maps a typed dictionary error variant to the
// unified taxonomy.
func dictionaryVariantError(disc uint32, msg string) error {
	switch disc {
	case dictionaryVariantOther:
		return FastEdgeError{Status: FastEdgeStatusInternal, Detail: msg}
	default:
		return FastEdgeError{Status: FastEdgeStatusInternal, Detail: unexpectedStatus(disc)}
	}
}

// httpVariantError maps a typed outbound HTTP error discriminant to the
// unified taxonomy. The raw interface reports the same five conditions as
// status codes offset by one; the two tables must stay equivalent.
func httpVariantError(disc uint32) error {
	switch disc {
	case 0:
		return FastEdgeError{Status: FastEdgeStatusDestinationNotAllowed}
	case 1:
		return FastEdgeError{Status: FastEdgeStatusInvalidURL}
	case 2:
		return FastEdgeError{Status: FastEdgeStatusRequestError}
	case 3:
		return FastEdgeError{Status: FastEdgeStatusRuntimeError}
	case 4:
		return FastEdgeError{Status: FastEdgeStatusTooManyRequests}
	default:
		return FastEdgeError{Status: FastEdgeStatusRuntimeError, Detail: unexpectedStatus(disc)}
	}
}
