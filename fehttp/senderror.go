// Copyright 2025 G-Core Innovations SARL

package fehttp

import (
	"errors"
	"fmt"

	"github.com/gcore/fastedge-sdk-go/internal/abi/fastedge"
)

var (
	// ErrUnsupportedMethod indicates a request method outside the set the
	// host accepts: GET, POST, PUT, DELETE, HEAD, PATCH and OPTIONS.
	ErrUnsupportedMethod = errors.New("fehttp: unsupported method")

	// ErrInvalidStatusCode indicates a response status code outside
	// [100, 599].
	ErrInvalidStatusCode = errors.New("fehttp: invalid status code")

	// ErrInvalidBody indicates a payload that could not be encoded, such
	// as a JSONBody value json.Marshal rejects.
	ErrInvalidBody = errors.New("fehttp: invalid body")
)

// Sentinel errors for outbound request failures. Use errors.Is to check for
// specific values; the wrapped message preserves any host-reported detail.
var (
	// ErrDestinationNotAllowed indicates the request target is not on the
	// application's allowlist.
	ErrDestinationNotAllowed = errors.New("fehttp: destination not allowed")

	// ErrInvalidURL indicates the host could not parse the request URL.
	ErrInvalidURL = errors.New("fehttp: invalid url")

	// ErrRequest indicates the request failed between the host and the
	// destination.
	ErrRequest = errors.New("fehttp: request failed")

	// ErrRuntime indicates the host HTTP client failed internally. Failures
	// the SDK cannot attribute to a more specific cause also land here.
	ErrRuntime = errors.New("fehttp: runtime error")

	// ErrTooManyRequests indicates the application exceeded its outbound
	// request limit.
	ErrTooManyRequests = errors.New("fehttp: too many requests")
)

var sendErrToErr = [...]error{
	fastedge.FastEdgeStatusDestinationNotAllowed: ErrDestinationNotAllowed,
	fastedge.FastEdgeStatusInvalidURL:            ErrInvalidURL,
	fastedge.FastEdgeStatusRequestError:          ErrRequest,
	fastedge.FastEdgeStatusRuntimeError:          ErrRuntime,
	fastedge.FastEdgeStatusTooManyRequests:       ErrTooManyRequests,
}

// mapSendError converts a hostcall error into this package's sentinels.
// Errors that did not come from the host pass through unchanged.
func mapSendError(err error) error {
	status, ok := fastedge.IsFastEdgeError(err)
	if !ok {
		return err
	}

	var mapped error
	if int(status) < len(sendErrToErr) {
		mapped = sendErrToErr[status]
	}
	if mapped == nil {
		return fmt.Errorf("%w (%s)", ErrRuntime, status)
	}
	if detail := fastedge.ErrorDetail(err); detail != "" {
		return fmt.Errorf("%w (%s)", mapped, detail)
	}
	return mapped
}
