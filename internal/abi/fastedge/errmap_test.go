// Copyright 2025 G-Core Innovations SARL

package fastedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireStatus(t *testing.T, err error, want FastEdgeStatus) {
	t.Helper()
	status, ok := IsFastEdgeError(err)
	require.True(t, ok, "error %v", err)
	require.Equal(t, want, status)
}

func TestKVOpenStatusMapping(t *testing.T) {
	t.Parallel()

	assert.NoError(t, kvOpenStatusError(rawStatusOK))
	requireStatus(t, kvOpenStatusError(rawKVStatusNoSuchStore), FastEdgeStatusNoSuchStore)
	requireStatus(t, kvOpenStatusError(rawKVStatusAccessDenied), FastEdgeStatusAccessDenied)

	// Codes this SDK does not know about fold into the catch-all but keep
	// what the host reported.
	for _, code := range []uint32{3, 17, 0xFFFFFFFF} {
		err := kvOpenStatusError(code)
		requireStatus(t, err, FastEdgeStatusInternal)
		assert.Equal(t, unexpectedStatus(code), ErrorDetail(err))
	}
}

func TestKVStatusMapping(t *testing.T) {
	t.Parallel()

	assert.NoError(t, kvStatusError(rawStatusOK))
	for _, code := range []uint32{1, 2, 3, 255} {
		err := kvStatusError(code)
		requireStatus(t, err, FastEdgeStatusInternal)
		assert.Equal(t, unexpectedStatus(code), ErrorDetail(err))
	}
}

func TestSecretStatusMapping(t *testing.T) {
	t.Parallel()

	assert.NoError(t, secretStatusError(rawStatusOK))
	assert.NoError(t, secretStatusError(rawSecretStatusNotFound))
	requireStatus(t, secretStatusError(rawSecretStatusAccessDenied), FastEdgeStatusAccessDenied)
	requireStatus(t, secretStatusError(rawSecretStatusDecryptError), FastEdgeStatusDecryptError)
	requireStatus(t, secretStatusError(99), FastEdgeStatusInternal)
}

func TestDictionaryStatusMapping(t *testing.T) {
	t.Parallel()

	assert.NoError(t, dictionaryStatusError(rawStatusOK))
	assert.NoError(t, dictionaryStatusError(rawDictionaryStatusNotFound))
	requireStatus(t, dictionaryStatusError(2), FastEdgeStatusInternal)
}

func TestHTTPStatusMapping(t *testing.T) {
	t.Parallel()

	assert.NoError(t, httpStatusError(rawStatusOK))
	requireStatus(t, httpStatusError(rawHTTPStatusDestinationNotAllowed), FastEdgeStatusDestinationNotAllowed)
	requireStatus(t, httpStatusError(rawHTTPStatusInvalidURL), FastEdgeStatusInvalidURL)
	requireStatus(t, httpStatusError(rawHTTPStatusRequestError), FastEdgeStatusRequestError)
	requireStatus(t, httpStatusError(rawHTTPStatusRuntimeError), FastEdgeStatusRuntimeError)
	requireStatus(t, httpStatusError(rawHTTPStatusTooManyRequests), FastEdgeStatusTooManyRequests)

	err := httpStatusError(42)
	requireStatus(t, err, FastEdgeStatusRuntimeError)
	assert.Equal(t, unexpectedStatus(42), ErrorDetail(err))
}

func TestKVVariantMapping(t *testing.T) {
	t.Parallel()

	requireStatus(t, kvVariantError(kvVariantNoSuchStore, ""), FastEdgeStatusNoSuchStore)
	requireStatus(t, kvVariantError(kvVariantAccessDenied, ""), FastEdgeStatusAccessDenied)

	err := kvVariantError(kvVariantOther, "backend timeout")
	requireStatus(t, err, FastEdgeStatusInternal)
	assert.Equal(t, "backend timeout", ErrorDetail(err))

	requireStatus(t, kvVariantError(7, ""), FastEdgeStatusInternal)
}

func TestSecretVariantMapping(t *testing.T) {
	t.Parallel()

	requireStatus(t, secretVariantError(secretVariantAccessDenied, ""), FastEdgeStatusAccessDenied)
	requireStatus(t, secretVariantError(secretVariantDecryptError, ""), FastEdgeStatusDecryptError)

	err := secretVariantError(secretVariantOther, "kms unavailable")
	requireStatus(t, err, FastEdgeStatusInternal)
	assert.Equal(t, "kms unavailable", ErrorDetail(err))

	requireStatus(t, secretVariantError(7, ""), FastEdgeStatusInternal)
}

func TestDictionaryVariantMapping(t *testing.T) {
	t.Parallel()

	err := dictionaryVariantError(dictionaryVariantOther, "missing app config")
	requireStatus(t, err, FastEdgeStatusInternal)
	assert.Equal(t, "missing app config", ErrorDetail(err))

	requireStatus(t, dictionaryVariantError(7, ""), FastEdgeStatusInternal)
}

func TestHTTPVariantMapping(t *testing.T) {
	t.Parallel()

	requireStatus(t, httpVariantError(0), FastEdgeStatusDestinationNotAllowed)
	requireStatus(t, httpVariantError(1), FastEdgeStatusInvalidURL)
	requireStatus(t, httpVariantError(2), FastEdgeStatusRequestError)
	requireStatus(t, httpVariantError(3), FastEdgeStatusRuntimeError)
	requireStatus(t, httpVariantError(4), FastEdgeStatusTooManyRequests)
	requireStatus(t, httpVariantError(9), FastEdgeStatusRuntimeError)
}

// Both host interfaces report the same failure conditions. The tables that
// map them must land on the same unified status for each condition.
func TestInterfaceTablesEquivalent(t *testing.T) {
	t.Parallel()

	for code := uint32(1); code <= 5; code++ {
		rawStatus, ok := IsFastEdgeError(httpStatusError(code))
		require.True(t, ok)
		variantStatus, ok := IsFastEdgeError(httpVariantError(code - 1))
		require.True(t, ok)
		assert.Equal(t, rawStatus, variantStatus, "http code %d", code)
	}

	pairs := []struct {
		raw     error
		variant error
	}{
		{kvOpenStatusError(rawKVStatusNoSuchStore), kvVariantError(kvVariantNoSuchStore, "")},
		{kvOpenStatusError(rawKVStatusAccessDenied), kvVariantError(kvVariantAccessDenied, "")},
		{secretStatusError(rawSecretStatusAccessDenied), secretVariantError(secretVariantAccessDenied, "")},
		{secretStatusError(rawSecretStatusDecryptError), secretVariantError(secretVariantDecryptError, "")},
	}
	for _, p := range pairs {
		rawStatus, ok := IsFastEdgeError(p.raw)
		require.True(t, ok)
		variantStatus, ok := IsFastEdgeError(p.variant)
		require.True(t, ok)
		assert.Equal(t, rawStatus, variantStatus)
	}
}
