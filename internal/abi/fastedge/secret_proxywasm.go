//go:build ((tinygo.wasm && wasi) || wasip1 || wasip2) && !nofastedgehostcalls && proxywasm

// Copyright 2025 G-Core Innovations SARL

package fastedge

import (
	"github.com/gcore/fastedge-sdk-go/internal/abi/prim"
)

// int32_t proxy_secret_get(const char *key, size_t key_len, char **value, size_t *value_len);
//
//go:wasmimport env proxy_secret_get
//go:noescape
func fastedgeSecretGet(keyData prim.Pointer[prim.Char8], keyLen prim.Usize, value prim.Pointer[prim.U32], size prim.Pointer[prim.Usize]) uint32

// SecretGet decrypts and returns the secret effective now. Missing secrets
// report ok == false.
func SecretGet(key string) ([]byte, bool, error) {
	keyBuf := prim.NewReadBufferFromString(key)

	var out outBuf
	status := fastedgeSecretGet(keyBuf.Char8Pointer(), keyBuf.Len(), out.dataPtr(), out.sizePtr())
	if status == rawSecretStatusNotFound {
		return nil, false, nil
	}
	if err := secretStatusError(status); err != nil {
		return nil, false, err
	}
	value, err := out.take()
	if err != nil || value == nil {
		return nil, false, err
	}
	return value, true, nil
}

// int32_t proxy_secret_get_effective_at(const char *key, size_t key_len, uint32_t at, char **value, size_t *value_len);
//
//go:wasmimport env proxy_secret_get_effective_at
//go:noescape
func fastedgeSecretGetEffectiveAt(keyData prim.Pointer[prim.Char8], keyLen prim.Usize, at prim.U32, value prim.Pointer[prim.U32], size prim.Pointer[prim.Usize]) uint32

// SecretGetEffectiveAt decrypts and returns the secret effective at the given
// unix time. Missing secrets report ok == false.
func SecretGetEffectiveAt(key string, at uint32) ([]byte, bool, error) {
	keyBuf := prim.NewReadBufferFromString(key)

	var out outBuf
	status := fastedgeSecretGetEffectiveAt(keyBuf.Char8Pointer(), keyBuf.Len(), prim.U32(at), out.dataPtr(), out.sizePtr())
	if status == rawSecretStatusNotFound {
		return nil, false, nil
	}
	if err := secretStatusError(status); err != nil {
		return nil, false, err
	}
	value, err := out.take()
	if err != nil || value == nil {
		return nil, false, err
	}
	return value, true, nil
}
