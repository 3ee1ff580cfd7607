//go:build ((tinygo.wasm && wasi) || wasip1 || wasip2) && !nofastedgehostcalls && !proxywasm

// Copyright 2025 G-Core Innovations SARL

package fastedge

import (
	"go.bytecodealliance.org/cm"

	"github.com/gcore/fastedge-sdk-go/internal/abi/prim"
)

// secretError is the canonical form of the secret interface's error variant.
// The message field is the other payload and is valid only for that case.
type secretError struct {
	_   cm.HostLayout
	tag uint8
	_   [3]byte
	msg string
}

func (e *secretError) toError() error {
	var msg string
	if uint32(e.tag) == secretVariantOther {
		msg = e.msg
	}
	return secretVariantError(uint32(e.tag), msg)
}

type secretBytesResult = cm.Result[secretError, cm.Option[cm.List[uint8]], secretError]

// wit:
//
//	get: func(key: string) -> result<option<list<u8>>, error>
//
//go:wasmimport gcore:fastedge/secret get
//go:noescape
func wasmimportSecretGet(keyData prim.Pointer[prim.Char8], keyLen prim.Usize, result prim.Pointer[secretBytesResult])

// SecretGet decrypts and returns the secret effective now. Missing secrets
// report ok == false.
func SecretGet(key string) ([]byte, bool, error) {
	keyBuf := prim.NewReadBufferFromString(key)

	var result secretBytesResult
	wasmimportSecretGet(keyBuf.Char8Pointer(), keyBuf.Len(), prim.ToPointer(&result))
	if result.IsErr() {
		return nil, false, result.Err().toError()
	}
	value, ok := liftOptionBytes(*result.OK())
	return value, ok, nil
}

// wit:
//
//	get-effective-at: func(key: string, at: u32) -> result<option<list<u8>>, error>
//
//go:wasmimport gcore:fastedge/secret get-effective-at
//go:noescape
func wasmimportSecretGetEffectiveAt(keyData prim.Pointer[prim.Char8], keyLen prim.Usize, at prim.U32, result prim.Pointer[secretBytesResult])

// SecretGetEffectiveAt decrypts and returns the secret effective at the given
// unix time. Missing secrets report ok == false.
func SecretGetEffectiveAt(key string, at uint32) ([]byte, bool, error) {
	keyBuf := prim.NewReadBufferFromString(key)

	var result secretBytesResult
	wasmimportSecretGetEffectiveAt(keyBuf.Char8Pointer(), keyBuf.Len(), prim.U32(at), prim.ToPointer(&result))
	if result.IsErr() {
		return nil, false, result.Err().toError()
	}
	value, ok := liftOptionBytes(*result.OK())
	return value, ok, nil
}
