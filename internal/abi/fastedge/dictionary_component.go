//go:build ((tinygo.wasm && wasi) || wasip1 || wasip2) && !nofastedgehostcalls && !proxywasm

// Copyright 2025 G-Core Innovations SARL

package fastedge

import (
	"go.bytecodealliance.org/cm"

	"github.com/gcore/fastedge-sdk-go/internal/abi/prim"
)

// dictionaryError is the canonical form of the dictionary interface's error
// variant, which has a single other(string) case.
type dictionaryError struct {
	_   cm.HostLayout
	tag uint8
	_   [3]byte
	msg string
}

func (e *dictionaryError) toError() error {
	var msg string
	if uint32(e.tag) == dictionaryVariantOther {
		msg = e.msg
	}
	return dictionaryVariantError(uint32(e.tag), msg)
}

type dictionaryBytesResult = cm.Result[dictionaryError, cm.Option[cm.List[uint8]], dictionaryError]

// wit:
//
//	get: func(name: string) -> result<option<list<u8>>, error>
//
//go:wasmimport gcore:fastedge/dictionary get
//go:noescape
func wasmimportDictionaryGet(nameData prim.Pointer[prim.Char8], nameLen prim.Usize, result prim.Pointer[dictionaryBytesResult])

// DictionaryGet returns the application setting stored under name. Missing
// settings report ok == false.
func DictionaryGet(name string) ([]byte, bool, error) {
	nameBuf := prim.NewReadBufferFromString(name)

	var result dictionaryBytesResult
	wasmimportDictionaryGet(nameBuf.Char8Pointer(), nameBuf.Len(), prim.ToPointer(&result))
	if result.IsErr() {
		return nil, false, result.Err().toError()
	}
	value, ok := liftOptionBytes(*result.OK())
	return value, ok, nil
}
