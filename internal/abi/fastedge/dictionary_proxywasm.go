//go:build ((tinygo.wasm && wasi) || wasip1 || wasip2) && !nofastedgehostcalls && proxywasm

// Copyright 2025 G-Core Innovations SARL

package fastedge

import (
	"github.com/gcore/fastedge-sdk-go/internal/abi/prim"
)

// int32_t proxy_dictionary_get(const char *name, size_t name_len, char **value, size_t *value_len);
//
//go:wasmimport env proxy_dictionary_get
//go:noescape
func fastedgeDictionaryGet(nameData prim.Pointer[prim.Char8], nameLen prim.Usize, value prim.Pointer[prim.U32], size prim.Pointer[prim.Usize]) uint32

// DictionaryGet returns the application setting stored under name. Missing
// settings report ok == false.
func DictionaryGet(name string) ([]byte, bool, error) {
	nameBuf := prim.NewReadBufferFromString(name)

	var out outBuf
	status := fastedgeDictionaryGet(nameBuf.Char8Pointer(), nameBuf.Len(), out.dataPtr(), out.sizePtr())
	if status == rawDictionaryStatusNotFound {
		return nil, false, nil
	}
	if err := dictionaryStatusError(status); err != nil {
		return nil, false, err
	}
	value, err := out.take()
	if err != nil || value == nil {
		return nil, false, err
	}
	return value, true, nil
}
