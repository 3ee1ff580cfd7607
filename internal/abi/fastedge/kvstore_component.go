//go:build ((tinygo.wasm && wasi) || wasip1 || wasip2) && !nofastedgehostcalls && !proxywasm

// Copyright 2025 G-Core Innovations SARL

package fastedge

import (
	"go.bytecodealliance.org/cm"

	"github.com/gcore/fastedge-sdk-go/internal/abi/prim"
)

// kvError is the canonical form of the key-value interface's error variant.
// The message field is the other payload and is valid only for that case.
type kvError struct {
	_   cm.HostLayout
	tag uint8
	_   [3]byte
	msg string
}

func (e *kvError) toError() error {
	var msg string
	if uint32(e.tag) == kvVariantOther {
		msg = e.msg
	}
	return kvVariantError(uint32(e.tag), msg)
}

type (
	kvOpenResult   = cm.Result[kvError, kvStoreHandle, kvError]
	kvBytesResult  = cm.Result[kvError, cm.Option[cm.List[uint8]], kvError]
	kvKeysResult   = cm.Result[kvError, cm.List[string], kvError]
	kvScoredResult = cm.Result[kvError, cm.List[cm.Tuple[cm.List[uint8], float64]], kvError]
	kvBoolResult   = cm.Result[kvError, bool, kvError]
)

// liftScoredMembers copies a host-lifted list<tuple<list<u8>, f64>> into
// guest-owned memory.
func liftScoredMembers(l cm.List[cm.Tuple[cm.List[uint8], float64]]) []ScoredMember {
	pairs := l.Slice()
	members := make([]ScoredMember, len(pairs))
	for i := range pairs {
		members[i] = ScoredMember{Value: cloneBytes(pairs[i].F0), Score: pairs[i].F1}
	}
	return members
}

// wit:
//
//	open: static func(name: string) -> result<store, error>
//
//go:wasmimport gcore:fastedge/key-value [static]store.open
//go:noescape
func wasmimportKVStoreOpen(nameData prim.Pointer[prim.Char8], nameLen prim.Usize, result prim.Pointer[kvOpenResult])

// OpenKVStore opens the named store.
func OpenKVStore(name string) (KVStore, error) {
	nameBuf := prim.NewReadBufferFromString(name)

	var result kvOpenResult
	wasmimportKVStoreOpen(nameBuf.Char8Pointer(), nameBuf.Len(), prim.ToPointer(&result))
	if result.IsErr() {
		return KVStore{h: invalidKVStoreHandle}, result.Err().toError()
	}
	return KVStore{h: *result.OK()}, nil
}

// wit:
//
//	get: func(key: string) -> result<option<list<u8>>, error>
//
//go:wasmimport gcore:fastedge/key-value [method]store.get
//go:noescape
func wasmimportKVStoreGet(store kvStoreHandle, keyData prim.Pointer[prim.Char8], keyLen prim.Usize, result prim.Pointer[kvBytesResult])

// Get returns the value stored under key. Missing keys report ok == false.
func (s KVStore) Get(key string) ([]byte, bool, error) {
	keyBuf := prim.NewReadBufferFromString(key)

	var result kvBytesResult
	wasmimportKVStoreGet(s.h, keyBuf.Char8Pointer(), keyBuf.Len(), prim.ToPointer(&result))
	if result.IsErr() {
		return nil, false, result.Err().toError()
	}
	value, ok := liftOptionBytes(*result.OK())
	return value, ok, nil
}

// wit:
//
//	scan: func(pattern: string) -> result<list<string>, error>
//
//go:wasmimport gcore:fastedge/key-value [method]store.scan
//go:noescape
func wasmimportKVStoreScan(store kvStoreHandle, patternData prim.Pointer[prim.Char8], patternLen prim.Usize, result prim.Pointer[kvKeysResult])

// Scan returns the keys matching a glob-style pattern.
func (s KVStore) Scan(pattern string) ([]string, error) {
	patternBuf := prim.NewReadBufferFromString(pattern)

	var result kvKeysResult
	wasmimportKVStoreScan(s.h, patternBuf.Char8Pointer(), patternBuf.Len(), prim.ToPointer(&result))
	if result.IsErr() {
		return nil, result.Err().toError()
	}
	return append([]string(nil), result.OK().Slice()...), nil
}

// wit:
//
//	zrange-by-score: func(key: string, min: f64, max: f64) -> result<list<tuple<list<u8>, f64>>, error>
//
//go:wasmimport gcore:fastedge/key-value [method]store.zrange-by-score
//go:noescape
func wasmimportKVStoreZRangeByScore(store kvStoreHandle, keyData prim.Pointer[prim.Char8], keyLen prim.Usize, min prim.F64, max prim.F64, result prim.Pointer[kvScoredResult])

// ZRangeByScore returns the sorted-set members of key with scores in
// [min, max].
func (s KVStore) ZRangeByScore(key string, min, max float64) ([]ScoredMember, error) {
	keyBuf := prim.NewReadBufferFromString(key)

	var result kvScoredResult
	wasmimportKVStoreZRangeByScore(s.h, keyBuf.Char8Pointer(), keyBuf.Len(), prim.F64(min), prim.F64(max), prim.ToPointer(&result))
	if result.IsErr() {
		return nil, result.Err().toError()
	}
	return liftScoredMembers(*result.OK()), nil
}

// wit:
//
//	zscan: func(key: string, pattern: string) -> result<list<tuple<list<u8>, f64>>, error>
//
//go:wasmimport gcore:fastedge/key-value [method]store.zscan
//go:noescape
func wasmimportKVStoreZScan(store kvStoreHandle, keyData prim.Pointer[prim.Char8], keyLen prim.Usize, patternData prim.Pointer[prim.Char8], patternLen prim.Usize, result prim.Pointer[kvScoredResult])

// ZScan returns the sorted-set members of key matching a glob-style pattern.
func (s KVStore) ZScan(key, pattern string) ([]ScoredMember, error) {
	keyBuf := prim.NewReadBufferFromString(key)
	patternBuf := prim.NewReadBufferFromString(pattern)

	var result kvScoredResult
	wasmimportKVStoreZScan(s.h, keyBuf.Char8Pointer(), keyBuf.Len(), patternBuf.Char8Pointer(), patternBuf.Len(), prim.ToPointer(&result))
	if result.IsErr() {
		return nil, result.Err().toError()
	}
	return liftScoredMembers(*result.OK()), nil
}

// wit:
//
//	bf-exists: func(key: string, item: string) -> result<bool, error>
//
//go:wasmimport gcore:fastedge/key-value [method]store.bf-exists
//go:noescape
func wasmimportKVStoreBFExists(store kvStoreHandle, keyData prim.Pointer[prim.Char8], keyLen prim.Usize, itemData prim.Pointer[prim.Char8], itemLen prim.Usize, result prim.Pointer[kvBoolResult])

// BFExists reports whether item may be present in the bloom filter at key.
func (s KVStore) BFExists(key, item string) (bool, error) {
	keyBuf := prim.NewReadBufferFromString(key)
	itemBuf := prim.NewReadBufferFromString(item)

	var result kvBoolResult
	wasmimportKVStoreBFExists(s.h, keyBuf.Char8Pointer(), keyBuf.Len(), itemBuf.Char8Pointer(), itemBuf.Len(), prim.ToPointer(&result))
	if result.IsErr() {
		return false, result.Err().toError()
	}
	return *result.OK(), nil
}
