//go:build ((tinygo.wasm && wasi) || wasip1 || wasip2) && !nofastedgehostcalls && proxywasm

// Copyright 2025 G-Core Innovations SARL

package fastedge

import (
	"github.com/gcore/fastedge-sdk-go/internal/abi/prim"
)

// decodeScoredMembers parses a host-encoded list of sorted-set items. A nil
// blob is the documented empty result.
func decodeScoredMembers(blob []byte) ([]ScoredMember, error) {
	if blob == nil {
		return nil, nil
	}
	items, err := decodeList(blob)
	if err != nil {
		return nil, FastEdgeError{Status: FastEdgeStatusInternal, Detail: err.Error()}
	}
	members := make([]ScoredMember, len(items))
	for i, item := range items {
		members[i] = splitScoredMember(item)
	}
	return members, nil
}

// int32_t proxy_kv_store_open(const char *name, size_t name_len, uint32_t *store);
//
//go:wasmimport env proxy_kv_store_open
//go:noescape
func fastedgeKVStoreOpen(nameData prim.Pointer[prim.Char8], nameLen prim.Usize, store prim.Pointer[kvStoreHandle]) uint32

// OpenKVStore opens the named store.
func OpenKVStore(name string) (KVStore, error) {
	nameBuf := prim.NewReadBufferFromString(name)

	h := invalidKVStoreHandle
	if err := kvOpenStatusError(fastedgeKVStoreOpen(nameBuf.Char8Pointer(), nameBuf.Len(), prim.ToPointer(&h))); err != nil {
		return KVStore{h: invalidKVStoreHandle}, err
	}
	return KVStore{h: h}, nil
}

// int32_t proxy_kv_store_get(uint32_t store, const char *key, size_t key_len, char **value, size_t *value_len);
//
//go:wasmimport env proxy_kv_store_get
//go:noescape
func fastedgeKVStoreGet(store kvStoreHandle, keyData prim.Pointer[prim.Char8], keyLen prim.Usize, value prim.Pointer[prim.U32], size prim.Pointer[prim.Usize]) uint32

// Get returns the value stored under key. Missing keys report ok == false.
func (s KVStore) Get(key string) ([]byte, bool, error) {
	keyBuf := prim.NewReadBufferFromString(key)

	var out outBuf
	if err := kvStatusError(fastedgeKVStoreGet(s.h, keyBuf.Char8Pointer(), keyBuf.Len(), out.dataPtr(), out.sizePtr())); err != nil {
		return nil, false, err
	}
	value, err := out.take()
	if err != nil || value == nil {
		return nil, false, err
	}
	return value, true, nil
}

// int32_t proxy_kv_store_scan(uint32_t store, const char *pattern, size_t pattern_len, char **keys, size_t *keys_len);
//
//go:wasmimport env proxy_kv_store_scan
//go:noescape
func fastedgeKVStoreScan(store kvStoreHandle, patternData prim.Pointer[prim.Char8], patternLen prim.Usize, keys prim.Pointer[prim.U32], size prim.Pointer[prim.Usize]) uint32

// Scan returns the keys matching a glob-style pattern.
func (s KVStore) Scan(pattern string) ([]string, error) {
	patternBuf := prim.NewReadBufferFromString(pattern)

	var out outBuf
	if err := kvStatusError(fastedgeKVStoreScan(s.h, patternBuf.Char8Pointer(), patternBuf.Len(), out.dataPtr(), out.sizePtr())); err != nil {
		return nil, err
	}
	blob, err := out.take()
	if err != nil || blob == nil {
		return nil, err
	}
	items, err := decodeList(blob)
	if err != nil {
		return nil, FastEdgeError{Status: FastEdgeStatusInternal, Detail: err.Error()}
	}
	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = string(item)
	}
	return keys, nil
}

// int32_t proxy_kv_store_zrange_by_score(uint32_t store, const char *key, size_t key_len, double min, double max, char **values, size_t *values_len);
//
//go:wasmimport env proxy_kv_store_zrange_by_score
//go:noescape
func fastedgeKVStoreZRangeByScore(store kvStoreHandle, keyData prim.Pointer[prim.Char8], keyLen prim.Usize, min prim.F64, max prim.F64, values prim.Pointer[prim.U32], size prim.Pointer[prim.Usize]) uint32

// ZRangeByScore returns the sorted-set members of key with scores in
// [min, max].
func (s KVStore) ZRangeByScore(key string, min, max float64) ([]ScoredMember, error) {
	keyBuf := prim.NewReadBufferFromString(key)

	var out outBuf
	if err := kvStatusError(fastedgeKVStoreZRangeByScore(s.h, keyBuf.Char8Pointer(), keyBuf.Len(), prim.F64(min), prim.F64(max), out.dataPtr(), out.sizePtr())); err != nil {
		return nil, err
	}
	blob, err := out.take()
	if err != nil {
		return nil, err
	}
	return decodeScoredMembers(blob)
}

// int32_t proxy_kv_store_zscan(uint32_t store, const char *key, size_t key_len, const char *pattern, size_t pattern_len, char **values, size_t *values_len);
//
//go:wasmimport env proxy_kv_store_zscan
//go:noescape
func fastedgeKVStoreZScan(store kvStoreHandle, keyData prim.Pointer[prim.Char8], keyLen prim.Usize, patternData prim.Pointer[prim.Char8], patternLen prim.Usize, values prim.Pointer[prim.U32], size prim.Pointer[prim.Usize]) uint32

// ZScan returns the sorted-set members of key matching a glob-style pattern.
func (s KVStore) ZScan(key, pattern string) ([]ScoredMember, error) {
	keyBuf := prim.NewReadBufferFromString(key)
	patternBuf := prim.NewReadBufferFromString(pattern)

	var out outBuf
	if err := kvStatusError(fastedgeKVStoreZScan(s.h, keyBuf.Char8Pointer(), keyBuf.Len(), patternBuf.Char8Pointer(), patternBuf.Len(), out.dataPtr(), out.sizePtr())); err != nil {
		return nil, err
	}
	blob, err := out.take()
	if err != nil {
		return nil, err
	}
	return decodeScoredMembers(blob)
}

// int32_t proxy_kv_store_bf_exists(uint32_t store, const char *key, size_t key_len, const char *item, size_t item_len, uint32_t *exists);
//
//go:wasmimport env proxy_kv_store_bf_exists
//go:noescape
func fastedgeKVStoreBFExists(store kvStoreHandle, keyData prim.Pointer[prim.Char8], keyLen prim.Usize, itemData prim.Pointer[prim.Char8], itemLen prim.Usize, exists prim.Pointer[prim.U32]) uint32

// BFExists reports whether item may be present in the bloom filter at key.
func (s KVStore) BFExists(key, item string) (bool, error) {
	keyBuf := prim.NewReadBufferFromString(key)
	itemBuf := prim.NewReadBufferFromString(item)

	var exists prim.U32
	if err := kvStatusError(fastedgeKVStoreBFExists(s.h, keyBuf.Char8Pointer(), keyBuf.Len(), itemBuf.Char8Pointer(), itemBuf.Len(), prim.ToPointer(&exists))); err != nil {
		return false, err
	}
	return exists != 0, nil
}
