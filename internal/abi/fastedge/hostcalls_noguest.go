//go:build (!tinygo.wasm && !wasip1 && !wasip2) || nofastedgehostcalls

//revive:disable:exported

// Copyright 2025 G-Core Innovations SARL

package fastedge

// This file exists so that applications built on the SDK compile with the
// host Go toolchain, which keeps editors and native test runs working. Every
// hostcall fails with FastEdgeStatusUnsupported.

func errUnsupported() error {
	return FastEdgeError{Status: FastEdgeStatusUnsupported, Detail: "not implemented for this target"}
}

func SendHTTPRequest(req *HTTPRequest) (*HTTPResponse, error) {
	return nil, errUnsupported()
}

func OpenKVStore(name string) (KVStore, error) {
	return KVStore{h: invalidKVStoreHandle}, errUnsupported()
}

func (s KVStore) Get(key string) ([]byte, bool, error) {
	return nil, false, errUnsupported()
}

func (s KVStore) Scan(pattern string) ([]string, error) {
	return nil, errUnsupported()
}

func (s KVStore) ZRangeByScore(key string, min, max float64) ([]ScoredMember, error) {
	return nil, errUnsupported()
}

func (s KVStore) ZScan(key, pattern string) ([]ScoredMember, error) {
	return nil, errUnsupported()
}

func (s KVStore) BFExists(key, item string) (bool, error) {
	return false, errUnsupported()
}

func SecretGet(key string) ([]byte, bool, error) {
	return nil, false, errUnsupported()
}

func SecretGetEffectiveAt(key string, at uint32) ([]byte, bool, error) {
	return nil, false, errUnsupported()
}

func DictionaryGet(name string) ([]byte, bool, error) {
	return nil, false, errUnsupported()
}

func SetUserDiag(msg string) {}
