// Copyright 2025 G-Core Innovations SARL

// Package kvstore provides read access to FastEdge key-value stores.
//
// Key-value stores hold application data in the FastEdge platform,
// readable at the edge. Stores are opened by name; each application is
// granted access to a configured set of stores.
//
// See the [FastEdge key-value documentation] for details.
//
// [FastEdge key-value documentation]: https://gcore.com/docs/fastedge
package kvstore

import (
	"errors"
	"fmt"

	"github.com/gcore/fastedge-sdk-go/internal/abi/fastedge"
)

var (
	// ErrNoSuchStore indicates that the named store doesn't exist.
	ErrNoSuchStore = errors.New("kvstore: store not found")

	// ErrAccessDenied indicates that the application is not authorized
	// to use the named store.
	ErrAccessDenied = errors.New("kvstore: access denied")

	// ErrInternal indicates that an unexpected error occurred on the
	// host. The wrapped message carries any detail the host reported.
	ErrInternal = errors.New("kvstore: internal error")
)

// ScoredValue is one member of a sorted-set result, a value together with
// the score that ordered it.
type ScoredValue struct {
	Value []byte
	Score float64
}

// Store represents a FastEdge key-value store. Handles are scoped to the
// current invocation and must not be retained across requests.
type Store struct {
	kv fastedge.KVStore
}

// Open returns a handle to the named key-value store.
func Open(name string) (*Store, error) {
	kv, err := fastedge.OpenKVStore(name)
	if err != nil {
		return nil, mapFastEdgeErr(err)
	}
	return &Store{kv: kv}, nil
}

// OpenDefault returns a handle to the application's default store, the
// store named "default".
func OpenDefault() (*Store, error) {
	return Open("default")
}

// Get fetches a key from the store. The second return value reports
// whether the key exists; a missing key is not an error.
func (s *Store) Get(key string) ([]byte, bool, error) {
	value, ok, err := s.kv.Get(key)
	if err != nil {
		return nil, false, mapFastEdgeErr(err)
	}
	return value, ok, nil
}

// Scan returns the keys in the store matching a glob-style pattern. A
// pattern matching nothing yields an empty result, not an error.
func (s *Store) Scan(pattern string) ([]string, error) {
	keys, err := s.kv.Scan(pattern)
	if err != nil {
		return nil, mapFastEdgeErr(err)
	}
	return keys, nil
}

// ZRangeByScore returns the members of the sorted set at key whose scores
// are within [min, max], with their scores.
func (s *Store) ZRangeByScore(key string, min, max float64) ([]ScoredValue, error) {
	members, err := s.kv.ZRangeByScore(key, min, max)
	if err != nil {
		return nil, mapFastEdgeErr(err)
	}
	return scoredValues(members), nil
}

// ZScan returns the members of the sorted set at key matching a glob-style
// pattern, with their scores.
func (s *Store) ZScan(key, pattern string) ([]ScoredValue, error) {
	members, err := s.kv.ZScan(key, pattern)
	if err != nil {
		return nil, mapFastEdgeErr(err)
	}
	return scoredValues(members), nil
}

// BFExists reports whether item is possibly present in the Bloom filter at
// key. False positives are inherent to the data structure; false means
// definitely absent.
func (s *Store) BFExists(key, item string) (bool, error) {
	exists, err := s.kv.BFExists(key, item)
	if err != nil {
		return false, mapFastEdgeErr(err)
	}
	return exists, nil
}

func scoredValues(members []fastedge.ScoredMember) []ScoredValue {
	if members == nil {
		return nil
	}
	values := make([]ScoredValue, len(members))
	for i, m := range members {
		values[i] = ScoredValue{Value: m.Value, Score: m.Score}
	}
	return values
}

var kvErrToErr = [...]error{
	fastedge.FastEdgeStatusInternal:     ErrInternal,
	fastedge.FastEdgeStatusNoSuchStore:  ErrNoSuchStore,
	fastedge.FastEdgeStatusAccessDenied: ErrAccessDenied,
}

func mapFastEdgeErr(err error) error {
	status, ok := fastedge.IsFastEdgeError(err)
	if !ok {
		// No idea; just return what we have.
		return err
	}

	var mapped error
	if int(status) < len(kvErrToErr) {
		mapped = kvErrToErr[status]
	}
	if mapped == nil {
		return fmt.Errorf("%w (%s)", ErrInternal, status)
	}
	if detail := fastedge.ErrorDetail(err); detail != "" {
		return fmt.Errorf("%w (%s)", mapped, detail)
	}
	return mapped
}
