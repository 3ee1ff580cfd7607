// Copyright 2025 G-Core Innovations SARL

package fetest

import (
	"path"
	"sort"

	"github.com/gcore/fastedge-sdk-go/kvstore"
)

// Store is an in-memory stand-in for a key-value store. It carries the
// same method set as [kvstore.Store], so handlers written against consumer
// interfaces accept either. Patterns use path.Match syntax. Unlike a real
// Bloom filter, BFExists is exact.
type Store struct {
	// Values holds the plain key-value entries.
	Values map[string][]byte

	// Sets holds the sorted sets. Members need not be pre-sorted.
	Sets map[string][]kvstore.ScoredValue

	// Filters holds the Bloom filter memberships.
	Filters map[string]map[string]bool
}

// NewStore returns an empty initialized Store.
func NewStore() *Store {
	return &Store{
		Values:  make(map[string][]byte),
		Sets:    make(map[string][]kvstore.ScoredValue),
		Filters: make(map[string]map[string]bool),
	}
}

// Get fetches a key. The second return value reports whether it exists.
func (s *Store) Get(key string) ([]byte, bool, error) {
	value, ok := s.Values[key]
	return value, ok, nil
}

// Scan returns the keys matching pattern, sorted for determinism.
func (s *Store) Scan(pattern string) ([]string, error) {
	var keys []string
	for key := range s.Values {
		ok, err := path.Match(pattern, key)
		if err != nil {
			return nil, err
		}
		if ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// ZRangeByScore returns the members of the sorted set at key with scores
// within [min, max], ordered by score.
func (s *Store) ZRangeByScore(key string, min, max float64) ([]kvstore.ScoredValue, error) {
	var members []kvstore.ScoredValue
	for _, m := range s.Sets[key] {
		if m.Score >= min && m.Score <= max {
			members = append(members, m)
		}
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Score < members[j].Score
	})
	return members, nil
}

// ZScan returns the members of the sorted set at key whose values match
// pattern, ordered by score.
func (s *Store) ZScan(key, pattern string) ([]kvstore.ScoredValue, error) {
	var members []kvstore.ScoredValue
	for _, m := range s.Sets[key] {
		ok, err := path.Match(pattern, string(m.Value))
		if err != nil {
			return nil, err
		}
		if ok {
			members = append(members, m)
		}
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Score < members[j].Score
	})
	return members, nil
}

// BFExists reports whether item is in the filter at key.
func (s *Store) BFExists(key, item string) (bool, error) {
	return s.Filters[key][item], nil
}
