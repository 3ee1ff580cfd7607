// Copyright 2025 G-Core Innovations SARL

package fetest

import (
	"time"

	"github.com/gcore/fastedge-sdk-go/secretstore"
)

// Secrets is an in-memory stand-in for the application's secrets,
// mirroring the [secretstore] package's Get functions as methods. The fake
// holds a single value per secret; GetEffectiveAt ignores the time.
type Secrets struct {
	// Values holds the decrypted secret values.
	Values map[string][]byte

	// Denied names secrets that fail with secretstore.ErrAccessDenied.
	Denied map[string]bool
}

// Get returns the named secret's value. The second return value reports
// whether the secret exists.
func (s *Secrets) Get(name string) ([]byte, bool, error) {
	if s.Denied[name] {
		return nil, false, secretstore.ErrAccessDenied
	}
	value, ok := s.Values[name]
	return value, ok, nil
}

// GetEffectiveAt returns the same value as Get regardless of at.
func (s *Secrets) GetEffectiveAt(name string, at time.Time) ([]byte, bool, error) {
	return s.Get(name)
}
