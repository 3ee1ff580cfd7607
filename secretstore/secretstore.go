// Copyright 2025 G-Core Innovations SARL

// Package secretstore provides a read-only interface to FastEdge
// application secrets.
//
// Secrets are stored encrypted in the FastEdge platform and decrypted
// as-needed at the edge. A secret may carry multiple values with
// different effective timestamps, supporting gradual rotation.
//
// See the [FastEdge secrets documentation] for details.
//
// [FastEdge secrets documentation]: https://gcore.com/docs/fastedge
package secretstore

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gcore/fastedge-sdk-go/internal/abi/fastedge"
)

var (
	// ErrAccessDenied indicates that the application is not authorized
	// to read the named secret.
	ErrAccessDenied = errors.New("secret access denied")

	// ErrDecrypt indicates that the secret exists but could not be
	// decrypted.
	ErrDecrypt = errors.New("secret decryption failed")

	// ErrOther indicates that an unexpected error occurred. The wrapped
	// message carries whatever the host reported.
	ErrOther = errors.New("unexpected secret error")
)

// Get decrypts and returns the named secret's current value. The second
// return value reports whether the secret exists; a missing secret is not
// an error.
func Get(name string) ([]byte, bool, error) {
	plaintext, ok, err := fastedge.SecretGet(name)
	if err != nil {
		return nil, false, mapSecretErr(err)
	}
	return plaintext, ok, nil
}

// GetEffectiveAt decrypts and returns the value of the named secret that
// is effective at the given time. The wire format carries unix seconds as
// an unsigned 32-bit value; times outside that range are clamped to it.
func GetEffectiveAt(name string, at time.Time) ([]byte, bool, error) {
	plaintext, ok, err := fastedge.SecretGetEffectiveAt(name, unixU32(at))
	if err != nil {
		return nil, false, mapSecretErr(err)
	}
	return plaintext, ok, nil
}

func unixU32(t time.Time) uint32 {
	sec := t.Unix()
	switch {
	case sec < 0:
		return 0
	case sec > math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(sec)
}

func mapSecretErr(err error) error {
	status, ok := fastedge.IsFastEdgeError(err)
	if !ok {
		return err
	}

	var mapped error
	switch status {
	case fastedge.FastEdgeStatusAccessDenied:
		mapped = ErrAccessDenied
	case fastedge.FastEdgeStatusDecryptError:
		mapped = ErrDecrypt
	default:
		return fmt.Errorf("%w (%s)", ErrOther, status)
	}
	if detail := fastedge.ErrorDetail(err); detail != "" {
		return fmt.Errorf("%w (%s)", mapped, detail)
	}
	return mapped
}
