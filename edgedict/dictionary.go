// Copyright 2025 G-Core Innovations SARL

package edgedict

import (
	"errors"
	"fmt"

	"github.com/gcore/fastedge-sdk-go/internal/abi/fastedge"
)

var (
	// ErrUnexpected indicates an unexpected error occurred. The wrapped
	// message carries the host's status.
	ErrUnexpected = errors.New("unexpected dictionary error")
)

// Get returns the dictionary value for the given key. Keys are case
// sensitive. The second return value reports whether the key exists; a
// missing key is not an error.
func Get(key string) (string, bool, error) {
	value, ok, err := fastedge.DictionaryGet(key)
	if err != nil {
		return "", false, mapDictionaryErr(err)
	}
	if !ok {
		return "", false, nil
	}
	return string(value), true, nil
}

func mapDictionaryErr(err error) error {
	status, ok := fastedge.IsFastEdgeError(err)
	if !ok {
		return err
	}
	if detail := fastedge.ErrorDetail(err); detail != "" {
		return fmt.Errorf("%w (%s: %s)", ErrUnexpected, status, detail)
	}
	return fmt.Errorf("%w (%s)", ErrUnexpected, status)
}
