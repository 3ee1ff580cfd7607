// Copyright 2025 G-Core Innovations SARL

package fetest

// Dictionary is an in-memory stand-in for the application dictionary,
// mirroring the [edgedict] package's Get function as a method.
type Dictionary struct {
	Values map[string]string
}

// Get returns the dictionary value for key. The second return value
// reports whether the key exists.
func (d *Dictionary) Get(key string) (string, bool, error) {
	value, ok := d.Values[key]
	return value, ok, nil
}
