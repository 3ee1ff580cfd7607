// Copyright 2025 G-Core Innovations SARL

package host

// Fixtures is the capability state one guest module runs against: the kv
// stores, secrets and dictionary items the application has been granted, and
// the scripted upstreams it may proxy to.
type Fixtures struct {
	Stores     map[string]*StoreFixture
	Secrets    map[string]SecretFixture
	Dictionary map[string]string
	Upstreams  map[string]UpstreamFixture
}

// StoreFixture is one kv store: plain values, sorted sets and bloom filters.
type StoreFixture struct {
	Values  map[string][]byte
	Sets    map[string][]ScoredEntry
	Filters map[string]map[string]bool
}

// ScoredEntry is one sorted-set member. Entries are kept in score order.
type ScoredEntry struct {
	Value string
	Score float64
}

// SecretFixture is one secret slot. Denied and Corrupt force the matching
// failure status instead of returning Value.
type SecretFixture struct {
	Value   []byte
	Denied  bool
	Corrupt bool
}

// UpstreamFixture scripts the response for one proxied URI. A URI with no
// fixture is outside the application's allowlist and the send hostcall
// rejects it as a disallowed destination.
type UpstreamFixture struct {
	Status  uint16
	Headers []Header
	Body    []byte
}

// DefaultFixtures returns the state the stock test applications run against.
// The tests under integration_tests/ name these values; change them in both
// places or not at all.
func DefaultFixtures() *Fixtures {
	return &Fixtures{
		Stores: map[string]*StoreFixture{
			"test-store": {
				Values: map[string][]byte{
					"hello":  []byte("world"),
					"user:1": []byte("alice"),
					"user:2": []byte("bob"),
				},
				Sets: map[string][]ScoredEntry{
					"scores": {
						{Value: "alice", Score: 10},
						{Value: "bob", Score: 20},
						{Value: "carol", Score: 30},
					},
				},
				Filters: map[string]map[string]bool{
					"seen": {"alice": true},
				},
			},
		},
		Secrets: map[string]SecretFixture{
			"api-token": {Value: []byte("t0ps3cret")},
			"locked":    {Denied: true},
			"garbled":   {Corrupt: true},
		},
		Dictionary: map[string]string{
			"greeting":    "Hello, World!",
			"empty-value": "",
			"backend":     "http://origin.test/",
		},
		Upstreams: map[string]UpstreamFixture{
			"http://origin.test/": {
				Status:  200,
				Headers: []Header{{Name: "OriginHeader", Value: "OriginValue"}},
				Body:    []byte("Hello from Origin"),
			},
		},
	}
}
