// Copyright 2025 G-Core Innovations SARL

// Package edgedict provides a read-only interface to the application's
// dictionary, the FastEdge configuration surface. Refer to
// https://gcore.com/docs/fastedge for more information.
package edgedict
