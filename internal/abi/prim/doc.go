// Copyright 2025 G-Core Innovations SARL

// Package prim contains primitive types used in Wasm ABI functions. It acts as
// a common dependency for package fastedge, which provides the hostcall layer
// for both flavors of the FastEdge guest interface.
package prim
