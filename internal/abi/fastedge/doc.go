// Copyright 2025 G-Core Innovations SARL

// Package fastedge provides access to the FastEdge hostcall interface.
//
// The SDK is modeled in layers. Each layer has a single purpose. This package
// is the lowest layer, and its singular purpose is to adapt each FastEdge
// hostcall to a function which is basically idiomatic Go.
//
// FastEdge exposes two mutually exclusive host interfaces, selected at build
// time. The default is the component interface, where hostcalls are the
// strongly typed functions of the gcore:fastedge world, reached through the
// generated bindings in internal/fastedge. Building with the proxywasm tag
// selects the raw interface instead, where hostcalls are C-style functions
// imported from the env module: pointer and length inputs, integer status
// codes, and host-filled buffers in guest linear memory.
//
// Whichever interface is linked, this package presents the same functions and
// types to the layers above, and maps every native error encoding onto the
// single FastEdgeStatus taxonomy. Packages like fehttp and kvstore treat this
// package as a dependency and never see which interface is underneath.
//
// This package is not and should not be user-accessible. All features,
// capabilities, etc. that should be accessible by users should be made
// available via separate packages that treat this package as a dependency.
package fastedge
