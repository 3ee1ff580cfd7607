//go:build ((tinygo.wasm && wasi) || wasip1 || wasip2) && !nofastedgehostcalls && !proxywasm

// Copyright 2025 G-Core Innovations SARL

package fastedge

import (
	"go.bytecodealliance.org/cm"
)

// The component interface imports typed functions from the gcore:fastedge
// WIT package; wit/fastedge.wit is the authoritative definition and each
// import below quotes its declaration. Values cross the boundary in canonical
// ABI form: flattened core parameters going in, and a caller-provided result
// pointer coming out whenever the result doesn't fit in one core value. The
// record and variant types in these files reproduce the canonical memory
// layouts the host writes through those result pointers, so field order,
// width and padding are all load-bearing.

// httpHeaders is the canonical form of list<tuple<string, string>>.
type httpHeaders = cm.List[cm.Tuple[string, string]]

// cloneBytes copies a host-lifted byte list into guest-owned memory.
func cloneBytes(l cm.List[uint8]) []byte {
	return append([]byte(nil), l.Slice()...)
}

// liftOptionBytes unwraps an option<list<u8>> result. Absent values report
// ok == false.
func liftOptionBytes(o cm.Option[cm.List[uint8]]) ([]byte, bool) {
	v := o.Some()
	if v == nil {
		return nil, false
	}
	return cloneBytes(*v), true
}
