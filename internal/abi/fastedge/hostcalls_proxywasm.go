//go:build ((tinygo.wasm && wasi) || wasip1 || wasip2) && !nofastedgehostcalls && proxywasm

// Copyright 2025 G-Core Innovations SARL

package fastedge

import (
	"github.com/gcore/fastedge-sdk-go/internal/abi/prim"
)

// The raw interface imports plain functions from the env module. Compound
// values cross as pointer and length pairs. Buffers the host produces live in
// allocations it requests through the exported allocator (mem_proxywasm.go)
// and hands back through double-pointer out parameters; each one is consumed
// exactly once. Signatures are listed in C form above each import.

// outBuf receives a host-written buffer pointer and its length.
type outBuf struct {
	data prim.U32
	size prim.Usize
}

func (b *outBuf) dataPtr() prim.Pointer[prim.U32] {
	return prim.ToPointer(&b.data)
}

func (b *outBuf) sizePtr() prim.Pointer[prim.Usize] {
	return prim.ToPointer(&b.size)
}

// take consumes the host-written allocation, copying it into guest-owned
// memory and releasing the pin. A null pointer is the documented absent
// result and yields nil with no error.
func (b *outBuf) take() ([]byte, error) {
	if b.data == 0 {
		return nil, nil
	}
	buf, ok := hostBuffers.take(uintptr(b.data), uintptr(b.size))
	if !ok {
		return nil, FastEdgeError{Status: FastEdgeStatusInternal, Detail: "unknown host buffer"}
	}
	return buf, nil
}
