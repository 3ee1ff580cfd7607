// Copyright 2025 G-Core Innovations SARL

package fastedge

import (
	"unsafe"
)

// Host-filled buffers on the raw interface live in guest linear memory that
// the host obtains by calling the exported allocator. The registry pins every
// such allocation so the garbage collector keeps it alive while only the host
// holds its address, and enforces that each buffer is consumed exactly once:
// take copies the contents into guest-owned memory and drops the pin in the
// same step. After take, the donor allocation is dead and its address must
// never be read again.
//
// Wasm guests are single threaded, so the registry needs no locking.
type bufferRegistry struct {
	buffers map[uintptr][]byte
}

var hostBuffers = bufferRegistry{buffers: map[uintptr][]byte{}}

// pin registers buf as live for the host and returns its address.
func (r *bufferRegistry) pin(buf []byte) uintptr {
	ptr := uintptr(unsafe.Pointer(&buf[0]))
	r.buffers[ptr] = buf
	return ptr
}

// alloc reserves size bytes for the host to fill. Zero-byte requests still
// get a distinct address.
func (r *bufferRegistry) alloc(size uintptr) uintptr {
	if size == 0 {
		size = 1
	}
	return r.pin(make([]byte, size))
}

// take copies the first n bytes of the pinned buffer into guest-owned memory
// and releases the pin. It reports false if ptr is not a live allocation,
// which also catches a second take of the same buffer. n larger than the
// allocation is clamped to it.
func (r *bufferRegistry) take(ptr, n uintptr) ([]byte, bool) {
	buf, ok := r.buffers[ptr]
	if !ok {
		return nil, false
	}
	delete(r.buffers, ptr)

	if n > uintptr(len(buf)) {
		n = uintptr(len(buf))
	}
	out := make([]byte, n)
	copy(out, buf[:n])
	return out, true
}

// release drops a pinned buffer without reading it.
func (r *bufferRegistry) release(ptr uintptr) bool {
	if _, ok := r.buffers[ptr]; !ok {
		return false
	}
	delete(r.buffers, ptr)
	return true
}

// outstanding returns the number of live allocations.
func (r *bufferRegistry) outstanding() int {
	return len(r.buffers)
}

// packPtrLen packs a buffer address and length into the u64 return value of
// the raw interface's request export.
func packPtrLen(ptr uintptr, n int) uint64 {
	return uint64(ptr)<<32 | uint64(uint32(n))
}
