//go:build ((tinygo.wasm && wasi) || wasip1 || wasip2) && !nofastedgehostcalls && proxywasm

// Copyright 2025 G-Core Innovations SARL

package fastedge

// proxyOnMemoryAllocate hands the host a fresh guest buffer to fill. The
// allocation stays pinned until the hostcall that produced it consumes it.
//
//go:wasmexport proxy_on_memory_allocate
func proxyOnMemoryAllocate(size uint32) uint32 {
	return uint32(hostBuffers.alloc(uintptr(size)))
}
