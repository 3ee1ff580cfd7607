//go:build ((tinygo.wasm && wasi) || wasip1 || wasip2) && !nofastedgehostcalls && proxywasm

// Copyright 2025 G-Core Innovations SARL

package fastedge

import (
	"github.com/gcore/fastedge-sdk-go/internal/abi/prim"
)

// int32_t stats_set_user_diag(const char *value, size_t value_len);
//
//go:wasmimport env stats_set_user_diag
//go:noescape
func fastedgeSetUserDiag(valueData prim.Pointer[prim.Char8], valueLen prim.Usize) uint32

// SetUserDiag attaches a diagnostic string to the current invocation. The
// returned status carries nothing the guest can act on and is dropped.
func SetUserDiag(msg string) {
	msgBuf := prim.NewReadBufferFromString(msg)
	fastedgeSetUserDiag(msgBuf.Char8Pointer(), msgBuf.Len())
}
