//go:build ((tinygo.wasm && wasi) || wasip1 || wasip2) && !nofastedgehostcalls && !proxywasm

// Copyright 2025 G-Core Innovations SARL

package fastedge

import (
	"github.com/gcore/fastedge-sdk-go/internal/abi/prim"
)

// wit:
//
//	set-user-diag: func(msg: string)
//
//go:wasmimport gcore:fastedge/utils set-user-diag
//go:noescape
func wasmimportSetUserDiag(msgData prim.Pointer[prim.Char8], msgLen prim.Usize)

// SetUserDiag attaches a diagnostic string to the current invocation.
func SetUserDiag(msg string) {
	msgBuf := prim.NewReadBufferFromString(msg)
	wasmimportSetUserDiag(msgBuf.Char8Pointer(), msgBuf.Len())
}
