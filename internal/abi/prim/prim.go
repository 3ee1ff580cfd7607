// Copyright 2025 G-Core Innovations SARL

package prim

import (
	"reflect"
	"unsafe"
)

// Usize is an unsigned integer who's size is based on the system architecture.
type Usize uint32

// Char8 is an unsigned 8 bit integer.
type Char8 uint8

// U8 is an unsigned 8 bit integer.
type U8 uint8

// U16 is an unsigned 16 bit integer.
type U16 uint16

// U32 is an unsigned 32 bit integer.
type U32 uint32

// U64 is an unsigned 64 bit integer.
type U64 uint64

// F64 is a 64 bit float.
type F64 float64

// Pointer is an address in linear memory, viewed as a pointer to T. Hostcall
// signatures use it instead of real pointer types so that the same declaration
// is valid for every wasm toolchain we target.
type Pointer[T any] uint32

// ToPointer converts a Go pointer into a Pointer suitable for a hostcall.
//
// Technically, Go's GC is permitted to move memory around whenever it wants
// (with a few exceptions). This is normally safe, because it updates
// references to that memory at the same time. But an address captured here
// isn't understood by the GC as a reference, which means that our usage is
// technically unsafe: if the GC moved the value during a hostcall, the
// hostcall would end up writing to an invalid location.
//
// This works fine, though, because hostcalls only happen under +build
// tinygo.wasm or wasip1, and none of the GC implementations available there do
// any of that fancy stuff. But it's definitely a risk we need to be aware of
// when upgrading toolchains in the future.
func ToPointer[T any](p *T) Pointer[T] {
	return Pointer[T](uintptr(unsafe.Pointer(p)))
}

// NullChar8Pointer returns a null pointer to Char8.
func NullChar8Pointer() Pointer[Char8] {
	return 0
}

// NullU8Pointer returns a null pointer to U8.
func NullU8Pointer() Pointer[U8] {
	return 0
}

// Wstring is a header for a string.
type Wstring struct {
	Data Pointer[U8]
	Len  Usize
}

// ArrayU8 is a header for an array of U8.
type ArrayU8 Wstring

// ArrayChar8 is a header for an array of Char8.
type ArrayChar8 Wstring

// ReadBuffer wraps memory that hostcalls may read from. The GC caveats
// described on ToPointer apply to the captured address here as well.
type ReadBuffer struct {
	buf []byte
	hdr *reflect.SliceHeader
}

// NewReadBufferFromString creates a ReadBuffer with its buffer based on the
// provided string.
func NewReadBufferFromString(s string) *ReadBuffer {
	return NewReadBufferFromBytes([]byte(s))
}

// NewReadBufferFromBytes creates a new ReadBuffer with the provided byte slice
// used as its buffer.
func NewReadBufferFromBytes(buf []byte) *ReadBuffer {
	b := &ReadBuffer{buf: buf}                            // copy the slice header into our struct
	b.hdr = (*reflect.SliceHeader)(unsafe.Pointer(&b.buf)) // point to our copy of the slice header
	return b
}

// Wstring returns the buffers data as a Wstring.
func (b *ReadBuffer) Wstring() Wstring {
	return Wstring{
		Data: Pointer[U8](b.hdr.Data),
		Len:  Usize(b.hdr.Len),
	}
}

// ArrayU8 returns the buffers data as a ArrayU8.
func (b *ReadBuffer) ArrayU8() ArrayU8 {
	return ArrayU8{
		Data: Pointer[U8](b.hdr.Data),
		Len:  Usize(b.hdr.Len),
	}
}

// Char8Pointer returns a pointer to the buffer's data as a Char8.
func (b *ReadBuffer) Char8Pointer() Pointer[Char8] {
	return Pointer[Char8](b.hdr.Data)
}

// Len returns the length of data in the buffer as a Usize.
func (b *ReadBuffer) Len() Usize {
	return Usize(len(b.buf))
}
