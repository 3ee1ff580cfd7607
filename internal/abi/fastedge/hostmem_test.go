// Copyright 2025 G-Core Innovations SARL

package fastedge

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRegistry() *bufferRegistry {
	return &bufferRegistry{buffers: map[uintptr][]byte{}}
}

func TestBufferRegistryTakeCopiesAndReleases(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()

	ptr := r.alloc(8)
	donor := r.buffers[ptr]
	copy(donor, "abcdefgh")

	got, ok := r.take(ptr, 8)
	require.True(t, ok)
	require.Equal(t, []byte("abcdefgh"), got)
	require.Zero(t, r.outstanding())

	// The copy must not alias the donor allocation.
	copy(donor, "XXXXXXXX")
	require.Equal(t, []byte("abcdefgh"), got)

	_, ok = r.take(ptr, 8)
	require.False(t, ok, "second take of the same buffer must fail")
}

func TestBufferRegistryClampsLength(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()

	ptr := r.alloc(4)
	copy(r.buffers[ptr], "abcd")

	got, ok := r.take(ptr, 100)
	require.True(t, ok)
	require.Equal(t, []byte("abcd"), got)
}

func TestBufferRegistryZeroSizeAlloc(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()

	ptr := r.alloc(0)
	require.NotZero(t, ptr)

	got, ok := r.take(ptr, 0)
	require.True(t, ok)
	require.Empty(t, got)
}

func TestBufferRegistryRelease(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()

	ptr := r.alloc(16)
	require.Equal(t, 1, r.outstanding())
	require.True(t, r.release(ptr))
	require.Zero(t, r.outstanding())
	require.False(t, r.release(ptr))

	_, ok := r.take(ptr, 16)
	require.False(t, ok)
}

func TestBufferRegistryUnknownPointer(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()

	_, ok := r.take(0xdeadbeef, 4)
	require.False(t, ok)
	require.False(t, r.release(0xdeadbeef))
}

// Each filled buffer must survive its donor being reused or overwritten, the
// way a host runtime recycles scratch memory between calls.
func TestBufferRegistryDonorOverwrite(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()
	rng := rand.New(rand.NewSource(0x6cdb))

	for i := 0; i < 200; i++ {
		size := rng.Intn(512) + 1
		ptr := r.alloc(uintptr(size))

		donor := r.buffers[ptr]
		rng.Read(donor)
		want := append([]byte(nil), donor...)

		got, ok := r.take(ptr, uintptr(size))
		require.True(t, ok)

		for j := range donor {
			donor[j] = 0xFF
		}
		require.Equal(t, want, got, "iteration %d", i)
	}
	require.Zero(t, r.outstanding())
}

func TestPackPtrLen(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint64(0x0000100000000011), packPtrLen(0x1000, 0x11))
	require.Equal(t, uint64(0), packPtrLen(0, 0))
}
