// Package memory provides aligned scratch allocation on top of a
// pluggable byte allocator.
package memory

import (
	"unsafe"

	"github.com/cwbudde/algo-genfft/internal/fftypes"
)

// Alignment is the boundary scratch blocks are aligned to. 64 bytes
// covers the widest vector register as well as a cache line.
const Alignment = 64

// AllocFunc allocates a byte block of the given size, returning nil when
// the allocation fails. FreeFunc releases a block obtained from the
// matching AllocFunc.
type (
	AllocFunc func(size int) []byte
	FreeFunc  func(block []byte)
)

// DefaultAlloc allocates through the Go runtime. It never fails short of
// the runtime itself aborting.
func DefaultAlloc(size int) []byte {
	return make([]byte, size)
}

// DefaultFree releases nothing; the runtime reclaims DefaultAlloc blocks.
func DefaultFree([]byte) {}

// AllocAligned returns an n-element scalar slice aligned to Alignment,
// together with the backing block to hand back to free. Returns nil
// slices when the allocator fails.
func AllocAligned[T fftypes.Float](n int, alloc AllocFunc) ([]T, []byte) {
	var zero T

	size := n*int(unsafe.Sizeof(zero)) + Alignment

	block := alloc(size)
	if block == nil {
		return nil, nil
	}

	off := 0
	if rem := int(uintptr(unsafe.Pointer(&block[0])) & (Alignment - 1)); rem != 0 {
		off = Alignment - rem
	}

	data := unsafe.Slice((*T)(unsafe.Pointer(&block[off])), n)

	return data, block
}
