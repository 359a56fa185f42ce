package memory

import (
	"testing"
	"unsafe"
)

func TestAllocAlignedFloat64(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 7, 64, 4096} {
		data, block := AllocAligned[float64](n, DefaultAlloc)

		if len(data) != n {
			t.Fatalf("n=%d: got %d elements", n, len(data))
		}

		if block == nil {
			t.Fatalf("n=%d: nil backing block", n)
		}

		if addr := uintptr(unsafe.Pointer(&data[0])); addr&(Alignment-1) != 0 {
			t.Fatalf("n=%d: base %#x not %d-byte aligned", n, addr, Alignment)
		}

		// The view must be writable end to end.
		for i := range data {
			data[i] = float64(i)
		}

		if data[n-1] != float64(n-1) {
			t.Fatal("write did not stick")
		}
	}
}

func TestAllocAlignedFailurePropagates(t *testing.T) {
	t.Parallel()

	failing := func(int) []byte { return nil }

	data, block := AllocAligned[float32](16, failing)
	if data != nil || block != nil {
		t.Fatal("failed allocation must return nil slices")
	}
}

func TestAllocAlignedCustomAllocator(t *testing.T) {
	t.Parallel()

	var requested int

	alloc := func(size int) []byte {
		requested = size
		return make([]byte, size)
	}

	const n = 100

	data, _ := AllocAligned[float64](n, alloc)

	if len(data) != n {
		t.Fatalf("got %d elements, want %d", len(data), n)
	}

	if requested < n*8 {
		t.Fatalf("allocator asked for %d bytes, need at least %d", requested, n*8)
	}
}
