package cpu

import (
	"sync"
	"testing"
)

func TestDetectIsConsistent(t *testing.T) {
	t.Parallel()

	first := Detect()

	for i := 0; i < 8; i++ {
		if got := Detect(); got != first {
			t.Fatalf("Detect() flapped: %#x then %#x", first, got)
		}
	}
}

func TestDetectWidthOrdering(t *testing.T) {
	t.Parallel()

	m := Detect()

	// Wider specializations imply the narrower ones on every
	// architecture we probe.
	if m&Has8F != 0 && m&Has4F == 0 {
		t.Fatal("AVX reported without SSE2 baseline")
	}

	if m&Has16F != 0 && m&Has8F == 0 {
		t.Fatal("AVX-512 reported without AVX")
	}

	if m&Has4D != 0 && m&Has2D == 0 {
		t.Fatal("4-lane double reported without 2-lane baseline")
	}
}

func TestCachedIsStable(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup

	results := make([]Mask, 16)

	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()
			results[i] = Cached()
		}(i)
	}

	wg.Wait()

	for i, m := range results {
		if m != results[0] {
			t.Fatalf("Cached() result %d differs: %#x vs %#x", i, m, results[0])
		}
	}

	if Cached() != Detect() {
		t.Fatal("cached mask disagrees with a fresh probe")
	}
}

func TestMaskQueries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mask Mask
		anyF bool
		anyD bool
	}{
		{0, false, false},
		{Has4F, true, false},
		{Has16F, true, false},
		{Has2D, false, true},
		{Has8D, false, true},
		{Has4F | Has2D, true, true},
	}

	for _, tt := range tests {
		if got := tt.mask.AnyF(); got != tt.anyF {
			t.Errorf("Mask(%#x).AnyF() = %v, want %v", tt.mask, got, tt.anyF)
		}

		if got := tt.mask.AnyD(); got != tt.anyD {
			t.Errorf("Mask(%#x).AnyD() = %v, want %v", tt.mask, got, tt.anyD)
		}
	}
}
