// Package cpu detects which vector widths the running CPU supports.
package cpu

import (
	"runtime"
	"sync"

	"golang.org/x/sys/cpu"
)

// Mask is a bitmask of available vector specializations, one bit per
// (element type, lane count) pair.
type Mask uint32

const (
	Has4F Mask = 1 << iota // 4 × float32 lanes (SSE2, NEON)
	Has2D                  // 2 × float64 lanes (SSE2, NEON)
	Has8F                  // 8 × float32 lanes (AVX)
	Has4D                  // 4 × float64 lanes (AVX)
	Has16F                 // 16 × float32 lanes (AVX-512F)
	Has8D                  // 8 × float64 lanes (AVX-512F)
)

// AnyF reports whether any float32 specialization is enabled.
func (m Mask) AnyF() bool { return m&(Has4F|Has8F|Has16F) != 0 }

// AnyD reports whether any float64 specialization is enabled.
func (m Mask) AnyD() bool { return m&(Has2D|Has4D|Has8D) != 0 }

// Detect probes the CPU for vector support. The OS-state checks (XGETBV)
// are handled by golang.org/x/sys/cpu, which only reports AVX and AVX-512
// when the operating system preserves the register state.
func Detect() Mask {
	var m Mask

	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasSSE2 {
			m |= Has4F | Has2D
		}

		if cpu.X86.HasAVX {
			m |= Has8F | Has4D
		}

		if cpu.X86.HasAVX512F {
			m |= Has16F | Has8D
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			m |= Has4F | Has2D
		}
	}

	return m
}

var (
	cachedOnce sync.Once
	cached     Mask
)

// Cached returns the process-wide memoized feature mask. The first call
// performs the probe; all racing initializations compute the same value,
// and once observed the mask is stable.
func Cached() Mask {
	cachedOnce.Do(func() {
		cached = Detect()
	})

	return cached
}
