package genfft

import (
	"github.com/cwbudde/algo-genfft/internal/bitrev"
	"github.com/cwbudde/algo-genfft/internal/cpu"
	"github.com/cwbudde/algo-genfft/internal/fftypes"
	"github.com/cwbudde/algo-genfft/internal/memory"
	"github.com/cwbudde/algo-genfft/internal/scalar"
)

// SIMDMask is a bitmask of vector specializations, one bit per
// (element type, lane count) pair.
type SIMDMask uint32

const (
	SIMD4F  = SIMDMask(cpu.Has4F)  // 4 × float32 lanes
	SIMD2D  = SIMDMask(cpu.Has2D)  // 2 × float64 lanes
	SIMD8F  = SIMDMask(cpu.Has8F)  // 8 × float32 lanes
	SIMD4D  = SIMDMask(cpu.Has4D)  // 4 × float64 lanes
	SIMD16F = SIMDMask(cpu.Has16F) // 16 × float32 lanes
	SIMD8D  = SIMDMask(cpu.Has8D)  // 8 × float64 lanes
)

// AllocFunc allocates a scratch block of the given byte size, returning
// nil on failure. FreeFunc releases a block obtained from the matching
// AllocFunc.
type (
	AllocFunc func(size int) []byte
	FreeFunc  func(block []byte)
)

// defaultLog2TwiddleBuf is the log2 size of the stack-scoped twiddle
// buffer when the configuration does not override it.
const defaultLog2TwiddleBuf = 9

// Config carries the optional hooks and tuning knobs of the transform.
// The zero value selects the built-in defaults; the package-level entry
// points use it. A Config is immutable during a call and may be shared
// between goroutines.
type Config[T Float] struct {
	// Log2TwiddleBuf is the log2 of the per-call twiddle buffer length
	// (LBUF). 0 means the default of 9; values below 2 are invalid.
	// Lowering it shrinks scratch at some cost in speed.
	Log2TwiddleBuf int

	// TileBits is the tile exponent Q of the blocked in-place
	// bit-reversal. 0 means min((LBUF+1)/2, 6). Requires 1 ≤ Q and
	// 2Q ≤ LBUF+1 so the tile fits the scratch buffer.
	TileBits int

	// DisableSIMD forces the scalar paths.
	DisableSIMD bool

	// DisableAVX caps the vector width at 128 bits; DisableAVX512 at
	// 256 bits.
	DisableAVX    bool
	DisableAVX512 bool

	// DisableBluestein makes non-power-of-two sizes return
	// ErrInvalidArgument instead of running the convolution pipeline.
	DisableBluestein bool

	// DisableBitrevTable selects the table-free bit reversal.
	DisableBitrevTable bool

	// DontCacheCPUDetection recomputes the feature mask on every call
	// instead of memoizing it process-wide.
	DontCacheCPUDetection bool

	// Alloc and Free replace the scratch allocator used by the
	// Bluestein path. They must be thread-safe when concurrent
	// transforms are expected.
	Alloc AllocFunc
	Free  FreeFunc

	// DetectSIMD replaces the CPU probe. The result is not memoized, so
	// the caching toggle does not apply; DisableAVX and DisableAVX512
	// still mask it.
	DetectSIMD func() SIMDMask

	// CExpM1 and CExpM1Frac replace the complex-exponential primitives
	// for this scalar type, e.g. to gain precision beyond the built-in
	// tables or to avoid floating-point literals entirely. The built-in
	// vector passes for float32 and float64 compute their twiddles from
	// the built-in tables and do not call CExpM1.
	CExpM1     CExpM1Func[T]
	CExpM1Frac CExpM1FracFunc[T]

	// Multipass replaces the optimized butterfly multipass. It may
	// consume one or more bottom passes and reports how many; the
	// scalar path covers the rest.
	Multipass MultipassFunc[T]
}

// params is a resolved, validated Config.
type params[T Float] struct {
	log2buf          int
	q                int
	rev              func(i, bits int) int
	mask             cpu.Mask
	disableBluestein bool
	alloc            memory.AllocFunc
	free             memory.FreeFunc
	cexpm1           fftypes.CExpM1Func[T]
	cexpm1frac       fftypes.CExpM1FracFunc[T]
	multipass        fftypes.MultipassFunc[T]
}

func (c *Config[T]) resolve() (params[T], error) {
	var p params[T]

	p.log2buf = c.Log2TwiddleBuf
	if p.log2buf == 0 {
		p.log2buf = defaultLog2TwiddleBuf
	}

	if p.log2buf < 2 {
		return p, ErrInvalidArgument
	}

	p.q = c.TileBits
	if p.q == 0 {
		p.q = (p.log2buf + 1) / 2
		if p.q > 6 {
			p.q = 6
		}
	}

	if p.q < 1 || 2*p.q > p.log2buf+1 {
		return p, ErrInvalidArgument
	}

	p.rev = bitrev.Index
	if c.DisableBitrevTable {
		p.rev = bitrev.IndexNoTable
	}

	if !c.DisableSIMD {
		switch {
		case c.DetectSIMD != nil:
			p.mask = cpu.Mask(c.DetectSIMD())
		case c.DontCacheCPUDetection:
			p.mask = cpu.Detect()
		default:
			p.mask = cpu.Cached()
		}

		if c.DisableAVX {
			p.mask &^= cpu.Has8F | cpu.Has4D | cpu.Has16F | cpu.Has8D
		}

		if c.DisableAVX512 {
			p.mask &^= cpu.Has16F | cpu.Has8D
		}
	}

	p.disableBluestein = c.DisableBluestein

	p.alloc = memory.DefaultAlloc
	if c.Alloc != nil {
		p.alloc = memory.AllocFunc(c.Alloc)
	}

	p.free = memory.DefaultFree
	if c.Free != nil {
		p.free = memory.FreeFunc(c.Free)
	}

	p.cexpm1 = scalar.CExpM1[T]
	if c.CExpM1 != nil {
		p.cexpm1 = c.CExpM1
	}

	p.cexpm1frac = scalar.CExpM1Frac[T]
	if c.CExpM1Frac != nil {
		p.cexpm1frac = c.CExpM1Frac
	}

	p.multipass = c.Multipass
	if p.multipass == nil {
		p.multipass = vectorMultipass[T](p.mask)
	}

	return p, nil
}

// Prime warms the process-wide CPU feature cache. Callers that cannot
// rule out concurrent first transforms may invoke it once during
// startup; afterwards reads of the mask are lock-free and stable.
func Prime() {
	cpu.Cached()
}
