// Package simd holds the vector-width-parameterized re-implementations of
// the inner butterfly pass, the twiddle expansion recurrence, and the
// fused radix-8 terminal, together with the dispatcher that picks a width
// from the runtime feature mask.
package simd

import (
	"github.com/cwbudde/algo-genfft/internal/butterfly"
	"github.com/cwbudde/algo-genfft/internal/cpu"
)

// sqrtHalf is cos(2π/8) = √2/2, the single constant of the radix-8
// terminal.
const sqrtHalf = 0.70710678118654752440084436210484903928

// fits reports whether a vector pass of the given lane count can run a
// size-2^log2d pass: the half-block must span at least two vectors and
// the twiddle buffer must hold at least two vectors worth of entries.
func fits(lanes, log2d, log2t int) bool {
	return (lanes<<2)>>log2d <= 1 && (lanes<<1)>>log2t <= 1
}

func passOptimized32(
	mask cpu.Mask,
	log2d, log2c int,
	re, im []float32,
	inverse bool,
	log2t int,
	tr, ti []float32,
	log2buf int,
) bool {
	switch {
	case mask&cpu.Has16F != 0 && fits(16, log2d, log2t):
		computeTwiddles16f(log2d, log2t, tr, ti, inverse)
		butterflyPass16f(log2d, log2c, re, im, inverse, log2t, tr, ti, log2buf)
	case mask&cpu.Has8F != 0 && fits(8, log2d, log2t):
		computeTwiddles8f(log2d, log2t, tr, ti, inverse)
		butterflyPass8f(log2d, log2c, re, im, inverse, log2t, tr, ti, log2buf)
	case mask&cpu.Has4F != 0 && fits(4, log2d, log2t):
		computeTwiddles4f(log2d, log2t, tr, ti, inverse)
		butterflyPass4f(log2d, log2c, re, im, inverse, log2t, tr, ti, log2buf)
	default:
		return false
	}

	return true
}

func passOptimized64(
	mask cpu.Mask,
	log2d, log2c int,
	re, im []float64,
	inverse bool,
	log2t int,
	tr, ti []float64,
	log2buf int,
) bool {
	switch {
	case mask&cpu.Has8D != 0 && fits(8, log2d, log2t):
		computeTwiddles8d(log2d, log2t, tr, ti, inverse)
		butterflyPass8d(log2d, log2c, re, im, inverse, log2t, tr, ti, log2buf)
	case mask&cpu.Has4D != 0 && fits(4, log2d, log2t):
		computeTwiddles4d(log2d, log2t, tr, ti, inverse)
		butterflyPass4d(log2d, log2c, re, im, inverse, log2t, tr, ti, log2buf)
	case mask&cpu.Has2D != 0 && fits(2, log2d, log2t):
		computeTwiddles2d(log2d, log2t, tr, ti, inverse)
		butterflyPass2d(log2d, log2c, re, im, inverse, log2t, tr, ti, log2buf)
	default:
		return false
	}

	return true
}

// Multipass32 is the optimized multipass for float32 data. It consumes
// zero or more passes starting at depth log2n−depth+1 and returns the
// count performed (always contiguous, bottom-up). Vector passes only
// apply to unit-stride separate-array layout.
func Multipass32(
	mask cpu.Mask,
	log2n, log2c, depth int,
	re, im []float32,
	reStride, imStride int,
	inverse bool,
	tr, ti []float32,
	log2buf int,
) int {
	if reStride != 1 || imStride != 1 {
		return 0
	}

	if !mask.AnyF() || log2buf < 3 {
		return 0
	}

	ret := 0

	if depth == log2n && depth >= 3 {
		m := 1 << (log2n + log2c - 3)
		for j := 0; j < m; j++ {
			butterfly.FFT8(re[8*j:], im[8*j:], 1, 1, inverse, float32(sqrtHalf))
		}

		depth -= 3
		ret = 3
	}

	if log2n-depth+1 > 3 {
		for log2d := log2n - depth + 1; log2d <= log2n; log2d++ {
			log2t := log2d - 1
			if log2t > log2buf {
				log2t = log2buf
			}

			if !passOptimized32(mask, log2d, log2c+log2n-log2d, re, im, inverse, log2t, tr, ti, log2buf) {
				break
			}

			ret++
		}
	}

	return ret
}

// Multipass64 is the optimized multipass for float64 data.
func Multipass64(
	mask cpu.Mask,
	log2n, log2c, depth int,
	re, im []float64,
	reStride, imStride int,
	inverse bool,
	tr, ti []float64,
	log2buf int,
) int {
	if reStride != 1 || imStride != 1 {
		return 0
	}

	if !mask.AnyD() || log2buf < 2 {
		return 0
	}

	ret := 0

	if depth == log2n && depth >= 3 {
		m := 1 << (log2n + log2c - 3)
		for j := 0; j < m; j++ {
			butterfly.FFT8(re[8*j:], im[8*j:], 1, 1, inverse, float64(sqrtHalf))
		}

		depth -= 3
		ret = 3
	}

	if log2n-depth+1 > 3 {
		for log2d := log2n - depth + 1; log2d <= log2n; log2d++ {
			log2t := log2d - 1
			if log2t > log2buf {
				log2t = log2buf
			}

			if !passOptimized64(mask, log2d, log2c+log2n-log2d, re, im, inverse, log2t, tr, ti, log2buf) {
				break
			}

			ret++
		}
	}

	return ret
}
