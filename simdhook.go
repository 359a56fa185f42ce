package genfft

import (
	"github.com/cwbudde/algo-genfft/internal/cpu"
	"github.com/cwbudde/algo-genfft/internal/fftypes"
	"github.com/cwbudde/algo-genfft/internal/simd"
)

// vectorMultipass binds the width-specialized multipass matching the
// concrete scalar type. Named float types fall back to the scalar path:
// the specializations are keyed on the exact []float32/[]float64 layout.
func vectorMultipass[T Float](mask cpu.Mask) fftypes.MultipassFunc[T] {
	if mask == 0 {
		return nil
	}

	var zero T

	switch any(zero).(type) {
	case float32:
		if !mask.AnyF() {
			return nil
		}

		return func(log2n, log2c, depth int, re, im []T, reStride, imStride int, inverse bool, tr, ti []T, log2buf int) int {
			return simd.Multipass32(mask, log2n, log2c, depth,
				any(re).([]float32), any(im).([]float32),
				reStride, imStride, inverse,
				any(tr).([]float32), any(ti).([]float32), log2buf)
		}
	case float64:
		if !mask.AnyD() {
			return nil
		}

		return func(log2n, log2c, depth int, re, im []T, reStride, imStride int, inverse bool, tr, ti []T, log2buf int) int {
			return simd.Multipass64(mask, log2n, log2c, depth,
				any(re).([]float64), any(im).([]float64),
				reStride, imStride, inverse,
				any(tr).([]float64), any(ti).([]float64), log2buf)
		}
	default:
		return nil
	}
}
