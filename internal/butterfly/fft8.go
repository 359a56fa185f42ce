package butterfly

import "github.com/cwbudde/algo-genfft/internal/fftypes"

// FFT8 is the hand-scheduled size-8 transform fusing the bottom three
// radix-2 passes. c is cos(2π/8) = √2/2 in the caller's precision; the
// forward and inverse variants differ only in the signs of the
// intermediate imaginary combinations.
func FFT8[T fftypes.Float](
	re, im []T,
	reStride, imStride int,
	inverse bool,
	c T,
) {
	r0, i0 := re[0*reStride], im[0*imStride]
	r1, i1 := re[1*reStride], im[1*imStride]
	r2, i2 := re[2*reStride], im[2*imStride]
	r3, i3 := re[3*reStride], im[3*imStride]
	r4, i4 := re[4*reStride], im[4*imStride]
	r5, i5 := re[5*reStride], im[5*imStride]
	r6, i6 := re[6*reStride], im[6*imStride]
	r7, i7 := re[7*reStride], im[7*imStride]

	s0, d0 := r0+r1, r0-r1
	t0, u0 := i0+i1, i0-i1
	s2, d2 := r2+r3, r2-r3
	t2, u2 := i2+i3, i2-i3
	s4, d4 := r4+r5, r4-r5
	t4, u4 := i4+i5, i4-i5
	s6, d6 := r6+r7, r6-r7
	t6, u6 := i6+i7, i6-i7

	var p5, m5, p7, m7 T

	if !inverse {
		r0, i0 = s0+s2, t0+t2
		r1, i1 = d0+u2, u0-d2
		r2, i2 = s0-s2, t0-t2
		r3, i3 = d0-u2, u0+d2
		r4, i4 = s4+s6, t4+t6
		r5, i5 = d4+u6, u4-d6
		r6, i6 = s4-s6, t4-t6
		r7, i7 = d4-u6, u4+d6

		p5, m5 = c*(r5+i5), c*(r5-i5)
		p7, m7 = c*(r7+i7), c*(r7-i7)

		re[0*reStride], im[0*imStride] = r0+r4, i0+i4
		re[1*reStride], im[1*imStride] = r1+p5, i1-m5
		re[2*reStride], im[2*imStride] = r2+i6, i2-r6
		re[3*reStride], im[3*imStride] = r3-m7, i3-p7
		re[4*reStride], im[4*imStride] = r0-r4, i0-i4
		re[5*reStride], im[5*imStride] = r1-p5, i1+m5
		re[6*reStride], im[6*imStride] = r2-i6, i2+r6
		re[7*reStride], im[7*imStride] = r3+m7, i3+p7

		return
	}

	r0, i0 = s0+s2, t0+t2
	r1, i1 = d0-u2, u0+d2
	r2, i2 = s0-s2, t0-t2
	r3, i3 = d0+u2, u0-d2
	r4, i4 = s4+s6, t4+t6
	r5, i5 = d4-u6, u4+d6
	r6, i6 = s4-s6, t4-t6
	r7, i7 = d4+u6, u4-d6

	p5, m5 = c*(r5+i5), c*(r5-i5)
	p7, m7 = c*(r7+i7), c*(r7-i7)

	re[0*reStride], im[0*imStride] = r0+r4, i0+i4
	re[1*reStride], im[1*imStride] = r1+m5, i1+p5
	re[2*reStride], im[2*imStride] = r2-i6, i2+r6
	re[3*reStride], im[3*imStride] = r3-p7, i3+m7
	re[4*reStride], im[4*imStride] = r0-r4, i0-i4
	re[5*reStride], im[5*imStride] = r1-m5, i1-p5
	re[6*reStride], im[6*imStride] = r2+i6, i2-r6
	re[7*reStride], im[7*imStride] = r3+p7, i3-m7
}
