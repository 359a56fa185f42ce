// Package genfft computes forward and inverse discrete Fourier
// transforms of one-dimensional complex sequences of arbitrary size.
//
// The forward transform of a sequence X of n complex numbers is
//
//	Y[j] = scale · Σ X[k]·exp(−2πi·j·k/n), 0 ≤ k < n
//
// and the inverse transform flips the sign of the exponent. With unit
// scales, IFFT(FFT(X)) = FFT(IFFT(X)) = n·X; the scale factor of each
// call is explicit, so the (1 : 1/n), (1/n : 1) and (1/√n : 1/√n)
// conventions are all one argument away.
//
// Power-of-two sizes run a radix-2 decimation-in-time Cooley–Tukey
// pipeline whose only scratch is a small per-call twiddle buffer that
// does not go through the configurable allocator; every other size is reduced to
// power-of-two convolutions by Bluestein's algorithm, which allocates
// one scratch block through the configurable allocator. Each call is
// self-contained: there are no plans and no state shared between calls
// beyond the memoized CPU feature mask.
//
// Three entry-point shapes are provided for every supported element
// type: split (separate real and imaginary arrays), interleaved, and
// strided. A nil source array is read as all zeros. Source and
// destination may be the same array for an in-place transform; partial
// overlap is invalid.
package genfft

// FFT computes the forward transform of n complex elements held in
// separate, contiguous real and imaginary arrays. srcRe and/or srcIm
// may be nil, which is treated as an array of zeros.
func FFT[T Float](n int, srcRe, srcIm, dstRe, dstIm []T, scale T) error {
	var c Config[T]
	return c.FFT(n, srcRe, srcIm, dstRe, dstIm, scale)
}

// IFFT computes the inverse transform of n complex elements held in
// separate, contiguous real and imaginary arrays.
func IFFT[T Float](n int, srcRe, srcIm, dstRe, dstIm []T, scale T) error {
	var c Config[T]
	return c.IFFT(n, srcRe, srcIm, dstRe, dstIm, scale)
}

// FFTInterleaved computes the forward transform of n complex elements
// stored as interleaved (re, im) pairs. src may be nil for an all-zero
// input. This layout can be somewhat slower than the split one.
func FFTInterleaved[T Float](n int, src, dst []T, scale T) error {
	var c Config[T]
	return c.FFTInterleaved(n, src, dst, scale)
}

// IFFTInterleaved computes the inverse transform of interleaved data.
func IFFTInterleaved[T Float](n int, src, dst []T, scale T) error {
	var c Config[T]
	return c.IFFTInterleaved(n, src, dst, scale)
}

// FFTStrided computes the forward transform over independently strided
// views of the four arrays. Source strides may be zero to broadcast a
// constant; destination strides must be positive. Useful e.g. for
// transforming one row or column of a matrix in place.
func FFTStrided[T Float](
	n int,
	srcRe, srcIm []T, srcReStride, srcImStride int,
	dstRe, dstIm []T, dstReStride, dstImStride int,
	scale T,
) error {
	var c Config[T]
	return c.FFTStrided(n, srcRe, srcIm, srcReStride, srcImStride, dstRe, dstIm, dstReStride, dstImStride, scale)
}

// IFFTStrided computes the inverse transform over strided views.
func IFFTStrided[T Float](
	n int,
	srcRe, srcIm []T, srcReStride, srcImStride int,
	dstRe, dstIm []T, dstReStride, dstImStride int,
	scale T,
) error {
	var c Config[T]
	return c.IFFTStrided(n, srcRe, srcIm, srcReStride, srcImStride, dstRe, dstIm, dstReStride, dstImStride, scale)
}

// FFT computes the forward split-array transform using the receiver's
// hooks and tuning.
func (c *Config[T]) FFT(n int, srcRe, srcIm, dstRe, dstIm []T, scale T) error {
	return c.transform(n, srcRe, srcIm, 1, 1, dstRe, dstIm, 1, 1, false, scale)
}

// IFFT computes the inverse split-array transform.
func (c *Config[T]) IFFT(n int, srcRe, srcIm, dstRe, dstIm []T, scale T) error {
	return c.transform(n, srcRe, srcIm, 1, 1, dstRe, dstIm, 1, 1, true, scale)
}

// FFTInterleaved computes the forward transform of interleaved data.
func (c *Config[T]) FFTInterleaved(n int, src, dst []T, scale T) error {
	return c.interleaved(n, src, dst, false, scale)
}

// IFFTInterleaved computes the inverse transform of interleaved data.
func (c *Config[T]) IFFTInterleaved(n int, src, dst []T, scale T) error {
	return c.interleaved(n, src, dst, true, scale)
}

// FFTStrided computes the forward transform over strided views.
func (c *Config[T]) FFTStrided(
	n int,
	srcRe, srcIm []T, srcReStride, srcImStride int,
	dstRe, dstIm []T, dstReStride, dstImStride int,
	scale T,
) error {
	return c.transform(n, srcRe, srcIm, srcReStride, srcImStride, dstRe, dstIm, dstReStride, dstImStride, false, scale)
}

// IFFTStrided computes the inverse transform over strided views.
func (c *Config[T]) IFFTStrided(
	n int,
	srcRe, srcIm []T, srcReStride, srcImStride int,
	dstRe, dstIm []T, dstReStride, dstImStride int,
	scale T,
) error {
	return c.transform(n, srcRe, srcIm, srcReStride, srcImStride, dstRe, dstIm, dstReStride, dstImStride, true, scale)
}

func (c *Config[T]) interleaved(n int, src, dst []T, inverse bool, scale T) error {
	if n == 0 {
		return nil
	}

	if n < 0 || len(dst) < 2*n {
		return ErrInvalidArgument
	}

	var (
		srcRe, srcIm []T
		stride       int
	)

	if src != nil {
		if len(src) < 2*n {
			return ErrInvalidArgument
		}

		srcRe, srcIm = src, src[1:]
		stride = 2
	}

	return c.transform(n, srcRe, srcIm, stride, stride, dst, dst[1:], 2, 2, inverse, scale)
}
