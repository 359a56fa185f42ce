package genfft

import (
	"github.com/cwbudde/algo-genfft/internal/bitrev"
	"github.com/cwbudde/algo-genfft/internal/butterfly"
)

// sameBase reports whether two views start at the same element.
// Aliasing is only defined for identical arrays; partial overlap is the
// caller's problem.
func sameBase[T Float](a, b []T) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

// checkView validates one strided view of n elements. minStride is 0 for
// sources (broadcast allowed) and 1 for destinations.
func checkView[T Float](a []T, stride, n, minStride int) error {
	if stride < minStride {
		return ErrInvalidArgument
	}

	if len(a) < (n-1)*stride+1 {
		return ErrInvalidArgument
	}

	return nil
}

func (c *Config[T]) transform(
	n int,
	srcRe, srcIm []T, sRS, sIS int,
	dstRe, dstIm []T, dRS, dIS int,
	inverse bool,
	scale T,
) error {
	if n == 0 {
		return nil
	}

	if n < 0 {
		return ErrInvalidArgument
	}

	p, err := c.resolve()
	if err != nil {
		return err
	}

	var zero [1]T

	if srcRe == nil {
		srcRe, sRS = zero[:], 0
	}

	if srcIm == nil {
		srcIm, sIS = zero[:], 0
	}

	if err := checkView(dstRe, dRS, n, 1); err != nil {
		return err
	}

	if err := checkView(dstIm, dIS, n, 1); err != nil {
		return err
	}

	if err := checkView(srcRe, sRS, n, 0); err != nil {
		return err
	}

	if err := checkView(srcIm, sIS, n, 0); err != nil {
		return err
	}

	if sameBase(srcRe, dstRe) && sRS != dRS {
		return ErrInvalidArgument
	}

	if sameBase(srcIm, dstIm) && sIS != dIS {
		return ErrInvalidArgument
	}

	if sameBase(srcIm, dstRe) || sameBase(srcRe, dstIm) {
		return ErrInvalidArgument
	}

	if n&(n-1) == 0 {
		p.fftPot(n, srcRe, srcIm, sRS, sIS, dstRe, dstIm, dRS, dIS, inverse, scale)
		return nil
	}

	if p.disableBluestein {
		return ErrInvalidArgument
	}

	return p.fftBluestein(n, srcRe, srcIm, sRS, sIS, dstRe, dstIm, dRS, dIS, inverse, scale)
}

// fftPot runs the power-of-two pipeline: bit-reversal of both streams,
// an optional deinterleave detour for vector-friendly layout, the
// butterfly schedule, and the final scale pass. No heap allocation
// beyond the call-scoped scratch.
func (p *params[T]) fftPot(
	n int,
	srcRe, srcIm []T, sRS, sIS int,
	dstRe, dstIm []T, dRS, dIS int,
	inverse bool,
	scale T,
) {
	log2n := 0
	for m := n; m > 1; m >>= 1 {
		log2n++
	}

	tmp := make([]T, 2<<p.log2buf)
	perm := &bitrev.Permuter[T]{Q: p.q, Rev: p.rev, Tmp: tmp}

	// Deinterleaving the destination pays off only when a vector
	// multipass will actually run on the separated halves.
	deinter := p.multipass != nil && n > 16 &&
		dRS == 2 && dIS == 2 && len(dstRe) >= 2*n && sameBase(dstRe[1:], dstIm)

	perm.Permute(log2n, srcRe, sRS, dstRe, dRS)
	perm.Permute(log2n, srcIm, sIS, dstIm, dIS)

	eng := &butterfly.Engine[T]{
		Log2Buf:   p.log2buf,
		TR:        tmp[:1<<p.log2buf],
		TI:        tmp[1<<p.log2buf:],
		CExpM1:    p.cexpm1,
		Multipass: p.multipass,
	}

	if deinter {
		buf := dstRe[:2*n]
		deinterleave(buf, log2n+1, tmp, perm)
		eng.Butterfly(log2n, buf[:n], buf[n:], 1, 1, inverse)
		interleave(buf, log2n+1, tmp, perm)
	} else {
		eng.Butterfly(log2n, dstRe, dstIm, dRS, dIS, inverse)
	}

	if scale != 1 {
		j, k := 0, 0
		for i := 0; i < n; i++ {
			dstRe[j] = dstRe[j] * scale
			dstIm[k] = dstIm[k] * scale
			j += dRS
			k += dIS
		}
	}
}

// deinterleave converts an interleaved buffer of 2^log2n scalars into
// separate real and imaginary halves. It is a bit-reversal permutation
// on the array followed by one on each half; small buffers take a
// direct copy through tmp instead.
func deinterleave[T Float](buf []T, log2n int, tmp []T, perm *bitrev.Permuter[T]) {
	n := 1 << log2n
	h := n >> 1

	if n <= 2 {
		return
	}

	if n <= len(tmp) {
		re, im := tmp[:h], tmp[h:n]
		for i := 0; i < h; i++ {
			re[i] = buf[2*i]
			im[i] = buf[2*i+1]
		}

		copy(buf[:n], tmp[:n])

		return
	}

	perm.Permute(log2n, buf, 1, buf, 1)
	perm.Permute(log2n-1, buf, 1, buf, 1)
	perm.Permute(log2n-1, buf[h:], 1, buf[h:], 1)
}

// interleave is the inverse of deinterleave.
func interleave[T Float](buf []T, log2n int, tmp []T, perm *bitrev.Permuter[T]) {
	n := 1 << log2n
	h := n >> 1

	if n <= 2 {
		return
	}

	if n <= len(tmp) {
		for i := 0; i < h; i++ {
			tmp[2*i] = buf[i]
			tmp[2*i+1] = buf[h+i]
		}

		copy(buf[:n], tmp[:n])

		return
	}

	perm.Permute(log2n-1, buf, 1, buf, 1)
	perm.Permute(log2n-1, buf[h:], 1, buf[h:], 1)
	perm.Permute(log2n, buf, 1, buf, 1)
}
