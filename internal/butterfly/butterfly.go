// Package butterfly implements the radix-2 decimation-in-time butterfly
// schedule and the twiddle oracle feeding it. The input is expected in
// bit-reversed order; passes run bottom-up over growing block sizes.
package butterfly

import "github.com/cwbudde/algo-genfft/internal/fftypes"

// Engine runs butterfly schedules for one transform call. TR and TI are
// the twiddle buffers, each 1<<Log2Buf scalars; they are scratch owned by
// the call, not shared state.
type Engine[T fftypes.Float] struct {
	Log2Buf   int
	TR, TI    []T
	CExpM1    fftypes.CExpM1Func[T]
	Multipass fftypes.MultipassFunc[T]
}

func (e *Engine[T]) cexp(log2n int) (re, im T) {
	re, im = e.CExpM1(log2n)
	re = 1 + re

	return re, im
}

// ComputeTwiddles fills TR/TI with exp(±2πi·k/2^log2n) for k < 1<<log2b
// using a doubling recurrence over the exp(ix)−1 form. Each produced
// twiddle is the result of at most log2b multiplications, keeping the
// error at O(log2b) ULP. The forward direction negates the imaginary
// precomputation.
func (e *Engine[T]) ComputeTwiddles(log2n, log2b int, inverse bool) {
	tr, ti := e.TR, e.TI
	tr[0], ti[0] = 0, 0

	for i := 0; i < log2b; i++ {
		k := 1 << i

		// Accuracy is slightly better when working with (cos−1, sin)
		// rather than (cos, sin).
		x, y := e.CExpM1(log2n - i)
		if !inverse {
			y = -y
		}

		for j := 0; j < k; j++ {
			tr[k+j] = (x*tr[j] - y*ti[j]) + (x + tr[j])
			ti[k+j] = (y*tr[j] + x*ti[j]) + (y + ti[j])
		}
	}

	for i := 0; i < 1<<log2b; i++ {
		tr[i] = 1 + tr[i]
	}
}

// Block computes part of a size-2^log2n butterfly on a block of size
// 2^log2b. The twiddles actually applied are products of the stored
// buffer entries with the multiplier pair (cm, sm) composed down the
// recursion, so any individual twiddle is touched by at most O(log2n)
// arithmetic operations.
func (e *Engine[T]) Block(
	log2n, log2b int,
	re, im []T,
	lr, li, hr, hi int,
	reStride, imStride int,
	cm, sm T,
	inverse bool,
) {
	if log2b <= e.Log2Buf {
		b := 1 << log2b
		tr, ti := e.TR, e.TI

		j, k := 0, 0
		for i := 0; i < b; i++ {
			c := cm*tr[i] - sm*ti[i]
			s := sm*tr[i] + cm*ti[i]
			xl, yl := re[lr+j], im[li+k]
			xr, yr := re[hr+j], im[hi+k]
			x := c*xr - s*yr
			y := s*xr + c*yr
			re[lr+j] = xl + x
			im[li+k] = yl + y
			re[hr+j] = xl - x
			im[hi+k] = yl - y
			j += reStride
			k += imStride
		}

		return
	}

	h := (1 << log2b) >> 1

	x, y := e.cexp(log2n - log2b + 1)
	if !inverse {
		y = -y
	}

	e.Block(log2n, log2b-1, re, im, lr, li, hr, hi, reStride, imStride, cm, sm, inverse)
	e.Block(log2n, log2b-1, re, im,
		lr+h*reStride, li+h*imStride, hr+h*reStride, hi+h*imStride,
		reStride, imStride,
		cm*x-sm*y, sm*x+cm*y, inverse)
}

// Pass runs one butterfly pass over 2^log2c blocks of size 2^log2n.
// With enough precomputed twiddles (log2n−1 ≤ log2t) the flat loop is
// used, unrolled by two; otherwise blocks recurse with multiplier
// composition.
func (e *Engine[T]) Pass(
	log2n, log2c int,
	re, im []T,
	reStride, imStride int,
	inverse bool,
	log2t int,
) {
	if log2n == 0 {
		return
	}

	n := 1 << log2n
	h := n >> 1
	c := 1 << log2c
	tr, ti := e.TR, e.TI

	lr, li := 0, 0
	hr, hi := h*reStride, h*imStride

	switch {
	case log2n-1 > log2t:
		for i := 0; i < c; i++ {
			e.Block(log2n, log2n-1, re, im, lr, li, hr, hi, reStride, imStride, 1, 0, inverse)
			lr += n * reStride
			li += n * imStride
			hr += n * reStride
			hi += n * imStride
		}
	case h > 1:
		for i := 0; i < c; i++ {
			j, k := 0, 0
			for d := 0; d < h; d += 2 {
				cc, ss := tr[d], ti[d]
				xl, yl := re[lr+j], im[li+k]
				xr, yr := re[hr+j], im[hi+k]
				x := cc*xr - ss*yr
				y := ss*xr + cc*yr
				re[lr+j] = xl + x
				im[li+k] = yl + y
				re[hr+j] = xl - x
				im[hi+k] = yl - y
				j += reStride
				k += imStride

				cc, ss = tr[d+1], ti[d+1]
				xl, yl = re[lr+j], im[li+k]
				xr, yr = re[hr+j], im[hi+k]
				x = cc*xr - ss*yr
				y = ss*xr + cc*yr
				re[lr+j] = xl + x
				im[li+k] = yl + y
				re[hr+j] = xl - x
				im[hi+k] = yl - y
				j += reStride
				k += imStride
			}

			lr += n * reStride
			li += n * imStride
			hr += n * reStride
			hi += n * imStride
		}
	default:
		for i := 0; i < c; i++ {
			xl, yl := re[lr], im[li]
			xr, yr := re[hr], im[hi]
			re[lr] = xl + xr
			im[li] = yl + yr
			re[hr] = xl - xr
			im[hi] = yl - yr
			lr += n * reStride
			li += n * imStride
			hr += n * reStride
			hi += n * imStride
		}
	}
}

// Run executes a series of butterfly passes covering depths
// log2n−depth+1 through log2n. The optimized hook is offered the
// remaining passes first; when the whole schedule is left and at least
// three passes remain, the bottom three are fused into the radix-8
// terminal.
func (e *Engine[T]) Run(
	log2n, log2c, depth int,
	re, im []T,
	reStride, imStride int,
	inverse bool,
) {
	for depth > 0 {
		if e.Multipass != nil {
			d := e.Multipass(log2n, log2c, depth, re, im, reStride, imStride, inverse, e.TR, e.TI, e.Log2Buf)
			if d > 0 {
				depth -= d
				continue
			}
		}

		if depth == log2n && depth >= 3 {
			m := 1 << (log2n + log2c - 3)

			c, _ := e.cexp(3)
			for j := 0; j < m; j++ {
				FFT8(re[8*reStride*j:], im[8*imStride*j:], reStride, imStride, inverse, c)
			}

			depth -= 3

			continue
		}

		log2d := log2n - depth + 1

		log2t := log2d - 1
		if log2t > e.Log2Buf {
			log2t = e.Log2Buf
		}

		e.ComputeTwiddles(log2d, log2t, inverse)
		e.Pass(log2d, log2c+log2n-log2d, re, im, reStride, imStride, inverse, log2t)
		depth--
	}
}

// Butterfly runs the whole schedule for a bit-reversed input of size
// 2^log2n. Above log2n = 12 the two halves are transformed recursively
// and joined by a single top-level pass, which keeps the working set of
// every stage cache-sized.
func (e *Engine[T]) Butterfly(
	log2n int,
	re, im []T,
	reStride, imStride int,
	inverse bool,
) {
	if log2n > 12 {
		h := 1 << (log2n - 1)

		e.Butterfly(log2n-1, re, im, reStride, imStride, inverse)
		e.Butterfly(log2n-1, re[h*reStride:], im[h*imStride:], reStride, imStride, inverse)
		e.Run(log2n, 0, 1, re, im, reStride, imStride, inverse)

		return
	}

	e.Run(log2n, 0, log2n, re, im, reStride, imStride, inverse)
}
