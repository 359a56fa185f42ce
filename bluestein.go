package genfft

import (
	"github.com/cwbudde/algo-genfft/internal/butterfly"
	"github.com/cwbudde/algo-genfft/internal/memory"
)

// fftBluestein reduces an arbitrary-size transform to power-of-two
// convolutions: premultiply the input by the chirp exp(±πi·k²/n), convolve
// with the conjugate chirp kernel via two forward FFTs and one inverse,
// and postmultiply by the chirp again. The chirp exponent k² is tracked
// modulo 2n against a 2n-entry twiddle table.
//
// One aligned scratch block of 4m+4n scalars is acquired for the whole
// pipeline and released on every exit path.
func (p *params[T]) fftBluestein(
	n int,
	srcRe, srcIm []T, sRS, sIS int,
	dstRe, dstIm []T, dRS, dIS int,
	inverse bool,
	scale T,
) error {
	// mT mirrors m in the scalar type, avoiding an int conversion the
	// element type might not provide.
	m := 1

	var mT T = 1

	for m < 2*n-1 {
		m <<= 1
		mT += mT
	}

	buf, block := memory.AllocAligned[T](4*m+4*n, p.alloc)
	if buf == nil {
		return ErrOutOfMemory
	}
	defer p.free(block)

	ar := buf[0*m : 1*m]
	ai := buf[1*m : 2*m]
	br := buf[2*m : 3*m]
	bi := buf[3*m : 4*m]
	tr := buf[4*m : 4*m+2*n]
	ti := buf[4*m+2*n : 4*m+4*n]

	butterfly.ComputeTwiddlesFrac(2*n, tr, ti, inverse, p.cexpm1frac)

	j := 0
	for i := 0; i < n; i++ {
		c, s := tr[j], ti[j]
		x, y := srcRe[i*sRS], srcIm[i*sIS]
		ar[i] = x*c - y*s
		ai[i] = x*s + y*c
		br[i] = c
		bi[i] = -s

		if i > 0 {
			br[m-i] = c
			bi[m-i] = -s
		}

		j += 2*i + 1
		if j >= 2*n {
			j -= 2 * n
		}
	}

	for i := n; i < m; i++ {
		ar[i], ai[i] = 0, 0
	}

	for i := n; i <= m-n; i++ {
		br[i], bi[i] = 0, 0
	}

	// The sub-FFT scales are (1/m, 1, scale) rather than, say,
	// (1, 1, scale/m), keeping intermediate results in range for
	// limited-range element types.
	p.fftPot(m, ar, ai, 1, 1, ar, ai, 1, 1, false, 1/mT)
	p.fftPot(m, br, bi, 1, 1, br, bi, 1, 1, false, 1)

	for i := 0; i < m; i++ {
		c, s := br[i], bi[i]
		x, y := ar[i], ai[i]
		ar[i] = c*x - s*y
		ai[i] = c*y + s*x
	}

	p.fftPot(m, ar, ai, 1, 1, ar, ai, 1, 1, true, scale)

	j = 0
	for i := 0; i < n; i++ {
		c, s := tr[j], ti[j]
		x, y := ar[i], ai[i]
		dstRe[i*dRS] = c*x - s*y
		dstIm[i*dIS] = c*y + s*x

		j += 2*i + 1
		if j >= 2*n {
			j -= 2 * n
		}
	}

	return nil
}
