package butterfly

import "github.com/cwbudde/algo-genfft/internal/fftypes"

// ComputeTwiddlesFrac fills tr/ti with exp(±2πi·k/n2) for k < n2, where
// n2 is even. Only the first quadrant-and-a-bit is computed through the
// doubling recurrence over the exp(ix)−1 form; the rest follows from the
// negation symmetries of the unit circle.
func ComputeTwiddlesFrac[T fftypes.Float](
	n2 int,
	tr, ti []T,
	inverse bool,
	cexpm1 fftypes.CExpM1FracFunc[T],
) {
	if n2 < 1 {
		return
	}

	m := n2 >> 1
	h := (m + 2) >> 1

	tr[0], ti[0] = 0, 0

	for i := 1; i < h; i *= 2 {
		x, y := cexpm1(i, n2)
		if !inverse {
			y = -y
		}

		j := i
		if h < i*2 {
			j = h - i
		}

		for k := 0; k < j; k++ {
			tr[i+k] = (x*tr[k] - y*ti[k]) + (x + tr[k])
			ti[i+k] = (y*tr[k] + x*ti[k]) + (y + ti[k])
		}
	}

	for i := 0; i < h; i++ {
		tr[i] = 1 + tr[i]
	}

	for i := h; i < m; i++ {
		tr[i] = -tr[m-i]
		ti[i] = ti[m-i]
	}

	for i := 0; i < m; i++ {
		tr[m+i] = -tr[i]
		ti[m+i] = -ti[i]
	}
}
