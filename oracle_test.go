package genfft

import (
	"math/rand"
	"testing"

	dspfft "github.com/mjibson/go-dsp/fft"
)

// Cross-checks against go-dsp as an independently implemented oracle.

func TestFFTAgainstGoDSP(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(17))

	for _, n := range []int{2, 4, 8, 16, 64, 256, 1024, 3, 5, 12, 100, 1000} {
		re, im := randomComplex(rng, n)

		x := make([]complex128, n)
		for i := range x {
			x[i] = complex(re[i], im[i])
		}

		want := dspfft.FFT(x)

		gotRe := make([]float64, n)
		gotIm := make([]float64, n)

		if err := FFT(n, re, im, gotRe, gotIm, 1); err != nil {
			t.Fatalf("FFT(%d) failed: %v", n, err)
		}

		wantRe := make([]float64, n)
		wantIm := make([]float64, n)

		for i, v := range want {
			wantRe[i] = real(v)
			wantIm[i] = imag(v)
		}

		tol := errBound(1e-15, rms(wantRe, wantIm), n, 16)
		assertRMSClose(t, gotRe, gotIm, wantRe, wantIm, tol, "FFT(%d) vs go-dsp", n)
	}
}
