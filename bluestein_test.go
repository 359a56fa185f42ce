package genfft

import (
	"math/rand"
	"testing"
)

func TestBluesteinBruteforceEquivalence(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(29))

	sizes := []int{3, 5, 6, 7, 9, 11, 13, 24, 31, 48, 100, 243, 500, 1000, 1024}

	for _, n := range sizes {
		for trial := 0; trial < 3; trial++ {
			re, im := randomComplex(rng, n)

			for _, inverse := range []bool{false, true} {
				wantRe, wantIm := naiveDFT(re, im, inverse, 1)

				gotRe := make([]float64, n)
				gotIm := make([]float64, n)

				var err error
				if inverse {
					err = IFFT(n, re, im, gotRe, gotIm, 1)
				} else {
					err = FFT(n, re, im, gotRe, gotIm, 1)
				}

				if err != nil {
					t.Fatalf("transform(%d, inverse=%v) failed: %v", n, inverse, err)
				}

				tol := errBound(1e-15, rms(wantRe, wantIm), n, 8)
				assertRMSClose(t, gotRe, gotIm, wantRe, wantIm, tol,
					"n=%d inverse=%v trial=%d", n, inverse, trial)
			}
		}
	}
}

func TestBluesteinRoundTripLargePrimes(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(31))

	for _, n := range []int{7, 13, 127, 997, 2311} {
		re, im := randomComplex(rng, n)

		fwdRe := make([]float64, n)
		fwdIm := make([]float64, n)

		if err := FFT(n, re, im, fwdRe, fwdIm, 1); err != nil {
			t.Fatalf("FFT(%d) failed: %v", n, err)
		}

		gotRe := make([]float64, n)
		gotIm := make([]float64, n)

		if err := IFFT(n, fwdRe, fwdIm, gotRe, gotIm, 1/float64(n)); err != nil {
			t.Fatalf("IFFT(%d) failed: %v", n, err)
		}

		tol := errBound(1e-15, rms(re, im), n, 8)
		assertRMSClose(t, gotRe, gotIm, re, im, tol, "round trip n=%d", n)
	}
}

func TestBluesteinStridedDestination(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(37))

	const n = 21

	re, im := randomComplex(rng, n)
	wantRe, wantIm := naiveDFT(re, im, false, 1)

	dstRe := make([]float64, 3*n)
	dstIm := make([]float64, 2*n)

	if err := FFTStrided(n, re, im, 1, 1, dstRe, dstIm, 3, 2, 1); err != nil {
		t.Fatalf("FFTStrided(%d) failed: %v", n, err)
	}

	gotRe := make([]float64, n)
	gotIm := make([]float64, n)

	for i := 0; i < n; i++ {
		gotRe[i] = dstRe[3*i]
		gotIm[i] = dstIm[2*i]
	}

	tol := errBound(1e-15, rms(wantRe, wantIm), n, 8)
	assertRMSClose(t, gotRe, gotIm, wantRe, wantIm, tol, "strided Bluestein")
}
