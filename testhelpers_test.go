package genfft

import (
	"math"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files.

// naiveDFT computes the O(n²) reference transform with float64
// accumulation, regardless of the precision under test.
func naiveDFT(re, im []float64, inverse bool, scale float64) ([]float64, []float64) {
	n := len(re)
	outRe := make([]float64, n)
	outIm := make([]float64, n)

	sign := -1.0
	if inverse {
		sign = 1.0
	}

	for j := 0; j < n; j++ {
		var sumRe, sumIm float64

		for k := 0; k < n; k++ {
			a := sign * 2 * math.Pi * float64(j) * float64(k) / float64(n)
			c, s := math.Cos(a), math.Sin(a)
			sumRe += re[k]*c - im[k]*s
			sumIm += re[k]*s + im[k]*c
		}

		outRe[j] = sumRe * scale
		outIm[j] = sumIm * scale
	}

	return outRe, outIm
}

func rms(re, im []float64) float64 {
	var sum float64
	for i := range re {
		sum += re[i]*re[i] + im[i]*im[i]
	}

	return math.Sqrt(sum / float64(len(re)))
}

func rmsDiff(gotRe, gotIm, wantRe, wantIm []float64) float64 {
	var sum float64
	for i := range gotRe {
		dr := gotRe[i] - wantRe[i]
		di := gotIm[i] - wantIm[i]
		sum += dr*dr + di*di
	}

	return math.Sqrt(sum / float64(len(gotRe)))
}

func randomComplex(rng *rand.Rand, n int) (re, im []float64) {
	re = make([]float64, n)
	im = make([]float64, n)

	for i := range re {
		re[i] = 2*rng.Float64() - 1
		im[i] = 2*rng.Float64() - 1
	}

	return re, im
}

func toFloat32(x []float64) []float32 {
	y := make([]float32, len(x))
	for i, v := range x {
		y[i] = float32(v)
	}

	return y
}

func toFloat64(x []float32) []float64 {
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = float64(v)
	}

	return y
}

// errBound is the documented accuracy contract:
// RMS(error) ≤ C·ε·RMS(output)·log2(n), with headroom for the
// float64 reference itself.
func errBound(eps, outRMS float64, n int, c float64) float64 {
	log2n := math.Log2(float64(n)) + 1

	bound := c * eps * outRMS * log2n
	if bound < eps {
		bound = eps
	}

	return bound
}

func assertRMSClose(t *testing.T, gotRe, gotIm, wantRe, wantIm []float64, tol float64, format string, args ...any) {
	t.Helper()

	if d := rmsDiff(gotRe, gotIm, wantRe, wantIm); d > tol {
		t.Fatalf(format+": RMS error %g exceeds %g", append(args, d, tol)...)
	}
}

func assertApproxf(t *testing.T, got, want, tol float64, format string, args ...any) {
	t.Helper()

	if math.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, math.Abs(got-want))...)
	}
}
