package simd

import "github.com/cwbudde/algo-genfft/internal/scalar"

// Eight float64 lanes (AVX-512 class).

type vec8d [8]float64

func load8d(p []float64) vec8d     { return vec8d(p[0:8]) }
func store8d(v vec8d, p []float64) { *(*vec8d)(p[0:8]) = v }

func fill8d(v float64) (r vec8d) {
	for i := range r {
		r[i] = v
	}

	return r
}

func add8d(l, r vec8d) (v vec8d) {
	for i := range v {
		v[i] = l[i] + r[i]
	}

	return v
}

func sub8d(l, r vec8d) (v vec8d) {
	for i := range v {
		v[i] = l[i] - r[i]
	}

	return v
}

func mul8d(l, r vec8d) (v vec8d) {
	for i := range v {
		v[i] = l[i] * r[i]
	}

	return v
}

func butterflyBlock8d(
	log2n, log2b int,
	re, im []float64,
	lr, li, hr, hi int,
	cm, sm float64,
	inverse bool,
	tr, ti []float64,
	log2buf int,
) {
	b := 1 << log2b

	if log2b <= log2buf {
		cc, ss := fill8d(cm), fill8d(sm)

		for i := 0; i < b; i += 8 {
			tRe, tIm := load8d(tr[i:]), load8d(ti[i:])
			c := sub8d(mul8d(cc, tRe), mul8d(ss, tIm))
			s := add8d(mul8d(ss, tRe), mul8d(cc, tIm))
			xl, yl := load8d(re[lr+i:]), load8d(im[li+i:])
			xr, yr := load8d(re[hr+i:]), load8d(im[hi+i:])
			x := sub8d(mul8d(c, xr), mul8d(s, yr))
			y := add8d(mul8d(s, xr), mul8d(c, yr))
			store8d(add8d(xl, x), re[lr+i:])
			store8d(add8d(yl, y), im[li+i:])
			store8d(sub8d(xl, x), re[hr+i:])
			store8d(sub8d(yl, y), im[hi+i:])
		}

		return
	}

	h := b >> 1

	x, y := scalar.CExp[float64](log2n - log2b + 1)
	if !inverse {
		y = -y
	}

	butterflyBlock8d(log2n, log2b-1, re, im, lr, li, hr, hi, cm, sm, inverse, tr, ti, log2buf)
	butterflyBlock8d(log2n, log2b-1, re, im, lr+h, li+h, hr+h, hi+h,
		cm*x-sm*y, sm*x+cm*y, inverse, tr, ti, log2buf)
}

func butterflyPass8d(
	log2n, log2c int,
	re, im []float64,
	inverse bool,
	log2t int,
	tr, ti []float64,
	log2buf int,
) {
	n := 1 << log2n
	h := n >> 1
	c := 1 << log2c

	lr, li := 0, 0
	hr, hi := h, h

	switch {
	case log2n-1 > log2t:
		for i := 0; i < c; i++ {
			butterflyBlock8d(log2n, log2n-1, re, im, lr, li, hr, hi, 1, 0, inverse, tr, ti, log2buf)
			lr += n
			li += n
			hr += n
			hi += n
		}
	case h > 8:
		for i := 0; i < c; i++ {
			for d := 0; d < h; {
				cv, sv := load8d(tr[d:]), load8d(ti[d:])
				xl, yl := load8d(re[lr+d:]), load8d(im[li+d:])
				xr, yr := load8d(re[hr+d:]), load8d(im[hi+d:])
				x := sub8d(mul8d(cv, xr), mul8d(sv, yr))
				y := add8d(mul8d(sv, xr), mul8d(cv, yr))
				store8d(add8d(xl, x), re[lr+d:])
				store8d(add8d(yl, y), im[li+d:])
				store8d(sub8d(xl, x), re[hr+d:])
				store8d(sub8d(yl, y), im[hi+d:])
				d += 8

				cv, sv = load8d(tr[d:]), load8d(ti[d:])
				xl, yl = load8d(re[lr+d:]), load8d(im[li+d:])
				xr, yr = load8d(re[hr+d:]), load8d(im[hi+d:])
				x = sub8d(mul8d(cv, xr), mul8d(sv, yr))
				y = add8d(mul8d(sv, xr), mul8d(cv, yr))
				store8d(add8d(xl, x), re[lr+d:])
				store8d(add8d(yl, y), im[li+d:])
				store8d(sub8d(xl, x), re[hr+d:])
				store8d(sub8d(yl, y), im[hi+d:])
				d += 8
			}

			lr += n
			li += n
			hr += n
			hi += n
		}
	default:
		for i := 0; i < c; i++ {
			cv, sv := load8d(tr), load8d(ti)
			xl, yl := load8d(re[lr:]), load8d(im[li:])
			xr, yr := load8d(re[hr:]), load8d(im[hi:])
			x := sub8d(mul8d(cv, xr), mul8d(sv, yr))
			y := add8d(mul8d(sv, xr), mul8d(cv, yr))
			store8d(add8d(xl, x), re[lr:])
			store8d(add8d(yl, y), im[li:])
			store8d(sub8d(xl, x), re[hr:])
			store8d(sub8d(yl, y), im[hi:])
			lr += n
			li += n
			hr += n
			hi += n
		}
	}
}

func computeTwiddles8d(log2n, log2b int, tr, ti []float64, inverse bool) {
	tr[0], ti[0] = 0, 0

	for i := 0; i < log2b; i++ {
		k := 1 << i

		x, y := scalar.CExpM1[float64](log2n - i)
		if !inverse {
			y = -y
		}

		if k >= 8 {
			xv, yv := fill8d(x), fill8d(y)

			for j := 0; j < k; j += 8 {
				r, m := load8d(tr[j:]), load8d(ti[j:])
				store8d(add8d(sub8d(mul8d(xv, r), mul8d(yv, m)), add8d(xv, r)), tr[k+j:])
				store8d(add8d(add8d(mul8d(yv, r), mul8d(xv, m)), add8d(yv, m)), ti[k+j:])
			}

			continue
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
