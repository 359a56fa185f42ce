package simd

import "github.com/cwbudde/algo-genfft/internal/scalar"

// Two float64 lanes (SSE2, NEON class).

type vec2d [2]float64

func load2d(p []float64) vec2d     { return vec2d(p[0:2]) }
func store2d(v vec2d, p []float64) { *(*vec2d)(p[0:2]) = v }

func fill2d(v float64) (r vec2d) {
	for i := range r {
		r[i] = v
	}

	return r
}

func add2d(l, r vec2d) (v vec2d) {
	for i := range v {
		v[i] = l[i] + r[i]
	}

	return v
}

func sub2d(l, r vec2d) (v vec2d) {
	for i := range v {
		v[i] = l[i] - r[i]
	}

	return v
}

func mul2d(l, r vec2d) (v vec2d) {
	for i := range v {
		v[i] = l[i] * r[i]
	}

	return v
}

func butterflyBlock2d(
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
		cc, ss := fill2d(cm), fill2d(sm)

		for i := 0; i < b; i += 2 {
			tRe, tIm := load2d(tr[i:]), load2d(ti[i:])
			c := sub2d(mul2d(cc, tRe), mul2d(ss, tIm))
			s := add2d(mul2d(ss, tRe), mul2d(cc, tIm))
			xl, yl := load2d(re[lr+i:]), load2d(im[li+i:])
			xr, yr := load2d(re[hr+i:]), load2d(im[hi+i:])
			x := sub2d(mul2d(c, xr), mul2d(s, yr))
			y := add2d(mul2d(s, xr), mul2d(c, yr))
			store2d(add2d(xl, x), re[lr+i:])
			store2d(add2d(yl, y), im[li+i:])
			store2d(sub2d(xl, x), re[hr+i:])
			store2d(sub2d(yl, y), im[hi+i:])
		}

		return
	}

	h := b >> 1

	x, y := scalar.CExp[float64](log2n - log2b + 1)
	if !inverse {
		y = -y
	}

	butterflyBlock2d(log2n, log2b-1, re, im, lr, li, hr, hi, cm, sm, inverse, tr, ti, log2buf)
	butterflyBlock2d(log2n, log2b-1, re, im, lr+h, li+h, hr+h, hi+h,
		cm*x-sm*y, sm*x+cm*y, inverse, tr, ti, log2buf)
}

func butterflyPass2d(
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
			butterflyBlock2d(log2n, log2n-1, re, im, lr, li, hr, hi, 1, 0, inverse, tr, ti, log2buf)
			lr += n
			li += n
			hr += n
			hi += n
		}
	case h > 2:
		for i := 0; i < c; i++ {
			for d := 0; d < h; {
				cv, sv := load2d(tr[d:]), load2d(ti[d:])
				xl, yl := load2d(re[lr+d:]), load2d(im[li+d:])
				xr, yr := load2d(re[hr+d:]), load2d(im[hi+d:])
				x := sub2d(mul2d(cv, xr), mul2d(sv, yr))
				y := add2d(mul2d(sv, xr), mul2d(cv, yr))
				store2d(add2d(xl, x), re[lr+d:])
				store2d(add2d(yl, y), im[li+d:])
				store2d(sub2d(xl, x), re[hr+d:])
				store2d(sub2d(yl, y), im[hi+d:])
				d += 2

				cv, sv = load2d(tr[d:]), load2d(ti[d:])
				xl, yl = load2d(re[lr+d:]), load2d(im[li+d:])
				xr, yr = load2d(re[hr+d:]), load2d(im[hi+d:])
				x = sub2d(mul2d(cv, xr), mul2d(sv, yr))
				y = add2d(mul2d(sv, xr), mul2d(cv, yr))
				store2d(add2d(xl, x), re[lr+d:])
				store2d(add2d(yl, y), im[li+d:])
				store2d(sub2d(xl, x), re[hr+d:])
				store2d(sub2d(yl, y), im[hi+d:])
				d += 2
			}

			lr += n
			li += n
			hr += n
			hi += n
		}
	default:
		for i := 0; i < c; i++ {
			cv, sv := load2d(tr), load2d(ti)
			xl, yl := load2d(re[lr:]), load2d(im[li:])
			xr, yr := load2d(re[hr:]), load2d(im[hi:])
			x := sub2d(mul2d(cv, xr), mul2d(sv, yr))
			y := add2d(mul2d(sv, xr), mul2d(cv, yr))
			store2d(add2d(xl, x), re[lr:])
			store2d(add2d(yl, y), im[li:])
			store2d(sub2d(xl, x), re[hr:])
			store2d(sub2d(yl, y), im[hi:])
			lr += n
			li += n
			hr += n
			hi += n
		}
	}
}

func computeTwiddles2d(log2n, log2b int, tr, ti []float64, inverse bool) {
	tr[0], ti[0] = 0, 0

	for i := 0; i < log2b; i++ {
		k := 1 << i

		x, y := scalar.CExpM1[float64](log2n - i)
		if !inverse {
			y = -y
		}

		if k >= 2 {
			xv, yv := fill2d(x), fill2d(y)

			for j := 0; j < k; j += 2 {
				r, m := load2d(tr[j:]), load2d(ti[j:])
				store2d(add2d(sub2d(mul2d(xv, r), mul2d(yv, m)), add2d(xv, r)), tr[k+j:])
				store2d(add2d(add2d(mul2d(yv, r), mul2d(xv, m)), add2d(yv, m)), ti[k+j:])
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
