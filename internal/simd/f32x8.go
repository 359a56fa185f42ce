package simd

import "github.com/cwbudde/algo-genfft/internal/scalar"

// Eight float32 lanes (AVX class).

type vec8f [8]float32

func load8f(p []float32) vec8f     { return vec8f(p[0:8]) }
func store8f(v vec8f, p []float32) { *(*vec8f)(p[0:8]) = v }

func fill8f(v float32) (r vec8f) {
	for i := range r {
		r[i] = v
	}

	return r
}

func add8f(l, r vec8f) (v vec8f) {
	for i := range v {
		v[i] = l[i] + r[i]
	}

	return v
}

func sub8f(l, r vec8f) (v vec8f) {
	for i := range v {
		v[i] = l[i] - r[i]
	}

	return v
}

func mul8f(l, r vec8f) (v vec8f) {
	for i := range v {
		v[i] = l[i] * r[i]
	}

	return v
}

func butterflyBlock8f(
	log2n, log2b int,
	re, im []float32,
	lr, li, hr, hi int,
	cm, sm float32,
	inverse bool,
	tr, ti []float32,
	log2buf int,
) {
	b := 1 << log2b

	if log2b <= log2buf {
		cc, ss := fill8f(cm), fill8f(sm)

		for i := 0; i < b; i += 8 {
			tRe, tIm := load8f(tr[i:]), load8f(ti[i:])
			c := sub8f(mul8f(cc, tRe), mul8f(ss, tIm))
			s := add8f(mul8f(ss, tRe), mul8f(cc, tIm))
			xl, yl := load8f(re[lr+i:]), load8f(im[li+i:])
			xr, yr := load8f(re[hr+i:]), load8f(im[hi+i:])
			x := sub8f(mul8f(c, xr), mul8f(s, yr))
			y := add8f(mul8f(s, xr), mul8f(c, yr))
			store8f(add8f(xl, x), re[lr+i:])
			store8f(add8f(yl, y), im[li+i:])
			store8f(sub8f(xl, x), re[hr+i:])
			store8f(sub8f(yl, y), im[hi+i:])
		}

		return
	}

	h := b >> 1

	x, y := scalar.CExp[float32](log2n - log2b + 1)
	if !inverse {
		y = -y
	}

	butterflyBlock8f(log2n, log2b-1, re, im, lr, li, hr, hi, cm, sm, inverse, tr, ti, log2buf)
	butterflyBlock8f(log2n, log2b-1, re, im, lr+h, li+h, hr+h, hi+h,
		cm*x-sm*y, sm*x+cm*y, inverse, tr, ti, log2buf)
}

func butterflyPass8f(
	log2n, log2c int,
	re, im []float32,
	inverse bool,
	log2t int,
	tr, ti []float32,
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
			butterflyBlock8f(log2n, log2n-1, re, im, lr, li, hr, hi, 1, 0, inverse, tr, ti, log2buf)
			lr += n
			li += n
			hr += n
			hi += n
		}
	case h > 8:
		for i := 0; i < c; i++ {
			for d := 0; d < h; {
				cv, sv := load8f(tr[d:]), load8f(ti[d:])
				xl, yl := load8f(re[lr+d:]), load8f(im[li+d:])
				xr, yr := load8f(re[hr+d:]), load8f(im[hi+d:])
				x := sub8f(mul8f(cv, xr), mul8f(sv, yr))
				y := add8f(mul8f(sv, xr), mul8f(cv, yr))
				store8f(add8f(xl, x), re[lr+d:])
				store8f(add8f(yl, y), im[li+d:])
				store8f(sub8f(xl, x), re[hr+d:])
				store8f(sub8f(yl, y), im[hi+d:])
				d += 8

				cv, sv = load8f(tr[d:]), load8f(ti[d:])
				xl, yl = load8f(re[lr+d:]), load8f(im[li+d:])
				xr, yr = load8f(re[hr+d:]), load8f(im[hi+d:])
				x = sub8f(mul8f(cv, xr), mul8f(sv, yr))
				y = add8f(mul8f(sv, xr), mul8f(cv, yr))
				store8f(add8f(xl, x), re[lr+d:])
				store8f(add8f(yl, y), im[li+d:])
				store8f(sub8f(xl, x), re[hr+d:])
				store8f(sub8f(yl, y), im[hi+d:])
				d += 8
			}

			lr += n
			li += n
			hr += n
			hi += n
		}
	default:
		for i := 0; i < c; i++ {
			cv, sv := load8f(tr), load8f(ti)
			xl, yl := load8f(re[lr:]), load8f(im[li:])
			xr, yr := load8f(re[hr:]), load8f(im[hi:])
			x := sub8f(mul8f(cv, xr), mul8f(sv, yr))
			y := add8f(mul8f(sv, xr), mul8f(cv, yr))
			store8f(add8f(xl, x), re[lr:])
			store8f(add8f(yl, y), im[li:])
			store8f(sub8f(xl, x), re[hr:])
			store8f(sub8f(yl, y), im[hi:])
			lr += n
			li += n
			hr += n
			hi += n
		}
	}
}

func computeTwiddles8f(log2n, log2b int, tr, ti []float32, inverse bool) {
	tr[0], ti[0] = 0, 0

	for i := 0; i < log2b; i++ {
		k := 1 << i

		x, y := scalar.CExpM1[float32](log2n - i)
		if !inverse {
			y = -y
		}

		if k >= 8 {
			xv, yv := fill8f(x), fill8f(y)

			for j := 0; j < k; j += 8 {
				r, m := load8f(tr[j:]), load8f(ti[j:])
				store8f(add8f(sub8f(mul8f(xv, r), mul8f(yv, m)), add8f(xv, r)), tr[k+j:])
				store8f(add8f(add8f(mul8f(yv, r), mul8f(xv, m)), add8f(yv, m)), ti[k+j:])
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
