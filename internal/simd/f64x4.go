package simd

import "github.com/cwbudde/algo-genfft/internal/scalar"

// Four float64 lanes (AVX class).

type vec4d [4]float64

func load4d(p []float64) vec4d     { return vec4d(p[0:4]) }
func store4d(v vec4d, p []float64) { *(*vec4d)(p[0:4]) = v }

func fill4d(v float64) (r vec4d) {
	for i := range r {
		r[i] = v
	}

	return r
}

func add4d(l, r vec4d) (v vec4d) {
	for i := range v {
		v[i] = l[i] + r[i]
	}

	return v
}

func sub4d(l, r vec4d) (v vec4d) {
	for i := range v {
		v[i] = l[i] - r[i]
	}

	return v
}

func mul4d(l, r vec4d) (v vec4d) {
	for i := range v {
		v[i] = l[i] * r[i]
	}

	return v
}

func butterflyBlock4d(
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
		cc, ss := fill4d(cm), fill4d(sm)

		for i := 0; i < b; i += 4 {
			tRe, tIm := load4d(tr[i:]), load4d(ti[i:])
			c := sub4d(mul4d(cc, tRe), mul4d(ss, tIm))
			s := add4d(mul4d(ss, tRe), mul4d(cc, tIm))
			xl, yl := load4d(re[lr+i:]), load4d(im[li+i:])
			xr, yr := load4d(re[hr+i:]), load4d(im[hi+i:])
			x := sub4d(mul4d(c, xr), mul4d(s, yr))
			y := add4d(mul4d(s, xr), mul4d(c, yr))
			store4d(add4d(xl, x), re[lr+i:])
			store4d(add4d(yl, y), im[li+i:])
			store4d(sub4d(xl, x), re[hr+i:])
			store4d(sub4d(yl, y), im[hi+i:])
		}

		return
	}

	h := b >> 1

	x, y := scalar.CExp[float64](log2n - log2b + 1)
	if !inverse {
		y = -y
	}

	butterflyBlock4d(log2n, log2b-1, re, im, lr, li, hr, hi, cm, sm, inverse, tr, ti, log2buf)
	butterflyBlock4d(log2n, log2b-1, re, im, lr+h, li+h, hr+h, hi+h,
		cm*x-sm*y, sm*x+cm*y, inverse, tr, ti, log2buf)
}

func butterflyPass4d(
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
			butterflyBlock4d(log2n, log2n-1, re, im, lr, li, hr, hi, 1, 0, inverse, tr, ti, log2buf)
			lr += n
			li += n
			hr += n
			hi += n
		}
	case h > 4:
		for i := 0; i < c; i++ {
			for d := 0; d < h; {
				cv, sv := load4d(tr[d:]), load4d(ti[d:])
				xl, yl := load4d(re[lr+d:]), load4d(im[li+d:])
				xr, yr := load4d(re[hr+d:]), load4d(im[hi+d:])
				x := sub4d(mul4d(cv, xr), mul4d(sv, yr))
				y := add4d(mul4d(sv, xr), mul4d(cv, yr))
				store4d(add4d(xl, x), re[lr+d:])
				store4d(add4d(yl, y), im[li+d:])
				store4d(sub4d(xl, x), re[hr+d:])
				store4d(sub4d(yl, y), im[hi+d:])
				d += 4

				cv, sv = load4d(tr[d:]), load4d(ti[d:])
				xl, yl = load4d(re[lr+d:]), load4d(im[li+d:])
				xr, yr = load4d(re[hr+d:]), load4d(im[hi+d:])
				x = sub4d(mul4d(cv, xr), mul4d(sv, yr))
				y = add4d(mul4d(sv, xr), mul4d(cv, yr))
				store4d(add4d(xl, x), re[lr+d:])
				store4d(add4d(yl, y), im[li+d:])
				store4d(sub4d(xl, x), re[hr+d:])
				store4d(sub4d(yl, y), im[hi+d:])
				d += 4
			}

			lr += n
			li += n
			hr += n
			hi += n
		}
	default:
		for i := 0; i < c; i++ {
			cv, sv := load4d(tr), load4d(ti)
			xl, yl := load4d(re[lr:]), load4d(im[li:])
			xr, yr := load4d(re[hr:]), load4d(im[hi:])
			x := sub4d(mul4d(cv, xr), mul4d(sv, yr))
			y := add4d(mul4d(sv, xr), mul4d(cv, yr))
			store4d(add4d(xl, x), re[lr:])
			store4d(add4d(yl, y), im[li:])
			store4d(sub4d(xl, x), re[hr:])
			store4d(sub4d(yl, y), im[hi:])
			lr += n
			li += n
			hr += n
			hi += n
		}
	}
}

func computeTwiddles4d(log2n, log2b int, tr, ti []float64, inverse bool) {
	tr[0], ti[0] = 0, 0

	for i := 0; i < log2b; i++ {
		k := 1 << i

		x, y := scalar.CExpM1[float64](log2n - i)
		if !inverse {
			y = -y
		}

		if k >= 4 {
			xv, yv := fill4d(x), fill4d(y)

			for j := 0; j < k; j += 4 {
				r, m := load4d(tr[j:]), load4d(ti[j:])
				store4d(add4d(sub4d(mul4d(xv, r), mul4d(yv, m)), add4d(xv, r)), tr[k+j:])
				store4d(add4d(add4d(mul4d(yv, r), mul4d(xv, m)), add4d(yv, m)), ti[k+j:])
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
