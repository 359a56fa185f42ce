package simd

import "github.com/cwbudde/algo-genfft/internal/scalar"

// Four float32 lanes (SSE2, NEON class).

type vec4f [4]float32

func load4f(p []float32) vec4f     { return vec4f(p[0:4]) }
func store4f(v vec4f, p []float32) { *(*vec4f)(p[0:4]) = v }

func fill4f(v float32) (r vec4f) {
	for i := range r {
		r[i] = v
	}

	return r
}

func add4f(l, r vec4f) (v vec4f) {
	for i := range v {
		v[i] = l[i] + r[i]
	}

	return v
}

func sub4f(l, r vec4f) (v vec4f) {
	for i := range v {
		v[i] = l[i] - r[i]
	}

	return v
}

func mul4f(l, r vec4f) (v vec4f) {
	for i := range v {
		v[i] = l[i] * r[i]
	}

	return v
}

func butterflyBlock4f(
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
		cc, ss := fill4f(cm), fill4f(sm)

		for i := 0; i < b; i += 4 {
			tRe, tIm := load4f(tr[i:]), load4f(ti[i:])
			c := sub4f(mul4f(cc, tRe), mul4f(ss, tIm))
			s := add4f(mul4f(ss, tRe), mul4f(cc, tIm))
			xl, yl := load4f(re[lr+i:]), load4f(im[li+i:])
			xr, yr := load4f(re[hr+i:]), load4f(im[hi+i:])
			x := sub4f(mul4f(c, xr), mul4f(s, yr))
			y := add4f(mul4f(s, xr), mul4f(c, yr))
			store4f(add4f(xl, x), re[lr+i:])
			store4f(add4f(yl, y), im[li+i:])
			store4f(sub4f(xl, x), re[hr+i:])
			store4f(sub4f(yl, y), im[hi+i:])
		}

		return
	}

	h := b >> 1

	x, y := scalar.CExp[float32](log2n - log2b + 1)
	if !inverse {
		y = -y
	}

	butterflyBlock4f(log2n, log2b-1, re, im, lr, li, hr, hi, cm, sm, inverse, tr, ti, log2buf)
	butterflyBlock4f(log2n, log2b-1, re, im, lr+h, li+h, hr+h, hi+h,
		cm*x-sm*y, sm*x+cm*y, inverse, tr, ti, log2buf)
}

func butterflyPass4f(
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
			butterflyBlock4f(log2n, log2n-1, re, im, lr, li, hr, hi, 1, 0, inverse, tr, ti, log2buf)
			lr += n
			li += n
			hr += n
			hi += n
		}
	case h > 4:
		for i := 0; i < c; i++ {
			for d := 0; d < h; {
				cv, sv := load4f(tr[d:]), load4f(ti[d:])
				xl, yl := load4f(re[lr+d:]), load4f(im[li+d:])
				xr, yr := load4f(re[hr+d:]), load4f(im[hi+d:])
				x := sub4f(mul4f(cv, xr), mul4f(sv, yr))
				y := add4f(mul4f(sv, xr), mul4f(cv, yr))
				store4f(add4f(xl, x), re[lr+d:])
				store4f(add4f(yl, y), im[li+d:])
				store4f(sub4f(xl, x), re[hr+d:])
				store4f(sub4f(yl, y), im[hi+d:])
				d += 4

				cv, sv = load4f(tr[d:]), load4f(ti[d:])
				xl, yl = load4f(re[lr+d:]), load4f(im[li+d:])
				xr, yr = load4f(re[hr+d:]), load4f(im[hi+d:])
				x = sub4f(mul4f(cv, xr), mul4f(sv, yr))
				y = add4f(mul4f(sv, xr), mul4f(cv, yr))
				store4f(add4f(xl, x), re[lr+d:])
				store4f(add4f(yl, y), im[li+d:])
				store4f(sub4f(xl, x), re[hr+d:])
				store4f(sub4f(yl, y), im[hi+d:])
				d += 4
			}

			lr += n
			li += n
			hr += n
			hi += n
		}
	default:
		for i := 0; i < c; i++ {
			cv, sv := load4f(tr), load4f(ti)
			xl, yl := load4f(re[lr:]), load4f(im[li:])
			xr, yr := load4f(re[hr:]), load4f(im[hi:])
			x := sub4f(mul4f(cv, xr), mul4f(sv, yr))
			y := add4f(mul4f(sv, xr), mul4f(cv, yr))
			store4f(add4f(xl, x), re[lr:])
			store4f(add4f(yl, y), im[li:])
			store4f(sub4f(xl, x), re[hr:])
			store4f(sub4f(yl, y), im[hi:])
			lr += n
			li += n
			hr += n
			hi += n
		}
	}
}

func computeTwiddles4f(log2n, log2b int, tr, ti []float32, inverse bool) {
	tr[0], ti[0] = 0, 0

	for i := 0; i < log2b; i++ {
		k := 1 << i

		x, y := scalar.CExpM1[float32](log2n - i)
		if !inverse {
			y = -y
		}

		if k >= 4 {
			xv, yv := fill4f(x), fill4f(y)

			for j := 0; j < k; j += 4 {
				r, m := load4f(tr[j:]), load4f(ti[j:])
				store4f(add4f(sub4f(mul4f(xv, r), mul4f(yv, m)), add4f(xv, r)), tr[k+j:])
				store4f(add4f(add4f(mul4f(yv, r), mul4f(xv, m)), add4f(yv, m)), ti[k+j:])
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
