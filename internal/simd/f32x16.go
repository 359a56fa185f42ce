package simd

import "github.com/cwbudde/algo-genfft/internal/scalar"

// Sixteen float32 lanes (AVX-512 class).

type vec16f [16]float32

func load16f(p []float32) vec16f     { return vec16f(p[0:16]) }
func store16f(v vec16f, p []float32) { *(*vec16f)(p[0:16]) = v }

func fill16f(v float32) (r vec16f) {
	for i := range r {
		r[i] = v
	}

	return r
}

func add16f(l, r vec16f) (v vec16f) {
	for i := range v {
		v[i] = l[i] + r[i]
	}

	return v
}

func sub16f(l, r vec16f) (v vec16f) {
	for i := range v {
		v[i] = l[i] - r[i]
	}

	return v
}

func mul16f(l, r vec16f) (v vec16f) {
	for i := range v {
		v[i] = l[i] * r[i]
	}

	return v
}

func butterflyBlock16f(
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
		cc, ss := fill16f(cm), fill16f(sm)

		for i := 0; i < b; i += 16 {
			tRe, tIm := load16f(tr[i:]), load16f(ti[i:])
			c := sub16f(mul16f(cc, tRe), mul16f(ss, tIm))
			s := add16f(mul16f(ss, tRe), mul16f(cc, tIm))
			xl, yl := load16f(re[lr+i:]), load16f(im[li+i:])
			xr, yr := load16f(re[hr+i:]), load16f(im[hi+i:])
			x := sub16f(mul16f(c, xr), mul16f(s, yr))
			y := add16f(mul16f(s, xr), mul16f(c, yr))
			store16f(add16f(xl, x), re[lr+i:])
			store16f(add16f(yl, y), im[li+i:])
			store16f(sub16f(xl, x), re[hr+i:])
			store16f(sub16f(yl, y), im[hi+i:])
		}

		return
	}

	h := b >> 1

	x, y := scalar.CExp[float32](log2n - log2b + 1)
	if !inverse {
		y = -y
	}

	butterflyBlock16f(log2n, log2b-1, re, im, lr, li, hr, hi, cm, sm, inverse, tr, ti, log2buf)
	butterflyBlock16f(log2n, log2b-1, re, im, lr+h, li+h, hr+h, hi+h,
		cm*x-sm*y, sm*x+cm*y, inverse, tr, ti, log2buf)
}

func butterflyPass16f(
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
			butterflyBlock16f(log2n, log2n-1, re, im, lr, li, hr, hi, 1, 0, inverse, tr, ti, log2buf)
			lr += n
			li += n
			hr += n
			hi += n
		}
	case h > 16:
		for i := 0; i < c; i++ {
			for d := 0; d < h; {
				cv, sv := load16f(tr[d:]), load16f(ti[d:])
				xl, yl := load16f(re[lr+d:]), load16f(im[li+d:])
				xr, yr := load16f(re[hr+d:]), load16f(im[hi+d:])
				x := sub16f(mul16f(cv, xr), mul16f(sv, yr))
				y := add16f(mul16f(sv, xr), mul16f(cv, yr))
				store16f(add16f(xl, x), re[lr+d:])
				store16f(add16f(yl, y), im[li+d:])
				store16f(sub16f(xl, x), re[hr+d:])
				store16f(sub16f(yl, y), im[hi+d:])
				d += 16

				cv, sv = load16f(tr[d:]), load16f(ti[d:])
				xl, yl = load16f(re[lr+d:]), load16f(im[li+d:])
				xr, yr = load16f(re[hr+d:]), load16f(im[hi+d:])
				x = sub16f(mul16f(cv, xr), mul16f(sv, yr))
				y = add16f(mul16f(sv, xr), mul16f(cv, yr))
				store16f(add16f(xl, x), re[lr+d:])
				store16f(add16f(yl, y), im[li+d:])
				store16f(sub16f(xl, x), re[hr+d:])
				store16f(sub16f(yl, y), im[hi+d:])
				d += 16
			}

			lr += n
			li += n
			hr += n
			hi += n
		}
	default:
		for i := 0; i < c; i++ {
			cv, sv := load16f(tr), load16f(ti)
			xl, yl := load16f(re[lr:]), load16f(im[li:])
			xr, yr := load16f(re[hr:]), load16f(im[hi:])
			x := sub16f(mul16f(cv, xr), mul16f(sv, yr))
			y := add16f(mul16f(sv, xr), mul16f(cv, yr))
			store16f(add16f(xl, x), re[lr:])
			store16f(add16f(yl, y), im[li:])
			store16f(sub16f(xl, x), re[hr:])
			store16f(sub16f(yl, y), im[hi:])
			lr += n
			li += n
			hr += n
			hi += n
		}
	}
}

func computeTwiddles16f(log2n, log2b int, tr, ti []float32, inverse bool) {
	tr[0], ti[0] = 0, 0

	for i := 0; i < log2b; i++ {
		k := 1 << i

		x, y := scalar.CExpM1[float32](log2n - i)
		if !inverse {
			y = -y
		}

		if k >= 16 {
			xv, yv := fill16f(x), fill16f(y)

			for j := 0; j < k; j += 16 {
				r, m := load16f(tr[j:]), load16f(ti[j:])
				store16f(add16f(sub16f(mul16f(xv, r), mul16f(yv, m)), add16f(xv, r)), tr[k+j:])
				store16f(add16f(add16f(mul16f(yv, r), mul16f(xv, m)), add16f(yv, m)), ti[k+j:])
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
