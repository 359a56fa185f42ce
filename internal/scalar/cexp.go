// Package scalar provides the complex-exponential primitives the transform
// engine is built on. Both primitives return the exp(ix)−1 shifted form:
// the twiddle recurrences multiply by small angles, and keeping the value
// near zero instead of near one preserves the low-order bits.
package scalar

import "github.com/cwbudde/algo-genfft/internal/fftypes"

// CExpM1 returns exp(2πi/2^log2n) − 1.
//
// For log2n ≤ 16 the components come from a fixed table whose entries are
// written with more digits than any supported scalar type can hold, so the
// conversion rounds to sub-ULP accuracy per type. Larger log2n means a
// small enough angle that a short Taylor series is accurate to a couple of
// ULPs.
func CExpM1[T fftypes.Float](log2n int) (re, im T) {
	switch log2n {
	case 0:
		return 0, 0
	case 1:
		return -2, 0
	case 2:
		return -1, 1
	case 3:
		return -2.928932188134524755991556378951509607151e-1, 7.071067811865475244008443621048490392848e-1
	case 4:
		return -7.612046748871324387181681060321171317758e-2, 3.826834323650897717284599840303988667613e-1
	case 5:
		return -1.921471959676955087381776386576096302606e-2, 1.950903220161282678482848684770222409276e-1
	case 6:
		return -4.815273327803113755163046890520078424525e-3, 9.801714032956060199419556388864184586113e-2
	case 7:
		return -1.204543794827607285228395240899305556796e-3, 4.906767432741801425495497694268265831474e-2
	case 8:
		return -3.011813037957798842343503338278031499389e-4, 2.454122852291228803173452945928292506546e-2
	case 9:
		return -7.529816085545907835350880361677564939353e-5, 1.227153828571992607940826195100321214037e-2
	case 10:
		return -1.882471739885734300956227143228382608274e-5, 6.135884649154475359640234590372580917057e-3
	case 11:
		return -4.706190423828488419874299880100447012366e-6, 3.067956762965976270145365490919842518944e-3
	case 12:
		return -1.176548298090070974289828473980951732077e-6, 1.533980186284765612303697150264079079954e-3
	case 13:
		return -2.941371177808397717822612343228837361006e-7, 7.669903187427045269385683579485766431409e-4
	case 14:
		return -7.353428214885526851929261214305179884431e-8, 3.834951875713955890724616811813812633950e-4
	case 15:
		return -1.838357070619165308459709028549492394875e-8, 1.917475973107033074399095619890009334688e-4
	case 16:
		return -4.595892687109028066860393851041105696810e-9, 9.587379909597734587051721097647635118706e-5
	}

	const (
		c1 = 1.0
		c2 = 5.0e-1
		c3 = 1.666666666666666666666666666666666666666e-1
		c4 = 4.166666666666666666666666666666666666666e-2
		c5 = 8.333333333333333333333333333333333333333e-3
		c6 = 1.388888888888888888888888888888888888888e-3
		c7 = 1.984126984126984126984126984126984126984e-4
		c8 = 2.480158730158730158730158730158730158730e-5
	)

	x := T(6.283185307179586476925286766559005768) / T(int64(1)<<log2n)
	x2 := x * x
	re = -x2 * (c2 - x2*(c4-x2*(c6-x2*c8)))
	im = x * (c1 - x2*(c3-x2*(c5-x2*c7)))

	return re, im
}

// CExp returns exp(2πi/2^log2n).
func CExp[T fftypes.Float](log2n int) (re, im T) {
	re, im = CExpM1[T](log2n)
	re = 1 + re

	return re, im
}

// CExpM1Frac returns exp(2πi·p/q) − 1.
//
// The series for cos(x)−1 and sin(x) are evaluated by a reverse Horner
// scheme over the factorial denominators, running enough terms for any
// supported precision.
func CExpM1Frac[T fftypes.Float](p, q int) (re, im T) {
	x := T(6.283185307179586476925286766559005768) * T(p) / T(q)
	x2 := x * x

	var c, s T = 1, 1

	i := T(32)
	for range 33 {
		j := 2*i + 3
		k := j
		j = j * j
		c = 1 - x2*c/(j+k)
		s = 1 - x2*s/(j-k)
		i--
	}

	re = -c * 0.5 * x2
	im = s * x

	return re, im
}
