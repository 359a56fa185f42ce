package fftypes

// Float is a type constraint for the scalar element types supported by the
// transform engine. Any defined type whose underlying type is float32 or
// float64 satisfies it.
type Float interface {
	~float32 | ~float64
}

// CExpM1Func computes exp(2πi/2^log2n) − 1 for the scalar type T.
// The −1 form preserves precision near zero; downstream recurrences
// multiply by small angles.
type CExpM1Func[T Float] func(log2n int) (re, im T)

// CExpM1FracFunc computes exp(2πi·p/q) − 1 for the scalar type T.
type CExpM1FracFunc[T Float] func(p, q int) (re, im T)

// MultipassFunc is an optimized butterfly multipass hook. It may consume
// one or more passes starting at depth log2n−depth+1 and reports how many
// it performed (always contiguous, bottom-up). Returning 0 leaves all
// passes to the scalar path.
type MultipassFunc[T Float] func(
	log2n, log2c, depth int,
	re, im []T,
	reStride, imStride int,
	inverse bool,
	tr, ti []T,
	log2buf int,
) int
