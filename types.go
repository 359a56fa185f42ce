package genfft

import "github.com/cwbudde/algo-genfft/internal/fftypes"

// Float is the type constraint for scalar element types supported by the
// transforms. The canonical definition is in internal/fftypes.
type Float = fftypes.Float

// CExpM1Func computes exp(2πi/2^log2n) − 1 for a custom scalar type.
type CExpM1Func[T Float] = fftypes.CExpM1Func[T]

// CExpM1FracFunc computes exp(2πi·p/q) − 1 for a custom scalar type.
type CExpM1FracFunc[T Float] = fftypes.CExpM1FracFunc[T]

// MultipassFunc is an optimized butterfly multipass hook; see
// Config.Multipass.
type MultipassFunc[T Float] = fftypes.MultipassFunc[T]
