package nvec

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-nvec/numeric"
)

// hasMagnitude reports whether every value of k converts to float64
// exactly. 64- and 128-bit integers do not.
func hasMagnitude(k numeric.Kind) bool {
	switch k {
	case numeric.Int8, numeric.Int16, numeric.Int32,
		numeric.Uint8, numeric.Uint16, numeric.Uint32,
		numeric.Float32, numeric.Float64:
		return true
	default:
		return false
	}
}

// Magnitude returns the Euclidean norm sqrt(sum(v[i]^2)) as a float64.
// Squares are summed left to right; overflow yields +Inf.
//
// Kinds that do not convert losslessly into float64 (i64, u64, i128, u128)
// fail with ErrMagnitudeKind.
func (v Vector[A]) Magnitude() (float64, error) {
	if !hasMagnitude(v.kind) {
		return 0, fmt.Errorf("%w: %s", ErrMagnitudeKind, v.kind)
	}

	var acc float64
	for i := 0; i < len(v.c); i++ {
		x := v.At(i).Float64()
		acc += float64(x * x)
	}
	return math.Sqrt(acc), nil
}

// Mag is an alias of Magnitude and always returns the identical result.
func (v Vector[A]) Mag() (float64, error) {
	return v.Magnitude()
}
