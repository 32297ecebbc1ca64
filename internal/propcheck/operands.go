package propcheck

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-nvec/internal/operand"
	"github.com/cwbudde/algo-nvec/numeric"
	"github.com/cwbudde/algo-nvec/nvec"
)

func vector4(rng *rand.Rand, k numeric.Kind, limit int64) nvec.Vec4 {
	return nvec.Must(nvec.FromValues[[4]numeric.Bits](
		operand.Sample(rng, k, limit), operand.Sample(rng, k, limit), operand.Sample(rng, k, limit), operand.Sample(rng, k, limit)))
}

func vector3(rng *rand.Rand, k numeric.Kind, limit int64) nvec.Vec3 {
	return nvec.Must(nvec.FromValues[[3]numeric.Bits](
		operand.Sample(rng, k, limit), operand.Sample(rng, k, limit), operand.Sample(rng, k, limit)))
}

func isNaN(v numeric.Value) bool {
	return v.Kind().IsFloat() && math.IsNaN(v.Float64())
}

// sameValue is Equal with NaN matching NaN.
func sameValue(a, b numeric.Value) bool {
	return a.Equal(b) || (a.Kind() == b.Kind() && isNaN(a) && isNaN(b))
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func sameVector[A nvec.Array](p, q nvec.Vector[A]) bool {
	if p.Kind() != q.Kind() {
		return false
	}
	for i := 0; i < p.Len(); i++ {
		if !sameValue(p.At(i), q.At(i)) {
			return false
		}
	}
	return true
}
