// Package operand draws reproducible component values of any numeric kind
// for tests, benchmarks and property checks.
package operand

import (
	"math/rand"

	"github.com/cwbudde/algo-nvec/numeric"
)

// MaxLimit is the largest magnitude bound honoured by Sample and Values.
// It keeps the signed range [-limit, limit] countable in an int64.
const MaxLimit = 1<<62 - 1

// ClampLimit maps limit into [0, MaxLimit].
func ClampLimit(limit int64) int64 {
	return min(max(limit, 0), MaxLimit)
}

// Sample draws one value of kind k. Signed kinds and floats fall in
// [-limit, limit], unsigned kinds in [0, limit]. Floats are not restricted
// to whole numbers. Narrow kinds wrap values outside their range.
func Sample(rng *rand.Rand, k numeric.Kind, limit int64) numeric.Value {
	limit = ClampLimit(limit)
	var src numeric.Value
	switch {
	case k.IsFloat():
		src = numeric.Of((rng.Float64()*2 - 1) * float64(limit))
	case k.IsUnsigned():
		src = numeric.Of(rng.Int63n(limit + 1))
	default:
		src = numeric.Of(rng.Int63n(2*limit+1) - limit)
	}
	v, err := src.Convert(k)
	if err != nil {
		// only an invalid k gets here
		panic(err)
	}
	return v
}

// Values returns n values of kind k drawn from a fixed seed.
func Values(seed int64, k numeric.Kind, limit int64, n int) []numeric.Value {
	rng := rand.New(rand.NewSource(seed))
	out := make([]numeric.Value, n)
	for i := range out {
		out[i] = Sample(rng, k, limit)
	}
	return out
}
