package nvec

import (
	"testing"

	"github.com/cwbudde/algo-nvec/internal/operand"
	"github.com/cwbudde/algo-nvec/numeric"
)

var benchKinds = []numeric.Kind{
	numeric.Int8, numeric.Int32, numeric.Int64, numeric.Int128,
	numeric.Uint16, numeric.Uint64, numeric.Float32, numeric.Float64,
}

func benchOperands[A Array](b *testing.B, k numeric.Kind) (Vector[A], Vector[A]) {
	b.Helper()
	var zero A
	x, err := FromValues[A](operand.Values(21, k, 100, len(zero))...)
	if err != nil {
		b.Fatal(err)
	}
	y, err := FromValues[A](operand.Values(22, k, 100, len(zero))...)
	if err != nil {
		b.Fatal(err)
	}
	return x, y
}

func benchElementMul[A Array](b *testing.B) {
	for _, k := range benchKinds {
		b.Run(k.String(), func(b *testing.B) {
			x, y := benchOperands[A](b, k)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := x.ElementMul(y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkElementMul(b *testing.B) {
	b.Run("n=3", benchElementMul[[3]numeric.Bits])
	b.Run("n=8", benchElementMul[[8]numeric.Bits])
	b.Run("n=16", benchElementMul[[16]numeric.Bits])
}

func BenchmarkElementMulScalarKernels(b *testing.B) {
	prev := useBlockKernels
	useBlockKernels = false
	defer func() { useBlockKernels = prev }()

	b.Run("n=16", benchElementMul[[16]numeric.Bits])
}

func BenchmarkDot(b *testing.B) {
	for _, k := range benchKinds {
		b.Run(k.String(), func(b *testing.B) {
			x, y := benchOperands[[8]numeric.Bits](b, k)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := x.Dot(y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCross(b *testing.B) {
	x, y := benchOperands[[3]numeric.Bits](b, numeric.Float64)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Cross(x, y); err != nil {
			b.Fatal(err)
		}
	}
}
