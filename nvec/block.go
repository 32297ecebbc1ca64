package nvec

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-nvec/numeric"
)

// useBlockKernels routes float64 elementwise work through the CPU-dispatched
// block kernels of algo-vecmath. They compute each element with one IEEE
// operation, so results are bit-identical to the scalar kernels.
var useBlockKernels = true

func elementwiseBlock[A Array](a, b Vector[A], op binaryOp) Vector[A] {
	var xa, xb, xd [MaxDim]float64
	n := len(a.c)
	fa, fb, dst := xa[:n], xb[:n], xd[:n]
	a.float64sInto(fa)
	b.float64sInto(fb)

	switch op {
	case opAdd:
		vecmath.AddBlock(dst, fa, fb)
	case opSub:
		// a + (-b): negation is exact, so this rounds once like a - b.
		vecmath.ScaleBlockInPlace(fb, -1)
		vecmath.AddBlock(dst, fa, fb)
	default:
		vecmath.MulBlock(dst, fa, fb)
	}
	return fromFloat64s[A](dst)
}

func scaleBlock[A Array](v Vector[A], s float64) Vector[A] {
	var xv, xd [MaxDim]float64
	n := len(v.c)
	src, dst := xv[:n], xd[:n]
	v.float64sInto(src)

	vecmath.ScaleBlock(dst, src, s)
	return fromFloat64s[A](dst)
}

func fromFloat64s[A Array](x []float64) Vector[A] {
	v := Vector[A]{kind: numeric.Float64}
	for i := 0; i < len(v.c); i++ {
		v.c[i] = numeric.Encode(x[i])
	}
	return v
}
