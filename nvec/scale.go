package nvec

import "github.com/cwbudde/algo-nvec/numeric"

// Scale returns v * s: every component multiplied by the scalar s in the
// promoted kind of v and s.
func (v Vector[A]) Scale(s numeric.Value) (Vector[A], error) {
	return scale(v, s, false)
}

// MulScalar returns v * s for a scalar of any supported kind.
func MulScalar[A Array, T numeric.Element](v Vector[A], s T) (Vector[A], error) {
	return scale(v, numeric.Of(s), false)
}

// ScalarMul returns s * v for a scalar of any supported kind. The result is
// identical to MulScalar(v, s).
func ScalarMul[A Array, T numeric.Element](s T, v Vector[A]) (Vector[A], error) {
	return scale(v, numeric.Of(s), true)
}

func scale[A Array](v Vector[A], s numeric.Value, scalarLeft bool) (Vector[A], error) {
	r, kern, err := resolve("scale", v.kind, s.Kind())
	if err != nil {
		return Vector[A]{}, err
	}
	if r == numeric.Float64 && useBlockKernels {
		return scaleBlock(v, s.Float64()), nil
	}

	sr := numeric.ConvertBits(s.Bits(), s.Kind(), r)
	out := Vector[A]{kind: r}
	for i := 0; i < len(out.c); i++ {
		x := numeric.ConvertBits(v.c[i], v.kind, r)
		if scalarLeft {
			out.c[i] = kern.Mul(sr, x)
		} else {
			out.c[i] = kern.Mul(x, sr)
		}
	}
	return out, nil
}
