package nvec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-nvec/internal/operand"
	"github.com/cwbudde/algo-nvec/numeric"
	"github.com/cwbudde/algo-nvec/nvec"
)

func TestAddPromotesToFloat64(t *testing.T) {
	a := nvec.New3([3]float64{1, 2, 3})
	b := nvec.New3([3]int32{4, -5, 200})
	want := nvec.New3([3]float64{5, -3, 203})

	ab, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, ab.Equal(want), "a+b = %s", ab)

	ba, err := b.Add(a)
	require.NoError(t, err)
	assert.True(t, ba.Equal(want), "b+a = %s", ba)
}

func TestElementwiseMatchesScalarArithmetic(t *testing.T) {
	x := [3]float64{1.01, -2.65, 3.4}
	y := [3]int32{4, -5, 200}
	a, b := nvec.New3(x), nvec.New3(y)

	tests := []struct {
		name   string
		op     func(v, w nvec.Vec3) (nvec.Vec3, error)
		scalar func(p, q float64) float64
	}{
		{"add", nvec.Vec3.Add, func(p, q float64) float64 { return p + q }},
		{"sub", nvec.Vec3.Sub, func(p, q float64) float64 { return p - q }},
		{"mul", nvec.Vec3.ElementMul, func(p, q float64) float64 { return p * q }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var want [3]float64
			for i := range want {
				want[i] = tt.scalar(x[i], float64(y[i]))
			}
			got, err := tt.op(a, b)
			require.NoError(t, err)
			assert.True(t, got.Equal(nvec.New3(want)), "got %s, want %v", got, want)
		})
	}
}

func TestSubtractionOrder(t *testing.T) {
	a := nvec.New3([3]int16{10, 0, -7})
	b := nvec.New3([3]int8{3, 5, -7})

	ab := nvec.Must(a.Sub(b))
	ba := nvec.Must(b.Sub(a))

	assert.True(t, ab.Equal(nvec.New3([3]int16{7, -5, 0})), "a-b = %s", ab)
	negBA := nvec.Must(nvec.ScalarMul(int8(-1), ba))
	assert.True(t, ab.Equal(negBA), "a-b = %s, -(b-a) = %s", ab, negBA)
}

func TestUnsignedSubtractionWraps(t *testing.T) {
	got := nvec.Must(nvec.New2([2]uint8{1, 200}).Sub(nvec.New2([2]uint8{3, 100})))
	assert.True(t, got.Equal(nvec.New2([2]uint8{254, 100})), "got %s", got)
}

func TestElementMulCommutes(t *testing.T) {
	for _, ka := range numeric.Kinds() {
		for _, kb := range numeric.Kinds() {
			if _, err := numeric.Promote(ka, kb); err != nil {
				continue
			}
			a := nvec.Must(nvec.FromValues[[4]numeric.Bits](operand.Values(1, ka, 100, 4)...))
			b := nvec.Must(nvec.FromValues[[4]numeric.Bits](operand.Values(2, kb, 100, 4)...))

			ab := nvec.Must(a.ElementMul(b))
			ba := nvec.Must(b.ElementMul(a))
			assert.True(t, ab.Equal(ba), "%s x %s: %s != %s", ka, kb, ab, ba)

			sum1 := nvec.Must(a.Add(b))
			sum2 := nvec.Must(b.Add(a))
			assert.True(t, sum1.Equal(sum2), "%s + %s: %s != %s", ka, kb, sum1, sum2)
		}
	}
}

func TestWideIntegerWithFloatRejected(t *testing.T) {
	i128 := nvec.New3([3]numeric.I128{numeric.I128From64(1), numeric.I128From64(2), numeric.I128From64(3)})
	u128 := nvec.New3([3]numeric.U128{{Lo: 1}, {Lo: 2}, {Lo: 3}})
	f32 := nvec.New3([3]float32{1, 2, 3})
	f64 := nvec.New3([3]float64{1, 2, 3})

	for _, wide := range []nvec.Vec3{i128, u128} {
		for _, fl := range []nvec.Vec3{f32, f64} {
			_, err := wide.Add(fl)
			assert.ErrorIs(t, err, numeric.ErrNoPromotion)
			_, err = fl.Sub(wide)
			assert.ErrorIs(t, err, numeric.ErrNoPromotion)
			_, err = wide.ElementMul(fl)
			assert.ErrorIs(t, err, numeric.ErrNoPromotion)
			_, err = wide.Dot(fl)
			assert.ErrorIs(t, err, numeric.ErrNoPromotion)
			_, err = nvec.Cross(fl, wide)
			assert.ErrorIs(t, err, numeric.ErrNoPromotion)
			_, err = fl.Scale(wide.At(0))
			assert.ErrorIs(t, err, numeric.ErrNoPromotion)
		}
	}

	_, err := i128.Add(f64)
	var pe *numeric.PromotionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, numeric.Int128, pe.A)
	assert.Equal(t, numeric.Float64, pe.B)
	assert.Contains(t, err.Error(), "i128 and f64")
}

func TestDot(t *testing.T) {
	a := nvec.New3([3]int32{1, 2, 3})
	b := nvec.New3([3]int32{3, 2, 1})

	got, err := a.Dot(b)
	require.NoError(t, err)
	assert.True(t, got.Equal(numeric.Of(int32(10))), "dot = %s", got)
}

func TestDotMixedKinds(t *testing.T) {
	a := nvec.New3([3]float64{1.01, -2.65, 3.4})
	b := nvec.New3([3]int32{4, -5, 200})
	want := 1.01*4.0 + -2.65*-5.0 + 3.4*200.0

	ab := nvec.Must(a.Dot(b))
	ba := nvec.Must(b.Dot(a))
	assert.True(t, ab.Equal(ba), "dot not commutative: %s vs %s", ab, ba)
	assert.InDelta(t, want, ab.Float64(), 1e-9)
	assert.InDelta(t, floats.Dot(a.Float64s(), b.Float64s()), ab.Float64(), 1e-9)
}

func TestDotOfEmptyProductIsZeroOfKind(t *testing.T) {
	got := nvec.Must(nvec.New2([2]uint8{0, 0}).Dot(nvec.New2([2]int64{5, 6})))
	assert.Equal(t, numeric.Int64, got.Kind())
	assert.True(t, got.IsZero())
}

func TestSameKindOperations(t *testing.T) {
	// Mirrors the component rule: op(A, A)[i] == op(A[i], A[i]).
	for _, k := range []numeric.Kind{
		numeric.Int8, numeric.Int16, numeric.Int32, numeric.Int64, numeric.Int128,
		numeric.Uint8, numeric.Uint16, numeric.Uint32, numeric.Uint64, numeric.Uint128,
		numeric.Float32, numeric.Float64,
	} {
		vals := make([]numeric.Value, 3)
		for i := range vals {
			vals[i] = nvec.Must(numeric.Of(int8(i + 1)).Convert(k))
		}
		a := nvec.Must(nvec.FromValues[[3]numeric.Bits](vals...))

		sum := nvec.Must(a.Add(a))
		prod := nvec.Must(a.ElementMul(a))
		diff := nvec.Must(a.Sub(a))
		for i := 0; i < 3; i++ {
			assert.True(t, sum.At(i).Equal(nvec.Must(vals[i].Add(vals[i]))), "%s add[%d]", k, i)
			assert.True(t, prod.At(i).Equal(nvec.Must(vals[i].Mul(vals[i]))), "%s mul[%d]", k, i)
			assert.True(t, diff.At(i).IsZero(), "%s sub[%d]", k, i)
		}

		dot := nvec.Must(a.Dot(a))
		want := nvec.Must(numeric.Of(int8(14)).Convert(k))
		assert.True(t, dot.Equal(want), "%s dot = %s, want 14", k, dot)
	}
}

func TestFloat32Arithmetic(t *testing.T) {
	x := [2]float32{0.1, 0.2}
	a := nvec.New2(x)
	b := nvec.New2([2]uint16{3, 4})

	got := nvec.Must(a.ElementMul(b))
	require.Equal(t, numeric.Float32, got.Kind())
	want := [2]float32{x[0] * 3, x[1] * 4}
	for i := range want {
		f, err := numeric.As[float32](got.At(i))
		require.NoError(t, err)
		assert.Equal(t, want[i], f)
	}

	assert.False(t, math.IsNaN(got.Float64s()[0]))
}
