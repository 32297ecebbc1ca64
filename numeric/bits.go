package numeric

import (
	"math"
	"math/big"

	"lukechampine.com/uint128"
)

// Bits is the uniform storage cell for one component of any kind. Signed
// integers are sign-extended to 128 bits, unsigned integers are
// zero-extended, and floats keep their IEEE 754 bit pattern in the low word.
type Bits = uint128.Uint128

// Element is the closed set of Go types that map onto a Kind.
type Element interface {
	int8 | int16 | int32 | int64 | I128 |
		uint8 | uint16 | uint32 | uint64 | U128 |
		float32 | float64
}

// KindOf returns the Kind that represents T.
func KindOf[T Element]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case I128:
		return Int128
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case U128:
		return Uint128
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		return Invalid
	}
}

// Encode stores v in its canonical Bits form.
func Encode[T Element](v T) Bits {
	switch x := any(v).(type) {
	case int8:
		return signedBits(int64(x))
	case int16:
		return signedBits(int64(x))
	case int32:
		return signedBits(int64(x))
	case int64:
		return signedBits(x)
	case I128:
		return x.u
	case uint8:
		return uint128.From64(uint64(x))
	case uint16:
		return uint128.From64(uint64(x))
	case uint32:
		return uint128.From64(uint64(x))
	case uint64:
		return uint128.From64(x)
	case U128:
		return x
	case float32:
		return float32Bits(x)
	case float64:
		return float64Bits(x)
	default:
		return Bits{}
	}
}

// Decode reads b as T. The caller is responsible for b holding a value of
// KindOf[T]().
func Decode[T Element](b Bits) T {
	var out T
	switch p := any(&out).(type) {
	case *int8:
		*p = int8(b.Lo)
	case *int16:
		*p = int16(b.Lo)
	case *int32:
		*p = int32(b.Lo)
	case *int64:
		*p = int64(b.Lo)
	case *I128:
		*p = I128FromBits(b)
	case *uint8:
		*p = uint8(b.Lo)
	case *uint16:
		*p = uint16(b.Lo)
	case *uint32:
		*p = uint32(b.Lo)
	case *uint64:
		*p = b.Lo
	case *U128:
		*p = b
	case *float32:
		*p = bitsFloat32(b)
	case *float64:
		*p = bitsFloat64(b)
	}
	return out
}

func signedBits(v int64) Bits {
	return I128From64(v).u
}

func float32Bits(f float32) Bits {
	return uint128.From64(uint64(math.Float32bits(f)))
}

func float64Bits(f float64) Bits {
	return uint128.From64(math.Float64bits(f))
}

func bitsFloat32(b Bits) float32 {
	return math.Float32frombits(uint32(b.Lo))
}

func bitsFloat64(b Bits) float64 {
	return math.Float64frombits(b.Lo)
}

// ConvertBits casts a value of kind from into kind to. Integer narrowing
// truncates to the target width, integer widening sign- or zero-extends,
// integer to float rounds to nearest, and float to integer truncates toward
// zero and saturates at the target range (NaN becomes 0).
//
// Along every promotion edge the cast is exact, except that integers wider
// than the float mantissa may round.
func ConvertBits(b Bits, from, to Kind) Bits {
	if from == to {
		return b
	}
	switch {
	case to.IsInteger() && from.IsInteger():
		return canonical(b, to)
	case to.IsInteger():
		return floatToInt(toFloat64(b, from), to)
	case to == Float32:
		return float32Bits(toFloat32(b, from))
	default:
		return float64Bits(toFloat64(b, from))
	}
}

// canonical truncates an integer bit pattern to the width of to and
// re-extends it according to the signedness of to.
func canonical(b Bits, to Kind) Bits {
	switch to {
	case Int8:
		return signedBits(int64(int8(b.Lo)))
	case Int16:
		return signedBits(int64(int16(b.Lo)))
	case Int32:
		return signedBits(int64(int32(b.Lo)))
	case Int64:
		return signedBits(int64(b.Lo))
	case Uint8:
		return uint128.From64(uint64(uint8(b.Lo)))
	case Uint16:
		return uint128.From64(uint64(uint16(b.Lo)))
	case Uint32:
		return uint128.From64(uint64(uint32(b.Lo)))
	case Uint64:
		return uint128.From64(b.Lo)
	default:
		return b
	}
}

func toBig(b Bits, k Kind) *big.Int {
	if k.IsSigned() {
		return I128FromBits(b).Big()
	}
	return b.Big()
}

func toFloat64(b Bits, k Kind) float64 {
	switch {
	case k == Float64:
		return bitsFloat64(b)
	case k == Float32:
		return float64(bitsFloat32(b))
	case k == Int128 || k == Uint128:
		f, _ := new(big.Float).SetInt(toBig(b, k)).Float64()
		return f
	case k.IsSigned():
		return float64(int64(b.Lo))
	default:
		return float64(b.Lo)
	}
}

func toFloat32(b Bits, k Kind) float32 {
	switch {
	case k == Float32:
		return bitsFloat32(b)
	case k == Float64:
		return float32(bitsFloat64(b))
	case k == Int128 || k == Uint128:
		f, _ := new(big.Float).SetInt(toBig(b, k)).Float32()
		return f
	case k.IsSigned():
		return float32(int64(b.Lo))
	default:
		return float32(b.Lo)
	}
}

var (
	int128Min = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	int128Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// intRange returns the inclusive range of integer kind k.
func intRange(k Kind) (lo, hi *big.Int) {
	w := uint(k.Bits())
	if k.IsUnsigned() {
		return new(big.Int), new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), w), big.NewInt(1))
	}
	if k == Int128 {
		return int128Min, int128Max
	}
	lo = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), w-1))
	hi = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), w-1), big.NewInt(1))
	return lo, hi
}

func floatToInt(f float64, to Kind) Bits {
	if math.IsNaN(f) {
		return Bits{}
	}
	lo, hi := intRange(to)
	var v *big.Int
	switch {
	case math.IsInf(f, 1):
		v = hi
	case math.IsInf(f, -1):
		v = lo
	default:
		v, _ = new(big.Float).SetFloat64(math.Trunc(f)).Int(nil)
		if v.Cmp(lo) < 0 {
			v = lo
		} else if v.Cmp(hi) > 0 {
			v = hi
		}
	}
	if to.IsSigned() {
		return I128FromBig(v).u
	}
	return uint128.FromBig(new(big.Int).Set(v))
}
