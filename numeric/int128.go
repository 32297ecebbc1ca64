package numeric

import (
	"math"
	"math/big"

	"lukechampine.com/uint128"
)

// U128 is an unsigned 128-bit integer.
type U128 = uint128.Uint128

// I128 is a signed 128-bit integer stored in two's complement.
// Arithmetic wraps on overflow, like Go's fixed-width integers.
type I128 struct {
	u U128
}

// I128From64 sign-extends v to 128 bits.
func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = math.MaxUint64
	}
	return I128{u: uint128.New(uint64(v), hi)}
}

// I128FromBits reinterprets a two's complement bit pattern.
func I128FromBits(u U128) I128 {
	return I128{u: u}
}

// I128FromBig converts b, wrapping modulo 2^128.
func I128FromBig(b *big.Int) I128 {
	m := new(big.Int).Lsh(big.NewInt(1), 128)
	r := new(big.Int).Mod(b, m)
	return I128{u: uint128.FromBig(r)}
}

// Bits returns the two's complement bit pattern of x.
func (x I128) Bits() U128 {
	return x.u
}

// IsNeg reports whether x < 0.
func (x I128) IsNeg() bool {
	return x.u.Hi>>63 == 1
}

// Sign returns -1, 0 or +1.
func (x I128) Sign() int {
	switch {
	case x.IsNeg():
		return -1
	case x.u.IsZero():
		return 0
	default:
		return 1
	}
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x I128) Cmp(y I128) int {
	xn, yn := x.IsNeg(), y.IsNeg()
	if xn != yn {
		if xn {
			return -1
		}
		return 1
	}
	return x.u.Cmp(y.u)
}

// Add returns x+y.
func (x I128) Add(y I128) I128 {
	return I128{u: x.u.AddWrap(y.u)}
}

// Sub returns x-y.
func (x I128) Sub(y I128) I128 {
	return I128{u: x.u.SubWrap(y.u)}
}

// Mul returns x*y.
func (x I128) Mul(y I128) I128 {
	return I128{u: x.u.MulWrap(y.u)}
}

// Neg returns -x. The minimum value negates to itself.
func (x I128) Neg() I128 {
	return I128{u: uint128.Zero.SubWrap(x.u)}
}

// Int64 truncates x to its low 64 bits.
func (x I128) Int64() int64 {
	return int64(x.u.Lo)
}

// Big returns x as a *big.Int.
func (x I128) Big() *big.Int {
	if !x.IsNeg() {
		return x.u.Big()
	}
	b := x.Neg().u.Big()
	return b.Neg(b)
}

// Float64 returns the nearest float64 to x.
func (x I128) Float64() float64 {
	f, _ := new(big.Float).SetInt(x.Big()).Float64()
	return f
}

func (x I128) String() string {
	return x.Big().String()
}
