package numeric

import (
	"fmt"
	"strconv"
)

// Value is a single scalar tagged with its kind. The zero Value has the
// Invalid kind.
type Value struct {
	kind Kind
	bits Bits
}

// Of wraps a Go number as a Value.
func Of[T Element](v T) Value {
	return Value{kind: KindOf[T](), bits: Encode(v)}
}

// FromBits builds a Value of kind k from storage bits. Integer bits are
// truncated to the width of k and re-extended, float bits above the width
// of k are dropped. An invalid k yields the zero Value.
func FromBits(k Kind, b Bits) Value {
	switch {
	case !k.IsValid():
		return Value{}
	case k == Float32:
		b = float32Bits(bitsFloat32(b))
	case k == Float64:
		b = float64Bits(bitsFloat64(b))
	default:
		b = canonical(b, k)
	}
	return Value{kind: k, bits: b}
}

// As extracts v as T. It fails with ErrKindMismatch unless v's kind is
// exactly KindOf[T]().
func As[T Element](v Value) (T, error) {
	if want := KindOf[T](); v.kind != want {
		var zero T
		return zero, fmt.Errorf("%w: have %s, want %s", ErrKindMismatch, v.kind, want)
	}
	return Decode[T](v.bits), nil
}

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// Bits returns the canonical storage bits of v.
func (v Value) Bits() Bits { return v.bits }

// Convert casts v to kind k with the semantics of ConvertBits.
func (v Value) Convert(k Kind) (Value, error) {
	if !v.kind.IsValid() || !k.IsValid() {
		return Value{}, ErrInvalidKind
	}
	return Value{kind: k, bits: ConvertBits(v.bits, v.kind, k)}, nil
}

// Float64 returns v as the nearest float64.
func (v Value) Float64() float64 {
	if !v.kind.IsValid() {
		return 0
	}
	return toFloat64(v.bits, v.kind)
}

// IsZero reports whether v is zero of its kind. Negative zero counts as zero.
func (v Value) IsZero() bool {
	if v.kind.IsFloat() {
		return v.Float64() == 0
	}
	return v.bits.IsZero()
}

// Equal reports whether v and w have the same kind and compare equal.
// Float comparison follows IEEE 754, so NaN is never equal and +0 == -0.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case Float32:
		return bitsFloat32(v.bits) == bitsFloat32(w.bits)
	case Float64:
		return bitsFloat64(v.bits) == bitsFloat64(w.bits)
	default:
		return v.bits.Equals(w.bits)
	}
}

// Add returns v + w in the promoted kind of the pair.
func (v Value) Add(w Value) (Value, error) {
	return v.apply(w, func(k *Kernel) func(a, b Bits) Bits { return k.Add })
}

// Sub returns v - w in the promoted kind of the pair.
func (v Value) Sub(w Value) (Value, error) {
	return v.apply(w, func(k *Kernel) func(a, b Bits) Bits { return k.Sub })
}

// Mul returns v * w in the promoted kind of the pair.
func (v Value) Mul(w Value) (Value, error) {
	return v.apply(w, func(k *Kernel) func(a, b Bits) Bits { return k.Mul })
}

func (v Value) apply(w Value, pick func(*Kernel) func(a, b Bits) Bits) (Value, error) {
	r, err := Promote(v.kind, w.kind)
	if err != nil {
		return Value{}, err
	}
	k, err := KernelFor(r)
	if err != nil {
		return Value{}, err
	}
	op := pick(k)
	return Value{
		kind: r,
		bits: op(ConvertBits(v.bits, v.kind, r), ConvertBits(w.bits, w.kind, r)),
	}, nil
}

func (v Value) String() string {
	switch {
	case v.kind == Float32:
		return strconv.FormatFloat(float64(bitsFloat32(v.bits)), 'g', -1, 32)
	case v.kind == Float64:
		return strconv.FormatFloat(bitsFloat64(v.bits), 'g', -1, 64)
	case v.kind == Int128 || v.kind == Uint128:
		return toBig(v.bits, v.kind).String()
	case v.kind.IsSigned():
		return strconv.FormatInt(int64(v.bits.Lo), 10)
	case v.kind.IsUnsigned():
		return strconv.FormatUint(v.bits.Lo, 10)
	default:
		return "<invalid>"
	}
}
