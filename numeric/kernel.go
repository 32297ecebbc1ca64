package numeric

import (
	"fmt"

	"lukechampine.com/uint128"
)

// Kernel holds the scalar arithmetic for one kind. Operands and results
// are canonical Bits of that kind.
//
// Integer kernels wrap modulo 2^width. Float kernels round every product to
// the kind's precision before it is used again, so a later subtraction or
// accumulation never fuses with the multiply.
type Kernel struct {
	// Kind is the kind this kernel operates on.
	Kind Kind

	// Add returns a + b.
	Add func(a, b Bits) Bits

	// Sub returns a - b.
	Sub func(a, b Bits) Bits

	// Mul returns a * b.
	Mul func(a, b Bits) Bits
}

// kernels is indexed by Kind and filled by init. The Invalid slot stays empty.
var kernels [kindCount]Kernel

func register(k Kernel) {
	if kernels[k.Kind].Add != nil {
		panic("numeric: kernel registered twice for " + k.Kind.String())
	}
	kernels[k.Kind] = k
}

// KernelFor returns the arithmetic kernel of k.
func KernelFor(k Kind) (*Kernel, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKind, k)
	}
	return &kernels[k], nil
}

// fixedKernel builds the kernel of a native Go integer or float type.
func fixedKernel[T int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64]() Kernel {
	return Kernel{
		Kind: KindOf[T](),
		Add: func(a, b Bits) Bits {
			return Encode(Decode[T](a) + Decode[T](b))
		},
		Sub: func(a, b Bits) Bits {
			return Encode(Decode[T](a) - Decode[T](b))
		},
		Mul: func(a, b Bits) Bits {
			return Encode(T(Decode[T](a) * Decode[T](b)))
		},
	}
}

func init() {
	register(fixedKernel[int8]())
	register(fixedKernel[int16]())
	register(fixedKernel[int32]())
	register(fixedKernel[int64]())
	register(fixedKernel[uint8]())
	register(fixedKernel[uint16]())
	register(fixedKernel[uint32]())
	register(fixedKernel[uint64]())
	register(fixedKernel[float32]())
	register(fixedKernel[float64]())

	// Two's complement add, sub and mul are the same bit operations for
	// signed and unsigned 128-bit values.
	for _, k := range []Kind{Int128, Uint128} {
		register(Kernel{
			Kind: k,
			Add:  uint128.Uint128.AddWrap,
			Sub:  uint128.Uint128.SubWrap,
			Mul:  uint128.Uint128.MulWrap,
		})
	}
}
