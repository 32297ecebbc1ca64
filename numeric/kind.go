package numeric

import (
	"fmt"
	"strings"
)

// Kind identifies one of the primitive numeric representations a vector
// component can have. The set is closed.
type Kind uint8

const (
	// Invalid is the zero Kind. No arithmetic is defined on it.
	Invalid Kind = iota

	Int8
	Int16
	Int32
	Int64
	Int128

	Uint8
	Uint16
	Uint32
	Uint64
	Uint128

	Float32
	Float64

	kindCount
)

var kindNames = [kindCount]string{
	Invalid: "invalid",
	Int8:    "i8",
	Int16:   "i16",
	Int32:   "i32",
	Int64:   "i64",
	Int128:  "i128",
	Uint8:   "u8",
	Uint16:  "u16",
	Uint32:  "u32",
	Uint64:  "u64",
	Uint128: "u128",
	Float32: "f32",
	Float64: "f64",
}

var kindAliases = map[string]Kind{
	"int8":    Int8,
	"int16":   Int16,
	"int32":   Int32,
	"int64":   Int64,
	"int128":  Int128,
	"uint8":   Uint8,
	"byte":    Uint8,
	"uint16":  Uint16,
	"uint32":  Uint32,
	"uint64":  Uint64,
	"uint128": Uint128,
	"float32": Float32,
	"float64": Float64,
}

// String returns the short name of the kind (i8, u64, f32, ...).
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsValid reports whether k is one of the supported numeric kinds.
func (k Kind) IsValid() bool {
	return k > Invalid && k < kindCount
}

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool {
	return k >= Int8 && k <= Int128
}

// IsUnsigned reports whether k is an unsigned integer kind.
func (k Kind) IsUnsigned() bool {
	return k >= Uint8 && k <= Uint128
}

// IsInteger reports whether k is a signed or unsigned integer kind.
func (k Kind) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

// IsFloat reports whether k is a floating point kind.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// Bits returns the storage width of k in bits, or 0 for Invalid.
func (k Kind) Bits() int {
	switch k {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32, Float32:
		return 32
	case Int64, Uint64, Float64:
		return 64
	case Int128, Uint128:
		return 128
	default:
		return 0
	}
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := Int8; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind parses a short kind name ("i32", "f64") or the matching Go type
// name ("int32", "float64", "int128").
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k := Int8; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	return Invalid, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
