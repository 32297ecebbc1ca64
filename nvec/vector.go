package nvec

//go:generate go run ../internal/gendims -max 16 -out dims_gen.go

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-nvec/numeric"
)

// Vector is a fixed-length sequence of numeric components of one kind.
//
// The backing array type A fixes the length at compile time; see Vec1 to
// Vec16. A Vector is a plain value: copying it copies the components, and
// every operation returns a new Vector. The zero Vector has the Invalid kind
// and every operation on it fails.
type Vector[A Array] struct {
	kind numeric.Kind
	c    A
}

func build[A Array, T numeric.Element](c []T) Vector[A] {
	v := Vector[A]{kind: numeric.KindOf[T]()}
	for i := 0; i < len(v.c); i++ {
		v.c[i] = numeric.Encode(c[i])
	}
	return v
}

// FromSlice builds a vector from a slice whose length is only known at run
// time. It fails with ErrLength unless len(c) matches the vector length.
func FromSlice[A Array, T numeric.Element](c []T) (Vector[A], error) {
	var zero A
	if len(c) != len(zero) {
		return Vector[A]{}, fmt.Errorf("%w: got %d components, want %d", ErrLength, len(c), len(zero))
	}
	return build[A](c), nil
}

// FromValues builds a vector from tagged values, which must all share one
// valid kind.
func FromValues[A Array](vals ...numeric.Value) (Vector[A], error) {
	var v Vector[A]
	if len(vals) != len(v.c) {
		return Vector[A]{}, fmt.Errorf("%w: got %d components, want %d", ErrLength, len(vals), len(v.c))
	}
	v.kind = vals[0].Kind()
	if !v.kind.IsValid() {
		return Vector[A]{}, numeric.ErrInvalidKind
	}
	for i, x := range vals {
		if x.Kind() != v.kind {
			return Vector[A]{}, fmt.Errorf("%w: component %d is %s, want %s", ErrMixedKinds, i, x.Kind(), v.kind)
		}
		v.c[i] = x.Bits()
	}
	return v, nil
}

// Fill returns a vector with every component set to x.
func Fill[A Array](x numeric.Value) Vector[A] {
	v := Vector[A]{kind: x.Kind()}
	for i := 0; i < len(v.c); i++ {
		v.c[i] = x.Bits()
	}
	return v
}

// Kind returns the component kind.
func (v Vector[A]) Kind() numeric.Kind { return v.kind }

// Len returns the number of components.
func (v Vector[A]) Len() int { return len(v.c) }

// At returns component i. It panics if i is out of range.
func (v Vector[A]) At(i int) numeric.Value {
	return numeric.FromBits(v.kind, v.c[i])
}

// Components returns a copy of the components in order.
func (v Vector[A]) Components() []numeric.Value {
	out := make([]numeric.Value, len(v.c))
	for i := range out {
		out[i] = v.At(i)
	}
	return out
}

// Float64s returns the components as the nearest float64 values. Integers
// wider than 53 bits may round.
func (v Vector[A]) Float64s() []float64 {
	out := make([]float64, len(v.c))
	v.float64sInto(out)
	return out
}

func (v Vector[A]) float64sInto(dst []float64) {
	for i := range dst {
		dst[i] = v.At(i).Float64()
	}
}

// Equal reports whether v and w have the same kind and all corresponding
// components compare equal.
func (v Vector[A]) Equal(w Vector[A]) bool {
	if v.kind != w.kind {
		return false
	}
	for i := 0; i < len(v.c); i++ {
		if !v.At(i).Equal(w.At(i)) {
			return false
		}
	}
	return true
}

// String formats v as its kind followed by its components, e.g. "f64[5 -3 203]".
func (v Vector[A]) String() string {
	var sb strings.Builder
	sb.WriteString(v.kind.String())
	sb.WriteByte('[')
	for i := 0; i < len(v.c); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(v.At(i).String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Must returns v and panics if err is non-nil.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
