package nvec

import (
	"fmt"

	"github.com/cwbudde/algo-nvec/numeric"
)

type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
)

func (op binaryOp) String() string {
	switch op {
	case opAdd:
		return "add"
	case opSub:
		return "sub"
	default:
		return "mul"
	}
}

func (op binaryOp) kernel(k *numeric.Kernel) func(a, b numeric.Bits) numeric.Bits {
	switch op {
	case opAdd:
		return k.Add
	case opSub:
		return k.Sub
	default:
		return k.Mul
	}
}

// resolve looks up the promoted kind of a and b and its kernel.
func resolve(op string, a, b numeric.Kind) (numeric.Kind, *numeric.Kernel, error) {
	r, err := numeric.Promote(a, b)
	if err != nil {
		return numeric.Invalid, nil, fmt.Errorf("nvec: %s: %w", op, err)
	}
	k, err := numeric.KernelFor(r)
	if err != nil {
		return numeric.Invalid, nil, fmt.Errorf("nvec: %s: %w", op, err)
	}
	return r, k, nil
}

func elementwise[A Array](a, b Vector[A], op binaryOp) (Vector[A], error) {
	r, kern, err := resolve(op.String(), a.kind, b.kind)
	if err != nil {
		return Vector[A]{}, err
	}
	if r == numeric.Float64 && useBlockKernels {
		return elementwiseBlock(a, b, op), nil
	}

	f := op.kernel(kern)
	out := Vector[A]{kind: r}
	for i := 0; i < len(out.c); i++ {
		out.c[i] = f(
			numeric.ConvertBits(a.c[i], a.kind, r),
			numeric.ConvertBits(b.c[i], b.kind, r),
		)
	}
	return out, nil
}

// Add returns v + w componentwise in the promoted kind of the pair.
func (v Vector[A]) Add(w Vector[A]) (Vector[A], error) {
	return elementwise(v, w, opAdd)
}

// Sub returns v - w componentwise in the promoted kind of the pair.
func (v Vector[A]) Sub(w Vector[A]) (Vector[A], error) {
	return elementwise(v, w, opSub)
}

// ElementMul returns the componentwise (Hadamard) product of v and w in the
// promoted kind of the pair.
func (v Vector[A]) ElementMul(w Vector[A]) (Vector[A], error) {
	return elementwise(v, w, opMul)
}

// Dot returns the sum of the componentwise products of v and w, accumulated
// left to right from zero in the promoted kind of the pair.
func (v Vector[A]) Dot(w Vector[A]) (numeric.Value, error) {
	r, kern, err := resolve("dot", v.kind, w.kind)
	if err != nil {
		return numeric.Value{}, err
	}

	var acc numeric.Bits // zero of every kind
	for i := 0; i < len(v.c); i++ {
		p := kern.Mul(
			numeric.ConvertBits(v.c[i], v.kind, r),
			numeric.ConvertBits(w.c[i], w.kind, r),
		)
		acc = kern.Add(acc, p)
	}
	return numeric.FromBits(r, acc), nil
}

// Cross returns the cross product a × b in the promoted kind of the pair.
// It exists only for three-component vectors.
func Cross(a, b Vec3) (Vec3, error) {
	r, kern, err := resolve("cross", a.kind, b.kind)
	if err != nil {
		return Vec3{}, err
	}

	var x, y [3]numeric.Bits
	for i := range x {
		x[i] = numeric.ConvertBits(a.c[i], a.kind, r)
		y[i] = numeric.ConvertBits(b.c[i], b.kind, r)
	}

	term := func(i, j int) numeric.Bits {
		return kern.Sub(kern.Mul(x[i], y[j]), kern.Mul(x[j], y[i]))
	}
	return Vec3{kind: r, c: [3]numeric.Bits{term(1, 2), term(2, 0), term(0, 1)}}, nil
}
