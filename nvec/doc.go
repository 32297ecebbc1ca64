// Package nvec implements fixed-length numeric vectors whose components may
// be any kind from package numeric.
//
// The length of a vector is part of its type (Vec1 to Vec16), so combining
// vectors of different lengths does not compile, and Cross only accepts
// Vec3. The component kind is carried at run time: combining two vectors
// converts both into the kind numeric.Promote picks for the pair, and a
// pair without a promotion rule fails with an error wrapping
// numeric.ErrNoPromotion before any arithmetic is done.
//
//	a := nvec.New3([3]float64{1, 2, 3})
//	b := nvec.New3([3]int32{4, -5, 200})
//	sum, err := a.Add(b) // f64[5 -3 203]
//
// Vectors are plain values. Every operation returns a new vector or scalar
// and never modifies its operands, so vectors may be shared freely between
// goroutines.
package nvec
