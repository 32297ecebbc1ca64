// Package numeric defines the closed set of numeric kinds a vector component
// can take and the rules for combining them.
//
// Twelve kinds are supported: signed and unsigned integers of 8, 16, 32, 64
// and 128 bits, and 32- and 64-bit floats. Arithmetic on two different kinds
// first resolves a result kind with Promote, converts both operands into it,
// then applies the result kind's Kernel:
//
//	r, err := numeric.Promote(numeric.Int32, numeric.Float64) // f64
//
// The promotion table is symmetric, maps every kind to itself, and is fully
// enumerated. There is no rule for a 128-bit integer combined with a float;
// such pairs fail with ErrNoPromotion before any arithmetic happens.
//
// Values of every kind share one 128-bit storage cell (Bits) so that
// containers can hold any kind without boxing. Value is the tagged form used
// at API boundaries.
package numeric
