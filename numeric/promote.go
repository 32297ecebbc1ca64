package numeric

// Rule is one entry of the promotion table: combining A with B (in either
// order) yields Result.
type Rule struct {
	A, B   Kind
	Result Kind
}

// rules lists every unordered kind pair that has a promotion. Each pair
// appears exactly once and there is no fallback: a pair missing here has no
// defined arithmetic.
//
// Same kind combines to itself. Mixed integers widen until both ranges fit,
// except that i128 is the ceiling for anything involving u64 or u128.
// Integers up to 32 bits combine with floats as f32, 64-bit integers as f64.
// 128-bit integers have no float rule.
var rules = [...]Rule{
	{Int8, Int8, Int8},
	{Int16, Int16, Int16},
	{Int32, Int32, Int32},
	{Int64, Int64, Int64},
	{Int128, Int128, Int128},
	{Uint8, Uint8, Uint8},
	{Uint16, Uint16, Uint16},
	{Uint32, Uint32, Uint32},
	{Uint64, Uint64, Uint64},
	{Uint128, Uint128, Uint128},
	{Float32, Float32, Float32},
	{Float64, Float64, Float64},

	// signed with signed or unsigned
	{Int8, Int16, Int16},
	{Int8, Int32, Int32},
	{Int8, Int64, Int64},
	{Int8, Int128, Int128},
	{Int8, Uint8, Int16},
	{Int8, Uint16, Int32},
	{Int8, Uint32, Int64},
	{Int8, Uint64, Int128},
	{Int8, Uint128, Int128},

	{Int16, Int32, Int32},
	{Int16, Int64, Int64},
	{Int16, Int128, Int128},
	{Int16, Uint8, Int16},
	{Int16, Uint16, Int32},
	{Int16, Uint32, Int64},
	{Int16, Uint64, Int128},
	{Int16, Uint128, Int128},

	{Int32, Int64, Int64},
	{Int32, Int128, Int128},
	{Int32, Uint8, Int32},
	{Int32, Uint16, Int32},
	{Int32, Uint32, Int64},
	{Int32, Uint64, Int128},
	{Int32, Uint128, Int128},

	{Int64, Int128, Int128},
	{Int64, Uint8, Int64},
	{Int64, Uint16, Int64},
	{Int64, Uint32, Int64},
	{Int64, Uint64, Int128},
	{Int64, Uint128, Int128},

	{Int128, Uint8, Int128},
	{Int128, Uint16, Int128},
	{Int128, Uint32, Int128},
	{Int128, Uint64, Int128},
	{Int128, Uint128, Int128},

	// unsigned with unsigned
	{Uint8, Uint16, Uint16},
	{Uint8, Uint32, Uint32},
	{Uint8, Uint64, Uint64},
	{Uint8, Uint128, Uint128},

	{Uint16, Uint32, Uint32},
	{Uint16, Uint64, Uint64},
	{Uint16, Uint128, Uint128},

	{Uint32, Uint64, Uint64},
	{Uint32, Uint128, Uint128},

	{Uint64, Uint128, Uint128},

	// integer with float
	{Int8, Float32, Float32},
	{Int8, Float64, Float64},
	{Int16, Float32, Float32},
	{Int16, Float64, Float64},
	{Int32, Float32, Float32},
	{Int32, Float64, Float64},
	{Int64, Float32, Float64},
	{Int64, Float64, Float64},

	{Uint8, Float32, Float32},
	{Uint8, Float64, Float64},
	{Uint16, Float32, Float32},
	{Uint16, Float64, Float64},
	{Uint32, Float32, Float32},
	{Uint32, Float64, Float64},
	{Uint64, Float32, Float64},
	{Uint64, Float64, Float64},

	// float with float
	{Float32, Float64, Float64},
}

// promotions is the symmetric lookup built from rules. Invalid marks a
// pair without a rule.
var promotions = buildPromotions()

func buildPromotions() [kindCount][kindCount]Kind {
	var table [kindCount][kindCount]Kind
	for _, r := range rules {
		if table[r.A][r.B] != Invalid {
			panic("numeric: duplicate promotion rule for " + r.A.String() + " and " + r.B.String())
		}
		table[r.A][r.B] = r.Result
		table[r.B][r.A] = r.Result
	}
	return table
}

// Promote returns the kind that arithmetic combining a and b produces.
// The result does not depend on operand order. A pair without a rule
// returns a *PromotionError.
func Promote(a, b Kind) (Kind, error) {
	if !a.IsValid() || !b.IsValid() {
		return Invalid, ErrInvalidKind
	}
	r := promotions[a][b]
	if r == Invalid {
		return Invalid, &PromotionError{A: a, B: b}
	}
	return r, nil
}

// MustPromote is like Promote but panics on error.
func MustPromote(a, b Kind) Kind {
	r, err := Promote(a, b)
	if err != nil {
		panic(err)
	}
	return r
}

// Rules returns a copy of the enumerated promotion table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules[:])
	return out
}
