package numeric

import (
	"errors"
	"testing"
)

func TestPromoteSymmetricAndReflexive(t *testing.T) {
	for _, a := range Kinds() {
		self, err := Promote(a, a)
		if err != nil {
			t.Fatalf("Promote(%s, %s): %v", a, a, err)
		}
		if self != a {
			t.Errorf("Promote(%s, %s) = %s, want %s", a, a, self, a)
		}

		for _, b := range Kinds() {
			ab, errAB := Promote(a, b)
			ba, errBA := Promote(b, a)
			if (errAB == nil) != (errBA == nil) {
				t.Errorf("Promote(%s, %s) err=%v but Promote(%s, %s) err=%v", a, b, errAB, b, a, errBA)
				continue
			}
			if ab != ba {
				t.Errorf("Promote(%s, %s) = %s, Promote(%s, %s) = %s", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestPromoteTableComplete(t *testing.T) {
	gaps := map[[2]Kind]bool{
		{Int128, Float32}:  true,
		{Int128, Float64}:  true,
		{Uint128, Float32}: true,
		{Uint128, Float64}: true,
	}

	kinds := Kinds()
	defined := 0
	for i, a := range kinds {
		for _, b := range kinds[i:] {
			_, err := Promote(a, b)
			isGap := gaps[[2]Kind{a, b}] || gaps[[2]Kind{b, a}]
			switch {
			case isGap && err == nil:
				t.Errorf("Promote(%s, %s) should have no rule", a, b)
			case !isGap && err != nil:
				t.Errorf("Promote(%s, %s): %v", a, b, err)
			case err == nil:
				defined++
			}
		}
	}

	// 12 self pairs + 66 mixed pairs, minus the four 128-bit/float gaps.
	if defined != 74 {
		t.Fatalf("defined pairs = %d, want 74", defined)
	}
	if got := len(Rules()); got != defined {
		t.Fatalf("len(Rules()) = %d, want %d", got, defined)
	}
}

func TestPromoteWideIntegerWithFloatRejected(t *testing.T) {
	for _, ik := range []Kind{Int128, Uint128} {
		for _, fk := range []Kind{Float32, Float64} {
			_, err := Promote(ik, fk)
			if !errors.Is(err, ErrNoPromotion) {
				t.Fatalf("Promote(%s, %s) err = %v, want ErrNoPromotion", ik, fk, err)
			}

			var pe *PromotionError
			if !errors.As(err, &pe) {
				t.Fatalf("Promote(%s, %s) err = %T, want *PromotionError", ik, fk, err)
			}
			if pe.A != ik || pe.B != fk {
				t.Errorf("PromotionError = {%s %s}, want {%s %s}", pe.A, pe.B, ik, fk)
			}
		}
	}
}

func TestPromoteInvalidKind(t *testing.T) {
	if _, err := Promote(Invalid, Int8); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("Promote(Invalid, i8) err = %v, want ErrInvalidKind", err)
	}
	if _, err := Promote(Float64, Kind(200)); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("Promote(f64, Kind(200)) err = %v, want ErrInvalidKind", err)
	}
}

func TestPromoteRules(t *testing.T) {
	tests := []struct {
		a, b Kind
		want Kind
	}{
		{Float64, Int32, Float64},
		{Int8, Uint8, Int16},
		{Int8, Uint16, Int32},
		{Int8, Uint32, Int64},
		{Int8, Uint64, Int128},
		{Int32, Uint16, Int32},
		{Int64, Uint64, Int128},
		{Int128, Uint128, Int128},
		{Uint8, Uint64, Uint64},
		{Uint32, Uint128, Uint128},
		{Int64, Float32, Float64},
		{Uint64, Float32, Float64},
		{Int32, Float32, Float32},
		{Uint16, Float32, Float32},
		{Float32, Float64, Float64},
	}

	for _, tt := range tests {
		t.Run(tt.a.String()+"_"+tt.b.String(), func(t *testing.T) {
			got, err := Promote(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Promote: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Promote(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPromoteFamilies(t *testing.T) {
	for _, a := range Kinds() {
		for _, b := range Kinds() {
			r, err := Promote(a, b)
			if err != nil {
				continue
			}
			switch {
			case a.IsSigned() && b.IsSigned():
				if !r.IsSigned() || r.Bits() < a.Bits() || r.Bits() < b.Bits() {
					t.Errorf("signed %s,%s -> %s", a, b, r)
				}
			case a.IsUnsigned() && b.IsUnsigned():
				if !r.IsUnsigned() || r.Bits() != max(a.Bits(), b.Bits()) {
					t.Errorf("unsigned %s,%s -> %s", a, b, r)
				}
			case a.IsInteger() && b.IsInteger():
				if !r.IsSigned() {
					t.Errorf("mixed sign %s,%s -> %s, want signed", a, b, r)
				}
			case a.IsFloat() && b.IsFloat():
				if a != b && r != Float64 {
					t.Errorf("float %s,%s -> %s, want f64", a, b, r)
				}
			default:
				ik := a
				if a.IsFloat() {
					ik = b
				}
				want := Float32
				if ik.Bits() == 64 || (a == Float64 || b == Float64) {
					want = Float64
				}
				if r != want {
					t.Errorf("int/float %s,%s -> %s, want %s", a, b, r, want)
				}
			}
		}
	}
}

func TestMustPromotePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustPromote should panic for i128 and f64")
		}
	}()
	MustPromote(Int128, Float64)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"i8", Int8},
		{"int64", Int64},
		{" U128 ", Uint128},
		{"uint128", Uint128},
		{"byte", Uint8},
		{"f32", Float32},
		{"float64", Float64},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseKind("complex128"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("ParseKind(complex128) err = %v, want ErrUnknownKind", err)
	}
}
