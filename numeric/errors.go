package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPromotion is returned when two kinds have no promotion rule.
	ErrNoPromotion = errors.New("numeric: no promotion rule")

	// ErrInvalidKind is returned when an operand carries the Invalid kind.
	ErrInvalidKind = errors.New("numeric: invalid kind")

	// ErrUnknownKind is returned by ParseKind for unrecognised names.
	ErrUnknownKind = errors.New("numeric: unknown kind")

	// ErrKindMismatch is returned when a value is read as the wrong Go type.
	ErrKindMismatch = errors.New("numeric: kind mismatch")
)

// PromotionError reports an unsupported kind pair. It unwraps to
// ErrNoPromotion.
type PromotionError struct {
	A, B Kind
}

func (e *PromotionError) Error() string {
	return fmt.Sprintf("numeric: no promotion rule for %s and %s", e.A, e.B)
}

func (e *PromotionError) Unwrap() error {
	return ErrNoPromotion
}
