package nvec

import "errors"

var (
	// ErrLength is returned when run-time data does not match the vector length.
	ErrLength = errors.New("nvec: component count does not match vector length")

	// ErrMixedKinds is returned when components of different kinds are combined
	// into one vector.
	ErrMixedKinds = errors.New("nvec: components of different kinds")

	// ErrMagnitudeKind is returned for magnitude of a kind that does not
	// convert losslessly into float64 (64- and 128-bit integers).
	ErrMagnitudeKind = errors.New("nvec: magnitude undefined for kind")
)
