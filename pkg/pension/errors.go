package pension

import "errors"

var (
	// ErrOutOfRange is returned when a retirement-age component is outside
	// its statutory bounds.
	ErrOutOfRange = errors.New("pension: value out of range")

	// ErrInvalidRange is returned when the dates of a calculation are not
	// in the required order, or the possible service time is not positive.
	ErrInvalidRange = errors.New("pension: invalid date range")
)
