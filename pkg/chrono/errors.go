package chrono

import "errors"

var (
	// ErrOutOfRange is returned when a raw numeric input falls outside its
	// type's permissible domain, independent of calendar context.
	ErrOutOfRange = errors.New("chrono: value out of range")

	// ErrInvalidDate is returned when an in-range year/month/day triple does
	// not correspond to an existing calendar day.
	ErrInvalidDate = errors.New("chrono: invalid calendar date")

	// ErrInvalidRange is returned when a precondition between two dates is
	// violated, e.g. a birth date after its reference date.
	ErrInvalidRange = errors.New("chrono: invalid date range")

	// ErrParse is returned when a string cannot be parsed as a date.
	ErrParse = errors.New("chrono: unparsable input")

	// ErrOverflow is returned when date arithmetic overflows the integer
	// domain before the range checks can even run.
	ErrOverflow = errors.New("chrono: arithmetic overflow")
)
