package chrono

import (
	"fmt"
	"strconv"
)

// MinYear and MaxYear bound the supported proleptic Gregorian span.
const (
	MinYear = 1
	MaxYear = 9999
)

// Year is a validated calendar year in [MinYear, MaxYear].
//
// The zero value is not a valid Year; obtain one through NewYear.
type Year struct {
	year int
}

// NewYear returns the Year for v, or ErrOutOfRange when v falls outside
// [MinYear, MaxYear].
func NewYear(v int) (Year, error) {
	if v < MinYear || v > MaxYear {
		return Year{}, fmt.Errorf("%w: year %d not in [%d, %d]", ErrOutOfRange, v, MinYear, MaxYear)
	}
	return Year{year: v}, nil
}

// Int returns the numeric year.
func (y Year) Int() int { return y.year }

// IsLeap reports whether the year is a Gregorian leap year: divisible by 4
// and either not divisible by 100 or divisible by 400.
func (y Year) IsLeap() bool {
	return y.year%4 == 0 && (y.year%100 != 0 || y.year%400 == 0)
}

// Days returns 366 for leap years and 365 otherwise.
func (y Year) Days() int {
	if y.IsLeap() {
		return 366
	}
	return 365
}

// AddYears returns the year n years later; negative n moves backwards. It
// returns ErrOverflow when the addition wraps and ErrOutOfRange when the
// result leaves the supported span.
func (y Year) AddYears(n int) (Year, error) {
	sum := y.year + n
	if (n > 0 && sum < y.year) || (n < 0 && sum > y.year) {
		return Year{}, fmt.Errorf("%w: %d%+d years", ErrOverflow, y.year, n)
	}
	return NewYear(sum)
}

func (y Year) String() string { return strconv.Itoa(y.year) }
