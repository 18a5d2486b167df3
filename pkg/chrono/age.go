package chrono

import (
	"fmt"
	"strconv"
)

// MinAge and MaxAge bound the plausible age of a person in whole years.
const (
	MinAge = 0
	MaxAge = 115
)

// Age is a person's age in completed years. Sub-year precision is
// deliberately not retained.
type Age struct {
	years int
}

// NewAge returns the Age for a whole-year count, or ErrOutOfRange when the
// count falls outside [MinAge, MaxAge].
func NewAge(years int) (Age, error) {
	if years < MinAge || years > MaxAge {
		return Age{}, fmt.Errorf("%w: age %d not in [%d, %d]", ErrOutOfRange, years, MinAge, MaxAge)
	}
	return Age{years: years}, nil
}

// AgeBetween returns the civil age at the reference date for the given
// birth date: the count of completed years between the two. It returns
// ErrInvalidRange when birth is strictly after reference.
func AgeBetween(birth, reference Date) (Age, error) {
	if birth.After(reference) {
		return Age{}, fmt.Errorf("%w: birth date %s after reference date %s", ErrInvalidRange, birth, reference)
	}
	return NewAge(birth.YearsUntil(reference))
}

// ActuarialAgeBetween returns the actuarial age at the effective date: the
// completed years to the end of the month six months past the effective
// date, so a birthday within the next half year already counts. It returns
// ErrInvalidRange when birth is strictly after effective.
func ActuarialAgeBetween(birth, effective Date) (Age, error) {
	if birth.After(effective) {
		return Age{}, fmt.Errorf("%w: birth date %s after effective date %s", ErrInvalidRange, birth, effective)
	}

	shifted, err := effective.AddMonths(6)
	if err != nil {
		return Age{}, err
	}

	years := birth.YearsUntil(shifted.EndOfMonth())

	// A first-of-month birthday directly after the shifted month is only
	// one day past its end and still counts as reached.
	if birth.Day().Int() == 1 && birth.Month().Int() == shifted.Month().Int()%12+1 {
		years++
	}

	return NewAge(years)
}

// Years returns the completed-year count.
func (a Age) Years() int { return a.years }

// AddYears returns the age n years later; negative n moves backwards.
func (a Age) AddYears(n int) (Age, error) {
	return NewAge(a.years + n)
}

func (a Age) String() string { return strconv.Itoa(a.years) }
