package chrono

import (
	"cmp"
	"fmt"
)

// Date is a validated date on the proleptic Gregorian calendar.
//
// A Date can only be obtained through NewDate, MakeDate, MustDate or
// ParseDate, each of which rejects year/month/day combinations that do not
// exist on the calendar. Dates are immutable values, totally ordered
// lexicographically by (year, month, day), and safe to share between
// goroutines without synchronization.
type Date struct {
	year  Year
	month Month
	day   Day
}

// NewDate composes a Date from its parts. The parts are re-validated (the
// zero values of Year, Month and Day are not valid) and the cross-field
// check rejects days that exceed the month's length in that year with
// ErrInvalidDate. This is the single validation gate: no constructed Date
// can represent a nonexistent calendar day.
func NewDate(year Year, month Month, day Day) (Date, error) {
	if _, err := NewYear(year.Int()); err != nil {
		return Date{}, err
	}
	if _, err := NewMonth(month.Int()); err != nil {
		return Date{}, err
	}
	if _, err := NewDay(day.Int()); err != nil {
		return Date{}, err
	}
	if max := month.Days(year); day.Int() > max {
		return Date{}, fmt.Errorf("%w: %s %s has %d days, not %d", ErrInvalidDate, month, year, max, day.Int())
	}
	return Date{year: year, month: month, day: day}, nil
}

// MakeDate builds a Date from raw numbers, running the Year, Month and Day
// validations followed by the cross-field day-in-month check.
func MakeDate(year, month, day int) (Date, error) {
	y, err := NewYear(year)
	if err != nil {
		return Date{}, err
	}
	m, err := NewMonth(month)
	if err != nil {
		return Date{}, err
	}
	d, err := NewDay(day)
	if err != nil {
		return Date{}, err
	}
	return NewDate(y, m, d)
}

// MustDate is MakeDate for statically known inputs; it panics on any
// validation error. Intended for constants and test fixtures.
func MustDate(year, month, day int) Date {
	d, err := MakeDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// Year returns the year component.
func (d Date) Year() Year { return d.year }

// Month returns the month component.
func (d Date) Month() Month { return d.month }

// Day returns the day-of-month component.
func (d Date) Day() Day { return d.day }

// IsZero reports whether d is the uninitialized Date value, which is not a
// valid calendar date.
func (d Date) IsZero() bool { return d == Date{} }

// Compare orders dates lexicographically by (year, month, day). It returns
// -1 when d is before other, 0 when equal and +1 when after.
func (d Date) Compare(other Date) int {
	if c := cmp.Compare(d.year.Int(), other.year.Int()); c != 0 {
		return c
	}
	if c := cmp.Compare(d.month, other.month); c != 0 {
		return c
	}
	return cmp.Compare(d.day.Int(), other.day.Int())
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// Equal reports whether both dates have the same year, month and day.
func (d Date) Equal(other Date) bool { return d == other }

// cumulativeDays[m] is the number of days before month m in a non-leap year.
var cumulativeDays = [...]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// DayNumber maps the date to its proleptic Gregorian day count, so that
// consecutive calendar days map to consecutive integers across month, year
// and leap boundaries.
func (d Date) DayNumber() int {
	full := d.year.Int() - 1
	days := full*365 + full/4 - full/100 + full/400
	days += cumulativeDays[d.month]
	days += d.day.Int()
	if d.month > February && d.year.IsLeap() {
		days++
	}
	return days
}

// DaysUntil returns the exact number of calendar days from d to other,
// positive when other is later. a.DaysUntil(a) == 0 and
// a.DaysUntil(b) == -b.DaysUntil(a).
func (d Date) DaysUntil(other Date) int {
	return other.DayNumber() - d.DayNumber()
}

// MonthsUntil returns the number of whole elapsed months from d to other,
// positive when other is later. A trailing partial month is truncated: the
// raw count (y2-y1)*12 + (m2-m1) is reduced by one when the later date's
// day-of-month has not yet reached the earlier one's.
func (d Date) MonthsUntil(other Date) int {
	return d.MonthsUntilRound(other, RoundFloor)
}

// MonthsUntilRound is MonthsUntil with an explicit policy for the trailing
// partial month. RoundFloor reproduces MonthsUntil exactly; RoundCeil
// counts any started month; RoundNearest rounds up once fifteen or more
// days of the trailing month have passed.
func (d Date) MonthsUntilRound(other Date, r Rounding) int {
	first, last, sign := sortPair(d, other)

	diff := (last.year.Int()-first.year.Int())*12 + last.month.Int() - first.month.Int()
	if last.day.Int() < first.day.Int() {
		diff--
	}

	switch r {
	case RoundCeil:
		if first.day != last.day {
			diff++
		}
	case RoundNearest:
		if passed := ((last.day.Int()-first.day.Int())%30 + 30) % 30; passed >= 15 {
			diff++
		}
	}

	return sign * diff
}

// YearsUntil returns the number of whole elapsed years from d to other,
// positive when other is later. The raw count y2-y1 is reduced by one when
// the later date's (month, day) is lexicographically before the earlier
// one's; a partial year never rounds up.
func (d Date) YearsUntil(other Date) int {
	return d.YearsUntilRound(other, RoundFloor)
}

// YearsUntilRound is YearsUntil with an explicit policy for the trailing
// partial year. RoundNearest rounds up once more than six months have
// passed, with the day-of-month breaking the tie at exactly six.
func (d Date) YearsUntilRound(other Date, r Rounding) int {
	first, last, sign := sortPair(d, other)

	diff := last.year.Int() - first.year.Int()
	if last.month < first.month || (last.month == first.month && last.day.Int() < first.day.Int()) {
		diff--
	}

	switch r {
	case RoundCeil:
		if first.month != last.month || first.day != last.day {
			diff++
		}
	case RoundNearest:
		switch months := (last.month.Int() - first.month.Int() + 12) % 12; {
		case months > 6:
			diff++
		case months == 6 && last.day.Int() >= first.day.Int():
			diff++
		}
	}

	return sign * diff
}

// sortPair orders two dates chronologically and reports the sign the caller
// must apply to restore the a-to-b direction.
func sortPair(a, b Date) (first, last Date, sign int) {
	if b.Before(a) {
		return b, a, -1
	}
	return a, b, 1
}

// AddDays returns the date n calendar days later; negative n moves
// backwards. The walk is month by month, so year and leap boundaries are
// handled by the same month-length table as validation.
func (d Date) AddDays(n int) (Date, error) {
	year, month, day := d.year, d.month, d.day.Int()

	for n != 0 {
		if n > 0 {
			left := month.Days(year) - day
			if n <= left {
				day += n
				break
			}
			n -= left + 1
			day = 1
			var carry int
			month, carry = month.Add(1)
			next, err := year.AddYears(carry)
			if err != nil {
				return Date{}, err
			}
			year = next
		} else {
			if day+n > 0 {
				day += n
				break
			}
			n += day
			var carry int
			month, carry = month.Add(-1)
			prev, err := year.AddYears(carry)
			if err != nil {
				return Date{}, err
			}
			year = prev
			day = month.Days(year)
		}
	}

	return MakeDate(year.Int(), month.Int(), day)
}

// AddMonths returns the date n months later; negative n moves backwards.
// The day is clamped to the length of the target month, so January 31 plus
// one month is the end of February.
func (d Date) AddMonths(n int) (Date, error) {
	month, carry := d.month.Add(n)
	year, err := d.year.AddYears(carry)
	if err != nil {
		return Date{}, err
	}
	day := min(d.day.Int(), month.Days(year))
	return MakeDate(year.Int(), month.Int(), day)
}

// AddYears returns the date n years later; negative n moves backwards. A
// February 29 source is clamped to February 28 when the target year is not
// a leap year.
func (d Date) AddYears(n int) (Date, error) {
	year, err := d.year.AddYears(n)
	if err != nil {
		return Date{}, err
	}
	day := min(d.day.Int(), d.month.Days(year))
	return MakeDate(year.Int(), d.month.Int(), day)
}

// EndOfMonth returns the last day of the date's month.
func (d Date) EndOfMonth() Date {
	day, _ := NewDay(d.month.Days(d.year))
	return Date{year: d.year, month: d.month, day: day}
}

// MidOfMonth returns the middle of the date's month: the 14th for February,
// the 15th for every other month.
func (d Date) MidOfMonth() Date {
	mid := 15
	if d.month == February {
		mid = 14
	}
	day, _ := NewDay(mid)
	return Date{year: d.year, month: d.month, day: day}
}

// FormatDMY renders the date as "dd.mm.yyyy".
func (d Date) FormatDMY() string {
	return fmt.Sprintf("%02d.%02d.%04d", d.day.Int(), d.month.Int(), d.year.Int())
}

// FormatYMD renders the date as "yyyy.mm.dd".
func (d Date) FormatYMD() string {
	return fmt.Sprintf("%04d.%02d.%02d", d.year.Int(), d.month.Int(), d.day.Int())
}

func (d Date) String() string { return d.FormatDMY() }

// MarshalText implements encoding.TextMarshaler using the DMY format.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.FormatDMY()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the formats
// understood by ParseDate.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
