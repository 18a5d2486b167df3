package pension

import (
	"fmt"

	"github.com/dmitrymomot/pensionkit/pkg/chrono"
)

// Statutory bounds of the retirement-age components.
const (
	MinPensionYears  = 55
	MaxPensionYears  = 75
	MaxPensionMonths = 11
)

// PensionYears is the year component of a retirement age.
type PensionYears struct {
	years int
}

// NewPensionYears returns the PensionYears for v, or ErrOutOfRange when v
// is not in [MinPensionYears, MaxPensionYears].
func NewPensionYears(v int) (PensionYears, error) {
	if v < MinPensionYears || v > MaxPensionYears {
		return PensionYears{}, fmt.Errorf("%w: pension years %d not in [%d, %d]", ErrOutOfRange, v, MinPensionYears, MaxPensionYears)
	}
	return PensionYears{years: v}, nil
}

// PensionYearsForBirthYear returns the statutory retirement-age years under
// the SGB VI § 235 transition: 65 up to birth year 1957, 66 for 1958
// through 1963, 67 from 1964 on.
func PensionYearsForBirthYear(birthYear chrono.Year) PensionYears {
	switch y := birthYear.Int(); {
	case y <= 1957:
		return PensionYears{years: 65}
	case y <= 1963:
		return PensionYears{years: 66}
	default:
		return PensionYears{years: 67}
	}
}

// Int returns the year count.
func (p PensionYears) Int() int { return p.years }

// PensionMonths is the month component of a retirement age.
type PensionMonths struct {
	months int
}

// NewPensionMonths returns the PensionMonths for v, or ErrOutOfRange when v
// is not in [0, MaxPensionMonths].
func NewPensionMonths(v int) (PensionMonths, error) {
	if v < 0 || v > MaxPensionMonths {
		return PensionMonths{}, fmt.Errorf("%w: pension months %d not in [0, %d]", ErrOutOfRange, v, MaxPensionMonths)
	}
	return PensionMonths{months: v}, nil
}

// PensionMonthsForBirthYear returns the statutory month component under the
// SGB VI § 235 transition: one month per birth year from 1947 through 1957,
// two months per year from 1959 through 1963, zero otherwise.
func PensionMonthsForBirthYear(birthYear chrono.Year) PensionMonths {
	months := 0
	switch y := birthYear.Int(); {
	case y >= 1947 && y <= 1957:
		months = y - 1946
	case y >= 1959 && y <= 1963:
		months = (y - 1958) * 2
	}
	return PensionMonths{months: months}
}

// Int returns the month count.
func (p PensionMonths) Int() int { return p.months }

// PensionAge is a statutory or contractual retirement age in years and
// months.
type PensionAge struct {
	years  PensionYears
	months PensionMonths
}

// NewPensionAge validates both components and combines them.
func NewPensionAge(years, months int) (PensionAge, error) {
	y, err := NewPensionYears(years)
	if err != nil {
		return PensionAge{}, err
	}
	m, err := NewPensionMonths(months)
	if err != nil {
		return PensionAge{}, err
	}
	return PensionAge{years: y, months: m}, nil
}

// Just60 returns the contractual retirement age of exactly 60 years.
func Just60() PensionAge { return PensionAge{years: PensionYears{years: 60}} }

// Just63 returns the contractual retirement age of exactly 63 years.
func Just63() PensionAge { return PensionAge{years: PensionYears{years: 63}} }

// Just65 returns the contractual retirement age of exactly 65 years.
func Just65() PensionAge { return PensionAge{years: PensionYears{years: 65}} }

// Just67 returns the contractual retirement age of exactly 67 years.
func Just67() PensionAge { return PensionAge{years: PensionYears{years: 67}} }

// PensionAgeForBirthYear returns the statutory retirement age under the
// SGB VI § 235 transition rules.
func PensionAgeForBirthYear(birthYear chrono.Year) PensionAge {
	return PensionAge{
		years:  PensionYearsForBirthYear(birthYear),
		months: PensionMonthsForBirthYear(birthYear),
	}
}

// Years returns the year component.
func (p PensionAge) Years() PensionYears { return p.years }

// Months returns the month component.
func (p PensionAge) Months() PensionMonths { return p.months }

// DateFor returns the date at which a person born on birth reaches the
// retirement age.
func (p PensionAge) DateFor(birth chrono.Date) (chrono.Date, error) {
	d, err := birth.AddYears(p.years.Int())
	if err != nil {
		return chrono.Date{}, err
	}
	return d.AddMonths(p.months.Int())
}

func (p PensionAge) String() string {
	return fmt.Sprintf("%d years %d months", p.years.Int(), p.months.Int())
}
