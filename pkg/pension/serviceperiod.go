package pension

import (
	"fmt"

	"github.com/dmitrymomot/pensionkit/pkg/chrono"
)

// ServicePeriod is an employee's pensionable service history: the birth
// date and the entry and exit dates of the employment.
type ServicePeriod struct {
	birth chrono.Date
	entry chrono.Date
	exit  chrono.Date
}

// NewServicePeriod validates the chronology birth <= entry <= exit and
// returns ErrInvalidRange when it does not hold.
func NewServicePeriod(birth, entry, exit chrono.Date) (ServicePeriod, error) {
	if birth.After(entry) {
		return ServicePeriod{}, fmt.Errorf("%w: birth date %s after entry date %s", ErrInvalidRange, birth, entry)
	}
	if entry.After(exit) {
		return ServicePeriod{}, fmt.Errorf("%w: entry date %s after exit date %s", ErrInvalidRange, entry, exit)
	}
	return ServicePeriod{birth: birth, entry: entry, exit: exit}, nil
}

// Birth returns the birth date.
func (sp ServicePeriod) Birth() chrono.Date { return sp.birth }

// Entry returns the employment entry date.
func (sp ServicePeriod) Entry() chrono.Date { return sp.entry }

// Exit returns the employment exit date.
func (sp ServicePeriod) Exit() chrono.Date { return sp.exit }

// ActualService returns m, the service time between entry and exit, in the
// requested unit. Rounding applies to month and year accuracy; day counts
// are always exact.
func (sp ServicePeriod) ActualService(acc Accuracy, r chrono.Rounding) int {
	return difference(sp.entry, sp.exit, acc, r)
}

// PossibleService returns n, the service time between entry and reaching
// the given retirement age, in the requested unit. It returns
// ErrInvalidRange when the entry date is not before the pension date.
func (sp ServicePeriod) PossibleService(age PensionAge, acc Accuracy, r chrono.Rounding) (int, error) {
	pensionDate, err := age.DateFor(sp.birth)
	if err != nil {
		return 0, err
	}
	if !sp.entry.Before(pensionDate) {
		return 0, fmt.Errorf("%w: entry date %s not before pension date %s", ErrInvalidRange, sp.entry, pensionDate)
	}
	return difference(sp.entry, pensionDate, acc, r), nil
}

// Quota returns the m/n accrual quota for the given retirement age at the
// requested accuracy and rounding.
func (sp ServicePeriod) Quota(age PensionAge, acc Accuracy, r chrono.Rounding) (RataTemporis, error) {
	n, err := sp.PossibleService(age, acc, r)
	if err != nil {
		return RataTemporis{}, err
	}
	if n <= 0 {
		return RataTemporis{}, fmt.Errorf("%w: possible service time %d is not positive", ErrInvalidRange, n)
	}
	return RataTemporis{m: sp.ActualService(acc, r), n: n}, nil
}

// QuotaStatutory is Quota with the retirement age derived from the birth
// year under SGB VI § 235.
func (sp ServicePeriod) QuotaStatutory(acc Accuracy, r chrono.Rounding) (RataTemporis, error) {
	return sp.Quota(PensionAgeForBirthYear(sp.birth.Year()), acc, r)
}

func difference(from, to chrono.Date, acc Accuracy, r chrono.Rounding) int {
	switch acc {
	case AccuracyDay:
		return from.DaysUntil(to)
	case AccuracyYear:
		return from.YearsUntilRound(to, r)
	default:
		return from.MonthsUntilRound(to, r)
	}
}
