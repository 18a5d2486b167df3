package pension

import (
	"fmt"
	"math/big"

	"github.com/dmitrymomot/pensionkit/pkg/chrono"
)

// RataTemporis is the § 2 BetrAVG accrual quota m/n: actual service time m
// over possible service time n up to pension eligibility. The quotient is
// kept as numerator and denominator rather than pre-divided, so the caller
// decides how to round.
type RataTemporis struct {
	m int
	n int
}

// New computes the quota in whole months from the service start, the
// service end and the pension-eligibility date. It returns ErrInvalidRange
// unless the eligibility date lies a positive number of whole months after
// the service start. m may exceed n: service past eligibility is legal and
// is not rejected.
func New(serviceStart, serviceEnd, pensionDate chrono.Date) (RataTemporis, error) {
	n := serviceStart.MonthsUntil(pensionDate)
	if n <= 0 {
		return RataTemporis{}, fmt.Errorf("%w: pension date %s not a whole month after service start %s", ErrInvalidRange, pensionDate, serviceStart)
	}
	return RataTemporis{m: serviceStart.MonthsUntil(serviceEnd), n: n}, nil
}

// Actual returns the numerator m, the actual service time.
func (rt RataTemporis) Actual() int { return rt.m }

// Possible returns the denominator n, the possible service time.
func (rt RataTemporis) Possible() int { return rt.n }

// Ratio returns the quota as numerator and denominator.
func (rt RataTemporis) Ratio() (m, n int) { return rt.m, rt.n }

// Rat returns the quota as an exact rational number.
func (rt RataTemporis) Rat() *big.Rat { return big.NewRat(int64(rt.m), int64(rt.n)) }

// Float64 returns the quota divided out. Prefer Ratio or Rat when the
// rounding disposition matters.
func (rt RataTemporis) Float64() float64 { return float64(rt.m) / float64(rt.n) }

func (rt RataTemporis) String() string { return fmt.Sprintf("%d/%d", rt.m, rt.n) }
