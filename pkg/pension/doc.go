// Package pension computes the Rata Temporis accrual quota ("m/n-tel") of
// German occupational-pension law, § 2 BetrAVG: the ratio of actual
// pensionable service time m to the possible service time n up to pension
// eligibility.
//
// The package builds on the validated date arithmetic of pkg/chrono. The
// quota itself is a rational value; it is never pre-divided to a float, so
// consumers keep full control over rounding.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/pensionkit/pkg/chrono"
//	    "github.com/dmitrymomot/pensionkit/pkg/pension"
//	)
//
//	rt, err := pension.New(
//	    chrono.MustDate(2010, 1, 1),  // service start
//	    chrono.MustDate(2020, 1, 1),  // service end
//	    chrono.MustDate(2040, 1, 1),  // pension eligibility
//	)
//	m, n := rt.Ratio() // 120, 360
//
// For full records the ServicePeriod type derives the eligibility date from
// the birth date and a retirement age, either contractual (Just65 and
// friends) or statutory via the SGB VI § 235 transition tables:
//
//	sp, err := pension.NewServicePeriod(birth, entry, exit)
//	rt, err = sp.QuotaStatutory(pension.AccuracyMonth, chrono.RoundFloor)
//
// Accuracy selects the counting unit (months by default, days or years);
// chrono.Rounding controls the trailing partial unit, with the floor
// truncation of whole-month counting as the baseline.
//
// # Error Handling
//
// The sentinel errors ErrOutOfRange and ErrInvalidRange are matchable with
// errors.Is. Constructors never return partially valid values.
package pension
