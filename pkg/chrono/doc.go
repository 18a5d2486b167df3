// Package chrono provides validated calendar-date value types on the
// proleptic Gregorian calendar, together with exact day, whole-month and
// whole-year difference arithmetic.
//
// The central guarantee is that invalid calendar states are unrepresentable:
// Year, Month and Day each validate their own numeric range, and Date adds
// the cross-field check that the day exists in the month of that year, leap
// years included. Every constructor returns either a valid value or an
// error; there are no sentinel-invalid instances.
//
// # Usage
//
//	import "github.com/dmitrymomot/pensionkit/pkg/chrono"
//
//	start, err := chrono.MakeDate(2010, 1, 1)
//	if err != nil {
//	    // the triple does not exist on the calendar
//	}
//	end := chrono.MustDate(2020, 1, 1)
//
//	days := start.DaysUntil(end)      // exact calendar days, 3652
//	months := start.MonthsUntil(end)  // whole elapsed months, 120
//	years := start.YearsUntil(end)    // whole elapsed years, 10
//
//	age, err := chrono.AgeBetween(chrono.MustDate(2000, 6, 15), end)
//
// All difference methods are signed, positive when the argument is the
// later date, and antisymmetric: a.DaysUntil(b) == -b.DaysUntil(a). Month
// and year differences count completed units and truncate the trailing
// partial unit; the *Round variants accept an explicit Rounding policy,
// with RoundFloor reproducing the plain methods.
//
// # Error Handling
//
// The package exposes sentinel errors matchable with errors.Is:
//
//   - ErrOutOfRange   – a numeric input outside its type's domain.
//   - ErrInvalidDate  – an in-range triple naming a nonexistent day.
//   - ErrInvalidRange – a violated precondition between two dates.
//   - ErrParse        – an unparsable date string.
//   - ErrOverflow     – arithmetic left the integer domain.
//
// # Concurrency
//
// All types are immutable values; they may be shared and compared freely
// across goroutines without synchronization.
package chrono
