package chrono

import "fmt"

// Month is a calendar month, January (1) through December (12).
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// monthDays holds the month lengths of a non-leap year.
var monthDays = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var monthNames = [...]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// NewMonth returns the Month for v, or ErrOutOfRange when v is not in
// [1, 12].
func NewMonth(v int) (Month, error) {
	if v < 1 || v > 12 {
		return 0, fmt.Errorf("%w: month %d not in [1, 12]", ErrOutOfRange, v)
	}
	return Month(v), nil
}

// Int returns the numeric month, January being 1.
func (m Month) Int() int { return int(m) }

// Days returns the number of days the month has in year y: 28 or 29 for
// February depending on leap-ness, 30 or 31 otherwise.
func (m Month) Days(y Year) int {
	if m == February && y.IsLeap() {
		return 29
	}
	return monthDays[m-1]
}

// Add returns the month n months later together with the number of whole
// years carried over. Negative n moves backwards; the carry is negative
// when the walk crosses a year boundary downwards.
func (m Month) Add(n int) (Month, int) {
	idx := int(m) - 1 + n
	carry := idx / 12
	idx %= 12
	if idx < 0 {
		idx += 12
		carry--
	}
	return Month(idx + 1), carry
}

// String returns the English month name.
func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("%%!Month(%d)", int(m))
	}
	return monthNames[m-1]
}
