package chrono

import (
	"fmt"
	"strconv"
)

// Day is a validated day-of-month in [1, 31].
//
// The range check here is deliberately coarse: whether the day exists in a
// particular month and year is decided once, in NewDate.
type Day struct {
	day int
}

// NewDay returns the Day for v, or ErrOutOfRange when v is not in [1, 31].
func NewDay(v int) (Day, error) {
	if v < 1 || v > 31 {
		return Day{}, fmt.Errorf("%w: day %d not in [1, 31]", ErrOutOfRange, v)
	}
	return Day{day: v}, nil
}

// Int returns the numeric day-of-month.
func (d Day) Int() int { return d.day }

func (d Day) String() string { return strconv.Itoa(d.day) }
