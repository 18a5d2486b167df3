package chrono

import "fmt"

// Rounding selects how MonthsUntilRound and YearsUntilRound treat a partial
// trailing unit.
type Rounding int

const (
	// RoundFloor counts completed whole units only. It is the zero value
	// and the policy of the plain MonthsUntil and YearsUntil methods.
	RoundFloor Rounding = iota

	// RoundCeil counts any started unit as a whole one.
	RoundCeil

	// RoundNearest rounds to the closest whole unit, halves up.
	RoundNearest
)

func (r Rounding) String() string {
	switch r {
	case RoundFloor:
		return "Floor"
	case RoundCeil:
		return "Ceil"
	case RoundNearest:
		return "Nearest"
	default:
		return fmt.Sprintf("%%!Rounding(%d)", int(r))
	}
}
