package pension

import "fmt"

// Accuracy selects the unit in which service times are counted.
type Accuracy int

const (
	// AccuracyMonth counts whole months. It is the customary unit for the
	// § 2 BetrAVG quota and the zero value.
	AccuracyMonth Accuracy = iota

	// AccuracyDay counts exact calendar days.
	AccuracyDay

	// AccuracyYear counts whole years.
	AccuracyYear
)

func (a Accuracy) String() string {
	switch a {
	case AccuracyMonth:
		return "Month-exact"
	case AccuracyDay:
		return "Day-exact"
	case AccuracyYear:
		return "Year-exact"
	default:
		return fmt.Sprintf("%%!Accuracy(%d)", int(a))
	}
}
