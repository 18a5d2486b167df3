package chrono

import (
	"fmt"
	"strconv"
	"strings"
)

// dateCleaner strips the separators ParseDate tolerates.
var dateCleaner = strings.NewReplacer(".", "", "/", "")

// ParseDate parses a day-first date string. Accepted forms are the compact
// "ddmmyyyy" and the separated "dd.mm.yyyy" and "dd/mm/yyyy". It returns
// ErrParse for malformed input and the constructor errors for syntactically
// valid but nonexistent dates.
func ParseDate(s string) (Date, error) {
	compact := dateCleaner.Replace(s)
	if len(compact) != 8 {
		return Date{}, fmt.Errorf("%w: %q is not a ddmmyyyy date", ErrParse, s)
	}

	day, err := parseComponent(s, compact[:2])
	if err != nil {
		return Date{}, err
	}
	month, err := parseComponent(s, compact[2:4])
	if err != nil {
		return Date{}, err
	}
	year, err := parseComponent(s, compact[4:])
	if err != nil {
		return Date{}, err
	}

	return MakeDate(year, month, day)
}

func parseComponent(input, digits string) (int, error) {
	v, err := strconv.Atoi(digits)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrParse, input)
	}
	return v, nil
}
