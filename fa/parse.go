package fa

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var monthAbbrs = map[string]time.Month{
	"Jan": time.January,   "Feb": time.February, "Mar": time.March,
	"Apr": time.April,     "May": time.May,      "Jun": time.June,
	"Jul": time.July,      "Aug": time.August,   "Sep": time.September,
	"Oct": time.October,   "Nov": time.November, "Dec": time.December,
}

// {{{ ParseFlightDate

// ParseFlightDate parses the history table's "24-Jul-2024" dates into a
// UTC midnight. The day may be one or two digits.
func ParseFlightDate(s string) (time.Time, error) {
	frags := strings.Split(strings.TrimSpace(s), "-")
	if len(frags) != 3 {
		return time.Time{}, fmt.Errorf("'%s' is not DD-Mon-YYYY", s)
	}

	day,err := strconv.Atoi(frags[0])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("'%s' has bad day '%s'", s, frags[0])
	}

	month,exists := monthAbbrs[frags[1]]
	if !exists {
		return time.Time{}, fmt.Errorf("'%s' has bad month '%s'", s, frags[1])
	}

	year,err := strconv.Atoi(frags[2])
	if err != nil || year < 2000 {
		return time.Time{}, fmt.Errorf("'%s' has bad year '%s'", s, frags[2])
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
