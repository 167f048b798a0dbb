package inciweb

// The listing is human-readable text all the way down: DMS coordinates,
// "updated 2 days ago" phrases, weekday-prefixed dates. Every parser
// here is total - bad input comes back as an error or a zero value, and
// the drop-the-row policy lives with the caller.

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/skypies/geo"
)

var (
	dmsR  = regexp.MustCompile(`(\d+)[°]\s*(\d+)[']?\s*(\d+)?`)
	mdyR  = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)

	updatedDayR  = regexp.MustCompile(`(\d+)\s*day`)
	updatedHourR = regexp.MustCompile(`(\d+)\s*hour`)
	updatedMinR  = regexp.MustCompile(`(\d+)\s*min`)

	listingAgeR = regexp.MustCompile(`(\d+)\s+(minute|hour|day|week)s?\s+ago`)
)

// {{{ dmsToDecimal

// dmsToDecimal converts one `DD° MM' SS"` component to decimal degrees.
// Seconds are optional; degrees and minutes are not.
func dmsToDecimal(s string) (float64, error) {
	frags := dmsR.FindStringSubmatch(s)
	if frags == nil {
		return 0, fmt.Errorf("'%s' did not match DMS pattern", s)
	}

	deg,_ := strconv.ParseFloat(frags[1], 64)
	min,_ := strconv.ParseFloat(frags[2], 64)
	sec := 0.0
	if frags[3] != "" {
		sec,_ = strconv.ParseFloat(frags[3], 64)
	}

	return deg + min/60 + sec/3600, nil
}

// }}}
// {{{ ParseCoordinates

// ParseCoordinates parses the listing's two-part coordinate string,
// e.g. `40° 30' 0" Latitude, 120° 15' 0" Longitude`.
//
// The longitude always comes out negative: every incident this system
// cares about sits in the Western hemisphere, and the listing drops the
// sign as often as not. A deliberate domain assumption, not a general
// solution.
func ParseCoordinates(s string) (geo.Latlong, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geo.Latlong{}, fmt.Errorf("coordinates '%s' did not split into two parts", s)
	}

	lat,err := dmsToDecimal(strings.TrimSpace(parts[0]))
	if err != nil { return geo.Latlong{}, err }

	lon,err := dmsToDecimal(strings.TrimSpace(parts[1]))
	if err != nil { return geo.Latlong{}, err }
	if lon > 0 { lon = -lon }

	return geo.Latlong{Lat:lat, Long:lon}, nil
}

// }}}
// {{{ ParseUpdatedAgo

// ParseUpdatedAgo turns "2 days 3 hours ago" style text into a
// duration. Each unit is matched independently and added up; text with
// no recognizable unit (e.g. "just now") is simply zero.
func ParseUpdatedAgo(s string) time.Duration {
	d := time.Duration(0)

	if frags := updatedDayR.FindStringSubmatch(s); frags != nil {
		n,_ := strconv.Atoi(frags[1])
		d += time.Duration(n) * 24 * time.Hour
	}
	if frags := updatedHourR.FindStringSubmatch(s); frags != nil {
		n,_ := strconv.Atoi(frags[1])
		d += time.Duration(n) * time.Hour
	}
	if frags := updatedMinR.FindStringSubmatch(s); frags != nil {
		n,_ := strconv.Atoi(frags[1])
		d += time.Duration(n) * time.Minute
	}

	return d
}

// }}}
// {{{ ParseListingAge

// ParseListingAge reads the listing page's single-unit update phrases,
// "3 weeks ago" through "30 seconds ago". Unlike ParseUpdatedAgo it
// knows the week unit, and it reports false for anything it can't read:
// the freshness filter must treat an unreadable phrase as stale, not as
// updated-just-now.
func ParseListingAge(s string) (time.Duration, bool) {
	if strings.Contains(s, "second") { return 0, true }

	frags := listingAgeR.FindStringSubmatch(s)
	if frags == nil { return 0, false }

	n,_ := strconv.Atoi(frags[1])
	switch frags[2] {
	case "minute": return time.Duration(n) * time.Minute, true
	case "hour":   return time.Duration(n) * time.Hour, true
	case "day":    return time.Duration(n) * 24 * time.Hour, true
	}
	return time.Duration(n) * 7 * 24 * time.Hour, true // week
}

// }}}
// {{{ ParseOriginDate

// ParseOriginDate digs the MM/DD/YYYY token out of a date-of-origin
// string such as "Tue, 07/23/2024 - 14:03". Failure is not an error;
// it logs the offending text (with its source file, for diagnosis) and
// reports false, and the caller drops the row.
func ParseOriginDate(raw, file string) (time.Time, bool) {
	frags := mdyR.FindString(raw)
	if frags == "" {
		log.Printf("inciweb: no MM/DD/YYYY in %q (file %q)", raw, file)
		return time.Time{}, false
	}

	t,err := time.Parse("01/02/2006", frags)
	if err != nil {
		log.Printf("inciweb: bad date %q from %q (file %q): %v", frags, raw, file, err)
		return time.Time{}, false
	}

	return t.UTC(), true
}

// }}}
// {{{ ParseContainmentPct

// ParseContainmentPct is lenient: "45%", "45", or junk (giving zero).
func ParseContainmentPct(s string) float64 {
	val,err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil { return 0 }
	return val
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
