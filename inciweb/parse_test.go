package inciweb

import (
	"testing"
	"time"
)

// {{{ TestParseCoordinates

func TestParseCoordinates(t *testing.T) {
	type CoordTest struct {
		Input     string
		Lat, Long float64
		Err       bool
	}
	tests := []CoordTest{
		{`40° 30' 0" Latitude, 120° 15' 0" Longitude`, 40.5, -120.25, false},
		{`40° 30' Latitude, 120° 15' Longitude`, 40.5, -120.25, false},        // no seconds
		{`39° 45' 30" Latitude, -121° 0' 0" Longitude`, 39.7583333, -121.0, false},
		{`40° 30' 0" Latitude 120° 15' 0" Longitude`, 0, 0, true},             // no comma
		{`somewhere in the hills`, 0, 0, true},
		{``, 0, 0, true},
	}

	for i,test := range tests {
		pos,err := ParseCoordinates(test.Input)
		if (err != nil) != test.Err {
			t.Errorf("[%d] %q: err=%v, wanted err=%v", i, test.Input, err, test.Err)
			continue
		}
		if test.Err { continue }
		if delta := pos.Lat - test.Lat; delta > 1e-6 || delta < -1e-6 {
			t.Errorf("[%d] %q: lat=%f, wanted %f", i, test.Input, pos.Lat, test.Lat)
		}
		if delta := pos.Long - test.Long; delta > 1e-6 || delta < -1e-6 {
			t.Errorf("[%d] %q: long=%f, wanted %f", i, test.Input, pos.Long, test.Long)
		}
	}
}

// }}}
// {{{ TestParseUpdatedAgo

func TestParseUpdatedAgo(t *testing.T) {
	tests := []struct {
		Input    string
		Expected time.Duration
	}{
		{"2 days 3 hours ago", 51 * time.Hour},
		{"1 day ago", 24 * time.Hour},
		{"5 hours 12 minutes ago", 5*time.Hour + 12*time.Minute},
		{"45 min. ago", 45 * time.Minute},
		{"just now", 0},
		{"", 0},
	}

	for i,test := range tests {
		if actual := ParseUpdatedAgo(test.Input); actual != test.Expected {
			t.Errorf("[%d] %q: got %v, wanted %v", i, test.Input, actual, test.Expected)
		}
	}
}

// }}}
// {{{ TestParseListingAge

func TestParseListingAge(t *testing.T) {
	tests := []struct {
		Input    string
		Expected time.Duration
		OK       bool
	}{
		{"30 seconds ago", 0, true},
		{"12 minutes ago", 12 * time.Minute, true},
		{"1 hour ago", time.Hour, true},
		{"5 days ago", 5 * 24 * time.Hour, true},
		{"3 weeks ago", 21 * 24 * time.Hour, true},
		{"4 weeks ago", 28 * 24 * time.Hour, true}, // must not parse as zero
		{"1 month ago", 0, false},
		{"Unknown", 0, false},
		{"", 0, false},
	}

	for i,test := range tests {
		actual,ok := ParseListingAge(test.Input)
		if ok != test.OK {
			t.Errorf("[%d] %q: ok=%v, wanted %v", i, test.Input, ok, test.OK)
			continue
		}
		if actual != test.Expected {
			t.Errorf("[%d] %q: got %v, wanted %v", i, test.Input, actual, test.Expected)
		}
	}
}

// }}}
// {{{ TestParseOriginDate

func TestParseOriginDate(t *testing.T) {
	tests := []struct {
		Input    string
		Expected string // "" means unparseable
	}{
		{"Tue, 07/23/2024 - 14:03", "2024-07-23"},
		{"07/04/2024", "2024-07-04"},
		{"Wednesday, 12/31/2025 (approx)", "2025-12-31"},
		{"Unknown", ""},
		{"7/4/2024", ""}, // single-digit fields never appear in the feed
		{"", ""},
	}

	for i,test := range tests {
		actual,ok := ParseOriginDate(test.Input, "test-fixture")
		if ok != (test.Expected != "") {
			t.Errorf("[%d] %q: ok=%v, wanted %v", i, test.Input, ok, test.Expected != "")
			continue
		}
		if !ok { continue }
		if str := actual.Format("2006-01-02"); str != test.Expected {
			t.Errorf("[%d] %q: got %s, wanted %s", i, test.Input, str, test.Expected)
		}
	}
}

// }}}
// {{{ TestParseContainmentPct

func TestParseContainmentPct(t *testing.T) {
	tests := []struct {
		Input    string
		Expected float64
	}{
		{"45%", 45},
		{"45", 45},
		{" 100% ", 100},
		{"0%", 0},
		{"n/a", 0},
		{"", 0},
	}

	for i,test := range tests {
		if actual := ParseContainmentPct(test.Input); actual != test.Expected {
			t.Errorf("[%d] %q: got %f, wanted %f", i, test.Input, actual, test.Expected)
		}
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
