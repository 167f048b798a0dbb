package firewatch

import (
	"time"
)

// Config carries every matching and filtering threshold as an explicit
// value; nothing in the core reads module-level state. Zero values are
// not useful, so start from DefaultConfig.
type Config struct {
	RadiusKM          float64 // A track within this distance of a fire counts as a visit

	MaxContainmentPct float64 // Fires contained beyond this are no longer interesting
	MaxStaleDays      int     // Fires whose listing has gone quiet this long are done
	MaxAgeDays        int     // Fires that started this long ago are done regardless

	// Flights are considered when their date is between LookbackMinDays
	// and LookbackMaxDays ago, inclusive. The default excludes the
	// current day (min 1), since its history page is still filling in.
	LookbackMinDays   int
	LookbackMaxDays   int

	// Incident names excluded outright; known bad/duplicate source records.
	ExcludeIncidents  []string

	// Now is the wall-clock source; nil means time.Now. All the day
	// arithmetic runs off this, so tests can pin it.
	Now func() time.Time
}

func DefaultConfig() Config {
	return Config{
		RadiusKM:          30.0,
		MaxContainmentPct: 80.0,
		MaxStaleDays:      7,
		MaxAgeDays:        30,
		LookbackMinDays:   1,
		LookbackMaxDays:   3, // FlightAware's free history window
		ExcludeIncidents:  []string{"Elkhorn Fire - IDPAF"},
	}
}

func (c Config)NowUTC() time.Time {
	if c.Now != nil {
		return c.Now().UTC()
	}
	return time.Now().UTC()
}

// LookbackWindow is the inclusive range of flight days this config
// covers, as UTC midnights. With the defaults and a Friday "now", that
// is Tuesday through Thursday.
func (c Config)LookbackWindow() (time.Time, time.Time) {
	now := c.NowUTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0,0, -c.LookbackMaxDays), day.AddDate(0,0, -c.LookbackMinDays)
}

func (c Config)IncidentExcluded(name string) bool {
	for _,excl := range c.ExcludeIncidents {
		if name == excl { return true }
	}
	return false
}
