package firewatch

import (
	"fmt"
	"time"

	"github.com/skypies/geo"
)

// IncidentSnapshot is one observation of a fire at a point in time, as
// scraped from the incident listing. The same fire shows up once per
// scrape, so reconciliation collapses snapshots down to the newest one
// per (name, rounded location) key.
type IncidentSnapshot struct {
	Incident     string    // The incident's display name; half of its identity

	geo.Latlong            // Embedded; longitude is always negative (see inciweb.ParseCoordinates)

	Start        time.Time // Date of origin, UTC midnight
	End          time.Time // Scrape time minus the self-reported "updated N ago" duration
	Scraped      time.Time

	ContainmentPct float64 // 0-100; zero when absent or unparseable
	SourceFile     string
}

// Key identifies a fire across scrapes. Coordinates get rounded to four
// decimal places (~11m), since the listing's precision wobbles between
// scrapes of the same fire.
func (s IncidentSnapshot)Key() string {
	return fmt.Sprintf("%s|%.4f,%.4f", s.Incident, s.Lat, s.Long)
}

// StaleDays is how many whole days the listing had gone without an
// update, as of the scrape.
func (s IncidentSnapshot)StaleDays() int {
	return DaysBetween(s.Scraped, s.End)
}

// ActiveIncident is a fire that survived reconciliation and filtering.
// Immutable once built; the matcher only reads it.
type ActiveIncident struct {
	Incident   string
	geo.Latlong
	Start, End time.Time // The active window, inclusive at both ends
}

func (ai ActiveIncident)String() string {
	return fmt.Sprintf("%s (%.4f,%.4f) [%s, %s]", ai.Incident, ai.Lat, ai.Long,
		ai.Start.Format("2006-01-02"), ai.End.Format("2006-01-02"))
}

// WindowContains reports whether t falls inside the active window,
// inclusive at both ends.
func (ai ActiveIncident)WindowContains(t time.Time) bool {
	return !t.Before(ai.Start) && !t.After(ai.End)
}
