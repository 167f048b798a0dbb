package firewatch

import (
	"fmt"
)

// Match is an accepted correlation: a flight whose track entered a
// fire's radius during the fire's active window. At most one Match
// exists per (tail, flight date, incident) triple; DistanceKM is the
// distance at the first in-radius point, not the closest approach.
type Match struct {
	TailNumber         string
	Flight             Flight         // The leg that matched (track not retained)
	Incident           ActiveIncident
	DistanceKM         float64
	PointIndex         int            // Which trackpoint tripped the match
}

var MatchHeaders = []string{
	"TailNumber", "FlightDate", "Origin", "Destination",
	"FireIncident", "FireStart", "FireEnd", "DistanceKM",
}

// CSVRow serializes in MatchHeaders order. Dates as YYYY-MM-DD,
// distance to 2dp; quoting is encoding/csv's problem.
func (m Match)CSVRow() []string {
	return []string{
		m.TailNumber,
		m.Flight.Date.Format("2006-01-02"),
		m.Flight.Origin,
		m.Flight.Destination,
		m.Incident.Incident,
		m.Incident.Start.Format("2006-01-02"),
		m.Incident.End.Format("2006-01-02"),
		fmt.Sprintf("%.2f", m.DistanceKM),
	}
}

func (m Match)String() string {
	return fmt.Sprintf("%s %s: %s at %.2fKM", m.TailNumber,
		m.Flight.Date.Format("2006-01-02"), m.Incident.Incident, m.DistanceKM)
}
