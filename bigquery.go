package firewatch

import (
	"fmt"
	"time"
)

// MatchForBigQuery is a representation of a Match that is slightly
// denormalized, with dates stringified the same way as BQ's DATE()
// function. It is designed for import into BigQuery, for analysis.
type MatchForBigQuery struct {
	TailNumber   string
	FlightDate   string // YYYY-MM-DD
	Orig, Dest   string

	Incident     string
	FireStart    time.Time
	FireEnd      time.Time
	DistanceKM   float64

	// A {tail+date+incident} value; can be used to dedup across runs
	MatchKey     string
}

func (mbq MatchForBigQuery)String() string {
	return fmt.Sprintf("%s %s %s %.2fKM", mbq.TailNumber, mbq.FlightDate,
		mbq.Incident, mbq.DistanceKM)
}

func (m Match)ForBigQuery() *MatchForBigQuery {
	return &MatchForBigQuery{
		TailNumber: m.TailNumber,
		FlightDate: m.Flight.Date.Format("2006-01-02"),
		Orig:       m.Flight.Origin,
		Dest:       m.Flight.Destination,

		Incident:   m.Incident.Incident,
		FireStart:  m.Incident.Start,
		FireEnd:    m.Incident.End,
		DistanceKM: m.DistanceKM,

		MatchKey: fmt.Sprintf("%s-%s-%s", m.TailNumber,
			m.Flight.Date.Format("20060102"), m.Incident.Incident),
	}
}
