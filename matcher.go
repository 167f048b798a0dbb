package firewatch

// The matcher decides which (flight, incident) pairs count as visits.
// It is a pure function of its inputs plus Config.Now; all fetching and
// persistence happen elsewhere.

// MatchFlights scans one aircraft's flight legs against the active
// incidents. Output order is deterministic: flight order, then incident
// order, with at most one match per (flight, incident) pair, taken at
// the first trackpoint inside the radius.
func MatchFlights(cfg Config, flights []Flight, incidents []ActiveIncident) []Match {
	out := []Match{}
	now := cfg.NowUTC()

	for _,f := range flights {
		daysAgo := DaysBetween(now, f.Date)
		if daysAgo < cfg.LookbackMinDays || daysAgo > cfg.LookbackMaxDays {
			continue
		}

		for _,inc := range incidents {
			if !inc.WindowContains(f.Date) { continue }

			if i,dist,ok := f.Track.FirstWithinKM(inc.Latlong, cfg.RadiusKM); ok {
				leg := f
				leg.Track = nil // matches don't carry the full track around
				out = append(out, Match{
					TailNumber: f.TailNumber,
					Flight:     leg,
					Incident:   inc,
					DistanceKM: dist,
					PointIndex: i,
				})
			}
		}
	}

	return out
}
