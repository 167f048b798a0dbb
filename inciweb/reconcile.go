package inciweb

import (
	"fmt"
	"sort"

	fw "github.com/skypies/firewatch"
)

// A Batch is the rows from one snapshot source file.
type Batch struct {
	Name string
	Rows []Row
}

// {{{ Reconcile

// Reconcile collapses the raw snapshot batches down to one canonical
// latest state per fire, then filters for fires still worth matching
// against. It returns the accepted incidents sorted by window start,
// the earliest of them (nil when there are none - callers should treat
// that as "nothing to match"), and a debug log.
//
// Dedup runs strictly before the threshold filters: an old
// stale-looking snapshot of a fire must never knock out a fire whose
// newest snapshot is fine.
func Reconcile(cfg fw.Config, batches []Batch) ([]fw.ActiveIncident, *fw.ActiveIncident, string) {
	str := ""
	now := cfg.NowUTC()

	// 1) Collect the newest snapshot per fire (by observed-end timestamp)
	latestByFire := map[string]fw.IncidentSnapshot{}
	keys := []string{} // insertion order, so output is deterministic

	for _,batch := range batches {
		for _,row := range batch.Rows {
			if !row.HasSnapshotFields() { continue }

			snap,err := row.ToSnapshot(batch.Name)
			if err != nil { continue } // already logged, where it matters

			if cfg.IncidentExcluded(snap.Incident) { continue }

			key := snap.Key()
			existing,seen := latestByFire[key]
			if !seen {
				keys = append(keys, key)
			}
			if !seen || snap.End.After(existing.End) {
				latestByFire[key] = snap
			}
		}
	}

	// 2) Apply filters ONLY to the latest snapshot for each fire
	fires := []fw.ActiveIncident{}
	for _,key := range keys {
		snap := latestByFire[key]
		str += fmt.Sprintf("* latest: %s, containment %.0f%%, updated %dd ago\n",
			snap.Incident, snap.ContainmentPct, snap.StaleDays())

		if snap.ContainmentPct > cfg.MaxContainmentPct || snap.StaleDays() > cfg.MaxStaleDays {
			str += fmt.Sprintf("  - skipped (contained/stale)\n")
			continue
		}
		if daysSinceOrigin := fw.DaysBetween(now, snap.Start); daysSinceOrigin > cfg.MaxAgeDays {
			str += fmt.Sprintf("  - skipped (started %dd ago, too old)\n", daysSinceOrigin)
			continue
		}

		fires = append(fires, fw.ActiveIncident{
			Incident: snap.Incident,
			Latlong:  snap.Latlong,
			Start:    snap.Start,
			End:      snap.End,
		})
	}

	// 3) Sort by window start; earliest first
	sort.SliceStable(fires, func(i,j int) bool { return fires[i].Start.Before(fires[j].Start) })

	var earliest *fw.ActiveIncident
	if len(fires) > 0 {
		earliest = &fires[0]
	}

	return fires, earliest, str
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
