package report

// End to end, minus the network: snapshot rows in, a CSV line out.

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/skypies/geo"

	fw "github.com/skypies/firewatch"
	"github.com/skypies/firewatch/inciweb"
)

func TestPipeline(t *testing.T) {
	cfg := fw.DefaultConfig()
	cfg.Now = func() time.Time { return time.Date(2024,7,26, 12,0,0,0, time.UTC) }

	// Two scrapes of the same fire, coordinates written down differently
	row := func(updated, scraped string) inciweb.Row {
		return inciweb.Row{
			"Incident":           "Gold Complex",
			"Coordinates":        `40° 30' 0" Latitude, 120° 15' 0" Longitude`,
			"DateOfOrigin":       "Mon, 07/15/2024 - 09:00",
			"Updated":            updated,
			"ScrapeDate":         scraped,
			"ContainmentPercent": "35%",
		}
	}
	batches := []inciweb.Batch{{Name: "Gold_Complex.csv", Rows: []inciweb.Row{
		row("3 days ago", "2024-07-23"),
		row("1 day ago", "2024-07-25"),
	}}}

	fires,earliest,debug := inciweb.Reconcile(cfg, batches)
	if len(fires) != 1 || earliest == nil {
		t.Fatalf("reconcile: %d fires\n%s", len(fires), debug)
	}

	// One leg two days ago, passing 0.2 degrees (~22KM) from the fire
	flights := []fw.Flight{{
		TailNumber: "N131CG",
		Date:       time.Date(2024,7,24, 0,0,0,0, time.UTC),
		Origin:     "Sacramento Intl (KSMF)",
		Destination: "Redding Muni (KRDD)",
		Track: fw.Track{
			{DataSource: "FA", Latlong: geo.Latlong{Lat: 38.7, Long: -120.25}},
			{DataSource: "FA", Latlong: geo.Latlong{Lat: 40.3, Long: -120.25}},
			{DataSource: "FA", Latlong: geo.Latlong{Lat: 41.0, Long: -120.25}},
		},
	}}

	r := BlankReport()
	for _,m := range fw.MatchFlights(cfg, flights, fires) {
		r.AddMatch(m)
	}
	if len(r.Matches) != 1 {
		t.Fatalf("got %d matches, wanted 1", len(r.Matches))
	}
	if r.Matches[0].PointIndex != 1 {
		t.Errorf("matched at point %d, wanted 1", r.Matches[0].PointIndex)
	}

	buf := bytes.Buffer{}
	if err := r.OutputAsCSV(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("csv:\n%s", buf.String())
	}
	if !strings.HasPrefix(lines[1], "N131CG,2024-07-24,") ||
		!strings.Contains(lines[1], "Gold Complex,2024-07-15,2024-07-24,") {
		t.Errorf("row: %s", lines[1])
	}
}
