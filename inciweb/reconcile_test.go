package inciweb

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	fw "github.com/skypies/firewatch"
)

var kReconcileNow = time.Date(2024, 7, 26, 12, 0, 0, 0, time.UTC)

func testConfig() fw.Config {
	cfg := fw.DefaultConfig()
	cfg.Now = func() time.Time { return kReconcileNow }
	return cfg
}

func snapshotRow(incident, coords, origin, updated, scraped, containment string) Row {
	return Row{
		"Incident":           incident,
		"Coordinates":        coords,
		"DateOfOrigin":       origin,
		"Updated":            updated,
		"ScrapeDate":         scraped,
		"ContainmentPercent": containment,
	}
}

// {{{ TestReconcileDedupBeforeFilter

// A fire's older snapshot can look hopelessly stale while its newest
// snapshot is fresh. Only the newest one may face the filters.
func TestReconcileDedupBeforeFilter(t *testing.T) {
	coords := `40° 30' 0" Latitude, 120° 15' 0" Longitude`
	coordsNoSecs := `40° 30' Latitude, 120° 15' Longitude` // same fire, sloppier scrape

	batches := []Batch{
		{Name: "Gold_Complex.csv", Rows: []Row{
			snapshotRow("Gold Complex", coords, "Mon, 07/15/2024 - 09:00", "10 days ago", "2024-07-20", "20%"),
			snapshotRow("Gold Complex", coordsNoSecs, "Mon, 07/15/2024 - 09:00", "1 day ago", "2024-07-25", "40%"),
		}},
	}

	fires,earliest,_ := Reconcile(testConfig(), batches)

	if len(fires) != 1 {
		t.Fatalf("got %d fires, wanted 1 (dedup should collapse both rows)", len(fires))
	}
	if earliest == nil || earliest.Incident != "Gold Complex" {
		t.Errorf("earliest: got %v", earliest)
	}
	if fires[0].Lat != 40.5 || fires[0].Long != -120.25 {
		t.Errorf("position: got (%f,%f)", fires[0].Lat, fires[0].Long)
	}
	// End must come from the fresher snapshot: 07-25 minus 1 day
	if expected := time.Date(2024,7,24, 0,0,0,0, time.UTC); !fires[0].End.Equal(expected) {
		t.Errorf("end: got %v, wanted %v", fires[0].End, expected)
	}
}

// }}}
// {{{ TestReconcileFilters

func TestReconcileFilters(t *testing.T) {
	batches := []Batch{
		{Name: "mixed.csv", Rows: []Row{
			// Containment 85% is out; 80% is the last value still in.
			snapshotRow("Contained Fire", `41° 0' 0" Latitude, 120° 0' 0" Longitude`,
				"07/20/2024", "1 day ago", "2024-07-25", "85%"),
			snapshotRow("Barely Active Fire", `42° 0' 0" Latitude, 120° 0' 0" Longitude`,
				"07/18/2024", "1 day ago", "2024-07-25", "80%"),
			// Listing went quiet 9 days before the scrape.
			snapshotRow("Stale Fire", `43° 0' 0" Latitude, 120° 0' 0" Longitude`,
				"07/20/2024", "9 days ago", "2024-07-25", "10%"),
			// Started 55 days before now.
			snapshotRow("Ancient Fire", `44° 0' 0" Latitude, 120° 0' 0" Longitude`,
				"06/01/2024", "1 day ago", "2024-07-25", "10%"),
			// Hardcoded bad record.
			snapshotRow("Elkhorn Fire - IDPAF", `45° 0' 0" Latitude, 120° 0' 0" Longitude`,
				"07/20/2024", "1 day ago", "2024-07-25", "10%"),
			// A clean survivor, started earlier than Barely Active.
			snapshotRow("Clean Fire", `46° 0' 0" Latitude, 120° 0' 0" Longitude`,
				"07/10/2024", "1 day ago", "2024-07-25", "25%"),
		}},
	}

	fires,earliest,debug := Reconcile(testConfig(), batches)

	if len(fires) != 2 {
		t.Fatalf("got %d fires, wanted 2\n%s", len(fires), debug)
	}
	// Sorted by start: Clean (07-10) before Barely Active (07-18)
	if fires[0].Incident != "Clean Fire" || fires[1].Incident != "Barely Active Fire" {
		t.Errorf("order: got [%s, %s]", fires[0].Incident, fires[1].Incident)
	}
	if earliest.Incident != "Clean Fire" {
		t.Errorf("earliest: got %s", earliest.Incident)
	}
}

// }}}
// {{{ TestReconcileEmpty

func TestReconcileEmpty(t *testing.T) {
	fires,earliest,_ := Reconcile(testConfig(), nil)
	if len(fires) != 0 {
		t.Errorf("got %d fires from no input", len(fires))
	}
	if earliest != nil {
		t.Errorf("earliest should be nil, got %v", *earliest)
	}

	// Rows missing mandatory fields are dropped, not errors
	batches := []Batch{{Name: "junk.csv", Rows: []Row{
		{"Incident": "Nameless"},
		snapshotRow("Bad Coords", "somewhere", "07/20/2024", "1 day ago", "2024-07-25", "0%"),
	}}}
	fires,earliest,_ = Reconcile(testConfig(), batches)
	if len(fires) != 0 || earliest != nil {
		t.Errorf("junk rows produced fires: %v", fires)
	}
}

// }}}
// {{{ TestLoadDirReconcile

func TestLoadDirReconcile(t *testing.T) {
	dir := t.TempDir()

	file1 := `ScrapeDate,Incident,Type,State,Size,Updated,CurrentAsOf,IncidentTimeZone,IncidentType,Cause,DateOfOrigin,Location,IncidentCommander,Coordinates,Latitude,Longitude,TotalPersonnel,ContainmentPercent
2024-07-24,Gold Complex,Wildfire,CA,"1,200 Acres",2 days ago,,,Wildfire,Lightning,"Mon, 07/15/2024 - 09:00",Plumas NF,,"40° 30' 0"" Latitude, 120° 15' 0"" Longitude",40.5000,-120.2500,350,20%
`
	file2 := `ScrapeDate,Incident,Type,State,Size,Updated,CurrentAsOf,IncidentTimeZone,IncidentType,Cause,DateOfOrigin,Location,IncidentCommander,Coordinates,Latitude,Longitude,TotalPersonnel,ContainmentPercent
2024-07-25,Gold Complex,Wildfire,CA,"1,450 Acres",1 day ago,,,Wildfire,Lightning,"Mon, 07/15/2024 - 09:00",Plumas NF,,"40° 30' Latitude, 120° 15' Longitude",40.5000,-120.2500,410,35%
`
	for fname,body := range map[string]string{"gold_a.csv": file1, "gold_b.csv": file2} {
		if err := os.WriteFile(filepath.Join(dir, fname), []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}

	batches,err := LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(batches) != 2 {
		t.Fatalf("got %d batches, wanted 2", len(batches))
	}

	fires,earliest,debug := Reconcile(testConfig(), batches)
	if len(fires) != 1 {
		t.Fatalf("got %d fires, wanted 1 (same fire in both files)\n%s", len(fires), debug)
	}
	if earliest.Incident != "Gold Complex" {
		t.Errorf("earliest: got %s", earliest.Incident)
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
