package main

// Scrapes the public wildfire listing and appends a row to each
// incident's history CSV, when something actually changed.
//
// inciweb -outdir=inciweb_data
// inciweb -maxagedays=21 -dryrun

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/skypies/firewatch/inciweb"
)

var (
	fOutputDir  string
	fMaxAgeDays int
	fDryRun     bool
)

func init() {
	flag.StringVar(&fOutputDir, "outdir", "inciweb_data", "dir for per-incident CSVs")
	flag.IntVar(&fMaxAgeDays, "maxagedays", 21, "skip incidents not updated in this many days")
	flag.BoolVar(&fDryRun, "dryrun", false, "fetch and report, but write nothing")
	flag.Parse()
}

func main() {
	iw := inciweb.NewInciweb(&http.Client{Timeout: 60 * time.Second})

	entries,err := iw.FetchWildfires(time.Duration(fMaxAgeDays) * 24 * time.Hour)
	if err != nil {
		log.Fatalf("fetching listing: %v", err)
	}
	log.Printf("found %d active wildfires (last %dd)", len(entries), fMaxAgeDays)

	if !fDryRun {
		if err := os.MkdirAll(fOutputDir, 0755); err != nil {
			log.Fatalf("mkdir %s: %v", fOutputDir, err)
		}
	}

	now := time.Now().UTC()
	nWrote := 0
	for _,entry := range entries {
		detail,err := iw.FetchDetail(entry)
		if err != nil {
			log.Printf("%s: detail fetch failed: %v", entry.Incident, err)
			continue
		}

		row := inciweb.BuildArchiveRow(entry, detail, now)
		if fDryRun {
			fmt.Printf("%s: %s / %s / updated %s\n",
				entry.Incident, row["Coordinates"], row["DateOfOrigin"], row["Updated"])
			continue
		}

		if wrote,err := inciweb.AppendSnapshot(fOutputDir, row); err != nil {
			log.Printf("%s: %v", entry.Incident, err)
		} else if wrote {
			log.Printf("updated: %s", entry.Incident)
			nWrote++
		} else {
			log.Printf("no change: %s", entry.Incident)
		}
	}

	log.Printf("done; %d/%d incidents updated in %s", nWrote, len(entries), fOutputDir)
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
