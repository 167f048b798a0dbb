package main

// Correlates recent airtanker flights against active wildfires, and
// writes the matches out as CSV (and optionally PDF / BigQuery).
//
// firewatch -datadir=inciweb_data -outdir=flight_fire_data
// firewatch -tails=N131CG,N132CG -radiuskm=50 -v
// firewatch -bucket=my-snapshots -prefix=inciweb/ -publish -project=my-proj

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	fw "github.com/skypies/firewatch"
	"github.com/skypies/firewatch/fa"
	"github.com/skypies/firewatch/inciweb"
	"github.com/skypies/firewatch/report"
)

// The airtanker fleet: Coulson C-130s, Erickson and Aero Air MD-87s,
// Aero-Flite RJ85s and scoopers, Bridger scoopers, Neptune BAe-146s,
// and the 10 Tanker DC-10s.
var defaultTails = []string{
	"N131CG", "N132CG", "N136CG", "N137CG", "N138CG", "N140CG",
	"N291EA", "N292EA", "N293EA", "N294EA", "N295EA", "N296EA", "N297EA",
	"N325AC", "N354AC", "N355AC", "N366AC", "N374AC", "N385AC", "N386AC",
	"N389AC", "N416AC", "N635AC", "N839AC", "N988AC", "N998AC",
	"N406BT", "N415BT", "N417BT", "N418BT", "N419BT",
	"N470NA", "N471NA", "N472NA", "N473NA", "N474NA", "N475NA", "N476NA",
	"N477NA", "N478NA", "N479NA",
	"N522AX", "N603AX", "N612AX",
	"N17085",
}

var (
	ctx = context.Background()

	fDataDir   string
	fBucket    string
	fPrefix    string
	fOutputDir string

	fRadiusKM       float64
	fMaxContainment float64
	fMaxStaleDays   int
	fMaxAgeDays     int
	fLookbackMin    int
	fLookbackMax    int

	fTails     string
	fTailsFile string

	fPDF     bool
	fPublish bool
	fProject string
	fDataset string
	fTable   string

	fVerbose bool
)

func init() {
	flag.StringVar(&fDataDir, "datadir", "inciweb_data", "dir of per-incident snapshot CSVs")
	flag.StringVar(&fBucket, "bucket", "", "GCS bucket of snapshot CSVs (overrides -datadir)")
	flag.StringVar(&fPrefix, "prefix", "", "object prefix inside -bucket")
	flag.StringVar(&fOutputDir, "outdir", "flight_fire_data", "dir for the match CSV")

	flag.Float64Var(&fRadiusKM, "radiuskm", 30.0, "match radius, km")
	flag.Float64Var(&fMaxContainment, "maxcontainment", 80.0, "skip fires contained beyond this %")
	flag.IntVar(&fMaxStaleDays, "maxstaledays", 7, "skip fires not updated in this many days")
	flag.IntVar(&fMaxAgeDays, "maxagedays", 30, "skip fires older than this many days")
	flag.IntVar(&fLookbackMin, "lookbackmin", 1, "earliest flight day to consider, days ago")
	flag.IntVar(&fLookbackMax, "lookbackmax", 3, "latest flight day to consider, days ago")

	flag.StringVar(&fTails, "tails", "", "comma-sep tail numbers (default: the airtanker fleet)")
	flag.StringVar(&fTailsFile, "tailsfile", "", "file of tail numbers, one per line")

	flag.BoolVar(&fPDF, "pdf", false, "also write a PDF summary next to the CSV")
	flag.BoolVar(&fPublish, "publish", false, "publish matches to BigQuery via GCS")
	flag.StringVar(&fProject, "project", "", "bigquery project (for -publish)")
	flag.StringVar(&fDataset, "dataset", "firewatch", "bigquery dataset (for -publish)")
	flag.StringVar(&fTable, "table", "matches", "bigquery table (for -publish)")

	flag.BoolVar(&fVerbose, "v", false, "log the reconciler's reasoning")

	flag.Parse()
}

// {{{ config

func config() fw.Config {
	cfg := fw.DefaultConfig()
	cfg.RadiusKM = fRadiusKM
	cfg.MaxContainmentPct = fMaxContainment
	cfg.MaxStaleDays = fMaxStaleDays
	cfg.MaxAgeDays = fMaxAgeDays
	cfg.LookbackMinDays = fLookbackMin
	cfg.LookbackMaxDays = fLookbackMax
	return cfg
}

// }}}
// {{{ tailNumbers

func tailNumbers() []string {
	if fTails != "" {
		tails := []string{}
		for _,tail := range strings.Split(fTails, ",") {
			if tail = strings.TrimSpace(tail); tail != "" {
				tails = append(tails, tail)
			}
		}
		return tails
	}

	if fTailsFile != "" {
		body,err := os.ReadFile(fTailsFile)
		if err != nil {
			log.Fatalf("read %s: %v", fTailsFile, err)
		}
		tails := []string{}
		for _,line := range strings.Split(string(body), "\n") {
			if line = strings.TrimSpace(line); line != "" && !strings.HasPrefix(line, "#") {
				tails = append(tails, line)
			}
		}
		return tails
	}

	return defaultTails
}

// }}}
// {{{ loadBatches

func loadBatches() []inciweb.Batch {
	if fBucket != "" {
		batches,err := inciweb.LoadGCS(ctx, fBucket, fPrefix)
		if err != nil {
			log.Fatalf("loading gs://%s/%s: %v", fBucket, fPrefix, err)
		}
		return batches
	}

	batches,err := inciweb.LoadDir(fDataDir)
	if err != nil {
		log.Fatalf("loading %s: %v", fDataDir, err)
	}
	return batches
}

// }}}
// {{{ lookupFlights

func lookupFlights(cfg fw.Config, r *report.Report, tails []string) []fw.Flight {
	faClient := fa.NewFlightaware(&http.Client{Timeout: 60 * time.Second})

	flights := []fw.Flight{}
	for _,tail := range tails {
		r.I["[B] Tails checked"]++

		history,err := faClient.LookupHistory(tail)
		if err != nil {
			log.Printf("%s: history lookup failed: %v", tail, err)
			continue
		}

		for i := range history {
			f := &history[i]

			daysAgo := fw.DaysBetween(cfg.NowUTC(), f.Date)
			if daysAgo < cfg.LookbackMinDays || daysAgo > cfg.LookbackMaxDays {
				continue
			}

			if err := faClient.LookupTrack(f); err != nil {
				log.Printf("%s: %v", tail, err)
				continue
			}
			r.I["[C] Flights fetched"]++
			flights = append(flights, *f)
		}
	}
	return flights
}

// }}}
// {{{ logNearMisses

// For every flight that matched nothing, report its closest approach to
// any fire; useful when tuning -radiuskm.
func logNearMisses(flights []fw.Flight, fires []fw.ActiveIncident, matches []fw.Match) {
	matched := map[string]bool{}
	for _,m := range matches {
		matched[m.TailNumber + m.Flight.Date.Format("20060102")] = true
	}

	for _,f := range flights {
		if matched[f.TailNumber + f.Date.Format("20060102")] { continue }

		closest, name := -1.0, ""
		for _,fire := range fires {
			if dist,ok := f.Track.ClosestKM(fire.Latlong); ok && (closest < 0 || dist < closest) {
				closest, name = dist, fire.Incident
			}
		}
		if name != "" {
			log.Printf("no match: %s; closest approach %.1fKM (%s)", f, closest, name)
		}
	}
}

// }}}

func main() {
	cfg := config()
	r := report.BlankReport()
	r.Start, r.End = cfg.LookbackWindow()

	fires,earliest,debug := inciweb.Reconcile(cfg, loadBatches())
	if fVerbose {
		fmt.Print(debug)
	}
	if earliest == nil {
		log.Fatal("no active fires to match against")
	}
	log.Printf("loaded %d fires (earliest: %s)", len(fires), earliest)
	r.I["[D] Fires active"] = len(fires)

	flights := lookupFlights(cfg, &r, tailNumbers())
	log.Printf("fetched %d flights over the %d..%d day lookback",
		len(flights), cfg.LookbackMinDays, cfg.LookbackMaxDays)

	matches := fw.MatchFlights(cfg, flights, fires)
	for _,m := range matches {
		log.Printf("match: %s", m)
		r.AddMatch(m)
	}
	r.SetHeaders(fw.MatchHeaders) // even a matchless run gets a CSV with a header

	if fVerbose {
		logNearMisses(flights, fires, matches)
	}

	now := time.Now().UTC()
	fname,err := r.WriteCSVFile(fOutputDir, now)
	if err != nil {
		log.Fatalf("writing CSV: %v", err)
	}
	log.Printf("wrote %d matches to %s", len(r.Matches), fname)

	if fPDF {
		pdfName := strings.TrimSuffix(fname, ".csv") + ".pdf"
		osfile,err := os.Create(pdfName)
		if err != nil {
			log.Fatalf("creating %s: %v", pdfName, err)
		}
		if err := r.OutputAsPDF(osfile); err != nil {
			log.Fatalf("writing PDF: %v", err)
		}
		osfile.Close()
		log.Printf("wrote %s", pdfName)
	}

	if fPublish {
		if fProject == "" || fBucket == "" {
			log.Fatal("-publish needs -project and -bucket")
		}
		objName := fmt.Sprintf("matches/%s.json", now.Format("2006-01-02-15-04-05"))
		if n,err := report.PublishMatches(ctx, r.Matches, fBucket, objName); err != nil {
			log.Fatalf("publishing to gs://%s/%s: %v", fBucket, objName, err)
		} else {
			log.Printf("published %d matches to gs://%s/%s", n, fBucket, objName)
		}
		if err := report.SubmitLoadJob(ctx, fProject, fDataset, fTable, fBucket, objName); err != nil {
			log.Fatalf("bigquery load: %v", err)
		}
		log.Printf("loaded into %s.%s.%s", fProject, fDataset, fTable)
	}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
