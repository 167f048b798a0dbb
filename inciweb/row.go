package inciweb

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	fw "github.com/skypies/firewatch"
)

// {{{ notes

/* Snapshot data comes in CSV rows, one file per incident, one row per
scrape where something changed. The column set has grown over time, so
we turn each row into a map from header name to value and pick out what
we need.

ScrapeDate,Incident,Type,State,Size,Updated,CurrentAsOf,IncidentTimeZone,
  IncidentType,Cause,DateOfOrigin,Location,IncidentCommander,Coordinates,
  Latitude,Longitude,TotalPersonnel

E.g.:

2024-07-25,"Gold Complex",Wildfire,CA,"1,200 Acres","2 days ago",...,
  "Tue, 07/23/2024 - 14:03",...,"40° 30' 0" Latitude, 120° 15' 0" Longitude",...

*/

// }}}

type RowReader struct {
	csvreader *csv.Reader
	headers  []string
}

func NewRowReader(ioreader io.Reader) *RowReader {
	rdr := RowReader{
		csvreader: csv.NewReader(ioreader),
	}
	rdr.csvreader.FieldsPerRecord = -1 // column counts drift between scraper versions
	rdr.headers,_ = rdr.csvreader.Read() // Discard err, we'll get it when we try to get next row
	return &rdr
}

// {{{ rdr.Read()

func (r *RowReader)Read() (Row, error) {
	m := map[string]string{}

	vals,err := r.csvreader.Read()
	if err != nil {
		return m,err
	}

	for i := range vals {
		if i >= len(r.headers) { break }
		m[r.headers[i]] = vals[i]
	}

	return m,nil
}

// }}}

type Row map[string]string

// {{{ row.HasSnapshotFields

// The fields without which a row can't become a snapshot. Rows missing
// any of them get silently dropped.
func (r Row)HasSnapshotFields() bool {
	for _,k := range []string{"Incident","Coordinates","DateOfOrigin","Updated","ScrapeDate"} {
		if r[k] == "" { return false }
	}
	return true
}

// }}}
// {{{ row.ToSnapshot

// ToSnapshot parses the free-text fields into a typed snapshot. The
// error distinguishes "bad coordinates" (silent drop) from nothing
// else; a bad origin date is logged inside ParseOriginDate and also
// comes back as an error here.
func (r Row)ToSnapshot(file string) (fw.IncidentSnapshot, error) {
	pos,err := ParseCoordinates(r["Coordinates"])
	if err != nil {
		return fw.IncidentSnapshot{}, err
	}

	start,ok := ParseOriginDate(r["DateOfOrigin"], file)
	if !ok {
		return fw.IncidentSnapshot{}, fmt.Errorf("unparseable DateOfOrigin %q", r["DateOfOrigin"])
	}

	scrape,err := parseScrapeDate(r["ScrapeDate"])
	if err != nil {
		return fw.IncidentSnapshot{}, err
	}

	return fw.IncidentSnapshot{
		Incident:       r["Incident"],
		Latlong:        pos,
		Start:          start,
		End:            scrape.Add(-ParseUpdatedAgo(r["Updated"])),
		Scraped:        scrape,
		ContainmentPct: ParseContainmentPct(r["ContainmentPercent"]),
		SourceFile:     file,
	}, nil
}

// }}}
// {{{ parseScrapeDate

// Older archives have bare dates; newer ones have full timestamps.
func parseScrapeDate(s string) (time.Time, error) {
	for _,layout := range []string{"2006-01-02T15:04:05Z", "2006-01-02 15:04:05", "2006-01-02"} {
		if t,err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable ScrapeDate %q", s)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
