package inciweb

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// ArchiveHeaders is the column order of the per-incident history files.
var ArchiveHeaders = []string{
	"ScrapeDate", "Incident", "Type", "State", "Size", "Updated",
	"CurrentAsOf", "IncidentTimeZone", "IncidentType", "Cause",
	"DateOfOrigin", "Location", "IncidentCommander", "Coordinates",
	"Latitude", "Longitude", "TotalPersonnel",
}

// Fields whose change means the incident has genuinely updated.
// ScrapeDate always differs between runs, so it is never compared.
var archiveCompareFields = []string{
	"Size", "Updated", "State", "CurrentAsOf", "IncidentTimeZone",
	"IncidentType", "Cause", "DateOfOrigin", "Location",
	"IncidentCommander", "Coordinates", "TotalPersonnel",
}

var unsafeR = regexp.MustCompile(`(?i)[^a-z0-9_\-]+`)

// {{{ SafeFilename

func SafeFilename(incident string) string {
	return unsafeR.ReplaceAllString(incident, "_") + ".csv"
}

// }}}
// {{{ BuildArchiveRow

// BuildArchiveRow merges a listing entry with its detail page into one
// archive row. Latitude and Longitude get their own columns so the files
// stay greppable even when the combined coordinate string is mangled.
func BuildArchiveRow(entry ListEntry, detail Detail, scrapeDate time.Time) Row {
	row := Row{
		"ScrapeDate":        scrapeDate.UTC().Format("2006-01-02"),
		"Incident":          entry.Incident,
		"Type":              entry.Type,
		"State":             entry.State,
		"Size":              entry.Size,
		"Updated":           entry.Updated,
		"CurrentAsOf":       detail.CurrentAsOf,
		"IncidentTimeZone":  detail.IncidentTimeZone,
		"IncidentType":      detail.IncidentType,
		"Cause":             detail.Cause,
		"DateOfOrigin":      detail.DateOfOrigin,
		"Location":          detail.Location,
		"IncidentCommander": detail.IncidentCommander,
		"Coordinates":       detail.Coordinates,
		"TotalPersonnel":    detail.TotalPersonnel,
	}
	if detail.Size != "" {
		row["Size"] = detail.Size
	}
	if pos,err := ParseCoordinates(detail.Coordinates); err == nil {
		row["Latitude"] = fmt.Sprintf("%.4f", pos.Lat)
		row["Longitude"] = fmt.Sprintf("%.4f", pos.Long)
	}
	return row
}

// }}}
// {{{ lastArchiveRow

func lastArchiveRow(fname string) (Row, error) {
	osfile,err := os.Open(fname)
	if err != nil {
		if os.IsNotExist(err) { return nil, nil }
		return nil, err
	}
	defer osfile.Close()

	rdr := NewRowReader(osfile)
	var last Row
	for {
		row,err := rdr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		last = row
	}
	return last, nil
}

// }}}
// {{{ rowChanged

func rowChanged(last, next Row) bool {
	if last == nil { return true }
	for _,k := range archiveCompareFields {
		if last[k] != next[k] { return true }
	}
	return false
}

// }}}
// {{{ AppendSnapshot

// AppendSnapshot writes one archive row for the incident, creating the
// file (with header) on first sight, and skipping the write entirely if
// nothing but the scrape date has moved since the previous row. Returns
// whether a row was written.
func AppendSnapshot(dir string, row Row) (bool, error) {
	fname := filepath.Join(dir, SafeFilename(row["Incident"]))

	last,err := lastArchiveRow(fname)
	if err != nil {
		return false, fmt.Errorf("AppendSnapshot: reading %s: %v", fname, err)
	}
	if !rowChanged(last, row) {
		return false, nil
	}

	isNew := false
	if _,err := os.Stat(fname); os.IsNotExist(err) {
		isNew = true
	}

	osfile,err := os.OpenFile(fname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("AppendSnapshot: opening %s: %v", fname, err)
	}
	defer osfile.Close()

	w := csv.NewWriter(osfile)
	if isNew {
		if err := w.Write(ArchiveHeaders); err != nil {
			return false, err
		}
	}

	rec := make([]string, len(ArchiveHeaders))
	for i,h := range ArchiveHeaders {
		rec[i] = row[h]
	}
	if err := w.Write(rec); err != nil {
		return false, err
	}

	w.Flush()
	return true, w.Error()
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
