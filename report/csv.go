package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// {{{ r.OutputAsCSV

func (r *Report)OutputAsCSV(w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(r.HeadersText); err != nil {
		return err
	}
	for _,row := range r.RowsText {
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// }}}
// {{{ r.CSVFilename

// CSVFilename is e.g. "flight_fire_matches_2024-07-26-18-30-00.csv";
// matches sort lexically by run time.
func (r *Report)CSVFilename(now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", r.Name, now.UTC().Format("2006-01-02-15-04-05"))
}

// }}}
// {{{ r.WriteCSVFile

// WriteCSVFile writes the whole report into a fresh timestamped file
// under dir, creating dir if needed. Returns the full path.
func (r *Report)WriteCSVFile(dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	fname := filepath.Join(dir, r.CSVFilename(now))
	osfile,err := os.Create(fname)
	if err != nil {
		return "", err
	}
	defer osfile.Close()

	if err := r.OutputAsCSV(osfile); err != nil {
		return "", err
	}
	return fname, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
