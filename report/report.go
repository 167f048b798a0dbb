package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/skypies/util/histogram"

	fw "github.com/skypies/firewatch"
)

// A Report accumulates match results across a run, plus counters and a
// distance histogram for the summary, and a run log. Build one with
// BlankReport, feed it matches, then hand it to one of the Output
// functions.
type Report struct {
	Name       string
	Start, End time.Time // the flight dates this run considered

	HeadersText []string
	RowsText    [][]string

	Matches []fw.Match

	I   map[string]int      // counters: tails checked, flights fetched, etc
	H   histogram.Histogram // match distances, KM
	Log string
}

func BlankReport() Report {
	return Report{
		Name:        "flight_fire_matches",
		HeadersText: []string{},
		RowsText:    [][]string{},
		Matches:     []fw.Match{},
		I:           map[string]int{},
		H:           histogram.Histogram{NumBuckets: 48, ValMax: 48},
	}
}

func (r *Report)Infof(s string, args ...interface{}) {
	r.Log += fmt.Sprintf(s, args...)
}

func (r *Report)SetHeaders(headers []string) {
	if len(r.HeadersText) == 0 { r.HeadersText = headers }
}

func (r *Report)AddRow(row []string) {
	r.RowsText = append(r.RowsText, row)
}

// {{{ r.AddMatch

func (r *Report)AddMatch(m fw.Match) {
	r.SetHeaders(fw.MatchHeaders)
	r.AddRow(m.CSVRow())
	r.Matches = append(r.Matches, m)
	r.I["[A] Matches"]++
	r.H.Add(histogram.ScalarVal(m.DistanceKM))
}

// }}}
// {{{ r.MetadataTable

// MetadataTable renders the counters and the distance histogram as rows
// for the tail end of a summary output.
func (r *Report)MetadataTable() [][]string {
	out := [][]string{}

	keys := []string{}
	for k := range r.I { keys = append(keys, k) }
	sort.Strings(keys)
	for _,k := range keys {
		out = append(out, []string{k, fmt.Sprintf("%d", r.I[k])})
	}

	if stats,valid := r.H.Stats(); valid {
		out = append(out, []string{"Distance KM (mean)", fmt.Sprintf("%.1f", stats.Mean)})
		out = append(out, []string{"Distance KM (stddev)", fmt.Sprintf("%.1f", stats.Stddev)})
		out = append(out, []string{"Distance KM (p50)", fmt.Sprintf("%d", stats.Percentile50)})
		out = append(out, []string{"Distance KM (p90)", fmt.Sprintf("%d", stats.Percentile90)})
	}

	return out
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
