package fa // scrapes the public flight history pages; no API key needed

import (
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/skypies/geo"

	fw "github.com/skypies/firewatch"
)

const (
	kURLHost = "www.flightaware.com"
)

type Flightaware struct {
	Client *http.Client
	host   string
	Prefix string
}

func NewFlightaware(c *http.Client) *Flightaware {
	if c == nil {
		c = &http.Client{Timeout: 60 * time.Second}
	}
	return &Flightaware{Client: c, host: kURLHost}
}

// HistoryEntry is one row of a tail number's history table, raw.
type HistoryEntry struct {
	DateText            string // e.g. "24-Jul-2024"
	Origin, Destination string
	Href                string // relative link to the flight page
}

// {{{ fa.Get*Url

func (fa *Flightaware)GetHistoryUrl(tailNumber string) string {
	return fmt.Sprintf("%s%s/live/flight/%s/history", fa.Prefix, fa.host, tailNumber)
}

func (fa *Flightaware)GetTrackLogUrl(href string) string {
	return fmt.Sprintf("%s%s%s/tracklog", fa.Prefix, fa.host, href)
}

// }}}
// {{{ fa.url2{resp,body}

func (fa *Flightaware)url2resp(url string) (*http.Response, error) {
	resp,err := fa.Client.Get("https://" + url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Bad status: %v", resp.Status)
	}
	return resp, nil
}

func (fa *Flightaware)Url2Body(url string) ([]byte, error) {
	if resp,err := fa.url2resp(url); err != nil {
		return nil, err
	} else {
		defer resp.Body.Close()
		return io.ReadAll(resp.Body)
	}
}

// }}}

var (
	trR   = regexp.MustCompile(`(?s)<tr[^>]*>(.*?)</tr>`)
	cellR = regexp.MustCompile(`(?s)<td[^>]*>(.*?)</td>`)
	histR = regexp.MustCompile(`href="(/live/flight/[^"]*/history/[^"]+)"`)
	tagR  = regexp.MustCompile(`<[^>]+>`)
	wsR   = regexp.MustCompile(`\s+`)
)

// {{{ stripCell

func stripCell(s string) string {
	return strings.TrimSpace(wsR.ReplaceAllString(html.UnescapeString(tagR.ReplaceAllString(s, " ")), " "))
}

// }}}
// {{{ fa.ParseHistory

// The history table's columns: date, aircraft, origin, destination,
// departure, arrival, duration. Rows without a per-flight link (blocked
// tails, "Unknown" gaps) are dropped.
func (fa *Flightaware)ParseHistory(body []byte) []HistoryEntry {
	out := []HistoryEntry{}

	for _,tr := range trR.FindAllStringSubmatch(string(body), -1) {
		cells := cellR.FindAllStringSubmatch(tr[1], -1)
		if len(cells) < 4 { continue }

		href := histR.FindStringSubmatch(tr[1])
		if href == nil { continue }

		entry := HistoryEntry{
			DateText:    stripCell(cells[0][1]),
			Origin:      stripCell(cells[2][1]),
			Destination: stripCell(cells[3][1]),
			Href:        href[1],
		}
		if entry.Origin == "" { entry.Origin = "Unknown" }
		if entry.Destination == "" { entry.Destination = "Unknown" }

		out = append(out, entry)
	}

	return out
}

// }}}
// {{{ fa.ParseTrackLog

// The track log table carries time, latitude, longitude, course, speed
// and altitudes; we keep only the positions. Header rows and the
// "reporting facility" separators have no numbers in columns 1 and 2,
// so they fall out naturally.
func (fa *Flightaware)ParseTrackLog(body []byte) fw.Track {
	track := fw.Track{}

	for _,tr := range trR.FindAllStringSubmatch(string(body), -1) {
		cells := cellR.FindAllStringSubmatch(tr[1], -1)
		if len(cells) < 3 { continue }

		lat,err1 := strconv.ParseFloat(stripCell(cells[1][1]), 64)
		long,err2 := strconv.ParseFloat(stripCell(cells[2][1]), 64)
		if err1 != nil || err2 != nil { continue }

		track = append(track, fw.Trackpoint{
			DataSource: "FA",
			Latlong:    geo.Latlong{Lat:lat, Long:long},
		})
	}

	return track
}

// }}}

// {{{ fa.LookupHistory

// LookupHistory fetches a tail number's recent flights. Dates that
// don't parse are dropped with the whole row; the free site shows a few
// days of history, which is all the lookback window ever needs.
func (fa *Flightaware)LookupHistory(tailNumber string) ([]fw.Flight, error) {
	body,err := fa.Url2Body(fa.GetHistoryUrl(tailNumber))
	if err != nil {
		return nil, fmt.Errorf("LookupHistory/%s: %v", tailNumber, err)
	}

	flights := []fw.Flight{}
	for _,entry := range fa.ParseHistory(body) {
		d,err := ParseFlightDate(entry.DateText)
		if err != nil { continue }

		flights = append(flights, fw.Flight{
			TailNumber:  tailNumber,
			Date:        d,
			Origin:      entry.Origin,
			Destination: entry.Destination,
			TrackURL:    fa.GetTrackLogUrl(entry.Href),
		})
	}

	return flights, nil
}

// }}}
// {{{ fa.LookupTrack

// LookupTrack fills in f.Track from its track log page.
func (fa *Flightaware)LookupTrack(f *fw.Flight) error {
	if f.TrackURL == "" {
		return fmt.Errorf("LookupTrack: %s %s has no track URL", f.TailNumber, f.Date.Format("2006-01-02"))
	}

	body,err := fa.Url2Body(strings.TrimPrefix(f.TrackURL, "https://"))
	if err != nil {
		return fmt.Errorf("LookupTrack/%s: %v", f.TailNumber, err)
	}

	f.Track = fa.ParseTrackLog(body)
	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
