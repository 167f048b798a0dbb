package inciweb

import (
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	kURLAccessibleView = "inciweb.wildfire.gov/accessible-view"
)

var ErrNoListingTable = fmt.Errorf("No listing table in page")

// Inciweb is a client for the public incident listing. The accessible
// view is plain HTML tables, which keeps the extraction to a handful of
// regexps rather than a real DOM walk.
type Inciweb struct {
	Client *http.Client
	host    string
	Prefix  string
}

func NewInciweb(c *http.Client) *Inciweb {
	if c == nil {
		c = &http.Client{Timeout: 60 * time.Second}
	}
	return &Inciweb{Client: c, host: kURLAccessibleView}
}

// ListEntry is one row of the incident listing, still as raw text.
type ListEntry struct {
	Incident, Type, State, Size, Updated string
	URL                                  string // detail page, absolute
}

// Detail is the extra per-incident fields from its detail page.
type Detail struct {
	CurrentAsOf, IncidentTimeZone, IncidentType, Cause   string
	DateOfOrigin, Location, IncidentCommander            string
	Coordinates                                          string
	TotalPersonnel, Size                                 string
}

// {{{ iw.Get*Url

func (iw *Inciweb)GetAccessibleViewUrl() string {
	return fmt.Sprintf("%s%s", iw.Prefix, iw.host)
}

// }}}
// {{{ iw.url2{resp,body}

func (iw *Inciweb)url2resp(url string) (*http.Response, error) {
	resp,err := iw.Client.Get("https://" + url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Bad status: %v", resp.Status)
	}
	return resp, nil
}

func (iw *Inciweb)Url2Body(url string) ([]byte, error) {
	if resp,err := iw.url2resp(url); err != nil {
		return nil, err
	} else {
		defer resp.Body.Close()
		return io.ReadAll(resp.Body)
	}
}

// }}}

var (
	trR   = regexp.MustCompile(`(?s)<tr[^>]*>(.*?)</tr>`)
	cellR = regexp.MustCompile(`(?s)<t[dh][^>]*>(.*?)</t[dh]>`)
	hrefR = regexp.MustCompile(`href="(/?incident[^"]*)"`)
	tagR  = regexp.MustCompile(`<[^>]+>`)
	wsR   = regexp.MustCompile(`\s+`)

	coordLatR = regexp.MustCompile(`(?i)([\d°'"\s.]+Latitude)`)
	coordLonR = regexp.MustCompile(`(?i)(-?[\d°'"\s.]+Longitude)`)
)

// {{{ stripCell

func stripCell(s string) string {
	return strings.TrimSpace(wsR.ReplaceAllString(html.UnescapeString(tagR.ReplaceAllString(s, " ")), " "))
}

// }}}
// {{{ iw.ParseAccessibleView

// The listing is a five-column table: incident, type, state, size,
// updated. The incident cell carries the detail-page link.
func (iw *Inciweb)ParseAccessibleView(body []byte) ([]ListEntry, error) {
	out := []ListEntry{}

	for _,tr := range trR.FindAllStringSubmatch(string(body), -1) {
		cells := cellR.FindAllStringSubmatch(tr[1], -1)
		if len(cells) < 5 { continue }

		entry := ListEntry{
			Incident: stripCell(cells[0][1]),
			Type:     stripCell(cells[1][1]),
			State:    stripCell(cells[2][1]),
			Size:     stripCell(cells[3][1]),
			Updated:  stripCell(cells[4][1]),
		}
		if href := hrefR.FindStringSubmatch(cells[0][1]); href != nil {
			entry.URL = "https://inciweb.wildfire.gov" + strings.TrimPrefix(href[1], "https://inciweb.wildfire.gov")
		}
		if entry.Incident == "" || entry.Incident == "Incident" { continue } // header row

		out = append(out, entry)
	}

	if len(out) == 0 {
		return out, ErrNoListingTable
	}
	return out, nil
}

// }}}
// {{{ iw.ParseIncidentDetail

// The detail page is th/td pairs. The coordinates cell is the awkward
// one - its text nodes are split up - so latitude and longitude are
// re-extracted and rejoined into one canonical string.
func (iw *Inciweb)ParseIncidentDetail(body []byte) Detail {
	textMap := map[string]string{}

	for _,tr := range trR.FindAllStringSubmatch(string(body), -1) {
		cells := cellR.FindAllStringSubmatch(tr[1], -1)
		if len(cells) < 2 { continue }

		key := strings.TrimSuffix(stripCell(cells[0][1]), ":")
		val := stripCell(cells[1][1])
		if key == "" { continue }

		if key == "Coordinates" {
			lat,lon := "",""
			if frags := coordLatR.FindStringSubmatch(val); frags != nil {
				lat = strings.TrimSpace(frags[1])
			}
			if frags := coordLonR.FindStringSubmatch(val); frags != nil {
				lon = strings.TrimSpace(frags[1])
			}
			if lat != "" && lon != "" {
				val = lat + ", " + lon
			}
		}

		textMap[key] = val
	}

	return Detail{
		CurrentAsOf:       textMap["Current as of"],
		IncidentTimeZone:  textMap["Incident Time Zone"],
		IncidentType:      textMap["Incident Type"],
		Cause:             textMap["Cause"],
		DateOfOrigin:      textMap["Date of Origin"],
		Location:          textMap["Location"],
		IncidentCommander: textMap["Incident Commander"],
		Coordinates:       textMap["Coordinates"],
		TotalPersonnel:    textMap["Total Personnel"],
		Size:              textMap["Size"],
	}
}

// }}}

// {{{ iw.FetchWildfires

// FetchWildfires returns the listing rows that are wildfires with an
// update inside maxAge. (The listing also carries prescribed burns and
// incidents long gone quiet; neither is worth a detail fetch.)
func (iw *Inciweb)FetchWildfires(maxAge time.Duration) ([]ListEntry, error) {
	body,err := iw.Url2Body(iw.GetAccessibleViewUrl())
	if err != nil { return nil, err }

	all,err := iw.ParseAccessibleView(body)
	if err != nil { return nil, err }

	return filterWildfires(all, maxAge), nil
}

// }}}
// {{{ filterWildfires

func filterWildfires(entries []ListEntry, maxAge time.Duration) []ListEntry {
	out := []ListEntry{}
	for _,entry := range entries {
		if entry.Type != "Wildfire" { continue }
		age,ok := ParseListingAge(entry.Updated)
		if !ok || age > maxAge { continue }
		out = append(out, entry)
	}
	return out
}

// }}}
// {{{ iw.FetchDetail

func (iw *Inciweb)FetchDetail(entry ListEntry) (Detail, error) {
	if entry.URL == "" {
		return Detail{}, fmt.Errorf("no detail URL for %q", entry.Incident)
	}

	body,err := iw.Url2Body(strings.TrimPrefix(entry.URL, "https://"))
	if err != nil { return Detail{}, err }

	return iw.ParseIncidentDetail(body), nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
