package firewatch

import (
	"fmt"
	"math"
	"time"
)

// Flight is one observed flight leg for a tracked aircraft. The track
// is fetched separately (via the leg's opaque TrackURL handle), so it
// may be empty.
type Flight struct {
	TailNumber   string
	Date         time.Time // UTC midnight of the day the leg was flown
	Origin       string
	Destination  string
	TrackURL     string    // Opaque handle for fetching this leg's tracklog

	Track        Track
}

func (f Flight)String() string {
	return fmt.Sprintf("%s %s %s-%s (%d points)", f.TailNumber,
		f.Date.Format("2006-01-02"), f.Origin, f.Destination, len(f.Track))
}

// DaysBetween returns the number of whole 24h periods by which a
// follows b, rounding down; negative when a precedes b.
func DaysBetween(a, b time.Time) int {
	return int(math.Floor(a.Sub(b).Hours() / 24))
}
