package firewatch

import (
	"fmt"
	"time"

	"github.com/skypies/geo"
)

// Trackpoint is one GPS sample along a flight's recorded path.
type Trackpoint struct {
	DataSource   string    // What kind of trackpoint this is; e.g. "FA" for a flightaware tracklog row
	TimestampUTC time.Time // Zero when the source only reports positions

	geo.Latlong // Embedded type, so we can call all the geo stuff directly on trackpoints
}

func (tp Trackpoint)String() string {
	if tp.TimestampUTC.IsZero() {
		return fmt.Sprintf("%s", tp.Latlong)
	}
	return fmt.Sprintf("[%s] %s", tp.TimestampUTC, tp.Latlong)
}
