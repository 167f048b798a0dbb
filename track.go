package firewatch

import (
	"fmt"

	"github.com/skypies/geo"
)

// A Track is a slice of Trackpoints, ordered as flown, beginning to end.
type Track []Trackpoint

func (t Track)String() string {
	str := fmt.Sprintf("Track: %d points", len(t))
	if len(t) > 1 {
		s,e := t[0],t[len(t)-1]
		str += fmt.Sprintf(", %.1fKM", s.DistKM(e.Latlong))
	}
	return str
}

// FirstWithinKM scans the points in order, and returns the index and
// distance of the first point within radiusKM of pos. It does not look
// for the closest point; the first one inside the radius wins.
func (t Track)FirstWithinKM(pos geo.Latlong, radiusKM float64) (int, float64, bool) {
	for i,tp := range t {
		if dist := tp.DistKM(pos); dist <= radiusKM {
			return i, dist, true
		}
	}
	return -1, 0, false
}

// ClosestKM returns the smallest distance from any point to pos, or
// false for an empty track. Only used for diagnostics; matching policy
// is FirstWithinKM.
func (t Track)ClosestKM(pos geo.Latlong) (float64, bool) {
	if len(t) == 0 { return 0, false }
	closest := t[0].DistKM(pos)
	for _,tp := range t[1:] {
		if dist := tp.DistKM(pos); dist < closest {
			closest = dist
		}
	}
	return closest, true
}
