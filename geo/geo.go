package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

//*******************************************
// coordinates
//*******************************************

// Coord is a 2-d position.
// Component order is (lat, lon) for geographic maps and (y, x) for
// projected maps.
type Coord [2]float64

func (self Coord) Lat() float64 {
	return self[0]
}
func (self Coord) Lon() float64 {
	return self[1]
}

// Converts to an orb point (x/lon first).
func (self Coord) Point() orb.Point {
	return orb.Point{self[1], self[0]}
}

func CoordFromPoint(point orb.Point) Coord {
	return Coord{point[1], point[0]}
}

// Planar distance between two coords, in the units of the active
// coordinate system (degrees if geographic, linear units if projected).
func Distance(a, b Coord) float64 {
	return planar.Distance(a.Point(), b.Point())
}
