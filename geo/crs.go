package geo

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

//*******************************************
// crs registry
//*******************************************

const (
	CRS_WGS84    = "EPSG:4326"
	CRS_MERCATOR = "EPSG:3857"
)

type _Projection struct {
	forward func(orb.Point) orb.Point
	inverse func(orb.Point) orb.Point
}

// Projection math is delegated to orb/project; this table only maps
// crs names onto the forward/inverse pairs it provides.
var _projections = map[string]_Projection{
	CRS_MERCATOR: {
		forward: project.WGS84.ToMercator,
		inverse: project.Mercator.ToWGS84,
	},
}

//*******************************************
// transformer
//*******************************************

// Transformer converts positions between a geographic and a projected
// crs, both fixed at creation.
// It wires component order (coords are lat-first, orb points lon-first)
// and crs selection, nothing more.
type Transformer struct {
	crs_geographic string
	crs_projected  string
	projection     _Projection
}

func NewTransformer(crs_geographic, crs_projected string) (Transformer, error) {
	if crs_geographic != CRS_WGS84 {
		return Transformer{}, fmt.Errorf("unsupported geographic crs: %v", crs_geographic)
	}
	projection, ok := _projections[crs_projected]
	if !ok {
		return Transformer{}, fmt.Errorf("unsupported projected crs: %v", crs_projected)
	}
	return Transformer{
		crs_geographic: crs_geographic,
		crs_projected:  crs_projected,
		projection:     projection,
	}, nil
}

func (self Transformer) GeographicCRS() string {
	return self.crs_geographic
}
func (self Transformer) ProjectedCRS() string {
	return self.crs_projected
}

func (self Transformer) GeographicToProjected(lat, lon float64) (float64, float64) {
	point := self.projection.forward(orb.Point{lon, lat})
	return point[0], point[1]
}

func (self Transformer) ProjectedToGeographic(x, y float64) (float64, float64) {
	point := self.projection.inverse(orb.Point{x, y})
	return point[1], point[0]
}

// Transforms a geographic (lat, lon) coord into a projected (y, x) coord.
func (self Transformer) CoordToProjected(coord Coord) Coord {
	x, y := self.GeographicToProjected(coord[0], coord[1])
	return Coord{y, x}
}

// Transforms a projected (y, x) coord into a geographic (lat, lon) coord.
func (self Transformer) CoordToGeographic(coord Coord) Coord {
	lat, lon := self.ProjectedToGeographic(coord[1], coord[0])
	return Coord{lat, lon}
}
