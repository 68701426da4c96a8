package osm2graph

import (
	"github.com/paulmach/orb/geo"
)

// LengthMeters returns geodesic length of edge's geometry
func (edge *Edge) LengthMeters() float64 {
	if len(edge.Geom) < 2 {
		return 0
	}
	return geo.Length(edge.Geom)
}
