package osm2graph

import (
	"github.com/paulmach/orb/encoding/wkt"
)

// WKT returns WKT representation of vertex as POINT
func (vertex *Vertex) WKT() string {
	return wkt.MarshalString(vertex.Point)
}

// WKT returns WKT representation of edge as LINESTRING
func (edge *Edge) WKT() string {
	return wkt.MarshalString(edge.Geom)
}
