package osm2graph

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Vertex is a graph vertex. Edges holds indices in Graph.Edges.
type Vertex struct {
	Tags    osm.Tags
	Edges   []int
	Point   orb.Point
	ID      int
	OSMID   osm.NodeID
	InGraph bool
}
