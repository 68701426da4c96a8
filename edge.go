package osm2graph

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// edgeRaw is a piece of OSM way between two crossings (or way's ends)
type edgeRaw struct {
	tags       osm.Tags
	nodes      []osm.NodeID
	wayID      osm.WayID
	source     osm.NodeID
	target     osm.NodeID
	direction  Directionality
	reversible bool
}

// makeEdge creates edge for given part of way. Reversed oneway is normalized here.
func (way *WayData) makeEdge(nodes []osm.NodeID) *edgeRaw {
	direction := way.Direction
	path := make([]osm.NodeID, len(nodes))
	copy(path, nodes)
	if direction == DIRECTIONALITY_REVERSE {
		direction = DIRECTIONALITY_ONEWAY
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}
	return &edgeRaw{
		tags:       way.edgeTags(direction),
		nodes:      path,
		wayID:      way.ID,
		source:     path[0],
		target:     path[len(path)-1],
		direction:  direction,
		reversible: way.Reversible,
	}
}

// Edge is a graph edge. Source and Target are indices in Graph.Vertices.
type Edge struct {
	Tags       osm.Tags
	Geom       orb.LineString
	ID         int
	OSMWayID   osm.WayID
	Source     int
	Target     int
	Direction  Directionality
	Reversible bool
	InGraph    bool
}

// IsDirected returns true for oneway edge
func (edge *Edge) IsDirected() bool {
	return edge.Direction.IsDirected()
}

// Other returns opposite endpoint of the edge
func (edge *Edge) Other(vertexID int) int {
	if edge.Source == vertexID {
		return edge.Target
	}
	return edge.Source
}

// reverseEdge swaps endpoints and reverses geometry
func reverseEdge(edge *Edge) {
	edge.Source, edge.Target = edge.Target, edge.Source
	edge.Geom.Reverse()
}

// clone returns deep copy of the edge
func (edge *Edge) clone() *Edge {
	cp := *edge
	cp.Tags = make(osm.Tags, len(edge.Tags))
	copy(cp.Tags, edge.Tags)
	cp.Geom = edge.Geom.Clone()
	return &cp
}
