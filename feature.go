package osm2graph

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// nodeToVertex transforms OSM node into graph vertex. Identifier is assigned later.
func nodeToVertex(node *Node) *Vertex {
	vertex := &Vertex{
		OSMID:   node.ID,
		Point:   node.point,
		Tags:    make(osm.Tags, len(node.tags)),
		Edges:   make([]int, len(node.edgeIDs)),
		InGraph: true,
	}
	copy(vertex.Tags, node.tags)
	copy(vertex.Edges, node.edgeIDs)
	return vertex
}

// edgeToFeature transforms decomposed edge into graph edge. Identifier and endpoints are assigned later.
func (data *OSMDataRaw) edgeToFeature(edge *edgeRaw) (*Edge, error) {
	geom := make(orb.LineString, 0, len(edge.nodes))
	for _, nodeID := range edge.nodes {
		node, ok := data.nodes.get(nodeID)
		if !ok {
			return nil, errors.Wrapf(ErrMalformedInput, "No such node '%d'. Way ID: '%d'", nodeID, edge.wayID)
		}
		geom = append(geom, node.point)
	}
	return &Edge{
		Tags:       edge.tags,
		Geom:       geom,
		OSMWayID:   edge.wayID,
		Direction:  edge.direction,
		Reversible: edge.reversible,
		InGraph:    true,
	}, nil
}

// assignIDs assigns dense identifiers and rewrites edges' endpoints from OSM node identifiers to vertex identifiers.
// OSM way identifiers are not unique for edges anymore, so they can't be used.
func assignIDs(vertices []*Vertex, edges []*Edge, edgesRaw []*edgeRaw) error {
	osmIDToID := make(map[osm.NodeID]int, len(vertices))
	for i, vertex := range vertices {
		vertex.ID = i
		osmIDToID[vertex.OSMID] = i
	}
	for i, edge := range edges {
		edge.ID = i
		source, ok := osmIDToID[edgesRaw[i].source]
		if !ok {
			return errors.Wrapf(ErrMalformedInput, "No vertex for node '%d'. Way ID: '%d'", edgesRaw[i].source, edgesRaw[i].wayID)
		}
		target, ok := osmIDToID[edgesRaw[i].target]
		if !ok {
			return errors.Wrapf(ErrMalformedInput, "No vertex for node '%d'. Way ID: '%d'", edgesRaw[i].target, edgesRaw[i].wayID)
		}
		edge.Source = source
		edge.Target = target
	}
	return nil
}

// assemble produces graph records for nodes touched by edges and for every decomposed edge
func (data *OSMDataRaw) assemble(edgesRaw []*edgeRaw) ([]*Vertex, []*Edge, error) {
	vertices := make([]*Vertex, 0, len(edgesRaw)+1)
	for _, node := range data.nodes.nodes {
		if !node.includedInGraph() {
			continue
		}
		vertices = append(vertices, nodeToVertex(node))
	}
	edges := make([]*Edge, 0, len(edgesRaw))
	for _, edgeRaw := range edgesRaw {
		edge, err := data.edgeToFeature(edgeRaw)
		if err != nil {
			return nil, nil, err
		}
		edges = append(edges, edge)
	}
	err := assignIDs(vertices, edges, edgesRaw)
	if err != nil {
		return nil, nil, err
	}
	return vertices, edges, nil
}
