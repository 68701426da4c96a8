package osm2graph

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

func testTags(kv ...string) osm.Tags {
	tags := make(osm.Tags, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		tags = append(tags, osm.Tag{Key: kv[i], Value: kv[i+1]})
	}
	return tags
}

// testNode returns node placed at (id, id/10) so geometry is easy to predict
func testNode(id int64) *osm.Node {
	return &osm.Node{ID: osm.NodeID(id), Lon: float64(id), Lat: float64(id) / 10}
}

func testPoint(id int64) orb.Point {
	return orb.Point{float64(id), float64(id) / 10}
}

func testLine(ids ...int64) orb.LineString {
	line := make(orb.LineString, 0, len(ids))
	for _, id := range ids {
		line = append(line, testPoint(id))
	}
	return line
}

func testWay(id int64, tags osm.Tags, nodes ...int64) *osm.Way {
	wayNodes := make(osm.WayNodes, len(nodes))
	for i, nodeID := range nodes {
		wayNodes[i] = osm.WayNode{ID: osm.NodeID(nodeID)}
	}
	return &osm.Way{ID: osm.WayID(id), Tags: tags, Nodes: wayNodes}
}

func testData(nodeIDs []int64, ways ...*osm.Way) *osm.OSM {
	data := &osm.OSM{Version: "0.6", Generator: "test"}
	for _, id := range nodeIDs {
		data.Nodes = append(data.Nodes, testNode(id))
	}
	data.Ways = ways
	return data
}

func nodeIDsRange(from, to int64) []int64 {
	ids := make([]int64, 0, to-from+1)
	for id := from; id <= to; id++ {
		ids = append(ids, id)
	}
	return ids
}

func vertexByOSMID(graph *Graph, id int64) *Vertex {
	for _, vertex := range graph.Vertices {
		if vertex.OSMID == osm.NodeID(id) {
			return vertex
		}
	}
	return nil
}
