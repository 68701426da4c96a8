package osm2graph

import (
	"strings"
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overpassAnswer = `{
  "version": 0.6,
  "generator": "Overpass API 0.7.62.1",
  "osm3s": {
    "timestamp_osm_base": "2024-05-01T10:00:00Z",
    "copyright": "The data included in this document is from www.openstreetmap.org."
  },
  "elements": [
    {"type": "node", "id": 3, "lat": 0.3, "lon": 3},
    {"type": "node", "id": 1, "lat": 0.1, "lon": 1, "tags": {"highway": "traffic_signals"}},
    {"type": "node", "id": 2, "lat": 0.2, "lon": 2},
    {"type": "way", "id": 10, "nodes": [1, 2, 3], "tags": {"oneway": "yes", "highway": "primary", "name": "Main"}},
    {"type": "relation", "id": 100}
  ]
}`

func TestDecodeOverpassJSON(t *testing.T) {
	data, metadata, err := DecodeOverpassJSON(strings.NewReader(overpassAnswer))
	require.NoError(t, err)

	require.Len(t, data.Nodes, 3)
	assert.Equal(t, []osm.NodeID{3, 1, 2}, []osm.NodeID{data.Nodes[0].ID, data.Nodes[1].ID, data.Nodes[2].ID})
	assert.Equal(t, 0.1, data.Nodes[1].Lat)
	assert.Equal(t, "traffic_signals", data.Nodes[1].Tags.Find("highway"))

	require.Len(t, data.Ways, 1)
	way := data.Ways[0]
	assert.Equal(t, osm.WayID(10), way.ID)
	assert.Equal(t, []osm.NodeID{1, 2, 3}, []osm.NodeID{way.Nodes[0].ID, way.Nodes[1].ID, way.Nodes[2].ID})
	assert.Equal(t, osm.Tags{
		{Key: "highway", Value: "primary"},
		{Key: "name", Value: "Main"},
		{Key: "oneway", Value: "yes"},
	}, way.Tags)

	assert.Equal(t, "0.6", metadata.Version)
	assert.Equal(t, "Overpass API 0.7.62.1", metadata.Generator)
	assert.Equal(t, "2024-05-01T10:00:00Z", metadata.Timestamp)
	assert.Equal(t, DefaultSource, metadata.Source)

	graph, err := BuildGraph(data, WithMetadata(metadata))
	require.NoError(t, err)
	require.Len(t, graph.Edges, 1)
	assert.Equal(t, testLine(1, 2, 3), graph.Edges[0].Geom)
	// Vertices follow order of nodes in the answer
	assert.Equal(t, osm.NodeID(3), graph.Vertices[0].OSMID)
	assert.Equal(t, "2024-05-01T10:00:00Z", graph.Metadata.Timestamp)
}

func TestDecodeOverpassJSONErrors(t *testing.T) {
	_, _, err := DecodeOverpassJSON(strings.NewReader(`{"elements": [`))
	assert.Error(t, err)

	_, _, err = DecodeOverpassJSON(strings.NewReader(`{"remark": "runtime error: Query timed out", "elements": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Query timed out")
}
