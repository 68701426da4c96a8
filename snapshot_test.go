package osm2graph

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	graph := buildSimplified(t, testData(nodeIDsRange(1, 7),
		testWay(10, testTags("highway", "motorway", "oneway", "yes"), 1, 2),
		testWay(11, testTags("highway", "motorway", "oneway", "yes"), 2, 3),
		testWay(12, testTags("highway", "residential"), 3, 4),
		testWay(13, testTags("highway", "residential"), 5, 3),
		testWay(14, testTags("highway", "residential"), 6, 7),
	))
	ExtractConnectedComponent(graph, "motorway")
	graph.Metadata.Timestamp = "2024-05-01T10:00:00Z"

	data, err := graph.MarshalSnapshot()
	require.NoError(t, err)
	restored, err := UnmarshalSnapshot(data)
	require.NoError(t, err)

	assert.Equal(t, graph.Metadata, restored.Metadata)
	assert.Equal(t, graph.Stats(), restored.Stats())
	for i, edge := range graph.Edges {
		other := restored.Edges[i]
		assert.Equal(t, edge.Geom, other.Geom, "edge %d", i)
		assert.Equal(t, edge.InGraph, other.InGraph, "edge %d", i)
		assert.Equal(t, edge.Direction, other.Direction, "edge %d", i)
		assert.Equal(t, [2]int{edge.Source, edge.Target}, [2]int{other.Source, other.Target}, "edge %d", i)
		assert.Equal(t, edge.OSMWayID, other.OSMWayID, "edge %d", i)
		assert.Equal(t, edge.Tags.Find("highway"), other.Tags.Find("highway"), "edge %d", i)
	}
	for i, vertex := range graph.ActiveVertices() {
		other := restored.Vertices[vertex.ID]
		assert.Equal(t, vertex.Point, other.Point, "vertex %d", i)
		assert.Equal(t, vertex.OSMID, other.OSMID, "vertex %d", i)
		assert.Equal(t, vertex.Edges, other.Edges, "vertex %d", i)
	}

	// Restored graph is usable for further passes
	require.NoError(t, SimplifyGraph(restored))
}

func TestSnapshotErrors(t *testing.T) {
	_, err := UnmarshalSnapshot([]byte("not a snapshot"))
	assert.Error(t, err)

	graph, err := BuildGraph(testData(nodeIDsRange(1, 3), testWay(10, nil, 1, 2, 3)))
	require.NoError(t, err)
	graph.Edges[0].Target = 2
	data, err := graph.MarshalSnapshot()
	require.NoError(t, err)
	_, err = UnmarshalSnapshot(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInconsistentAdjacency))
}
