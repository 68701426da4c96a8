package osm2graph

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoComponents() *osm.OSM {
	return testData(nodeIDsRange(1, 6),
		testWay(10, testTags("highway", "motorway"), 1, 2),
		testWay(11, testTags("highway", "residential", "name", "Main"), 2, 3),
		testWay(12, testTags("highway", "residential"), 4, 5),
		testWay(13, testTags("highway", "residential", "name", "Main"), 5, 6),
	)
}

func TestExtractConnectedComponent(t *testing.T) {
	graph, err := BuildGraph(twoComponents())
	require.NoError(t, err)

	ExtractConnectedComponent(graph, "motorway")
	assert.Equal(t, Stats{Vertices: 6, Edges: 4, ActiveVertices: 3, ActiveEdges: 2}, graph.Stats())
	for _, edge := range graph.Edges {
		assert.Equal(t, edge.ID < 2, edge.InGraph, "edge %d", edge.ID)
	}
	for _, vertex := range graph.Vertices {
		assert.Equal(t, vertex.OSMID <= 3, vertex.InGraph, "vertex %d", vertex.OSMID)
	}
	assert.Equal(t, []int{0, 1}, vertexByOSMID(graph, 2).Edges)
}

func TestExtractConnectedComponentByTag(t *testing.T) {
	graph, err := BuildGraph(twoComponents())
	require.NoError(t, err)

	// Both components have matching edge
	ExtractConnectedComponentByTag(graph, "name", "Main")
	assert.Equal(t, 4, graph.Stats().ActiveEdges)

	ExtractConnectedComponentByTag(graph, "name", "")
	assert.Equal(t, 0, graph.Stats().ActiveEdges)
	assert.Equal(t, 0, graph.Stats().ActiveVertices)
}

func TestExtractConnectedComponentNoMatch(t *testing.T) {
	graph, err := BuildGraph(twoComponents())
	require.NoError(t, err)

	ExtractConnectedComponent(graph, "trunk")
	assert.Empty(t, graph.ActiveEdges())
	assert.Empty(t, graph.ActiveVertices())
}

func TestExtractConnectedComponentKeepsExcluded(t *testing.T) {
	graph, err := BuildGraph(twoComponents())
	require.NoError(t, err)

	graph.Edges[1].InGraph = false
	vertexByOSMID(graph, 3).InGraph = false
	graph.rebuildAdjacency()

	ExtractConnectedComponent(graph, "motorway")
	assert.Equal(t, 1, graph.Stats().ActiveEdges)
	assert.False(t, graph.Edges[1].InGraph)
	assert.False(t, vertexByOSMID(graph, 3).InGraph)
	assert.Equal(t, []int{0}, vertexByOSMID(graph, 2).Edges)
}

func TestExtractConnectedComponentAfterSimplify(t *testing.T) {
	motorway := testTags("highway", "motorway")
	residential := testTags("highway", "residential")
	graph := buildSimplified(t, testData(nodeIDsRange(1, 7),
		testWay(10, motorway, 1, 2),
		testWay(11, motorway, 2, 3),
		testWay(12, residential, 3, 4),
		testWay(13, residential, 5, 3),
		testWay(14, residential, 6, 7),
	))
	require.Len(t, graph.Edges, 6)

	ExtractConnectedComponent(graph, "motorway")
	edges := graph.ActiveEdges()
	require.Len(t, edges, 3)
	assert.Equal(t, []int{2, 3, 5}, []int{edges[0].ID, edges[1].ID, edges[2].ID})
	assert.Equal(t, testLine(1, 2, 3), graph.Edges[5].Geom)
	assert.False(t, graph.Edges[0].InGraph)
	assert.False(t, graph.Edges[1].InGraph)
	assert.False(t, vertexByOSMID(graph, 2).InGraph)
	assert.False(t, vertexByOSMID(graph, 6).InGraph)
	assert.Equal(t, []int{2, 3, 5}, vertexByOSMID(graph, 3).Edges)
}
