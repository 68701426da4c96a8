package osm2graph

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const osmXML = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="test">
  <node id="1" lat="0.1" lon="1"/>
  <node id="2" lat="0.2" lon="2"/>
  <node id="3" lat="0.3" lon="3"/>
  <node id="4" lat="0.4" lon="4"/>
  <way id="10">
    <nd ref="1"/>
    <nd ref="2"/>
    <nd ref="3"/>
    <tag k="highway" v="residential"/>
  </way>
  <way id="11">
    <nd ref="4"/>
    <nd ref="2"/>
    <tag k="highway" v="service"/>
    <tag k="oneway" v="-1"/>
  </way>
  <relation id="100">
    <member type="way" ref="10" role=""/>
  </relation>
</osm>`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filename, []byte(content), 0o644))
	return filename
}

func TestReadOSMXML(t *testing.T) {
	filename := writeTemp(t, "sample.osm", osmXML)
	data, metadata, err := ReadOSM(context.Background(), filename)
	require.NoError(t, err)
	assert.Equal(t, filename, metadata.Source)
	require.Len(t, data.Nodes, 4)
	require.Len(t, data.Ways, 2)
	assert.Equal(t, osm.WayID(11), data.Ways[1].ID)

	graph, err := BuildGraph(data)
	require.NoError(t, err)
	assert.Equal(t, Stats{Vertices: 4, Edges: 3, ActiveVertices: 4, ActiveEdges: 3}, graph.Stats())
	// Reversed oneway is stored from node 2 to node 4
	assert.Equal(t, testLine(2, 4), graph.Edges[2].Geom)
	assert.Equal(t, "yes", graph.Edges[2].Tags.Find("oneway"))
}

func TestReadOSMJSON(t *testing.T) {
	filename := writeTemp(t, "sample.json", overpassAnswer)
	data, metadata, err := ReadOSM(context.Background(), filename)
	require.NoError(t, err)
	assert.Equal(t, filename, metadata.Source)
	assert.Equal(t, "2024-05-01T10:00:00Z", metadata.Timestamp)
	assert.Len(t, data.Ways, 1)
}

func TestReadOSMErrors(t *testing.T) {
	_, _, err := ReadOSM(context.Background(), writeTemp(t, "sample.csv", "id;geom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'.csv'")

	_, _, err = ReadOSM(context.Background(), filepath.Join(t.TempDir(), "missing.osm"))
	assert.Error(t, err)
}
