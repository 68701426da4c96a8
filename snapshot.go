package osm2graph

import (
	"github.com/DataDog/zstd"
	"github.com/kelindar/binary"
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

const (
	snapshotVersion = 1
)

// graphSnapshot is a binary layout of the whole arena, records which are not in graph included
type graphSnapshot struct {
	Metadata Metadata
	Vertices []vertexSnapshot
	Edges    []edgeSnapshot
	Version  int
}

type vertexSnapshot struct {
	Tags    osm.Tags
	Edges   []int
	ID      int
	OSMID   int64
	Lon     float64
	Lat     float64
	InGraph bool
}

type edgeSnapshot struct {
	Tags osm.Tags
	// Flattened [lon, lat] pairs
	Coords     []float64
	ID         int
	OSMWayID   int64
	Source     int
	Target     int
	Direction  int8
	Reversible bool
	InGraph    bool
}

// MarshalSnapshot encodes graph with kelindar/binary and compresses it with zstd
func (graph *Graph) MarshalSnapshot() ([]byte, error) {
	snapshot := graphSnapshot{
		Metadata: graph.Metadata,
		Vertices: make([]vertexSnapshot, len(graph.Vertices)),
		Edges:    make([]edgeSnapshot, len(graph.Edges)),
		Version:  snapshotVersion,
	}
	for i, vertex := range graph.Vertices {
		snapshot.Vertices[i] = vertexSnapshot{
			Tags:    vertex.Tags,
			Edges:   vertex.Edges,
			ID:      vertex.ID,
			OSMID:   int64(vertex.OSMID),
			Lon:     vertex.Point.Lon(),
			Lat:     vertex.Point.Lat(),
			InGraph: vertex.InGraph,
		}
	}
	for i, edge := range graph.Edges {
		coords := make([]float64, 0, 2*len(edge.Geom))
		for _, pt := range edge.Geom {
			coords = append(coords, pt.Lon(), pt.Lat())
		}
		snapshot.Edges[i] = edgeSnapshot{
			Tags:       edge.Tags,
			Coords:     coords,
			ID:         edge.ID,
			OSMWayID:   int64(edge.OSMWayID),
			Source:     edge.Source,
			Target:     edge.Target,
			Direction:  int8(edge.Direction),
			Reversible: edge.Reversible,
			InGraph:    edge.InGraph,
		}
	}
	encoded, err := binary.Marshal(&snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "Can't encode graph")
	}
	compressed, err := zstd.Compress(nil, encoded)
	if err != nil {
		return nil, errors.Wrap(err, "Can't compress graph")
	}
	return compressed, nil
}

// UnmarshalSnapshot restores graph produced by MarshalSnapshot. Adjacency is checked before graph is returned.
func UnmarshalSnapshot(data []byte) (*Graph, error) {
	encoded, err := zstd.Decompress(nil, data)
	if err != nil {
		return nil, errors.Wrap(err, "Can't decompress graph")
	}
	snapshot := graphSnapshot{}
	err = binary.Unmarshal(encoded, &snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "Can't decode graph")
	}
	if snapshot.Version != snapshotVersion {
		return nil, errors.Errorf("Snapshot version %d is not supported. Expected version: %d", snapshot.Version, snapshotVersion)
	}

	graph := &Graph{
		Metadata: snapshot.Metadata,
		Vertices: make([]*Vertex, len(snapshot.Vertices)),
		Edges:    make([]*Edge, len(snapshot.Edges)),
	}
	for i, vertex := range snapshot.Vertices {
		if vertex.ID != i {
			return nil, errors.Wrapf(ErrMalformedInput, "Vertex at position %d has ID '%d'", i, vertex.ID)
		}
		edges := vertex.Edges
		if edges == nil {
			edges = []int{}
		}
		graph.Vertices[i] = &Vertex{
			Tags:    vertex.Tags,
			Edges:   edges,
			Point:   orb.Point{vertex.Lon, vertex.Lat},
			ID:      vertex.ID,
			OSMID:   osm.NodeID(vertex.OSMID),
			InGraph: vertex.InGraph,
		}
	}
	for i, edge := range snapshot.Edges {
		if edge.ID != i {
			return nil, errors.Wrapf(ErrMalformedInput, "Edge at position %d has ID '%d'", i, edge.ID)
		}
		if len(edge.Coords)%2 != 0 {
			return nil, errors.Wrapf(ErrMalformedInput, "Edge ID: '%d' has odd number of coordinates", edge.ID)
		}
		geom := make(orb.LineString, 0, len(edge.Coords)/2)
		for j := 0; j < len(edge.Coords); j += 2 {
			geom = append(geom, orb.Point{edge.Coords[j], edge.Coords[j+1]})
		}
		graph.Edges[i] = &Edge{
			Tags:       edge.Tags,
			Geom:       geom,
			ID:         edge.ID,
			OSMWayID:   osm.WayID(edge.OSMWayID),
			Source:     edge.Source,
			Target:     edge.Target,
			Direction:  Directionality(edge.Direction),
			Reversible: edge.Reversible,
			InGraph:    edge.InGraph,
		}
	}
	err = graph.checkAdjacency()
	if err != nil {
		return nil, errors.Wrap(err, "Bad snapshot")
	}
	return graph, nil
}
