package osm2graph

import (
	"time"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// Build converts OSM data into graph: ways are split at every crossing, vertices and edges get dense identifiers
func (builder *Builder) Build(data *osm.OSM) (*Graph, error) {
	if data == nil {
		return nil, errors.Wrap(ErrMalformedInput, "Empty OSM data")
	}
	st := time.Now()
	prepared, err := builder.prepareWaysAndNodes(data)
	if err != nil {
		return nil, err
	}

	edgesRaw, err := prepared.decomposeWays()
	if err != nil {
		return nil, errors.Wrap(err, "Can't decompose ways")
	}
	builder.logger.Debug("Decompose ways", "ways", len(prepared.ways), "edges", len(edgesRaw))

	vertices, edges, err := prepared.assemble(edgesRaw)
	if err != nil {
		return nil, errors.Wrap(err, "Can't assemble graph")
	}

	graph := &Graph{
		Metadata: metadataFromOSM(data),
		Vertices: vertices,
		Edges:    edges,
	}
	if builder.metadata != nil {
		graph.Metadata = *builder.metadata
	}
	builder.logger.Debug("Build graph", "vertices", len(vertices), "edges", len(edges), "elapsed", time.Since(st))
	return graph, nil
}

func metadataFromOSM(data *osm.OSM) Metadata {
	return Metadata{
		Source:      DefaultSource,
		Version:     data.Version,
		Generator:   data.Generator,
		Copyright:   data.Copyright,
		Attribution: data.Attribution,
		License:     data.License,
	}
}
