package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/LdDl/osm2graph"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

const (
	formatGeoJSON  = "geojson"
	formatWKT      = "wkt"
	formatSnapshot = "snapshot"
)

// processGraph builds graph and applies optional simplification and component extraction
func processGraph(ctx context.Context, data *osm.OSM, metadata osm2graph.Metadata, cfg Config) (*osm2graph.Graph, error) {
	logger := loggerFromContext(ctx)

	p := newProgress(logger)
	graph, err := osm2graph.BuildGraph(data,
		osm2graph.WithLogger(logger),
		osm2graph.WithStrictMode(cfg.Strict),
		osm2graph.WithHighwayTypes(cfg.Highways),
		osm2graph.WithMetadata(metadata),
	)
	if err != nil {
		return nil, errors.Wrap(err, "Can't build graph")
	}
	p.done(fmt.Sprintf("Built graph: %s", graph.Stats()))

	if cfg.Simplify {
		p = newProgress(logger)
		err = osm2graph.SimplifyGraph(graph)
		if err != nil {
			return nil, err
		}
		p.done(fmt.Sprintf("Simplified graph: %s", graph.Stats()))
	}

	if cfg.Component != "" {
		if !osm2graph.IsKnownHighway(cfg.Component) {
			logger.Warn("Unknown highway value, component could be empty", "highway", cfg.Component)
		}
		p = newProgress(logger)
		osm2graph.ExtractConnectedComponent(graph, cfg.Component)
		p.done(fmt.Sprintf("Extracted component connected to '%s': %s", cfg.Component, graph.Stats()))
	}
	return graph, nil
}

// writeGraph writes graph to cfg.Out (or stdout when empty) in requested format
func writeGraph(stdout io.Writer, graph *osm2graph.Graph, cfg Config) error {
	w := stdout
	if cfg.Out != "" {
		file, err := os.Create(cfg.Out)
		if err != nil {
			return errors.Wrap(err, "Can't create output file")
		}
		defer file.Close()
		w = file
	}
	switch strings.ToLower(cfg.Format) {
	case formatGeoJSON, "":
		b, err := graph.MarshalGeoJSON()
		if err != nil {
			return errors.Wrap(err, "Can't prepare GeoJSON")
		}
		_, err = w.Write(b)
		return err
	case formatWKT:
		return writeWKT(w, graph)
	case formatSnapshot:
		b, err := graph.MarshalSnapshot()
		if err != nil {
			return errors.Wrap(err, "Can't prepare snapshot")
		}
		_, err = w.Write(b)
		return err
	default:
		return errors.Errorf("Unknown output format '%s'. Expected values: geojson / wkt / snapshot", cfg.Format)
	}
}

// writeWKT writes ';'-separated records of vertices and edges
func writeWKT(w io.Writer, graph *osm2graph.Graph) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'
	err := writer.Write([]string{"kind", "id", "osm_id", "source", "target", "oneway", "geom"})
	if err != nil {
		return err
	}
	for _, vertex := range graph.ActiveVertices() {
		err = writer.Write([]string{"vertex", fmt.Sprintf("%d", vertex.ID), fmt.Sprintf("%d", vertex.OSMID), "", "", "", vertex.WKT()})
		if err != nil {
			return err
		}
	}
	for _, edge := range graph.ActiveEdges() {
		err = writer.Write([]string{
			"edge",
			fmt.Sprintf("%d", edge.ID),
			fmt.Sprintf("%d", edge.OSMWayID),
			fmt.Sprintf("%d", edge.Source),
			fmt.Sprintf("%d", edge.Target),
			fmt.Sprintf("%t", edge.IsDirected()),
			edge.WKT(),
		})
		if err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
