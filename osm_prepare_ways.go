package osm2graph

import (
	"time"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

func (builder *Builder) prepareWays(ways osm.Ways) ([]*WayData, error) {
	st := time.Now()
	prepared := make([]*WayData, 0, len(ways))
	skipped := 0
	for _, way := range ways {
		if way == nil {
			continue
		}
		if !builder.cfg.CheckWay(way.Tags) {
			skipped++
			continue
		}
		if len(way.Nodes) < 2 {
			if builder.strictMode {
				return nil, errors.Wrapf(ErrDegenerateWay, "Way with %d nodes met. Way ID: '%d'", len(way.Nodes), way.ID)
			}
			builder.logger.Warn("Skip degenerate way", "way", way.ID, "nodes", len(way.Nodes))
			continue
		}
		prepared = append(prepared, newWayData(way))
	}
	builder.logger.Debug("Prepare ways", "ways", len(prepared), "filtered", skipped, "elapsed", time.Since(st))
	return prepared, nil
}

// decomposeWays splits every way into edges at crossings.
//
// Example (the * are crossings):
//
//	*------*----------*-------*------*
//	*------* + *----------* + *-------* + *------*
//
// Every node registers identifiers of edges it starts or ends.
func (data *OSMDataRaw) decomposeWays() ([]*edgeRaw, error) {
	edges := make([]*edgeRaw, 0, len(data.ways))
	for _, way := range data.ways {
		first, ok := data.nodes.get(way.Nodes[0])
		if !ok {
			return nil, errors.Wrapf(ErrMalformedInput, "No such node '%d'. Way ID: '%d'", way.Nodes[0], way.ID)
		}
		segment := []osm.NodeID{first.ID}
		first.edgeIDs = append(first.edgeIDs, len(edges))

		last := len(way.Nodes) - 1
		for i := 1; i < last; i++ {
			node, ok := data.nodes.get(way.Nodes[i])
			if !ok {
				return nil, errors.Wrapf(ErrMalformedInput, "No such node '%d'. Way ID: '%d'", way.Nodes[i], way.ID)
			}
			segment = append(segment, node.ID)
			if !node.isCrossing() {
				continue
			}
			node.edgeIDs = append(node.edgeIDs, len(edges))
			edges = append(edges, way.makeEdge(segment))
			segment = []osm.NodeID{node.ID}
			node.edgeIDs = append(node.edgeIDs, len(edges))
		}

		lastNode, ok := data.nodes.get(way.Nodes[last])
		if !ok {
			return nil, errors.Wrapf(ErrMalformedInput, "No such node '%d'. Way ID: '%d'", way.Nodes[last], way.ID)
		}
		segment = append(segment, lastNode.ID)
		lastNode.edgeIDs = append(lastNode.edgeIDs, len(edges))
		edges = append(edges, way.makeEdge(segment))
	}
	return edges, nil
}
