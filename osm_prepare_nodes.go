package osm2graph

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

func (builder *Builder) prepareNodes(nodes osm.Nodes) *nodesStore {
	st := time.Now()
	store := newNodesStore(len(nodes))
	for _, node := range nodes {
		if node == nil {
			continue
		}
		copyNode := &Node{
			ID:    node.ID,
			point: orb.Point{node.Lon, node.Lat},
			tags:  make(osm.Tags, len(node.Tags)),
		}
		copy(copyNode.tags, node.Tags)
		store.add(copyNode)
	}
	builder.logger.Debug("Prepare nodes", "nodes", store.len(), "elapsed", time.Since(st))
	return store
}

// countNodesUsage counts how many ways pass through every node
func (data *OSMDataRaw) countNodesUsage() error {
	for _, way := range data.ways {
		for _, nodeID := range way.Nodes {
			node, ok := data.nodes.get(nodeID)
			if !ok {
				return errors.Wrapf(ErrMalformedInput, "No such node '%d'. Way ID: '%d'", nodeID, way.ID)
			}
			node.useCount++
		}
	}
	return nil
}
