package osm2graph

import (
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// OSMDataRaw holds normalized nodes and ways ready for decomposition
type OSMDataRaw struct {
	nodes *nodesStore
	ways  []*WayData
}

func (builder *Builder) prepareWaysAndNodes(data *osm.OSM) (*OSMDataRaw, error) {
	prepared := &OSMDataRaw{
		nodes: builder.prepareNodes(data.Nodes),
	}
	ways, err := builder.prepareWays(data.Ways)
	if err != nil {
		return nil, errors.Wrap(err, "Can't prepare ways")
	}
	prepared.ways = ways
	err = prepared.countNodesUsage()
	if err != nil {
		return nil, errors.Wrap(err, "Can't count nodes usage")
	}
	return prepared, nil
}
