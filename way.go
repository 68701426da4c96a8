package osm2graph

import (
	"github.com/paulmach/osm"
)

// WayData is an OSM way prepared for decomposition
type WayData struct {
	TagMap     osm.Tags
	Nodes      []osm.NodeID
	ID         osm.WayID
	Direction  Directionality
	Reversible bool
}

func newWayData(way *osm.Way) *WayData {
	onewayText := way.Tags.Find("oneway")
	preparedWay := &WayData{
		ID:         way.ID,
		Nodes:      make([]osm.NodeID, 0, len(way.Nodes)),
		TagMap:     make(osm.Tags, len(way.Tags)),
		Direction:  parseDirectionality(onewayText),
		Reversible: onewayText == "reversible",
	}
	copy(preparedWay.TagMap, way.Tags)
	for _, node := range way.Nodes {
		preparedWay.Nodes = append(preparedWay.Nodes, node.ID)
	}
	return preparedWay
}

// edgeTags returns copy of way's tags with normalized `oneway` value
func (way *WayData) edgeTags(direction Directionality) osm.Tags {
	tags := make(osm.Tags, 0, len(way.TagMap)+2)
	onewaySet := false
	for _, tag := range way.TagMap {
		if tag.Key == "oneway" {
			tags = append(tags, osm.Tag{Key: "oneway", Value: direction.onewayValue()})
			onewaySet = true
			continue
		}
		if tag.Key == "reversible" && way.Reversible {
			continue
		}
		tags = append(tags, tag)
	}
	if !onewaySet {
		tags = append(tags, osm.Tag{Key: "oneway", Value: direction.onewayValue()})
	}
	if way.Reversible {
		tags = append(tags, osm.Tag{Key: "reversible", Value: "yes"})
	}
	return tags
}
