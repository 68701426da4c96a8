package osm2graph

import (
	"github.com/paulmach/osm"
)

// OsmConfiguration allows to filter ways by certain tags from OSM data
type OsmConfiguration struct {
	EntityName string // Key of tag to check, e.g. 'highway'
	Tags       []string
}

// CheckTag checks if incoming tag value is represented in configuration
func (cfg *OsmConfiguration) CheckTag(tag string) bool {
	for i := range cfg.Tags {
		if cfg.Tags[i] == tag {
			return true
		}
	}
	return false
}

// CheckWay returns true if way should be considered. Empty configuration accepts every way.
func (cfg *OsmConfiguration) CheckWay(tags osm.Tags) bool {
	if cfg == nil || len(cfg.Tags) == 0 {
		return true
	}
	tag := tags.Find(cfg.EntityName)
	if tag == "" {
		return false
	}
	return cfg.CheckTag(tag)
}
