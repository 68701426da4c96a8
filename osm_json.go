package osm2graph

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// overpassResponse is an answer of Overpass API for `[out:json]` queries
type overpassResponse struct {
	Version   json.Number `json:"version"`
	Generator string      `json:"generator"`
	OSM3S     struct {
		TimestampOSMBase string `json:"timestamp_osm_base"`
		Copyright        string `json:"copyright"`
	} `json:"osm3s"`
	Remark   string            `json:"remark"`
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Tags  map[string]string `json:"tags"`
	Type  string            `json:"type"`
	Nodes []int64           `json:"nodes"`
	ID    int64             `json:"id"`
	Lat   float64           `json:"lat"`
	Lon   float64           `json:"lon"`
}

// toTags converts tags map into sorted osm.Tags, so the order does not depend on map iteration
func toTags(tagMap map[string]string) osm.Tags {
	tags := make(osm.Tags, 0, len(tagMap))
	for key, value := range tagMap {
		tags = append(tags, osm.Tag{Key: key, Value: value})
	}
	tags.SortByKeyValue()
	return tags
}

// DecodeOverpassJSON decodes Overpass JSON answer into nodes and ways keeping elements' order
func DecodeOverpassJSON(r io.Reader) (*osm.OSM, Metadata, error) {
	response := overpassResponse{}
	err := json.NewDecoder(r).Decode(&response)
	if err != nil {
		return nil, Metadata{}, errors.Wrap(err, "Can't decode Overpass JSON")
	}
	if strings.Contains(response.Remark, "error") {
		return nil, Metadata{}, errors.Errorf("Overpass remark: %s", response.Remark)
	}

	data := &osm.OSM{
		Version:   response.Version.String(),
		Generator: response.Generator,
		Copyright: response.OSM3S.Copyright,
	}
	for _, element := range response.Elements {
		switch element.Type {
		case "node":
			data.Nodes = append(data.Nodes, &osm.Node{
				ID:      osm.NodeID(element.ID),
				Lat:     element.Lat,
				Lon:     element.Lon,
				Tags:    toTags(element.Tags),
				Visible: true,
			})
		case "way":
			wayNodes := make(osm.WayNodes, len(element.Nodes))
			for i, nodeID := range element.Nodes {
				wayNodes[i] = osm.WayNode{ID: osm.NodeID(nodeID)}
			}
			data.Ways = append(data.Ways, &osm.Way{
				ID:      osm.WayID(element.ID),
				Nodes:   wayNodes,
				Tags:    toTags(element.Tags),
				Visible: true,
			})
		}
	}
	metadata := metadataFromOSM(data)
	metadata.Timestamp = response.OSM3S.TimestampOSMBase
	return data, metadata, nil
}
