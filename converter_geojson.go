package osm2graph

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/osm"
)

func tagsProperty(tags osm.Tags) map[string]string {
	if len(tags) == 0 {
		return map[string]string{}
	}
	return tags.Map()
}

// vertexToFeature returns GeoJSON Point feature for vertex
func vertexToFeature(vertex *Vertex) *geojson.Feature {
	feature := geojson.NewPointFeature([]float64{vertex.Point.Lon(), vertex.Point.Lat()})
	feature.ID = vertex.ID
	feature.SetProperty("id", vertex.ID)
	feature.SetProperty("osm_id", int64(vertex.OSMID))
	feature.SetProperty("tags", tagsProperty(vertex.Tags))
	feature.SetProperty("edges", vertex.Edges)
	return feature
}

// edgeToGeoJSON returns GeoJSON LineString feature for edge
func edgeToGeoJSON(edge *Edge) *geojson.Feature {
	pts2d := make([][]float64, len(edge.Geom))
	for i := range edge.Geom {
		pts2d[i] = []float64{edge.Geom[i].Lon(), edge.Geom[i].Lat()}
	}
	feature := geojson.NewLineStringFeature(pts2d)
	feature.ID = edge.ID
	feature.SetProperty("id", edge.ID)
	feature.SetProperty("osm_id", int64(edge.OSMWayID))
	feature.SetProperty("tags", tagsProperty(edge.Tags))
	feature.SetProperty("directionality", edge.Direction.String())
	feature.SetProperty("oneway", edge.Direction.onewayValue())
	feature.SetProperty("reversible", edge.Reversible)
	feature.SetProperty("source", edge.Source)
	feature.SetProperty("target", edge.Target)
	feature.SetProperty("length", edge.LengthMeters())
	return feature
}

// GeoJSON returns collection of in-graph vertices (points) followed by in-graph edges (line strings)
func (graph *Graph) GeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, vertex := range graph.ActiveVertices() {
		fc.AddFeature(vertexToFeature(vertex))
	}
	for _, edge := range graph.ActiveEdges() {
		fc.AddFeature(edgeToGeoJSON(edge))
	}
	return fc
}

// MarshalGeoJSON returns GeoJSON representation of the graph
func (graph *Graph) MarshalGeoJSON() ([]byte, error) {
	return graph.GeoJSON().MarshalJSON()
}
