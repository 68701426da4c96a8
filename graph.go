package osm2graph

import (
	"fmt"
)

const (
	// DefaultSource is where OSM data is requested by default
	DefaultSource = "https://overpass-api.de/api/interpreter"
)

// Metadata describes origin of the graph
type Metadata struct {
	Source      string `json:"source,omitempty"`
	Version     string `json:"version,omitempty"`
	Generator   string `json:"generator,omitempty"`
	Copyright   string `json:"copyright,omitempty"`
	Attribution string `json:"attribution,omitempty"`
	License     string `json:"license,omitempty"`
	// Timestamp of OSM database state (Overpass `osm3s.timestamp_osm_base`)
	Timestamp string `json:"timestamp_osm_base,omitempty"`
}

// Graph is an arena of vertices and edges referencing each other by indices.
// Records are never removed: InGraph flag marks whether record belongs to the current view.
type Graph struct {
	Metadata Metadata
	Vertices []*Vertex
	Edges    []*Edge
}

// Stats is a short summary of the graph
type Stats struct {
	Vertices       int
	Edges          int
	ActiveVertices int
	ActiveEdges    int
}

func (stats Stats) String() string {
	return fmt.Sprintf("vertices: %d (total %d), edges: %d (total %d)", stats.ActiveVertices, stats.Vertices, stats.ActiveEdges, stats.Edges)
}

// Stats returns numbers of records
func (graph *Graph) Stats() Stats {
	stats := Stats{
		Vertices: len(graph.Vertices),
		Edges:    len(graph.Edges),
	}
	for _, vertex := range graph.Vertices {
		if vertex.InGraph {
			stats.ActiveVertices++
		}
	}
	for _, edge := range graph.Edges {
		if edge.InGraph {
			stats.ActiveEdges++
		}
	}
	return stats
}

// ActiveVertices returns vertices with InGraph flag
func (graph *Graph) ActiveVertices() []*Vertex {
	vertices := make([]*Vertex, 0, len(graph.Vertices))
	for _, vertex := range graph.Vertices {
		if vertex.InGraph {
			vertices = append(vertices, vertex)
		}
	}
	return vertices
}

// ActiveEdges returns edges with InGraph flag
func (graph *Graph) ActiveEdges() []*Edge {
	edges := make([]*Edge, 0, len(graph.Edges))
	for _, edge := range graph.Edges {
		if edge.InGraph {
			edges = append(edges, edge)
		}
	}
	return edges
}

// liveAdjacency maps vertex identifier to identifiers of in-graph edges touching it.
// Self-loop is listed twice.
func (graph *Graph) liveAdjacency() [][]int {
	adjacency := make([][]int, len(graph.Vertices))
	for _, edge := range graph.Edges {
		if !edge.InGraph {
			continue
		}
		adjacency[edge.Source] = append(adjacency[edge.Source], edge.ID)
		adjacency[edge.Target] = append(adjacency[edge.Target], edge.ID)
	}
	return adjacency
}

// rebuildAdjacency reassigns Edges of every in-graph vertex from the in-graph edges
func (graph *Graph) rebuildAdjacency() {
	adjacency := graph.liveAdjacency()
	for _, vertex := range graph.Vertices {
		if !vertex.InGraph {
			continue
		}
		vertex.Edges = adjacency[vertex.ID]
		if vertex.Edges == nil {
			vertex.Edges = []int{}
		}
	}
}
