package osm2graph

import (
	"github.com/pkg/errors"
)

const (
	predecessor = 0
	successor   = 1
)

// passThrough is a degree-2 vertex which could be eliminated.
// For directed vertex edges are ordered as [predecessor -> vertex, vertex -> successor].
type passThrough struct {
	edgeIDs   [2]int
	adjacents [2]int
	directed  bool
	visited   bool
}

// passThroughs is indexed by vertex identifier; nil stands for vertex which is not eligible
type passThroughs []*passThrough

func (candidates passThroughs) eligible(vertexID int) bool {
	return candidates[vertexID] != nil
}

// startAdjacents returns [predecessor, successor] for vertex which chain walk could start from.
// Undirected vertex is reoriented when only its first neighbour is eligible.
func (candidates passThroughs) startAdjacents(vertexID int) [2]int {
	candidate := candidates[vertexID]
	if !candidate.directed && candidates.eligible(candidate.adjacents[predecessor]) && !candidates.eligible(candidate.adjacents[successor]) {
		candidate.edgeIDs[predecessor], candidate.edgeIDs[successor] = candidate.edgeIDs[successor], candidate.edgeIDs[predecessor]
		candidate.adjacents[predecessor], candidate.adjacents[successor] = candidate.adjacents[successor], candidate.adjacents[predecessor]
	}
	return candidate.adjacents
}

// SimplifyGraph contracts every maximal chain of degree-2 vertices into a single edge.
// Contracted edges are appended to the graph, consumed edges and vertices are marked as not in graph.
// Isolated cycles built of degree-2 vertices only are left untouched.
func SimplifyGraph(graph *Graph) error {
	err := graph.checkAdjacency()
	if err != nil {
		return errors.Wrap(err, "Can't simplify graph")
	}
	candidates := graph.findPassThroughVertices()

	for vertexID := range graph.Vertices {
		if !candidates.eligible(vertexID) || candidates[vertexID].visited {
			continue
		}
		adjacents := candidates.startAdjacents(vertexID)
		if candidates.eligible(adjacents[predecessor]) {
			// Not the first vertex of a chain
			continue
		}
		edgeIDs := []int{graph.takeEdge(candidates, vertexID, predecessor)}
		current := vertexID
		for {
			incoming := graph.takeEdge(candidates, current, successor)
			edgeIDs = append(edgeIDs, incoming)
			next := graph.Edges[incoming].Target
			if !candidates.eligible(next) || candidates[next].visited {
				break
			}
			nextCandidate := candidates[next]
			if nextCandidate.edgeIDs[successor] == incoming {
				nextCandidate.edgeIDs[predecessor], nextCandidate.edgeIDs[successor] = nextCandidate.edgeIDs[successor], nextCandidate.edgeIDs[predecessor]
				nextCandidate.adjacents[predecessor], nextCandidate.adjacents[successor] = nextCandidate.adjacents[successor], nextCandidate.adjacents[predecessor]
			}
			current = next
		}
		graph.introduceEdgeConcatenated(edgeIDs)
	}

	graph.rebuildAdjacency()
	return nil
}

// findPassThroughVertices returns degree-2 vertices which could be eliminated
func (graph *Graph) findPassThroughVertices() passThroughs {
	candidates := make(passThroughs, len(graph.Vertices))
	for _, vertex := range graph.Vertices {
		if !vertex.InGraph {
			continue
		}
		edgeIDs := graph.activeIncidentEdges(vertex)
		if len(edgeIDs) != 2 {
			continue
		}
		// Self-loop
		if edgeIDs[0] == edgeIDs[1] {
			continue
		}
		edges := [2]*Edge{graph.Edges[edgeIDs[0]], graph.Edges[edgeIDs[1]]}
		// Mixture of directed and undirected
		if edges[0].IsDirected() != edges[1].IsDirected() {
			continue
		}
		directed := edges[0].IsDirected()
		if directed {
			outward := [2]bool{edges[0].Source == vertex.ID, edges[1].Source == vertex.ID}
			// Both diverge [ <-- * --> ] or converge [ --> * <-- ]
			if outward[0] == outward[1] {
				continue
			}
			// Processing order [ --> * --> ]
			if outward[0] {
				edgeIDs[0], edgeIDs[1] = edgeIDs[1], edgeIDs[0]
				edges[0], edges[1] = edges[1], edges[0]
			}
		}
		candidates[vertex.ID] = &passThrough{
			edgeIDs:   [2]int{edgeIDs[0], edgeIDs[1]},
			adjacents: [2]int{edges[0].Other(vertex.ID), edges[1].Other(vertex.ID)},
			directed:  directed,
		}
	}
	return candidates
}

// takeEdge orients edge with given index so it follows walk direction through the vertex and eliminates the vertex
func (graph *Graph) takeEdge(candidates passThroughs, vertexID int, index int) int {
	candidate := candidates[vertexID]
	edge := graph.Edges[candidate.edgeIDs[index]]
	if index == predecessor && edge.Target != vertexID {
		reverseEdge(edge)
	}
	if index == successor && edge.Source != vertexID {
		reverseEdge(edge)
	}
	candidate.visited = true
	graph.Vertices[vertexID].InGraph = false
	return edge.ID
}

// introduceEdgeConcatenated appends new edge built from given sequence of contiguous edges
func (graph *Graph) introduceEdgeConcatenated(edgeIDs []int) {
	first := graph.Edges[edgeIDs[0]]
	last := graph.Edges[edgeIDs[len(edgeIDs)-1]]
	concatenated := first.clone()
	concatenated.ID = len(graph.Edges)
	concatenated.InGraph = true
	concatenated.Target = last.Target
	for _, edgeID := range edgeIDs[1:] {
		concatenated.Geom = append(concatenated.Geom, graph.Edges[edgeID].Geom[1:]...)
	}
	for _, edgeID := range edgeIDs {
		graph.Edges[edgeID].InGraph = false
	}
	graph.Edges = append(graph.Edges, concatenated)
}

// activeIncidentEdges returns in-graph edges listed by vertex
func (graph *Graph) activeIncidentEdges(vertex *Vertex) []int {
	edgeIDs := make([]int, 0, len(vertex.Edges))
	for _, edgeID := range vertex.Edges {
		if edgeID < 0 || edgeID >= len(graph.Edges) {
			continue
		}
		if graph.Edges[edgeID].InGraph {
			edgeIDs = append(edgeIDs, edgeID)
		}
	}
	return edgeIDs
}

// checkAdjacency compares adjacency recorded by vertices with the live scan of in-graph edges
func (graph *Graph) checkAdjacency() error {
	for _, edge := range graph.Edges {
		if !edge.InGraph {
			continue
		}
		if edge.Source < 0 || edge.Source >= len(graph.Vertices) || edge.Target < 0 || edge.Target >= len(graph.Vertices) {
			return errors.Wrapf(ErrInconsistentAdjacency, "Edge ID: '%d' references missing vertex (%d -> %d)", edge.ID, edge.Source, edge.Target)
		}
		if len(edge.Geom) < 2 {
			return errors.Wrapf(ErrInconsistentAdjacency, "Edge ID: '%d' has %d points", edge.ID, len(edge.Geom))
		}
	}
	live := graph.liveAdjacency()
	for _, vertex := range graph.Vertices {
		if !vertex.InGraph {
			if len(live[vertex.ID]) > 0 {
				return errors.Wrapf(ErrInconsistentAdjacency, "Vertex ID: '%d' is not in graph but has %d edges", vertex.ID, len(live[vertex.ID]))
			}
			continue
		}
		for _, edgeID := range vertex.Edges {
			if edgeID < 0 || edgeID >= len(graph.Edges) {
				return errors.Wrapf(ErrInconsistentAdjacency, "Vertex ID: '%d' references missing edge '%d'", vertex.ID, edgeID)
			}
			edge := graph.Edges[edgeID]
			if edge.InGraph && edge.Source != vertex.ID && edge.Target != vertex.ID {
				return errors.Wrapf(ErrInconsistentAdjacency, "Vertex ID: '%d' references edge '%d' which does not touch it", vertex.ID, edgeID)
			}
		}
		recorded := len(graph.activeIncidentEdges(vertex))
		if recorded != len(live[vertex.ID]) {
			return errors.Wrapf(ErrInconsistentAdjacency, "Vertex ID: '%d' records %d edges, but %d found", vertex.ID, recorded, len(live[vertex.ID]))
		}
	}
	return nil
}
