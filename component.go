package osm2graph

// ExtractConnectedComponent keeps only edges and vertices reachable from edges with given `highway` tag value
func ExtractConnectedComponent(graph *Graph, highway string) {
	ExtractConnectedComponentByTag(graph, "highway", highway)
}

// ExtractConnectedComponentByTag keeps only edges and vertices reachable from in-graph edges tagged as key=value.
// Everything else is marked as not in graph. Records which are not in graph already are never re-activated.
func ExtractConnectedComponentByTag(graph *Graph, key, value string) {
	edgesVisited := make([]bool, len(graph.Edges))
	for _, edge := range graph.Edges {
		if !edge.InGraph || !edge.Tags.HasTag(key) || edge.Tags.Find(key) != value {
			continue
		}
		graph.traverse(edge.ID, edgesVisited)
	}

	verticesVisited := make([]bool, len(graph.Vertices))
	for _, edge := range graph.Edges {
		if !edgesVisited[edge.ID] {
			edge.InGraph = false
			continue
		}
		verticesVisited[edge.Source] = true
		verticesVisited[edge.Target] = true
	}
	for _, vertex := range graph.Vertices {
		if !verticesVisited[vertex.ID] {
			vertex.InGraph = false
		}
	}
	graph.rebuildAdjacency()
}

// traverse is depth-first search over in-graph edges sharing in-graph vertices.
// Explicit stack keeps depth bounded on long unbranched chains.
func (graph *Graph) traverse(edgeID int, edgesVisited []bool) {
	stack := []int{edgeID}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if edgesVisited[current] {
			continue
		}
		edgesVisited[current] = true
		edge := graph.Edges[current]
		for _, vertexID := range [2]int{edge.Target, edge.Source} {
			vertex := graph.Vertices[vertexID]
			if !vertex.InGraph {
				continue
			}
			for i := len(vertex.Edges) - 1; i >= 0; i-- {
				connected := vertex.Edges[i]
				if connected < 0 || connected >= len(graph.Edges) {
					continue
				}
				if edgesVisited[connected] || !graph.Edges[connected].InGraph {
					continue
				}
				stack = append(stack, connected)
			}
		}
	}
}
