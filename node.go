package osm2graph

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Node is an OSM node copied for graph construction
type Node struct {
	tags osm.Tags
	// Edges (in order of registration) this node starts or ends
	edgeIDs []int
	point   orb.Point

	ID osm.NodeID
	// Number of ways (ways' positions actually) passing through this node
	useCount int
}

// isCrossing returns true if node is shared by more than one way
func (node *Node) isCrossing() bool {
	return node.useCount > 1
}

// includedInGraph returns true if at least one edge references the node
func (node *Node) includedInGraph() bool {
	return len(node.edgeIDs) > 0
}

// nodesStore keeps nodes in insertion order while allowing lookup by OSM identifier
type nodesStore struct {
	nodes []*Node
	index map[osm.NodeID]int
}

func newNodesStore(capacity int) *nodesStore {
	return &nodesStore{
		nodes: make([]*Node, 0, capacity),
		index: make(map[osm.NodeID]int, capacity),
	}
}

// add stores node. Duplicated identifiers keep the first position and take the latest data.
func (store *nodesStore) add(node *Node) {
	if idx, ok := store.index[node.ID]; ok {
		store.nodes[idx] = node
		return
	}
	store.index[node.ID] = len(store.nodes)
	store.nodes = append(store.nodes, node)
}

func (store *nodesStore) get(id osm.NodeID) (*Node, bool) {
	idx, ok := store.index[id]
	if !ok {
		return nil, false
	}
	return store.nodes[idx], true
}

func (store *nodesStore) len() int {
	return len(store.nodes)
}
