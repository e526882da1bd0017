package graph

import (
	. "github.com/ttpr0/campus-routing/util"
)

//*******************************************
// graph store
//*******************************************

// GraphStore is the immutable in-memory campus graph.
// It is read-only after construction and safe for concurrent use.
type GraphStore struct {
	nodes        Array[Node]
	edges        Array[Edge]
	node_mapping Dict[string, int32]
	edge_mapping Dict[string, int32]
	topology     Array[[]EdgeRef]
}

func (self *GraphStore) NodeCount() int {
	return len(self.nodes)
}
func (self *GraphStore) EdgeCount() int {
	return len(self.edges)
}
func (self *GraphStore) GetNode(node int32) Node {
	return self.nodes[node]
}
func (self *GraphStore) GetEdge(edge int32) Edge {
	return self.edges[edge]
}
func (self *GraphStore) GetNodeIndex(id string) Optional[int32] {
	if self.node_mapping.ContainsKey(id) {
		return Some(self.node_mapping.Get(id))
	}
	return None[int32]()
}
func (self *GraphStore) GetEdgeIndex(id string) Optional[int32] {
	if self.edge_mapping.ContainsKey(id) {
		return Some(self.edge_mapping.Get(id))
	}
	return None[int32]()
}

// ForAdjacentEdges visits every edge incident to node. Neighbors are
// visited in lexicographic order of their node-ids, which keeps path
// enumeration reproducible.
func (self *GraphStore) ForAdjacentEdges(node int32, callback func(ref EdgeRef)) {
	for _, ref := range self.topology[node] {
		callback(ref)
	}
}

// GetEdgeBetween resolves the undirected edge connecting a and b.
func (self *GraphStore) GetEdgeBetween(a, b int32) Optional[int32] {
	for _, ref := range self.topology[a] {
		if ref.OtherID == b {
			return Some(ref.EdgeID)
		}
	}
	return None[int32]()
}
