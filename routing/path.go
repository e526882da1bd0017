package routing

import (
	"strings"

	"github.com/ttpr0/campus-routing/graph"
	. "github.com/ttpr0/campus-routing/util"
)

//*******************************************
// path
//*******************************************

// Path is a simple (loopless) path through the graph. It always holds
// len(nodes)-1 edges.
type Path struct {
	nodes List[int32]
	edges List[int32]
}

func NewPath(nodes List[int32], edges List[int32]) Path {
	return Path{
		nodes: nodes,
		edges: edges,
	}
}

func (self Path) NodeCount() int {
	return self.nodes.Length()
}
func (self Path) Nodes() List[int32] {
	return self.nodes
}
func (self Path) Edges() List[int32] {
	return self.edges
}

func (self Path) NodeIDs(g *graph.GraphStore) List[string] {
	ids := NewList[string](self.nodes.Length())
	for _, n := range self.nodes {
		ids.Add(g.GetNode(n).ID)
	}
	return ids
}

// Length returns the true physical distance along the path in meters,
// independent of the weighting the path was found under.
func (self Path) Length(g *graph.GraphStore) float64 {
	length := 0.0
	for _, e := range self.edges {
		length += g.GetEdge(e).Length
	}
	return length
}

func (self Path) Weight(w IWeighting) float64 {
	weight := 0.0
	for _, e := range self.edges {
		weight += w.GetEdgeWeight(e)
	}
	return weight
}

// _Key is the lexicographic ordering and dedup key of a path.
// The separator sorts below every printable id character.
func (self Path) _Key(g *graph.GraphStore) string {
	return strings.Join(self.NodeIDs(g), "\x1f")
}
