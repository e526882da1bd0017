package routing

import (
	"container/heap"
	"math"

	"github.com/ttpr0/campus-routing/graph"
	. "github.com/ttpr0/campus-routing/util"
)

//*******************************************
// k shortest loopless paths
//*******************************************

// CalcKShortestPaths returns up to k loopless paths from one node to
// another, ranked by total weight with lexicographic tie-breaking.
// The first path is the shortest, every further path differs from all
// previous ones by at least one edge (Yen's deviation search).
// Fewer than k paths are returned when the graph has no more simple
// paths between the endpoints.
func CalcKShortestPaths(g *graph.GraphStore, w IWeighting, from, to int32, k int) List[Path] {
	paths := NewList[Path](k)

	first := _CalcDijkstra(g, w, from, to, nil, nil)
	if !first.HasValue() {
		return paths
	}
	paths.Add(first.Value)

	seen := NewDict[string, bool](k)
	seen[first.Value._Key(g)] = true

	candidates := _CandidatePQ{}
	heap.Init(&candidates)

	for paths.Length() < k {
		prev := paths.Get(paths.Length() - 1)
		prev_nodes := prev.Nodes()
		prev_edges := prev.Edges()

		// deviate at every node of the last accepted path except the target
		for i := 0; i < prev.NodeCount()-1; i++ {
			spur_node := prev_nodes[i]

			blocked_edges := NewArray[bool](g.EdgeCount())
			blocked_nodes := NewArray[bool](g.NodeCount())

			// remove the continuing edge of every accepted path that
			// shares the current root, so the spur search cannot
			// reproduce an already known path
			for _, p := range paths {
				if !_SharesRoot(p, prev, i) {
					continue
				}
				p_edges := p.Edges()
				blocked_edges[p_edges.Get(i)] = true
			}
			// keep the spur search loopless with respect to the root
			for j := 0; j < i; j++ {
				blocked_nodes[prev_nodes[j]] = true
			}

			spur := _CalcDijkstra(g, w, spur_node, to, blocked_nodes, blocked_edges)
			if !spur.HasValue() {
				continue
			}

			total := _Splice(prev_nodes[:i+1], prev_edges[:i], spur.Value)
			key := total._Key(g)
			if seen.ContainsKey(key) {
				continue
			}
			seen[key] = true
			heap.Push(&candidates, _Candidate{
				path:   total,
				weight: total.Weight(w),
				key:    key,
			})
		}

		if candidates.Len() == 0 {
			break
		}
		next := heap.Pop(&candidates).(_Candidate)
		paths.Add(next.path)
	}

	return paths
}

// _SharesRoot reports whether p follows the same first i edges as base.
func _SharesRoot(p Path, base Path, i int) bool {
	p_edges := p.Edges()
	if p_edges.Length() <= i {
		return false
	}
	base_edges := base.Edges()
	for j := 0; j < i; j++ {
		if p_edges.Get(j) != base_edges.Get(j) {
			return false
		}
	}
	return true
}

// _Splice joins the root segment with the spur path. The spur starts
// at the last root node.
func _Splice(root_nodes List[int32], root_edges List[int32], spur Path) Path {
	spur_edges := spur.Edges()
	nodes := NewList[int32](len(root_nodes) + spur.NodeCount())
	edges := NewList[int32](len(root_edges) + spur_edges.Length())
	for _, n := range root_nodes[:len(root_nodes)-1] {
		nodes.Add(n)
	}
	for _, e := range root_edges {
		edges.Add(e)
	}
	for _, n := range spur.Nodes() {
		nodes.Add(n)
	}
	for _, e := range spur.Edges() {
		edges.Add(e)
	}
	return NewPath(nodes, edges)
}

//*******************************************
// candidate queue
//*******************************************

type _Candidate struct {
	path   Path
	weight float64
	key    string
}

type _CandidatePQ []_Candidate

func (self _CandidatePQ) Len() int {
	return len(self)
}
func (self _CandidatePQ) Less(i, j int) bool {
	if math.Abs(self[i].weight-self[j].weight) <= weight_eps {
		return self[i].key < self[j].key
	}
	return self[i].weight < self[j].weight
}
func (self _CandidatePQ) Swap(i, j int) {
	self[i], self[j] = self[j], self[i]
}
func (self *_CandidatePQ) Push(item any) {
	*self = append(*self, item.(_Candidate))
}
func (self *_CandidatePQ) Pop() any {
	old := *self
	n := len(old)
	item := old[n-1]
	*self = old[:n-1]
	return item
}
