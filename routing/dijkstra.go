package routing

import (
	"container/heap"
	"math"

	"github.com/ttpr0/campus-routing/graph"
	. "github.com/ttpr0/campus-routing/util"
)

// tolerance for treating two float costs as a tie
const weight_eps = 1e-9

//*******************************************
// dijkstra
//*******************************************

// _CalcDijkstra computes the shortest path from one node to another
// under the given weighting. Equal-cost ties are broken towards the
// lexicographically smaller node-id sequence, so results are
// deterministic. Blocked nodes and edges are skipped, which is what
// the deviation search uses to force alternates.
func _CalcDijkstra(g *graph.GraphStore, w IWeighting, from, to int32, blocked_nodes Array[bool], blocked_edges Array[bool]) Optional[Path] {
	dist := NewArray[float64](g.NodeCount())
	labels := NewArray[string](g.NodeCount())
	prev_node := NewArray[int32](g.NodeCount())
	prev_edge := NewArray[int32](g.NodeCount())
	visited := NewArray[bool](g.NodeCount())
	for i := 0; i < g.NodeCount(); i++ {
		dist[i] = math.Inf(1)
		prev_node[i] = -1
		prev_edge[i] = -1
	}

	dist[from] = 0
	labels[from] = g.GetNode(from).ID

	pq := _DijkstraPQ{}
	heap.Init(&pq)
	heap.Push(&pq, _DijkstraItem{node: from, dist: 0, label: labels[from]})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(_DijkstraItem)
		curr := item.node
		if visited[curr] {
			continue
		}
		if item.label != labels[curr] {
			// stale label, a cheaper or lex-smaller path was found later
			continue
		}
		visited[curr] = true
		if curr == to {
			break
		}
		g.ForAdjacentEdges(curr, func(ref graph.EdgeRef) {
			if blocked_edges != nil && blocked_edges[ref.EdgeID] {
				return
			}
			other := ref.OtherID
			if blocked_nodes != nil && blocked_nodes[other] {
				return
			}
			if visited[other] {
				return
			}
			new_dist := dist[curr] + w.GetEdgeWeight(ref.EdgeID)
			new_label := labels[curr] + "\x1f" + g.GetNode(other).ID
			take := false
			if new_dist < dist[other]-weight_eps {
				take = true
			} else if new_dist <= dist[other]+weight_eps && new_label < labels[other] {
				take = true
			}
			if take {
				dist[other] = new_dist
				labels[other] = new_label
				prev_node[other] = curr
				prev_edge[other] = ref.EdgeID
				heap.Push(&pq, _DijkstraItem{node: other, dist: new_dist, label: new_label})
			}
		})
	}

	if !visited[to] {
		return None[Path]()
	}

	// walk predecessors back to the start
	nodes := NewList[int32](10)
	edges := NewList[int32](10)
	curr := to
	for curr != from {
		nodes.Add(curr)
		edges.Add(prev_edge[curr])
		curr = prev_node[curr]
	}
	nodes.Add(from)
	_Reverse(nodes)
	_Reverse(edges)
	return Some(NewPath(nodes, edges))
}

func _Reverse[T any](items List[T]) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}

//*******************************************
// priority queue
//*******************************************

// ordered by cost, equal costs by label so that equal-distance nodes
// settle in lexicographic order
type _DijkstraItem struct {
	node  int32
	dist  float64
	label string
}

type _DijkstraPQ []_DijkstraItem

func (self _DijkstraPQ) Len() int {
	return len(self)
}
func (self _DijkstraPQ) Less(i, j int) bool {
	if math.Abs(self[i].dist-self[j].dist) <= weight_eps {
		return self[i].label < self[j].label
	}
	return self[i].dist < self[j].dist
}
func (self _DijkstraPQ) Swap(i, j int) {
	self[i], self[j] = self[j], self[i]
}
func (self *_DijkstraPQ) Push(item any) {
	*self = append(*self, item.(_DijkstraItem))
}
func (self *_DijkstraPQ) Pop() any {
	old := *self
	n := len(old)
	item := old[n-1]
	*self = old[:n-1]
	return item
}
