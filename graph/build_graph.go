package graph

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/ttpr0/campus-routing/geo"
	. "github.com/ttpr0/campus-routing/util"
)

// ErrMalformedGraph is returned for structural violations at load time.
// The load is all-or-nothing, no partial graph is ever produced.
var ErrMalformedGraph = errors.New("malformed graph")

//*******************************************
// graph rows
//*******************************************

type NodeRow struct {
	ID    string  `csv:"id" json:"id"`
	Lat   float64 `csv:"lat" json:"lat"`
	Lon   float64 `csv:"lon" json:"lon"`
	Label string  `csv:"label" json:"label"`
	Kind  string  `csv:"kind" json:"kind"`
}

type EdgeRow struct {
	ID       string  `csv:"id" json:"id"`
	Source   string  `csv:"source" json:"source"`
	Target   string  `csv:"target" json:"target"`
	Length   float64 `csv:"length_m" json:"length_m"`
	Capacity float64 `csv:"capacity" json:"capacity"`
	Kind     string  `csv:"kind" json:"kind"`
}

//*******************************************
// build graph
//*******************************************

// BuildGraphStore validates the given rows and builds the store.
func BuildGraphStore(node_rows List[NodeRow], edge_rows List[EdgeRow]) (*GraphStore, error) {
	nodes := NewArray[Node](node_rows.Length())
	node_mapping := NewDict[string, int32](node_rows.Length())
	for i, row := range node_rows {
		if row.ID == "" {
			return nil, fmt.Errorf("%w: node %v has empty id", ErrMalformedGraph, i)
		}
		if node_mapping.ContainsKey(row.ID) {
			return nil, fmt.Errorf("%w: duplicate node id %v", ErrMalformedGraph, row.ID)
		}
		if !_IsFinite(row.Lat) || !_IsFinite(row.Lon) {
			return nil, fmt.Errorf("%w: node %v has non-finite location", ErrMalformedGraph, row.ID)
		}
		kind, err := NodeKindFromString(row.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: node %v: %v", ErrMalformedGraph, row.ID, err)
		}
		nodes[i] = Node{
			ID:    row.ID,
			Loc:   geo.Coord{float32(row.Lon), float32(row.Lat)},
			Label: row.Label,
			Kind:  kind,
		}
		node_mapping[row.ID] = int32(i)
	}

	edges := NewArray[Edge](edge_rows.Length())
	edge_mapping := NewDict[string, int32](edge_rows.Length())
	for i, row := range edge_rows {
		if row.ID == "" {
			return nil, fmt.Errorf("%w: edge %v has empty id", ErrMalformedGraph, i)
		}
		if edge_mapping.ContainsKey(row.ID) {
			return nil, fmt.Errorf("%w: duplicate edge id %v", ErrMalformedGraph, row.ID)
		}
		if !node_mapping.ContainsKey(row.Source) {
			return nil, fmt.Errorf("%w: edge %v references unknown node %v", ErrMalformedGraph, row.ID, row.Source)
		}
		if !node_mapping.ContainsKey(row.Target) {
			return nil, fmt.Errorf("%w: edge %v references unknown node %v", ErrMalformedGraph, row.ID, row.Target)
		}
		if !(row.Length > 0) || !_IsFinite(row.Length) {
			return nil, fmt.Errorf("%w: edge %v has invalid length %v", ErrMalformedGraph, row.ID, row.Length)
		}
		if !(row.Capacity > 0) || !_IsFinite(row.Capacity) {
			return nil, fmt.Errorf("%w: edge %v has invalid capacity %v", ErrMalformedGraph, row.ID, row.Capacity)
		}
		kind, err := EdgeKindFromString(row.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %v: %v", ErrMalformedGraph, row.ID, err)
		}
		edges[i] = Edge{
			ID:       row.ID,
			NodeA:    node_mapping[row.Source],
			NodeB:    node_mapping[row.Target],
			Length:   row.Length,
			Capacity: row.Capacity,
			Kind:     kind,
		}
		edge_mapping[row.ID] = int32(i)
	}

	topology := _BuildTopology(nodes, edges)

	return &GraphStore{
		nodes:        nodes,
		edges:        edges,
		node_mapping: node_mapping,
		edge_mapping: edge_mapping,
		topology:     topology,
	}, nil
}

func _BuildTopology(nodes Array[Node], edges Array[Edge]) Array[[]EdgeRef] {
	topology := NewArray[[]EdgeRef](len(nodes))
	for i, edge := range edges {
		topology[edge.NodeA] = append(topology[edge.NodeA], EdgeRef{EdgeID: int32(i), OtherID: edge.NodeB})
		if edge.NodeB != edge.NodeA {
			topology[edge.NodeB] = append(topology[edge.NodeB], EdgeRef{EdgeID: int32(i), OtherID: edge.NodeA})
		}
	}
	// sort adjacency for reproducible traversal order
	for i := range topology {
		refs := topology[i]
		sort.Slice(refs, func(a, b int) bool {
			id_a := nodes[refs[a].OtherID].ID
			id_b := nodes[refs[b].OtherID].ID
			if id_a != id_b {
				return id_a < id_b
			}
			return edges[refs[a].EdgeID].ID < edges[refs[b].EdgeID].ID
		})
	}
	return topology
}

func _IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
