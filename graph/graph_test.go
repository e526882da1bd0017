package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	. "github.com/ttpr0/campus-routing/util"
)

func _TestRows() (List[NodeRow], List[EdgeRow]) {
	nodes := List[NodeRow]{
		{ID: "A", Lat: 33.64, Lon: 72.99, Label: "Gate", Kind: "poi"},
		{ID: "B", Lat: 33.65, Lon: 72.99, Label: "Junction B"},
		{ID: "C", Lat: 33.64, Lon: 73.00, Label: "Junction C"},
		{ID: "D", Lat: 33.65, Lon: 73.00, Label: "Library", Kind: "poi"},
	}
	edges := List[EdgeRow]{
		{ID: "e1", Source: "A", Target: "B", Length: 10, Capacity: 100, Kind: "path"},
		{ID: "e2", Source: "A", Target: "C", Length: 10, Capacity: 100, Kind: "path"},
		{ID: "e3", Source: "B", Target: "D", Length: 10, Capacity: 100, Kind: "path"},
		{ID: "e4", Source: "C", Target: "D", Length: 10, Capacity: 100, Kind: "road"},
	}
	return nodes, edges
}

func TestBuildGraphStore(t *testing.T) {
	nodes, edges := _TestRows()
	g, err := BuildGraphStore(nodes, edges)
	require.NoError(t, err)

	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())

	a := g.GetNodeIndex("A")
	require.True(t, a.HasValue())
	assert.Equal(t, "Gate", g.GetNode(a.Value).Label)
	assert.Equal(t, POI, g.GetNode(a.Value).Kind)

	assert.False(t, g.GetNodeIndex("Z").HasValue())
}

func TestAdjacencyOrder(t *testing.T) {
	nodes, edges := _TestRows()
	g, err := BuildGraphStore(nodes, edges)
	require.NoError(t, err)

	a := g.GetNodeIndex("A").Value
	neighbors := []string{}
	g.ForAdjacentEdges(a, func(ref EdgeRef) {
		neighbors = append(neighbors, g.GetNode(ref.OtherID).ID)
	})
	// neighbors are visited in lexicographic order
	assert.Equal(t, []string{"B", "C"}, neighbors)
}

func TestEdgeBetween(t *testing.T) {
	nodes, edges := _TestRows()
	g, err := BuildGraphStore(nodes, edges)
	require.NoError(t, err)

	b := g.GetNodeIndex("B").Value
	d := g.GetNodeIndex("D").Value

	// undirected lookup works both ways
	e1 := g.GetEdgeBetween(b, d)
	require.True(t, e1.HasValue())
	e2 := g.GetEdgeBetween(d, b)
	require.True(t, e2.HasValue())
	assert.Equal(t, e1.Value, e2.Value)
	assert.Equal(t, "e3", g.GetEdge(e1.Value).ID)

	a := g.GetNodeIndex("A").Value
	assert.False(t, g.GetEdgeBetween(a, d).HasValue())
}

func TestBuildGraphStoreMalformed(t *testing.T) {
	tests := []struct {
		name   string
		modify func(nodes *List[NodeRow], edges *List[EdgeRow])
	}{
		{"duplicate node id", func(nodes *List[NodeRow], edges *List[EdgeRow]) {
			nodes.Add(NodeRow{ID: "A", Lat: 1, Lon: 1})
		}},
		{"duplicate edge id", func(nodes *List[NodeRow], edges *List[EdgeRow]) {
			edges.Add(EdgeRow{ID: "e1", Source: "B", Target: "C", Length: 5, Capacity: 10})
		}},
		{"unknown source", func(nodes *List[NodeRow], edges *List[EdgeRow]) {
			edges.Add(EdgeRow{ID: "e5", Source: "X", Target: "C", Length: 5, Capacity: 10})
		}},
		{"unknown target", func(nodes *List[NodeRow], edges *List[EdgeRow]) {
			edges.Add(EdgeRow{ID: "e5", Source: "A", Target: "X", Length: 5, Capacity: 10})
		}},
		{"zero length", func(nodes *List[NodeRow], edges *List[EdgeRow]) {
			edges.Add(EdgeRow{ID: "e5", Source: "A", Target: "D", Length: 0, Capacity: 10})
		}},
		{"negative capacity", func(nodes *List[NodeRow], edges *List[EdgeRow]) {
			edges.Add(EdgeRow{ID: "e5", Source: "A", Target: "D", Length: 5, Capacity: -1})
		}},
		{"non-finite length", func(nodes *List[NodeRow], edges *List[EdgeRow]) {
			edges.Add(EdgeRow{ID: "e5", Source: "A", Target: "D", Length: math.NaN(), Capacity: 10})
		}},
		{"non-finite node location", func(nodes *List[NodeRow], edges *List[EdgeRow]) {
			nodes.Add(NodeRow{ID: "E", Lat: math.Inf(1), Lon: 1})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, edges := _TestRows()
			tt.modify(&nodes, &edges)
			_, err := BuildGraphStore(nodes, edges)
			assert.ErrorIs(t, err, ErrMalformedGraph)
		})
	}
}

func TestLoadGraphCSV(t *testing.T) {
	g, err := LoadGraphCSV("./testdata/nodes.csv", "./testdata/edges.csv")
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.GetNodeIndex("p1").HasValue())
}

func TestLoadGraphCSVMissingFile(t *testing.T) {
	_, err := LoadGraphCSV("./testdata/nodes.csv", "./testdata/does_not_exist.csv")
	assert.ErrorIs(t, err, ErrMalformedGraph)
}
