package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/campus-routing/graph"
)

func TestParseGeoJSONGraph(t *testing.T) {
	nodes, edges, err := ParseGeoJSONGraph("./testdata/paths.geojson", "./testdata/pois.geojson")
	require.NoError(t, err)

	// 4 deduplicated path vertices plus the snapped poi, the far poi
	// and the unnamed point are dropped
	assert.Equal(t, 5, nodes.Length())
	assert.Equal(t, 5, edges.Length())

	junctions := 0
	pois := 0
	for _, n := range nodes {
		switch n.Kind {
		case "junction":
			junctions += 1
		case "poi":
			pois += 1
		}
	}
	assert.Equal(t, 4, junctions)
	assert.Equal(t, 1, pois)

	paths := 0
	roads := 0
	connectors := 0
	for _, e := range edges {
		assert.Greater(t, e.Length, 0.0)
		switch e.Kind {
		case "path":
			paths += 1
			assert.Equal(t, float64(PATH_CAPACITY), e.Capacity)
		case "road":
			roads += 1
			assert.Equal(t, float64(ROAD_CAPACITY), e.Capacity)
		case "connector":
			connectors += 1
			assert.Equal(t, float64(CONNECTOR_CAPACITY), e.Capacity)
		}
	}
	assert.Equal(t, 2, paths)
	assert.Equal(t, 1, roads)
	assert.Equal(t, 2, connectors)

	// the parsed tables pass graph validation
	g, err := graph.BuildGraphStore(nodes, edges)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())

	poi := g.GetNodeIndex("p1")
	require.True(t, poi.HasValue())
	assert.Equal(t, "Library", g.GetNode(poi.Value).Label)
	assert.Equal(t, graph.POI, g.GetNode(poi.Value).Kind)
}

func TestStoreAndLoadGraphCSV(t *testing.T) {
	nodes, edges, err := ParseGeoJSONGraph("./testdata/paths.geojson", "./testdata/pois.geojson")
	require.NoError(t, err)

	dir := t.TempDir()
	nodes_file := filepath.Join(dir, "nodes.csv")
	edges_file := filepath.Join(dir, "edges.csv")
	require.NoError(t, StoreGraphCSV(nodes, edges, nodes_file, edges_file))

	g, err := graph.LoadGraphCSV(nodes_file, edges_file)
	require.NoError(t, err)
	assert.Equal(t, nodes.Length(), g.NodeCount())
	assert.Equal(t, edges.Length(), g.EdgeCount())
}

func TestDecodeWayKind(t *testing.T) {
	kind, capacity := DecodeWayKind("residential")
	assert.Equal(t, graph.ROAD, kind)
	assert.Equal(t, float64(ROAD_CAPACITY), capacity)

	kind, capacity = DecodeWayKind("footway")
	assert.Equal(t, graph.PATH, kind)
	assert.Equal(t, float64(PATH_CAPACITY), capacity)

	assert.True(t, IsWalkableHighway("footway"))
	assert.True(t, IsWalkableHighway("service"))
	assert.False(t, IsWalkableHighway(""))
	assert.False(t, IsWalkableHighway("motorway"))
}
