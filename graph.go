package main

import (
	"github.com/paulmach/orb/geojson"
	"github.com/ttpr0/campus-routing/geo"
	"github.com/ttpr0/campus-routing/graph"
)

//**********************************************************
// graph handlers
//**********************************************************

func HandleGraphRequest(none) Result {
	g := MANAGER.GetGraph()
	nodes := make([]graph.NodeRow, 0, g.NodeCount())
	for i := 0; i < g.NodeCount(); i++ {
		node := g.GetNode(int32(i))
		nodes = append(nodes, graph.NodeRow{
			ID:    node.ID,
			Lat:   float64(node.Loc.Lat()),
			Lon:   float64(node.Loc.Lon()),
			Label: node.Label,
			Kind:  node.Kind.String(),
		})
	}
	edges := make([]graph.EdgeRow, 0, g.EdgeCount())
	for i := 0; i < g.EdgeCount(); i++ {
		edge := g.GetEdge(int32(i))
		edges = append(edges, graph.EdgeRow{
			ID:       edge.ID,
			Source:   g.GetNode(edge.NodeA).ID,
			Target:   g.GetNode(edge.NodeB).ID,
			Length:   edge.Length,
			Capacity: edge.Capacity,
			Kind:     edge.Kind.String(),
		})
	}
	return OK(GraphResponse{Nodes: nodes, Edges: edges})
}

// HandleGraphGeoJSONRequest dumps the graph as a FeatureCollection for
// the map client, edges as LineStrings and nodes as Points.
func HandleGraphGeoJSONRequest(none) Result {
	g := MANAGER.GetGraph()
	fc := geojson.NewFeatureCollection()
	for i := 0; i < g.EdgeCount(); i++ {
		edge := g.GetEdge(int32(i))
		line := geo.CoordArray{g.GetNode(edge.NodeA).Loc, g.GetNode(edge.NodeB).Loc}
		feature := geo.NewLineFeature(line)
		feature.Properties["id"] = edge.ID
		feature.Properties["kind"] = edge.Kind.String()
		feature.Properties["length_m"] = edge.Length
		feature.Properties["capacity"] = edge.Capacity
		fc.Append(feature)
	}
	for i := 0; i < g.NodeCount(); i++ {
		node := g.GetNode(int32(i))
		feature := geo.NewPointFeature(node.Loc)
		feature.Properties["id"] = node.ID
		feature.Properties["label"] = node.Label
		feature.Properties["kind"] = node.Kind.String()
		fc.Append(feature)
	}
	return OK(fc)
}
