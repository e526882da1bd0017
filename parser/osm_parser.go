package parser

import (
	"context"
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/ttpr0/campus-routing/geo"
	"github.com/ttpr0/campus-routing/graph"
	. "github.com/ttpr0/campus-routing/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// osm parsing
//*******************************************

// ParseOSMGraph builds the campus graph tables from the walkable ways
// of an OSM pbf extract. Two passes over the file: ways first to find
// the referenced nodes, then nodes for their locations.
func ParseOSMGraph(pbf_file string) (List[graph.NodeRow], List[graph.EdgeRow], error) {
	file, err := os.Open(pbf_file)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	osm_nodes := NewDict[int64, TempNode](1000)
	if err := _ScanWayNodes(file, &osm_nodes); err != nil {
		return nil, nil, err
	}
	if _, err := file.Seek(0, 0); err != nil {
		return nil, nil, err
	}
	if err := _ScanNodeLocations(file, &osm_nodes); err != nil {
		return nil, nil, err
	}
	if _, err := file.Seek(0, 0); err != nil {
		return nil, nil, err
	}

	node_rows := NewList[graph.NodeRow](osm_nodes.Length())
	node_mapping := NewDict[int64, string](osm_nodes.Length())
	edge_rows, err := _ScanWayEdges(file, osm_nodes, &node_rows, &node_mapping)
	if err != nil {
		return nil, nil, err
	}
	slog.Info(fmt.Sprintf("parsed osm extract: %v nodes, %v edges", node_rows.Length(), edge_rows.Length()))
	return node_rows, edge_rows, nil
}

func _ScanWayNodes(file *os.File, osm_nodes *Dict[int64, TempNode]) error {
	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		if !IsWalkableHighway(way.Tags.Find("highway")) {
			continue
		}
		for _, way_node := range way.Nodes {
			node := osm_nodes.Get(int64(way_node.ID))
			node.Count += 1
			osm_nodes.Set(int64(way_node.ID), node)
		}
	}
	return scanner.Err()
}

func _ScanNodeLocations(file *os.File, osm_nodes *Dict[int64, TempNode]) error {
	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if !osm_nodes.ContainsKey(int64(node.ID)) {
			continue
		}
		temp := osm_nodes.Get(int64(node.ID))
		temp.Point = geo.Coord{float32(node.Lon), float32(node.Lat)}
		osm_nodes.Set(int64(node.ID), temp)
	}
	return scanner.Err()
}

func _ScanWayEdges(file *os.File, osm_nodes Dict[int64, TempNode], node_rows *List[graph.NodeRow], node_mapping *Dict[int64, string]) (List[graph.EdgeRow], error) {
	edge_rows := NewList[graph.EdgeRow](1000)
	next_edge_id := 1

	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		highway := way.Tags.Find("highway")
		if !IsWalkableHighway(highway) {
			continue
		}
		kind, capacity := DecodeWayKind(highway)
		for i := 0; i+1 < len(way.Nodes); i++ {
			a_id := int64(way.Nodes[i].ID)
			b_id := int64(way.Nodes[i+1].ID)
			a := osm_nodes.Get(a_id)
			b := osm_nodes.Get(b_id)
			length := math.Round(geo.HaversineDist(a.Point, b.Point)*10) / 10
			if length <= 0 {
				continue
			}
			u := _ResolveOSMNode(a_id, a, node_rows, node_mapping)
			v := _ResolveOSMNode(b_id, b, node_rows, node_mapping)
			edge_rows.Add(graph.EdgeRow{
				ID:       fmt.Sprintf("e%v", next_edge_id),
				Source:   u,
				Target:   v,
				Length:   length,
				Capacity: capacity,
				Kind:     kind.String(),
			})
			next_edge_id += 1
		}
	}
	return edge_rows, scanner.Err()
}

func _ResolveOSMNode(osm_id int64, temp TempNode, node_rows *List[graph.NodeRow], node_mapping *Dict[int64, string]) string {
	if node_mapping.ContainsKey(osm_id) {
		return node_mapping.Get(osm_id)
	}
	id := fmt.Sprintf("n%v", node_rows.Length()+1)
	node_mapping.Set(osm_id, id)
	node_rows.Add(graph.NodeRow{
		ID:    id,
		Lat:   float64(temp.Point.Lat()),
		Lon:   float64(temp.Point.Lon()),
		Label: fmt.Sprintf("Node %v", node_rows.Length()+1),
		Kind:  "junction",
	})
	return id
}
