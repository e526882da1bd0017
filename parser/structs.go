package parser

import (
	"github.com/ttpr0/campus-routing/geo"
	"github.com/ttpr0/campus-routing/graph"
	. "github.com/ttpr0/campus-routing/util"
)

//*******************************************
// parser structs
//*******************************************

type TempNode struct {
	Point geo.Coord
	Count int32
}

type PathVertex struct {
	ID    string
	Point geo.Coord
}

type POI struct {
	Label string
	Point geo.Coord
}

//*******************************************
// way decoding
//*******************************************

var road_types = Dict[string, bool]{"service": true, "residential": true, "unclassified": true, "road": true}
var path_types = Dict[string, bool]{"footway": true, "path": true, "cycleway": true, "track": true,
	"pedestrian": true, "steps": true}

// walkable capacities by way kind, connectors get a lower share
const (
	ROAD_CAPACITY      = 600
	PATH_CAPACITY      = 400
	CONNECTOR_CAPACITY = 300
)

func DecodeWayKind(highway string) (graph.EdgeKind, float64) {
	if road_types.ContainsKey(highway) {
		return graph.ROAD, ROAD_CAPACITY
	}
	return graph.PATH, PATH_CAPACITY
}

func IsWalkableHighway(highway string) bool {
	if highway == "" {
		return false
	}
	return road_types.ContainsKey(highway) || path_types.ContainsKey(highway)
}
