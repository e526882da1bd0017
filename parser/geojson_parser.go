package parser

import (
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/ttpr0/campus-routing/geo"
	"github.com/ttpr0/campus-routing/graph"
	. "github.com/ttpr0/campus-routing/util"
	"golang.org/x/exp/slog"
)

// coordinate rounding for vertex dedup
const coord_precision = 1e6

// POIs further than this from any path vertex are dropped
const snap_threshold = 200.0

//*******************************************
// geojson parsing
//*******************************************

// ParseGeoJSONGraph builds the campus graph tables from a path
// geometry file (LineString features) and a POI file (Point features
// with a building_name property). Path vertices become n* nodes, POIs
// become p* nodes snapped to their nearest path vertices.
func ParseGeoJSONGraph(paths_file, pois_file string) (List[graph.NodeRow], List[graph.EdgeRow], error) {
	paths, err := _ReadFeatures(paths_file)
	if err != nil {
		return nil, nil, err
	}
	pois_fc, err := _ReadFeatures(pois_file)
	if err != nil {
		return nil, nil, err
	}

	vertices, coord_mapping := _BuildPathVertices(paths)
	slog.Info(fmt.Sprintf("parsed %v path vertices", vertices.Length()))

	node_rows := NewList[graph.NodeRow](vertices.Length())
	for i, v := range vertices {
		node_rows.Add(graph.NodeRow{
			ID:    v.ID,
			Lat:   float64(v.Point.Lat()),
			Lon:   float64(v.Point.Lon()),
			Label: fmt.Sprintf("Node %v", i+1),
			Kind:  "junction",
		})
	}

	edge_rows := _BuildPathEdges(paths, coord_mapping)
	slog.Info(fmt.Sprintf("parsed %v path edges", edge_rows.Length()))

	pois := _ExtractPOIs(pois_fc)
	_SnapPOIs(pois, vertices, &node_rows, &edge_rows)

	return node_rows, edge_rows, nil
}

func _ReadFeatures(file string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return geojson.UnmarshalFeatureCollection(data)
}

func _BuildPathVertices(fc *geojson.FeatureCollection) (List[PathVertex], Dict[Tuple[float64, float64], string]) {
	vertices := NewList[PathVertex](100)
	coord_mapping := NewDict[Tuple[float64, float64], string](100)
	next_id := 1
	for _, feature := range fc.Features {
		line, ok := feature.Geometry.(orb.LineString)
		if !ok {
			continue
		}
		for _, point := range line {
			key := _CoordKey(point)
			if coord_mapping.ContainsKey(key) {
				continue
			}
			id := fmt.Sprintf("n%v", next_id)
			coord_mapping[key] = id
			vertices.Add(PathVertex{
				ID:    id,
				Point: geo.Coord{float32(point[0]), float32(point[1])},
			})
			next_id += 1
		}
	}
	return vertices, coord_mapping
}

func _BuildPathEdges(fc *geojson.FeatureCollection, coord_mapping Dict[Tuple[float64, float64], string]) List[graph.EdgeRow] {
	edge_rows := NewList[graph.EdgeRow](100)
	next_id := 1
	for _, feature := range fc.Features {
		line, ok := feature.Geometry.(orb.LineString)
		if !ok {
			continue
		}
		highway, _ := feature.Properties["highway"].(string)
		kind, capacity := DecodeWayKind(highway)
		for i := 0; i+1 < len(line); i++ {
			u := coord_mapping.Get(_CoordKey(line[i]))
			v := coord_mapping.Get(_CoordKey(line[i+1]))
			if u == "" || v == "" || u == v {
				continue
			}
			a := geo.Coord{float32(line[i][0]), float32(line[i][1])}
			b := geo.Coord{float32(line[i+1][0]), float32(line[i+1][1])}
			length := math.Round(geo.HaversineDist(a, b)*10) / 10
			if length <= 0 {
				continue
			}
			edge_rows.Add(graph.EdgeRow{
				ID:       fmt.Sprintf("e%v", next_id),
				Source:   u,
				Target:   v,
				Length:   length,
				Capacity: capacity,
				Kind:     kind.String(),
			})
			next_id += 1
		}
	}
	return edge_rows
}

func _ExtractPOIs(fc *geojson.FeatureCollection) List[POI] {
	pois := NewList[POI](20)
	for _, feature := range fc.Features {
		point, ok := feature.Geometry.(orb.Point)
		if !ok {
			continue
		}
		name, _ := feature.Properties["building_name"].(string)
		if name == "" {
			continue
		}
		pois.Add(POI{
			Label: name,
			Point: geo.Coord{float32(point[0]), float32(point[1])},
		})
	}
	return pois
}

// _SnapPOIs attaches each POI to its two nearest path vertices within
// the snap threshold. POIs with no vertex in range are dropped.
func _SnapPOIs(pois List[POI], vertices List[PathVertex], node_rows *List[graph.NodeRow], edge_rows *List[graph.EdgeRow]) {
	next_edge_id := edge_rows.Length() + 1
	for i, poi := range pois {
		type _Near struct {
			dist float64
			id   string
		}
		near := NewList[_Near](vertices.Length())
		for _, v := range vertices {
			near.Add(_Near{dist: geo.HaversineDist(poi.Point, v.Point), id: v.ID})
		}
		sort.Slice(near, func(a, b int) bool {
			if near[a].dist != near[b].dist {
				return near[a].dist < near[b].dist
			}
			return near[a].id < near[b].id
		})

		poi_id := fmt.Sprintf("p%v", i+1)
		attached := 0
		for _, n := range near {
			if n.dist > snap_threshold || attached == 2 {
				break
			}
			length := math.Round(n.dist*10) / 10
			if length <= 0 {
				length = 0.1
			}
			edge_rows.Add(graph.EdgeRow{
				ID:       fmt.Sprintf("e%v", next_edge_id),
				Source:   poi_id,
				Target:   n.id,
				Length:   length,
				Capacity: CONNECTOR_CAPACITY,
				Kind:     graph.CONNECTOR.String(),
			})
			next_edge_id += 1
			attached += 1
		}
		if attached == 0 {
			slog.Warn(fmt.Sprintf("poi %v is too far from any path, skipping", poi.Label))
			continue
		}
		node_rows.Add(graph.NodeRow{
			ID:    poi_id,
			Lat:   float64(poi.Point.Lat()),
			Lon:   float64(poi.Point.Lon()),
			Label: poi.Label,
			Kind:  "poi",
		})
	}
}

func _CoordKey(point orb.Point) Tuple[float64, float64] {
	return MakeTuple(math.Round(point[1]*coord_precision)/coord_precision, math.Round(point[0]*coord_precision)/coord_precision)
}
