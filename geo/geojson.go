package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

//*******************************************
// geojson helpers
//*******************************************

func NewLineFeature(line CoordArray) *geojson.Feature {
	geom := make(orb.LineString, len(line))
	for i, c := range line {
		geom[i] = orb.Point{float64(c.Lon()), float64(c.Lat())}
	}
	return geojson.NewFeature(geom)
}

func NewPointFeature(point Coord) *geojson.Feature {
	geom := orb.Point{float64(point.Lon()), float64(point.Lat())}
	return geojson.NewFeature(geom)
}
