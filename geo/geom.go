package geo

import (
	"math"
)

//*******************************************
// geometry structs
//*******************************************

// Coord holds (lon, lat) in degrees.
type Coord [2]float32

type CoordArray []Coord

func (self Coord) Lon() float32 {
	return self[0]
}
func (self Coord) Lat() float32 {
	return self[1]
}

//*******************************************
// distance
//*******************************************

const EARTH_RADIUS = 6371000.0

// HaversineDist returns the great-circle distance between a and b in meters.
func HaversineDist(a, b Coord) float64 {
	lat1 := float64(a.Lat()) * math.Pi / 180
	lat2 := float64(b.Lat()) * math.Pi / 180
	dlat := float64(b.Lat()-a.Lat()) * math.Pi / 180
	dlon := float64(b.Lon()-a.Lon()) * math.Pi / 180

	h := math.Sin(dlat/2)*math.Sin(dlat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	return 2 * EARTH_RADIUS * math.Asin(math.Sqrt(h))
}
