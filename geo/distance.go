package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the fixed Earth radius used by Distance and Haversine.
const EarthRadiusKm = 6371.0

// Coord is a latitude/longitude pair in degrees.
type Coord struct {
	Lat float64
	Lon float64
}

// Point converts c into an orb.Point (longitude first, as GeoJSON expects).
func (c Coord) Point() orb.Point { return orb.Point{c.Lon, c.Lat} }

// DistanceTo returns Distance(c, o) in kilometers.
func (c Coord) DistanceTo(o Coord) float64 {
	return Distance(c.Lat, c.Lon, o.Lat, o.Lon)
}

// Distance returns the great-circle distance in kilometers between
// (lat1, lon1) and (lat2, lon2) using the reference formula described in
// the package documentation.
//
// Complexity: O(1).
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := lat2 - lat1
	dLon := lon2 - lon1

	// Only the absolute latitudes enter the cosine terms in radians.
	rLat1 := toRadians(lat1)
	rLat2 := toRadians(lat2)

	sLat := math.Sin(dLat / 2)
	sLon := math.Sin(dLon / 2)
	a := sLat*sLat + sLon*sLon*math.Cos(rLat1)*math.Cos(rLat2)

	return central(a)
}

// Haversine returns the textbook haversine distance in kilometers, with
// both deltas converted to radians. It is not used for edge weights.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	rLat1 := toRadians(lat1)
	rLat2 := toRadians(lat2)
	dLat := rLat2 - rLat1
	dLon := toRadians(lon2 - lon1)

	sLat := math.Sin(dLat / 2)
	sLon := math.Sin(dLon / 2)
	a := sLat*sLat + sLon*sLon*math.Cos(rLat1)*math.Cos(rLat2)

	return central(a)
}

// central turns the haversine term a into an arc length on the sphere.
// a is clamped so sqrt(1-a) stays real when rounding pushes it past 1.
func central(a float64) float64 {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
