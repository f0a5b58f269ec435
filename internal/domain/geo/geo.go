package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle math.
const EarthRadiusKm = 6371.0

// Coordinate is a WGS84-style latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceKm returns the great-circle distance between a and b using the
// haversine formula.
func DistanceKm(a, b Coordinate) float64 {
	latA := radians(a.Lat)
	latB := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLng*sinLng
	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// DegreesForKm converts a distance in km to approximate degree offsets at the
// given latitude. Longitude degrees shrink by cos(lat) away from the equator.
func DegreesForKm(km, atLat float64) (dLat, dLng float64) {
	kmPerDegree := math.Pi * EarthRadiusKm / 180
	dLat = km / kmPerDegree
	cosLat := math.Cos(radians(atLat))
	if cosLat < 1e-9 {
		cosLat = 1e-9
	}
	dLng = km / (kmPerDegree * cosLat)
	return dLat, dLng
}

// Offset returns the coordinate reached by moving km kilometers from origin
// along the given bearing (radians, 0 = north, pi/2 = east). The small-offset
// planar approximation is good enough at territory scale.
func Offset(origin Coordinate, bearing, km float64) Coordinate {
	dLat, dLng := DegreesForKm(km, origin.Lat)
	return Coordinate{
		Lat: origin.Lat + dLat*math.Cos(bearing),
		Lng: origin.Lng + dLng*math.Sin(bearing),
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
