package terra

import (
	"math"
	"math/rand"

	"terraverse/internal/domain/geo"
)

// SamplePointInRadius picks a uniformly distributed point inside the circle
// of radiusKm around center. The sqrt on the radial draw gives area-uniform
// density; drawing the radius directly would pile samples near the center.
func SamplePointInRadius(rng *rand.Rand, center geo.Coordinate, radiusKm float64) geo.Coordinate {
	bearing := rng.Float64() * 2 * math.Pi
	r := math.Sqrt(rng.Float64()) * radiusKm
	return geo.Offset(center, bearing, r)
}

// CollidesWithAny reports whether candidate lies within minSeparationKm of
// any existing building. Linear scan; building counts per agent stay small.
func CollidesWithAny(candidate geo.Coordinate, buildings []Building, minSeparationKm float64) bool {
	for _, b := range buildings {
		if geo.DistanceKm(candidate, b.Position) < minSeparationKm {
			return true
		}
	}
	return false
}

// NearestBuilding returns the building closest to pos among those matching
// keep, and false if none match.
func NearestBuilding(pos geo.Coordinate, buildings []Building, keep func(Building) bool) (Building, bool) {
	best := Building{}
	bestDist := math.MaxFloat64
	found := false
	for _, b := range buildings {
		if keep != nil && !keep(b) {
			continue
		}
		d := geo.DistanceKm(pos, b.Position)
		if d < bestDist {
			best = b
			bestDist = d
			found = true
		}
	}
	return best, found
}
