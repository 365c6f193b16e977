// Package geo provides the geodesic math behind geofenced alerts. Radii are
// real-world distances in meters, so intersection tests must account for
// Earth curvature instead of treating coordinates as planar units.
package geo

import "math"

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000.0

// Point is a WGS84 coordinate pair.
type Point struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Distance returns the great-circle distance between two points in meters.
func Distance(a, b Point) float64 {
	latA := radians(a.Latitude)
	latB := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(latA)*math.Cos(latB)*math.Pow(math.Sin(dLon/2), 2)

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// CirclesIntersect reports whether two circles on the sphere overlap.
// Touching circles (center distance exactly equal to the sum of radii)
// count as intersecting.
func CirclesIntersect(centerA Point, radiusA float64, centerB Point, radiusB float64) bool {
	return Distance(centerA, centerB) <= radiusA+radiusB
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
