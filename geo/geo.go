// Package geo holds the pure distance math used to answer radius queries
// against stores that only support per-field range filters.
package geo

import "math"

const (
	earthRadiusMiles = 3958.8

	// milesPerDegree is the rough length of one degree of latitude. It is
	// deliberately conservative: Bounds over-includes so that an exact
	// Distance check can make the final call.
	milesPerDegree = 69.0
)

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Box is a rectangular region in degree space.
type Box struct {
	LatMin float64
	LatMax float64
	LonMin float64
	LonMax float64
}

// Contains reports whether c falls inside the box, bounds inclusive.
func (b Box) Contains(c Coordinate) bool {
	return c.Latitude >= b.LatMin && c.Latitude <= b.LatMax &&
		c.Longitude >= b.LonMin && c.Longitude <= b.LonMax
}

// Distance returns the great-circle distance between a and b in miles,
// computed with the haversine formula.
func Distance(a, b Coordinate) float64 {
	latA := radians(a.Latitude)
	latB := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusMiles * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Bounds returns a degree-space box that is guaranteed to contain every point
// within radiusMiles of center. The approximation over-includes near the
// poles and for large radii, so callers must re-check candidates with
// Distance before trusting membership.
func Bounds(center Coordinate, radiusMiles float64) Box {
	delta := radiusMiles / milesPerDegree
	return Box{
		LatMin: center.Latitude - delta,
		LatMax: center.Latitude + delta,
		LonMin: center.Longitude - delta,
		LonMax: center.Longitude + delta,
	}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
