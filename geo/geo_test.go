package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floodwatch/floodwatch-sync-api/geo"
)

func TestDistance_Symmetry(t *testing.T) {
	pairs := [][2]geo.Coordinate{
		{{Latitude: 29.4241, Longitude: -98.4936}, {Latitude: 29.43, Longitude: -98.50}},
		{{Latitude: 0, Longitude: 0}, {Latitude: 45, Longitude: 90}},
		{{Latitude: -33.8688, Longitude: 151.2093}, {Latitude: 51.5074, Longitude: -0.1278}},
		{{Latitude: 89.9, Longitude: 10}, {Latitude: -89.9, Longitude: -170}},
	}

	for _, p := range pairs {
		ab := geo.Distance(p[0], p[1])
		ba := geo.Distance(p[1], p[0])
		assert.InDelta(t, ab, ba, 1e-6)
	}
}

func TestDistance_ZeroIffEqual(t *testing.T) {
	a := geo.Coordinate{Latitude: 29.4241, Longitude: -98.4936}

	assert.Zero(t, geo.Distance(a, a))

	b := geo.Coordinate{Latitude: 29.4242, Longitude: -98.4936}
	assert.Greater(t, geo.Distance(a, b), 0.0)
}

func TestDistance_KnownValues(t *testing.T) {
	// Downtown San Antonio to the ~0.6mi report used across the stores tests.
	center := geo.Coordinate{Latitude: 29.4241, Longitude: -98.4936}
	near := geo.Coordinate{Latitude: 29.43, Longitude: -98.50}
	far := geo.Coordinate{Latitude: 29.60, Longitude: -98.90}

	assert.InDelta(t, 0.6, geo.Distance(center, near), 0.2)
	assert.InDelta(t, 27.0, geo.Distance(center, far), 3.0)

	// San Antonio to Austin, roughly 73 miles.
	austin := geo.Coordinate{Latitude: 30.2672, Longitude: -97.7431}
	assert.InDelta(t, 73.0, geo.Distance(center, austin), 5.0)
}

func TestDistance_TriangleInequality(t *testing.T) {
	a := geo.Coordinate{Latitude: 29.4241, Longitude: -98.4936}
	b := geo.Coordinate{Latitude: 30.2672, Longitude: -97.7431}
	c := geo.Coordinate{Latitude: 32.7767, Longitude: -96.7970}

	assert.LessOrEqual(t, geo.Distance(a, c), geo.Distance(a, b)+geo.Distance(b, c)+1e-6)
}

func TestBounds_ContainsRadius(t *testing.T) {
	center := geo.Coordinate{Latitude: 29.4241, Longitude: -98.4936}
	box := geo.Bounds(center, 10)

	assert.InDelta(t, 10.0/69.0, box.LatMax-center.Latitude, 1e-9)
	assert.True(t, box.Contains(geo.Coordinate{Latitude: 29.43, Longitude: -98.50}))

	// The box is a coarse prefilter: a point ~25mi away still lands inside
	// when measured per axis in degrees. Exact filtering is the caller's job.
	inBoxButFar := geo.Coordinate{Latitude: 29.50, Longitude: -98.55}
	assert.True(t, box.Contains(inBoxButFar))
	assert.Greater(t, geo.Distance(center, inBoxButFar), 0.0)
}

func TestBounds_ExcludesOutsidePoints(t *testing.T) {
	center := geo.Coordinate{Latitude: 29.4241, Longitude: -98.4936}
	box := geo.Bounds(center, 10)

	assert.False(t, box.Contains(geo.Coordinate{Latitude: 29.60, Longitude: -98.90}))
}
