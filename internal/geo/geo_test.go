package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePoint(t *testing.T) {
	p := Point{Longitude: -122.4, Latitude: 37.8}
	assert.Equal(t, 0.0, Distance(p, p))
}

func TestDistance_KnownPairs(t *testing.T) {
	// Reference distances computed with the haversine formula on the mean
	// Earth radius; tolerance is generous because callers only compare
	// against radii in the hundreds of meters and up.
	tests := []struct {
		name   string
		a, b   Point
		meters float64
	}{
		{
			name:   "paris to london",
			a:      Point{Longitude: 2.3522, Latitude: 48.8566},
			b:      Point{Longitude: -0.1278, Latitude: 51.5074},
			meters: 343500,
		},
		{
			name:   "one degree of latitude",
			a:      Point{Longitude: 0, Latitude: 0},
			b:      Point{Longitude: 0, Latitude: 1},
			meters: 111195,
		},
		{
			name: "one degree of longitude at 60N is half the equatorial one",
			a:    Point{Longitude: 10, Latitude: 60},
			b:    Point{Longitude: 11, Latitude: 60},
			// cos(60°) = 0.5
			meters: 55597,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.meters, Distance(tt.a, tt.b), tt.meters*0.005)
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := Point{Longitude: -122.4, Latitude: 37.8}
	b := Point{Longitude: 13.4, Latitude: 52.5}
	assert.Equal(t, Distance(a, b), Distance(b, a))
}

func TestCirclesIntersect_InclusiveBoundary(t *testing.T) {
	a := Point{Longitude: -122.4, Latitude: 37.8}
	b := Point{Longitude: -122.3, Latitude: 37.75}

	d := Distance(a, b)

	// Radii summing exactly to the center distance still count as touching.
	assert.True(t, CirclesIntersect(a, d/2, b, d/2))

	// One meter short of touching does not.
	assert.False(t, CirclesIntersect(a, d/2, b, d/2-1))
}

func TestCirclesIntersect_Containment(t *testing.T) {
	center := Point{Longitude: 2.3522, Latitude: 48.8566}
	nearby := Point{Longitude: 2.3530, Latitude: 48.8570}

	// A small circle inside a big one intersects it.
	assert.True(t, CirclesIntersect(center, 10000, nearby, 50))
}
