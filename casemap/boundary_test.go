package casemap

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-map/schema"
)

func at(lat, lng float64) schema.Coordinates {
	return schema.Coordinates{Latitude: lat, Longitude: lng}
}

func TestBoundaryContainsCorners(t *testing.T) {
	b := NewBoundary(10, -5, 20, -30)

	for _, c := range []schema.Coordinates{at(10, 20), at(10, -30), at(-5, 20), at(-5, -30)} {
		assert.True(t, b.Contains(c), "corner %v must be contained", c)
	}

	assert.True(t, b.Contains(at(0, 0)))
	assert.False(t, b.Contains(at(10.0001, 0)))
	assert.False(t, b.Contains(at(-5.0001, 0)))
	assert.False(t, b.Contains(at(0, 20.0001)))
	assert.False(t, b.Contains(at(0, -30.0001)))
}

func TestBoundaryFromCorners(t *testing.T) {
	b := BoundaryFromCorners(schema.LatLng{Lat: 49, Lng: -66}, schema.LatLng{Lat: 24, Lng: -125})
	assert.Equal(t, 49.0, b.North)
	assert.Equal(t, 24.0, b.South)
	assert.Equal(t, -66.0, b.East)
	assert.Equal(t, -125.0, b.West)
	assert.True(t, b.Contains(at(40, -100)))
	assert.False(t, b.Contains(at(51.5, -0.1)))
}

func TestNilBoundaryContainsNothing(t *testing.T) {
	var b *Boundary
	assert.False(t, b.Contains(at(0, 0)))
	assert.False(t, b.Contains(at(40, -100)))
}

func TestBoundaryLiteral(t *testing.T) {
	b := &Boundary{North: 1, South: -1, East: 1, West: -1}
	assert.True(t, b.Contains(at(1, 1)))
	assert.False(t, b.Contains(at(2, 0)))
}

func TestBoundaryInvalidCoordinates(t *testing.T) {
	b := WorldBoundary()
	assert.False(t, b.Contains(schema.NoCoordinates()))
	assert.False(t, b.Contains(at(91, 0)))
	assert.False(t, b.Contains(at(0, math.NaN())))
}

func TestWorldBoundary(t *testing.T) {
	b := WorldBoundary()
	for _, c := range []schema.Coordinates{at(90, 180), at(-90, -180), at(0, 0), at(47.49, -121.83), at(-33.86, 151.2)} {
		assert.True(t, b.Contains(c), "%v", c)
	}
}

func TestBoundaryAcrossAntimeridian(t *testing.T) {
	b := NewBoundary(10, -10, -170, 170)
	assert.True(t, b.Contains(at(0, 175)))
	assert.True(t, b.Contains(at(0, -175)))
	assert.True(t, b.Contains(at(0, 180)))
	assert.True(t, b.Contains(at(0, -180)))
	assert.True(t, b.Contains(at(10, 170)))
	assert.True(t, b.Contains(at(-10, -170)))
	assert.False(t, b.Contains(at(0, 0)))
	assert.False(t, b.Contains(at(0, 169)))
}

func TestBoundaryWrappedLongitude(t *testing.T) {
	b := NewBoundary(10, -10, 200, 160)
	assert.True(t, b.Contains(at(0, 170)))
	assert.True(t, b.Contains(at(0, -165)))
	assert.False(t, b.Contains(at(0, -150)))
}

func TestBoundaryFullLongitudeSpan(t *testing.T) {
	b := NewBoundary(80, -80, 400, -200)
	assert.True(t, b.Contains(at(0, 0)))
	assert.True(t, b.Contains(at(0, 180)))
	assert.True(t, b.Contains(at(0, -180)))
}

func TestBoundaryInvertedLatitude(t *testing.T) {
	b := NewBoundary(-10, 10, 10, -10)
	assert.False(t, b.Contains(at(0, 0)))
}

func TestBoundaryWideningIsMonotonic(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		south := -80 + r.Float64()*70
		north := south + r.Float64()*80
		west := -170 + r.Float64()*160
		east := west + r.Float64()*160
		narrow := NewBoundary(north, south, east, west)
		wide := NewBoundary(north+r.Float64()*10, south-r.Float64()*10, east+r.Float64()*10, west-r.Float64()*10)

		for j := 0; j < 50; j++ {
			c := at(-90+r.Float64()*180, -180+r.Float64()*360)
			if narrow.Contains(c) {
				assert.True(t, wide.Contains(c), "widening %+v to %+v dropped %v", narrow, wide, c)
			}
		}
		for _, c := range []schema.Coordinates{at(north, east), at(south, west)} {
			assert.True(t, narrow.Contains(c))
			assert.True(t, wide.Contains(c))
		}
	}
}
