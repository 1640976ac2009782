package casemap

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/bitmark-inc/covid-map/schema"
)

// Boundary is the visible lat/lng rectangle of the map in degrees.
// West greater than East describes a rectangle crossing the antimeridian.
type Boundary struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`

	rect  s2.Rect
	built bool
}

// NewBoundary builds a boundary from its four extents
func NewBoundary(north, south, east, west float64) *Boundary {
	b := &Boundary{
		North: north,
		South: south,
		East:  east,
		West:  west,
	}
	b.rect = b.toRect()
	b.built = true
	return b
}

// BoundaryFromCorners builds a boundary from the north-east and south-west corners
func BoundaryFromCorners(ne, sw schema.LatLng) *Boundary {
	return NewBoundary(ne.Lat, sw.Lat, ne.Lng, sw.Lng)
}

// WorldBoundary covers the whole globe
func WorldBoundary() *Boundary {
	return NewBoundary(90, -90, 180, -180)
}

func (b *Boundary) toRect() s2.Rect {
	north := clampLat(b.North)
	south := clampLat(b.South)
	if south > north || math.IsNaN(b.East) || math.IsNaN(b.West) {
		return s2.EmptyRect()
	}

	lat := r1.Interval{
		Lo: (s1.Angle(south) * s1.Degree).Radians(),
		Hi: (s1.Angle(north) * s1.Degree).Radians(),
	}

	var lng s1.Interval
	if b.West <= b.East && b.East-b.West >= 360 {
		lng = s1.FullInterval()
	} else {
		lng = s1.IntervalFromEndpoints(
			(s1.Angle(wrapLng(b.West)) * s1.Degree).Radians(),
			(s1.Angle(wrapLng(b.East)) * s1.Degree).Radians(),
		)
	}

	return s2.Rect{Lat: lat, Lng: lng}
}

// Contains reports whether the coordinates are inside the boundary, edges included.
// A nil boundary has not been reported by the map yet and contains nothing.
func (b *Boundary) Contains(c schema.Coordinates) bool {
	if b == nil || !c.Valid() {
		return false
	}
	rect := b.rect
	if !b.built {
		rect = b.toRect()
	}
	return rect.ContainsLatLng(s2.LatLngFromDegrees(c.Latitude, wrapLng(c.Longitude)))
}

func clampLat(lat float64) float64 {
	if math.IsNaN(lat) {
		return lat
	}
	return math.Max(-90, math.Min(90, lat))
}

// wrapLng normalizes a longitude into [-180, 180]. The map widget reports
// longitudes past the antimeridian when the world is panned.
func wrapLng(lng float64) float64 {
	if lng >= -180 && lng <= 180 {
		return lng
	}
	lng = math.Mod(lng+180, 360)
	if lng < 0 {
		lng += 360
	}
	return lng - 180
}
