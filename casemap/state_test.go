package casemap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-map/schema"
)

func TestDefaultState(t *testing.T) {
	s := DefaultState()
	assert.Nil(t, s.Index)
	assert.Nil(t, s.Bounds)
	assert.Equal(t, float64(DefaultZoom), s.Zoom)
	assert.Equal(t, schema.LatLng{Lat: 40, Lng: -100}, s.Center)
	assert.Empty(t, s.Markers())
}

func TestReduceDataLoaded(t *testing.T) {
	idx := Aggregate(twoNations(), PinFirstSeen)
	now := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)

	s := Reduce(DefaultState(), DataLoaded{Index: idx, LoadID: "load-1", LoadedAt: now})
	assert.Equal(t, idx, s.Index)
	assert.Equal(t, "load-1", s.LoadID)
	assert.Equal(t, now, s.LoadedAt)
	assert.Equal(t, float64(DefaultZoom), s.Zoom, "data does not touch the viewport")

	kept := Reduce(s, DataLoaded{})
	assert.Equal(t, s, kept, "an empty load keeps the previous index")
}

func TestReduceViewportChanged(t *testing.T) {
	idx := Aggregate(twoNations(), PinFirstSeen)
	s := Reduce(DefaultState(), DataLoaded{Index: idx, LoadID: "load-1"})
	assert.Empty(t, s.Markers(), "no boundary yet")

	s = Reduce(s, ViewportChanged{Center: schema.LatLng{Lat: 45, Lng: -100}, Zoom: 3, Bounds: WorldBoundary()})
	assert.Equal(t, idx, s.Index)
	assert.Equal(t, float64(3), s.Zoom)
	assert.Len(t, s.Markers(), 2)

	s = Reduce(s, ViewportChanged{Zoom: 25, Bounds: WorldBoundary()})
	assert.Empty(t, s.Markers())
}

func TestReduceNilEvent(t *testing.T) {
	s := DefaultState()
	assert.Equal(t, s, Reduce(s, nil))
}

func TestViewportChangedFromMap(t *testing.T) {
	ev := ViewportChangedFromMap(schema.MapChange{
		Center: schema.LatLng{Lat: 47, Lng: -122},
		Zoom:   12,
		Bounds: &schema.MapBounds{
			NE: schema.LatLng{Lat: 47.6, Lng: -121.7},
			SW: schema.LatLng{Lat: 47.4, Lng: -121.9},
		},
	})
	assert.Equal(t, float64(12), ev.Zoom)
	assert.Equal(t, 47.6, ev.Bounds.North)
	assert.Equal(t, -121.9, ev.Bounds.West)

	ev = ViewportChangedFromMap(schema.MapChange{Zoom: 3})
	assert.Nil(t, ev.Bounds)
}
