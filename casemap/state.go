package casemap

import (
	"time"

	"github.com/bitmark-inc/covid-map/schema"
)

const DefaultZoom = 6

// DefaultCenter is where the map opens before the first viewport event
var DefaultCenter = schema.LatLng{Lat: 40, Lng: -100}

// State is everything the markers of a map view are computed from.
// Each field is only ever replaced as a whole.
type State struct {
	Index    *PointIndex
	Zoom     float64
	Center   schema.LatLng
	Bounds   *Boundary
	LoadID   string
	LoadedAt time.Time
}

// DefaultState is the view before any data or viewport event arrived
func DefaultState() State {
	return State{
		Zoom:   DefaultZoom,
		Center: DefaultCenter,
	}
}

// Markers recomputes the visible markers of the state
func (s State) Markers() []schema.Marker {
	return VisibleMarkers(s.Index, s.Zoom, s.Bounds)
}

// Event is an input of the view: DataLoaded or ViewportChanged
type Event interface {
	apply(State) State
}

// DataLoaded replaces the point index after a successful fetch
type DataLoaded struct {
	Index    *PointIndex
	LoadID   string
	LoadedAt time.Time
}

func (e DataLoaded) apply(s State) State {
	if e.Index == nil {
		return s
	}
	s.Index = e.Index
	s.LoadID = e.LoadID
	s.LoadedAt = e.LoadedAt
	return s
}

// ViewportChanged is emitted by the map on every pan or zoom
type ViewportChanged struct {
	Center schema.LatLng
	Zoom   float64
	Bounds *Boundary
}

func (e ViewportChanged) apply(s State) State {
	s.Center = e.Center
	s.Zoom = e.Zoom
	s.Bounds = e.Bounds
	return s
}

// ViewportChangedFromMap converts the widget's change payload into an event
func ViewportChangedFromMap(change schema.MapChange) ViewportChanged {
	ev := ViewportChanged{
		Center: change.Center,
		Zoom:   change.Zoom,
	}
	if change.Bounds != nil {
		ev.Bounds = BoundaryFromCorners(change.Bounds.NE, change.Bounds.SW)
	}
	return ev
}

// Reduce returns the state after applying the event
func Reduce(s State, e Event) State {
	if e == nil {
		return s
	}
	return e.apply(s)
}
