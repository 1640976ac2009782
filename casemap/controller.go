package casemap

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/covid-map/schema"
)

var log = logrus.WithField("prefix", "casemap")

// CaseSource - the remote API returning every county-level case record in one call
type CaseSource interface {
	CountyCases(ctx context.Context) ([]schema.CasePoint, error)
}

// MarkerSink - the map widget placing the markers of a render
type MarkerSink interface {
	PlaceMarkers(markers []schema.Marker)
}

// CoordinateFiller - completes points which arrived without coordinates
type CoordinateFiller interface {
	Fill(ctx context.Context, points []schema.CasePoint) []schema.CasePoint
}

// Controller owns the view state of a map: the point index, the zoom and the boundary
type Controller struct {
	source  CaseSource
	filler  CoordinateFiller
	sink    MarkerSink
	pin     PinPolicy
	metrics tally.Scope
	now     func() time.Time

	mu    sync.RWMutex
	state State
}

type Option func(*Controller)

func WithPinPolicy(pin PinPolicy) Option {
	return func(c *Controller) { c.pin = pin }
}

func WithMarkerSink(sink MarkerSink) Option {
	return func(c *Controller) { c.sink = sink }
}

func WithCoordinateFiller(filler CoordinateFiller) Option {
	return func(c *Controller) { c.filler = filler }
}

func WithMetrics(scope tally.Scope) Option {
	return func(c *Controller) { c.metrics = scope }
}

// NewController creates a controller in the default state
func NewController(source CaseSource, opts ...Option) *Controller {
	c := &Controller{
		source:  source,
		pin:     PinFirstSeen,
		metrics: tally.NoopScope,
		now:     time.Now,
		state:   DefaultState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnReady handles the map's ready event by loading the case data.
// A failed load is logged and the previous state is kept.
func (c *Controller) OnReady(ctx context.Context) {
	if err := c.Refresh(ctx); err != nil {
		return
	}
	c.Render()
}

// Refresh fetches and aggregates the case data and replaces the point index
func (c *Controller) Refresh(ctx context.Context) error {
	sw := c.metrics.Timer("fetch.latency").Start()
	points, err := c.source.CountyCases(ctx)
	sw.Stop()
	if err != nil {
		c.metrics.Counter("fetch.failure").Inc(1)
		log.WithField("error", err).Error("fetch county cases")
		sentry.CaptureException(err)
		return fmt.Errorf("refresh county cases: %w", err)
	}

	if c.filler != nil {
		points = c.filler.Fill(ctx, points)
	}

	idx := Aggregate(points, c.pin)
	loadID := uuid.New().String()
	c.dispatch(DataLoaded{
		Index:    idx,
		LoadID:   loadID,
		LoadedAt: c.now(),
	})

	c.metrics.Counter("fetch.success").Inc(1)
	for band, size := range idx.Sizes() {
		c.metrics.Tagged(map[string]string{"band": band.String()}).Gauge("index.points").Update(float64(size))
	}

	log.WithFields(logrus.Fields{
		"load_id":  loadID,
		"counties": idx.Counties().Len(),
		"states":   idx.States().Len(),
		"nations":  idx.Nations().Len(),
		"pin":      c.pin.String(),
	}).Info("case index loaded")

	return nil
}

// OnViewportChanged handles a pan or zoom of the map and renders again.
// It returns the state the markers were computed from.
func (c *Controller) OnViewportChanged(ev ViewportChanged) (State, []schema.Marker) {
	s := c.dispatch(ev)
	return s, c.render(s)
}

// Render recomputes the visible markers and hands them to the marker sink
func (c *Controller) Render() []schema.Marker {
	return c.render(c.Snapshot())
}

func (c *Controller) render(s State) []schema.Marker {
	markers := s.Markers()
	c.metrics.Counter("render.requests").Inc(1)
	if c.sink != nil {
		c.sink.PlaceMarkers(markers)
	}
	return markers
}

// Snapshot returns the current state
func (c *Controller) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Watch refreshes the case data every interval until the context is done.
// A zero interval disables it.
func (c *Controller) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Refresh(ctx); err != nil {
				continue
			}
			c.Render()
		}
	}
}

func (c *Controller) dispatch(ev Event) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, ev)
	return c.state
}
