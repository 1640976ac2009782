package casemap

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"

	"github.com/bitmark-inc/covid-map/schema"
)

var ErrUnknownPinPolicy = fmt.Errorf("unknown pin policy")

// vectors of counties on opposite sides of the globe cancel out
const minCentroidNorm = 1e-12

// PinPolicy decides the coordinates of an aggregated region
type PinPolicy int

const (
	// PinFirstSeen uses the first county of the region that has coordinates
	PinFirstSeen PinPolicy = iota
	// PinCentroid uses the spherical centroid of the region's counties
	PinCentroid
)

func (p PinPolicy) String() string {
	if p == PinCentroid {
		return "centroid"
	}
	return "first"
}

// ParsePinPolicy parses the configuration value of a pin policy
func ParsePinPolicy(s string) (PinPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first", "first-seen":
		return PinFirstSeen, nil
	case "centroid":
		return PinCentroid, nil
	}
	return PinFirstSeen, fmt.Errorf("%w: %q", ErrUnknownPinPolicy, s)
}

// Aggregate builds the point index of one data load from county points.
// The county band keeps the points in input order; state and nation totals are
// ordered by first appearance. A county without a state counts towards a state
// named after its nation, so state totals always add up to nation totals.
func Aggregate(points []schema.CasePoint, pin PinPolicy) *PointIndex {
	counties := make(CountyPoints, len(points))
	copy(counties, points)

	states := newRegionBuilder(pin)
	nations := newRegionBuilder(pin)
	for _, p := range counties {
		nations.add(RegionKey{Country: p.Country, Name: p.Country}, p)

		state := p.Province
		if state == "" {
			state = p.Country
		}
		states.add(RegionKey{Country: p.Country, Name: state}, p)
	}

	return &PointIndex{
		counties: counties,
		states:   StateTotals{states.build()},
		nations:  NationTotals{nations.build()},
	}
}

type regionAcc struct {
	total  RegionTotal
	pinned bool
	sum    r3.Vector
}

type regionBuilder struct {
	pin   PinPolicy
	order []RegionKey
	accs  map[RegionKey]*regionAcc
}

func newRegionBuilder(pin PinPolicy) *regionBuilder {
	return &regionBuilder{
		pin:  pin,
		accs: make(map[RegionKey]*regionAcc),
	}
}

func (b *regionBuilder) add(key RegionKey, p schema.CasePoint) {
	acc, ok := b.accs[key]
	if !ok {
		acc = &regionAcc{
			total: RegionTotal{
				Country:     key.Country,
				Name:        key.Name,
				Coordinates: schema.NoCoordinates(),
			},
		}
		b.accs[key] = acc
		b.order = append(b.order, key)
	}

	acc.total.Counties++
	acc.total.Stats = acc.total.Stats.Add(p.Stats)

	if !p.Coordinates.Valid() {
		return
	}
	if !acc.pinned {
		acc.total.Coordinates = p.Coordinates
		acc.pinned = true
	}
	if b.pin == PinCentroid {
		ll := s2.LatLngFromDegrees(p.Coordinates.Latitude, p.Coordinates.Longitude)
		acc.sum = acc.sum.Add(s2.PointFromLatLng(ll).Vector)
	}
}

func (b *regionBuilder) build() regionTotals {
	r := regionTotals{
		totals: make([]RegionTotal, 0, len(b.order)),
		index:  make(map[RegionKey]int, len(b.order)),
	}
	for _, key := range b.order {
		acc := b.accs[key]
		if b.pin == PinCentroid && acc.pinned && acc.sum.Norm() > minCentroidNorm {
			ll := s2.LatLngFromPoint(s2.Point{Vector: acc.sum.Normalize()})
			acc.total.Coordinates = schema.Coordinates{
				Latitude:  ll.Lat.Degrees(),
				Longitude: ll.Lng.Degrees(),
			}
		}
		r.index[key] = len(r.totals)
		r.totals = append(r.totals, acc.total)
	}
	return r
}
