package casemap

import "github.com/bitmark-inc/covid-map/schema"

// BandPoints is the content of one band of a PointIndex.
// It is implemented by CountyPoints, StateTotals and NationTotals.
type BandPoints interface {
	Band() Band
	Len() int
	markers(bounds *Boundary) []schema.Marker
}

// CountyPoints is the county band: raw case points in source order
type CountyPoints []schema.CasePoint

func (CountyPoints) Band() Band { return BandCounty }

func (p CountyPoints) Len() int { return len(p) }

func (p CountyPoints) clone() CountyPoints {
	c := make(CountyPoints, len(p))
	copy(c, p)
	return c
}

func (p CountyPoints) markers(bounds *Boundary) []schema.Marker {
	markers := make([]schema.Marker, 0)
	for _, point := range p {
		if !bounds.Contains(point.Coordinates) {
			continue
		}
		markers = append(markers, schema.Marker{
			Band:      BandCounty.String(),
			Title:     point.Province,
			Subtitle:  point.County,
			Confirmed: point.Stats.Confirmed,
			Deaths:    point.Stats.Deaths,
			Latitude:  point.Coordinates.Latitude,
			Longitude: point.Coordinates.Longitude,
		})
	}
	return markers
}

// RegionKey identifies an aggregated region. For nations Name equals Country.
type RegionKey struct {
	Country string
	Name    string
}

// RegionTotal is the summed statistics of every county in a region
type RegionTotal struct {
	Country     string             `json:"country"`
	Name        string             `json:"name"`
	Counties    int                `json:"counties"`
	Stats       schema.Stats       `json:"stats"`
	Coordinates schema.Coordinates `json:"coordinates"`
}

type regionTotals struct {
	totals []RegionTotal
	index  map[RegionKey]int
}

func (r regionTotals) Len() int { return len(r.totals) }

// At returns the i-th region in first-seen order
func (r regionTotals) At(i int) RegionTotal { return r.totals[i] }

// All returns a copy of the regions in first-seen order
func (r regionTotals) All() []RegionTotal {
	all := make([]RegionTotal, len(r.totals))
	copy(all, r.totals)
	return all
}

func (r regionTotals) get(key RegionKey) (RegionTotal, bool) {
	i, ok := r.index[key]
	if !ok {
		return RegionTotal{}, false
	}
	return r.totals[i], true
}

// StateTotals is the state band, keyed by state name within a nation
type StateTotals struct {
	regionTotals
}

func (StateTotals) Band() Band { return BandState }

// State looks up the totals of one state
func (s StateTotals) State(country, state string) (RegionTotal, bool) {
	return s.get(RegionKey{Country: country, Name: state})
}

func (s StateTotals) markers(bounds *Boundary) []schema.Marker {
	markers := make([]schema.Marker, 0)
	for _, t := range s.totals {
		if !bounds.Contains(t.Coordinates) {
			continue
		}
		markers = append(markers, schema.Marker{
			Band:      BandState.String(),
			Title:     t.Country,
			Subtitle:  t.Name,
			Confirmed: t.Stats.Confirmed,
			Deaths:    t.Stats.Deaths,
			Latitude:  t.Coordinates.Latitude,
			Longitude: t.Coordinates.Longitude,
		})
	}
	return markers
}

// NationTotals is the nation band, keyed by nation name
type NationTotals struct {
	regionTotals
}

func (NationTotals) Band() Band { return BandNation }

// Nation looks up the totals of one nation
func (n NationTotals) Nation(name string) (RegionTotal, bool) {
	return n.get(RegionKey{Country: name, Name: name})
}

func (n NationTotals) markers(bounds *Boundary) []schema.Marker {
	markers := make([]schema.Marker, 0)
	for _, t := range n.totals {
		if !bounds.Contains(t.Coordinates) {
			continue
		}
		markers = append(markers, schema.Marker{
			Band:      BandNation.String(),
			Subtitle:  t.Name,
			Confirmed: t.Stats.Confirmed,
			Deaths:    t.Stats.Deaths,
			Latitude:  t.Coordinates.Latitude,
			Longitude: t.Coordinates.Longitude,
		})
	}
	return markers
}

// PointIndex holds the three bands of one data load. It is built by Aggregate
// and never modified afterwards; a refresh replaces the whole index.
type PointIndex struct {
	counties CountyPoints
	states   StateTotals
	nations  NationTotals
}

// Counties returns a copy of the county band
func (p *PointIndex) Counties() CountyPoints {
	if p == nil {
		return nil
	}
	return p.counties.clone()
}

func (p *PointIndex) States() StateTotals {
	if p == nil {
		return StateTotals{}
	}
	return p.states
}

func (p *PointIndex) Nations() NationTotals {
	if p == nil {
		return NationTotals{}
	}
	return p.nations
}

// Band returns the points of one band. A nil index has no bands.
func (p *PointIndex) Band(b Band) (BandPoints, bool) {
	if p == nil {
		return nil, false
	}
	switch b {
	case BandCounty:
		return p.counties.clone(), true
	case BandState:
		return p.states, true
	case BandNation:
		return p.nations, true
	}
	return nil, false
}

// Sizes returns the number of points per band
func (p *PointIndex) Sizes() map[Band]int {
	return map[Band]int{
		BandNation: p.Nations().Len(),
		BandState:  p.States().Len(),
		BandCounty: p.countyLen(),
	}
}

func (p *PointIndex) countyLen() int {
	if p == nil {
		return 0
	}
	return len(p.counties)
}
