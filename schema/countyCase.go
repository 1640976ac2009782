package schema

import "strings"

const (
	CountyCaseCollection = "county_cases"

	CountyLevel = "county"
)

// CountyCase is a county record written by the case crawler into mongodb
type CountyCase struct {
	Source     string  `json:"source" bson:"source"`
	Name       string  `json:"name" bson:"name"`
	County     string  `json:"county" bson:"county"`
	State      string  `json:"state" bson:"state"`
	Country    string  `json:"country" bson:"country"`
	Level      string  `json:"level" bson:"level"`
	Location   GeoJSON `json:"location" bson:"location"`
	Cases      float64 `json:"cases" bson:"cases"`
	Deaths     float64 `json:"deaths" bson:"deaths"`
	ReportTime int64   `json:"report_ts" bson:"report_ts"`
}

type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// CasePoint converts the record; GeoJSON coordinates are ordered [lng, lat]
func (c CountyCase) CasePoint() CasePoint {
	p := CasePoint{
		Country:  c.Country,
		Province: c.State,
		County:   c.County,
		Stats: Stats{
			Confirmed: int64(c.Cases),
			Deaths:    int64(c.Deaths),
		},
		Coordinates: NoCoordinates(),
	}
	if len(c.Location.Coordinates) >= 2 {
		p.Coordinates = Coordinates{
			Latitude:  c.Location.Coordinates[1],
			Longitude: c.Location.Coordinates[0],
		}
	}
	return p
}

// NewCountyCase builds the stored record of a case point for one snapshot of a source
func NewCountyCase(p CasePoint, source string, reportTime int64) CountyCase {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.County, p.Province, p.Country} {
		if s != "" {
			parts = append(parts, s)
		}
	}

	c := CountyCase{
		Source:     source,
		Name:       strings.Join(parts, ", "),
		County:     p.County,
		State:      p.Province,
		Country:    p.Country,
		Level:      CountyLevel,
		Location:   GeoJSON{Type: "Point", Coordinates: []float64{}},
		Cases:      float64(p.Stats.Confirmed),
		Deaths:     float64(p.Stats.Deaths),
		ReportTime: reportTime,
	}
	if p.Coordinates.Valid() {
		c.Location.Coordinates = []float64{p.Coordinates.Longitude, p.Coordinates.Latitude}
	}
	return c
}
