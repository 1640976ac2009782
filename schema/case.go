package schema

import "math"

// Coordinates is a WGS84 position in degrees
type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Valid reports whether the coordinates are finite and within the lat/lng ranges
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// NoCoordinates marks a point whose source did not report a position
func NoCoordinates() Coordinates {
	return Coordinates{Latitude: math.NaN(), Longitude: math.NaN()}
}

type Stats struct {
	Confirmed int64 `json:"confirmed" bson:"confirmed"`
	Deaths    int64 `json:"deaths" bson:"deaths"`
}

// Add returns the element-wise sum of two stats
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Confirmed: s.Confirmed + o.Confirmed,
		Deaths:    s.Deaths + o.Deaths,
	}
}

// CasePoint is the case statistics of one county as delivered by a case source.
// Province and County are empty when the source reports at a coarser level.
type CasePoint struct {
	Country     string      `json:"country" bson:"country"`
	Province    string      `json:"province" bson:"province"`
	County      string      `json:"county" bson:"county"`
	Coordinates Coordinates `json:"coordinates" bson:"coordinates"`
	Stats       Stats       `json:"stats" bson:"stats"`
}
