package casemap

import (
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/covid-map/schema"
)

func county(country, province, name string, lat, lng float64, confirmed, deaths int64) schema.CasePoint {
	return schema.CasePoint{
		Country:     country,
		Province:    province,
		County:      name,
		Coordinates: schema.Coordinates{Latitude: lat, Longitude: lng},
		Stats:       schema.Stats{Confirmed: confirmed, Deaths: deaths},
	}
}

// twoNations has two nations with three counties each
func twoNations() []schema.CasePoint {
	return []schema.CasePoint{
		county("US", "Washington", "King", 47.49, -121.83, 100, 10),
		county("US", "Washington", "Pierce", 47.04, -122.14, 50, 5),
		county("US", "Oregon", "Multnomah", 45.55, -122.42, 30, 1),
		county("Canada", "Ontario", "Toronto", 43.65, -79.38, 70, 7),
		county("Canada", "Ontario", "Ottawa", 45.42, -75.69, 20, 2),
		county("Canada", "Quebec", "Montreal", 45.50, -73.57, 90, 9),
	}
}

func counterValue(scope tally.TestScope, name string) int64 {
	for _, c := range scope.Snapshot().Counters() {
		if c.Name() == name {
			return c.Value()
		}
	}
	return 0
}
