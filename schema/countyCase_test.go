package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountyCaseRoundTrip(t *testing.T) {
	p := CasePoint{
		Country:     "US",
		Province:    "Washington",
		County:      "King",
		Coordinates: Coordinates{Latitude: 47.49, Longitude: -121.83},
		Stats:       Stats{Confirmed: 100, Deaths: 10},
	}

	c := NewCountyCase(p, "jhu", 1590451200)
	assert.Equal(t, "jhu", c.Source)
	assert.Equal(t, "King, Washington, US", c.Name)
	assert.Equal(t, CountyLevel, c.Level)
	assert.Equal(t, []float64{-121.83, 47.49}, c.Location.Coordinates)
	assert.Equal(t, int64(1590451200), c.ReportTime)
	assert.Equal(t, p, c.CasePoint())
}

func TestCountyCaseWithoutCoordinates(t *testing.T) {
	p := CasePoint{Country: "US", Province: "Utah", County: "Unassigned", Coordinates: NoCoordinates()}

	c := NewCountyCase(p, "jhu", 1)
	assert.Equal(t, "Unassigned, Utah, US", c.Name)
	assert.Empty(t, c.Location.Coordinates)
	assert.False(t, c.CasePoint().Coordinates.Valid())
}

func TestCoordinatesValid(t *testing.T) {
	assert.True(t, Coordinates{Latitude: 90, Longitude: -180}.Valid())
	assert.False(t, Coordinates{Latitude: 90.1, Longitude: 0}.Valid())
	assert.False(t, Coordinates{Latitude: 0, Longitude: 180.5}.Valid())
	assert.False(t, NoCoordinates().Valid())
}

func TestStatsAdd(t *testing.T) {
	assert.Equal(t, Stats{Confirmed: 3, Deaths: 1}, Stats{Confirmed: 1}.Add(Stats{Confirmed: 2, Deaths: 1}))
}
