package casemap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandForZoom(t *testing.T) {
	testCases := []struct {
		zoom float64
		band Band
		ok   bool
	}{
		{1, BandNation, true},
		{3, BandNation, true},
		{4, BandNation, true},
		{4.5, BandState, true},
		{6, BandState, true},
		{9, BandState, true},
		{9.25, BandCounty, true},
		{12, BandCounty, true},
		{20, BandCounty, true},
		{0.99, 0, false},
		{0, 0, false},
		{-3, 0, false},
		{20.01, 0, false},
		{25, 0, false},
		{math.NaN(), 0, false},
		{math.Inf(1), 0, false},
	}

	for _, tc := range testCases {
		band, ok := BandForZoom(tc.zoom)
		assert.Equal(t, tc.ok, ok, "wrong ok for zoom %v", tc.zoom)
		assert.Equal(t, tc.band, band, "wrong band for zoom %v", tc.zoom)
	}
}

func TestBandForZoomDomain(t *testing.T) {
	for z := -2.0; z <= 25; z += 0.125 {
		band, ok := BandForZoom(z)
		inDomain := z >= MinZoom && z <= MaxZoom
		assert.Equal(t, inDomain, ok, "zoom %v", z)
		if ok {
			assert.Contains(t, []Band{BandNation, BandState, BandCounty}, band)
		}
	}
}

func TestBandRangesAreContiguous(t *testing.T) {
	ranges := BandRanges()
	assert.Len(t, ranges, 3)
	assert.Equal(t, float64(MinZoom), ranges[0].MinZoom)
	assert.Equal(t, float64(MaxZoom), ranges[len(ranges)-1].MaxZoom)
	for i := 1; i < len(ranges); i++ {
		assert.Equal(t, ranges[i-1].MaxZoom, ranges[i].MinZoom)
	}

	ranges[0].MaxZoom = 100
	assert.Equal(t, float64(4), BandRanges()[0].MaxZoom, "table must not be modifiable")
}

func TestBandString(t *testing.T) {
	assert.Equal(t, "nation", BandNation.String())
	assert.Equal(t, "state", BandState.String())
	assert.Equal(t, "county", BandCounty.String())
	assert.Equal(t, "unknown", Band(0).String())
}
