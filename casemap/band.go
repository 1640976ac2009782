package casemap

import "math"

// Band is the granularity at which case data is displayed
type Band int

const (
	BandNation Band = iota + 1
	BandState
	BandCounty
)

const (
	MinZoom = 1
	MaxZoom = 20
)

func (b Band) String() string {
	switch b {
	case BandNation:
		return "nation"
	case BandState:
		return "state"
	case BandCounty:
		return "county"
	}
	return "unknown"
}

// BandRange is one row of the zoom table. A zoom belongs to the first row
// whose MaxZoom it does not exceed.
type BandRange struct {
	Band    Band    `json:"-"`
	Name    string  `json:"band"`
	MinZoom float64 `json:"min_zoom"`
	MaxZoom float64 `json:"max_zoom"`
}

var bandRanges = []BandRange{
	{Band: BandNation, Name: BandNation.String(), MinZoom: MinZoom, MaxZoom: 4},
	{Band: BandState, Name: BandState.String(), MinZoom: 4, MaxZoom: 9},
	{Band: BandCounty, Name: BandCounty.String(), MinZoom: 9, MaxZoom: MaxZoom},
}

// BandRanges returns a copy of the zoom band table
func BandRanges() []BandRange {
	r := make([]BandRange, len(bandRanges))
	copy(r, bandRanges)
	return r
}

// BandForZoom maps a zoom level to its band. Zoom outside [MinZoom, MaxZoom] has no band.
func BandForZoom(zoom float64) (Band, bool) {
	if math.IsNaN(zoom) || zoom < MinZoom || zoom > MaxZoom {
		return 0, false
	}
	for _, r := range bandRanges {
		if zoom <= r.MaxZoom {
			return r.Band, true
		}
	}
	return 0, false
}
