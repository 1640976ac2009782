package casemap

import "github.com/bitmark-inc/covid-map/schema"

// VisibleMarkers returns the markers of the band selected by zoom whose
// coordinates lie inside bounds. The result is empty, never nil, when the
// zoom is out of range, the index is not loaded yet or no boundary is known.
func VisibleMarkers(idx *PointIndex, zoom float64, bounds *Boundary) []schema.Marker {
	band, ok := BandForZoom(zoom)
	if !ok {
		return []schema.Marker{}
	}

	points, ok := idx.Band(band)
	if !ok || bounds == nil {
		return []schema.Marker{}
	}

	return points.markers(bounds)
}
