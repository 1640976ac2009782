package schema

// Marker is one display card placed by the map widget
type Marker struct {
	Band      string  `json:"band"`
	Title     string  `json:"title,omitempty"`
	Subtitle  string  `json:"subtitle"`
	Confirmed int64   `json:"confirmed"`
	Deaths    int64   `json:"deaths"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Caption   string  `json:"caption,omitempty"`
}

// LatLng is the point shape used by the map widget events
type LatLng struct {
	Lat float64 `json:"lat" binding:"min=-90,max=90"`
	Lng float64 `json:"lng"`
}

// MapBounds is the visible rectangle reported by the map widget.
// Only the north-east and south-west corners are required.
type MapBounds struct {
	NE LatLng `json:"ne"`
	SW LatLng `json:"sw"`
}

// MapChange is the payload of the widget's viewport-changed event
type MapChange struct {
	Center LatLng     `json:"center"`
	Zoom   float64    `json:"zoom"`
	Bounds *MapBounds `json:"bounds"`
}
