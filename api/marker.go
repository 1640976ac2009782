package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/covid-map/casemap"
	"github.com/bitmark-inc/covid-map/locale"
	"github.com/bitmark-inc/covid-map/schema"
)

type markersParams struct {
	Zoom  *float64 `form:"zoom" binding:"required"`
	North *float64 `form:"north"`
	South *float64 `form:"south"`
	East  *float64 `form:"east"`
	West  *float64 `form:"west"`
	Lang  string   `form:"lang"`
}

// boundary is nil when no edge is given; a partial set of edges is invalid
func (p markersParams) boundary() (*casemap.Boundary, bool) {
	edges := []*float64{p.North, p.South, p.East, p.West}
	given := 0
	for _, e := range edges {
		if e != nil {
			given++
		}
	}

	switch given {
	case 0:
		return nil, true
	case len(edges):
		return casemap.NewBoundary(*p.North, *p.South, *p.East, *p.West), true
	}
	return nil, false
}

type markersResponse struct {
	Band    string          `json:"band"`
	LoadID  string          `json:"load_id"`
	Markers []schema.Marker `json:"markers"`
}

func (s *Server) localizer(c *gin.Context, lang string) *locale.Localizer {
	return locale.NewLocalizer(locale.Match(lang, c.GetHeader("Accept-Language")))
}

func bandName(zoom float64) string {
	if band, ok := casemap.BandForZoom(zoom); ok {
		return band.String()
	}
	return ""
}

// markers renders the markers of a viewport without touching the controller state
func (s *Server) markers(c *gin.Context) {
	var params markersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	bounds, ok := params.boundary()
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	state := casemap.Reduce(s.controller.Snapshot(), casemap.ViewportChanged{
		Zoom:   *params.Zoom,
		Bounds: bounds,
	})

	c.JSON(http.StatusOK, markersResponse{
		Band:    bandName(state.Zoom),
		LoadID:  state.LoadID,
		Markers: s.localizer(c, params.Lang).Captioned(state.Markers()),
	})
}

// viewport handles the change event of the map widget
func (s *Server) viewport(c *gin.Context) {
	var change schema.MapChange
	if err := c.ShouldBindJSON(&change); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	state, markers := s.controller.OnViewportChanged(casemap.ViewportChangedFromMap(change))

	c.JSON(http.StatusOK, markersResponse{
		Band:    bandName(state.Zoom),
		LoadID:  state.LoadID,
		Markers: s.localizer(c, c.Query("lang")).Captioned(markers),
	})
}

type bandInfo struct {
	casemap.BandRange
	Title  string `json:"title"`
	Points int    `json:"points"`
}

func (s *Server) bands(c *gin.Context) {
	state := s.controller.Snapshot()
	sizes := state.Index.Sizes()
	l := s.localizer(c, c.Query("lang"))

	ranges := casemap.BandRanges()
	result := make([]bandInfo, len(ranges))
	for i, r := range ranges {
		result[i] = bandInfo{
			BandRange: r,
			Title:     l.BandName(r.Name),
			Points:    sizes[r.Band],
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"bands":     result,
		"load_id":   state.LoadID,
		"loaded_at": state.LoadedAt,
	})
}
