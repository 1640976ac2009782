package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// refresh reloads the case data; a failure keeps the previous data
func (s *Server) refresh(c *gin.Context) {
	if err := s.controller.Refresh(c.Request.Context()); err != nil {
		abortWithEncoding(c, http.StatusBadGateway, errorRefreshFailed, err)
		return
	}

	state := s.controller.Snapshot()
	sizes := state.Index.Sizes()
	points := make(map[string]int, len(sizes))
	for band, n := range sizes {
		points[band.String()] = n
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"load_id": state.LoadID,
		"points":  points,
	})
}
