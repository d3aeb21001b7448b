package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tobrik/TMS/score"
)

// triageRoster returns every patient with their latest analysis and a
// traffic-light zone derived on the fly. The zone is never stored, so
// threshold changes reclassify history on the next read.
func (s *Server) triageRoster(c *gin.Context) {
	roster, err := s.store.TriageRoster()
	if shouldInterupt(err, c) {
		return
	}

	for i := range roster {
		p := &roster[i]
		top := score.TopDisease(p.TopDisease, p.LastDisease)
		p.Zone = string(score.Zone(top, p.LastScore))
	}

	c.JSON(http.StatusOK, gin.H{"patients": roster})
}
