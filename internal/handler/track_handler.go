package handler

import (
	"net/http"

	"buymyshop/internal/metrics"
	"buymyshop/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TrackHandler struct {
	metricRepo *repository.MetricRepository
	log        *zap.Logger
}

func NewTrackHandler(metricRepo *repository.MetricRepository, log *zap.Logger) *TrackHandler {
	return &TrackHandler{metricRepo: metricRepo, log: log}
}

// Visit upserts today's site_metrics row. Tracking failures never surface to
// the landing page.
func (h *TrackHandler) Visit(c *gin.Context) {
	var body struct {
		Unique bool `json:"unique"`
	}
	_ = c.ShouldBindJSON(&body)

	metrics.SiteVisits.Inc()
	if err := h.metricRepo.RecordVisit(repository.Today(), body.Unique); err != nil {
		h.log.Warn("visit tracking failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"recorded": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recorded": true})
}
