package middleware

import (
	"time"

	"buymyshop/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Observe records request durations for the Prometheus scrape endpoint.
func Observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.RequestDuration.Observe(time.Since(start).Seconds())
	}
}
