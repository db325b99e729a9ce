package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	serviceName    = "buymyshop-api"
	serviceVersion = "2.0.0"
)

type HealthHandler struct {
	db                 *gorm.DB
	blobConfigured     bool
	notifierConfigured bool
}

func NewHealthHandler(db *gorm.DB, blobConfigured, notifierConfigured bool) *HealthHandler {
	return &HealthHandler{db: db, blobConfigured: blobConfigured, notifierConfigured: notifierConfigured}
}

// Healthz is the liveness probe. It succeeds whenever the process serves.
func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   serviceName,
		"version":   serviceVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Detailed reports dependency health. Always HTTP 200; overall status flips
// to degraded when a dependency check fails so dashboards can tell them
// apart without treating the probe itself as down.
func (h *HealthHandler) Detailed(c *gin.Context) {
	dbOK := h.pingDB(c.Request.Context())
	status := "ok"
	if !dbOK {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"service":   serviceName,
		"version":   serviceVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": gin.H{
			"database":   dbOK,
			"blob_store": h.blobConfigured,
			"notifier":   h.notifierConfigured,
		},
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx) == nil
}
