package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthz", NewHealthHandler(setupTestDB(t), true, true).Healthz)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/healthz", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), serviceName)
}

func TestHealthDetailed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health/detailed", NewHealthHandler(setupTestDB(t), false, true).Detailed)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health/detailed", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Status string `json:"status"`
		Checks struct {
			Database  bool `json:"database"`
			BlobStore bool `json:"blob_store"`
			Notifier  bool `json:"notifier"`
		} `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Checks.Database)
	assert.False(t, resp.Checks.BlobStore)
	assert.True(t, resp.Checks.Notifier)
}

func TestHealthDetailedDegraded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// No database wired at all: the probe still answers 200, flagged degraded.
	r.GET("/health/detailed", NewHealthHandler(nil, true, true).Detailed)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health/detailed", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}
