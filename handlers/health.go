package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/candidate-compare/backend/models"
	"github.com/candidate-compare/backend/storage"
)

// HealthChecker probes the AI collaborator's availability
type HealthChecker interface {
	HealthCheck(ctx context.Context) bool
}

// HealthHandler serves the health and status endpoints
type HealthHandler struct {
	store   *storage.MemoryStore
	ai      HealthChecker
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store *storage.MemoryStore, ai HealthChecker, version string) *HealthHandler {
	return &HealthHandler{store: store, ai: ai, version: version}
}

// Health reports server and collaborator health
// @Summary Health check
// @Description Report server health including an AI collaborator probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse "AI collaborator unavailable"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	services := map[string]string{"server": "healthy"}
	status := "healthy"
	code := http.StatusOK

	if h.ai.HealthCheck(c.Request.Context()) {
		services["gemini"] = "healthy"
	} else {
		services["gemini"] = "unavailable"
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, models.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Services:  services,
		Data:      h.store.Status(),
	})
}

// Status reports what the in-memory store currently holds
// @Summary Store status
// @Tags Health
// @Produce json
// @Success 200 {object} models.SuccessResponse{data=models.StoreStatus}
// @Router /api/status [get]
func (h *HealthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    h.store.Status(),
	})
}

// Index lists the API surface at the root path
// @Summary API index
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Candidate Compare API",
		"version": h.version,
		"docs":    "/swagger/index.html",
		"endpoints": gin.H{
			"health":     "GET /health",
			"status":     "GET /api/status",
			"jd":         "POST /api/jd/parse, GET /api/jd, DELETE /api/jd, POST /api/jd/demo, GET /api/jd/status",
			"candidates": "POST /api/candidates/import, GET /api/candidates, GET /api/candidates/:candidateId, DELETE /api/candidates, GET /api/candidates/stats/overview",
			"match":      "POST /api/match/:candidateId, GET /api/match/batch/all, GET /api/match/ranking/top, GET /api/match/comparison/:candidateId1/:candidateId2, GET /api/match/insights",
		},
	})
}
