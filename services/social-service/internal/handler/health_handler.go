package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/SocialFeed/services/social-service/internal/database"
	"seungpyo.lee/SocialFeed/services/social-service/internal/model"
)

// DiagnoseFunc probes the database.
type DiagnoseFunc func(ctx context.Context) database.Report

type HealthHandler struct {
	Probe DiagnoseFunc
}

func NewHealthHandler(probe DiagnoseFunc) *HealthHandler {
	return &HealthHandler{Probe: probe}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Diagnose handles GET /api/diagnose. Answers 503 when the database is unreachable.
func (h *HealthHandler) Diagnose(c *gin.Context) {
	report := h.Probe(c.Request.Context())
	tables := make(map[string]bool, len(database.Tables))
	for _, name := range database.Tables {
		tables[name] = report.Tables[name]
	}
	if !report.Reachable {
		c.JSON(http.StatusServiceUnavailable, model.DiagnoseResponse{Database: "error", Tables: tables})
		return
	}
	c.JSON(http.StatusOK, model.DiagnoseResponse{Database: "ok", Tables: tables})
}
