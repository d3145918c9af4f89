package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"upiscan/internal/service"
)

// readinessProbe is a known-good payload the readiness check must extract.
const readinessProbe = "upi://pay?pa=probe%40upi&pn=probe"

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	scanService service.ScanService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(scanService service.ScanService) *HealthHandler {
	return &HealthHandler{scanService: scanService}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. It runs a canned extraction through the scan service.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ext, err := h.scanService.Extract(c.Request.Context(), readinessProbe)
	if err != nil || ext.PayeeAddress != "probe@upi" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "extraction self-check failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
