package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rushrr/courier/internal/domain/model"
	"github.com/rushrr/courier/internal/server/http/dto"
)

const healthCheckTimeout = 2 * time.Second

var endpoints = map[string]string{
	"POST /api/process-orders":     "Main order processing endpoint",
	"POST /api/bulk-order-details": "Bulk order details",
	"POST /api/test-order":         "Test order processing setup",
	"GET /api/orders":              "Orders stored by Rushrr",
}

// HealthHandler reports liveness and static reference data.
type HealthHandler struct {
	facade HealthFacade
	now    func() time.Time
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade, now: time.Now}
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	resp := dto.HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC(),
		Message:   "Order processing API is running",
		Database:  "up",
		Endpoints: endpoints,
	}
	status := http.StatusOK
	if err := h.facade.Health(ctx); err != nil {
		resp.Status = "degraded"
		resp.Database = "down"
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}

// Ping handles POST /api/health.
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": h.now().UTC(),
		"message":   "POST requests working",
	})
}

// Cities handles GET /api/cities.
func (h *HealthHandler) Cities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": model.SupportedCities})
}
