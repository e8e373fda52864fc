package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rushrr/courier/internal/server/http/dto"
)

// DetailsHandler serves order lookups and the setup self check.
type DetailsHandler struct {
	facade DetailsFacade
}

// NewDetailsHandler constructs DetailsHandler.
func NewDetailsHandler(facade DetailsFacade) *DetailsHandler {
	return &DetailsHandler{facade: facade}
}

// OrderDetails handles POST /api/order-details.
func (h *DetailsHandler) OrderDetails(c *gin.Context) {
	var req dto.OrderDetailsRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, "orderId is required", err)
		return
	}

	details, err := h.facade.OrderDetails(c.Request.Context(), CurrentShop(c), req.OrderID.String())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// BulkDetails handles POST /api/bulk-order-details.
func (h *DetailsHandler) BulkDetails(c *gin.Context) {
	var req dto.BulkDetailsRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, "orderIds must be an array", err)
		return
	}

	details, err := h.facade.BulkOrderDetails(c.Request.Context(), CurrentShop(c), dto.IDs(req.OrderIDs))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// TestOrder handles POST /api/test-order.
func (h *DetailsHandler) TestOrder(c *gin.Context) {
	var req dto.TestOrderRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, "Invalid JSON in request body", err)
		return
	}

	report, err := h.facade.TestOrder(c.Request.Context(), CurrentShop(c), dto.IDs(req.OrderIDs))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// TestOrderUsage handles GET /api/test-order.
func (h *DetailsHandler) TestOrderUsage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"endpoint":    "/api/test-order",
		"method":      http.MethodPost,
		"description": "Test endpoint for debugging order processing",
		"usage": gin.H{
			"body":    gin.H{"orderIds": []string{"5920323403859"}},
			"headers": gin.H{"Content-Type": "application/json"},
		},
	})
}
