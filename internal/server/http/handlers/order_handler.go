package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rushrr/courier/internal/domain/model"
	"github.com/rushrr/courier/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Process handles POST /api/process-orders.
func (h *OrderHandler) Process(c *gin.Context) {
	if result, ok := h.process(c); ok {
		c.JSON(http.StatusOK, dto.NewProcessOrdersResponse(result))
	}
}

// Create handles POST /api/create-order. It answers 400 when no order was accepted.
func (h *OrderHandler) Create(c *gin.Context) {
	result, ok := h.process(c)
	if !ok {
		return
	}
	status := http.StatusOK
	if !result.AnySucceeded() {
		status = http.StatusBadRequest
	}
	c.JSON(status, dto.NewProcessOrdersResponse(result))
}

func (h *OrderHandler) process(c *gin.Context) (*model.BatchResult, bool) {
	var req dto.ProcessOrdersRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, invalidIDsMessage, err)
		return nil, false
	}

	result, err := h.facade.ProcessOrders(c.Request.Context(), CurrentShop(c), dto.IDs(req.OrderIDs))
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	return result, true
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	status := c.Query("status")
	orders, err := h.facade.ListOrders(c.Request.Context(), CurrentShop(c), status)
	if err != nil {
		writeError(c, err)
		return
	}
	if status == "" {
		status = model.LogisticsStatusUnbooked
	}
	c.JSON(http.StatusOK, dto.OrdersResponse{Success: true, Status: status, Orders: dto.NewBookableOrders(orders)})
}

// Update handles PUT /api/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, "baseline and edited orders are required", err)
		return
	}

	data, err := h.facade.UpdateOrder(c.Request.Context(), CurrentShop(c), c.Param("id"), req.Baseline, req.Edited)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Order updated successfully", Data: data})
}

// Book handles POST /api/orders/book.
func (h *OrderHandler) Book(c *gin.Context) {
	var req dto.BookOrdersRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, invalidIDsMessage, err)
		return
	}

	data, err := h.facade.BookOrders(c.Request.Context(), CurrentShop(c), dto.IDs(req.OrderIDs))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Orders booked successfully", Data: data})
}

// AirwayBill handles GET /api/orders/:id/airway-bill.
func (h *OrderHandler) AirwayBill(c *gin.Context) {
	cod := strings.TrimSpace(c.Query("cod"))
	doc, err := h.facade.AirwayBill(c.Request.Context(), CurrentShop(c), c.Param("id"), cod)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.Data(http.StatusOK, "application/pdf", doc.Content)
}
