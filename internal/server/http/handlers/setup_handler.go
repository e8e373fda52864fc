package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rushrr/courier/internal/server/http/dto"
)

// SetupHandler manages the logistics connection of the current shop.
type SetupHandler struct {
	facade SetupFacade
}

// NewSetupHandler constructs SetupHandler.
func NewSetupHandler(facade SetupFacade) *SetupHandler {
	return &SetupHandler{facade: facade}
}

// SaveToken handles POST /api/save-token.
func (h *SetupHandler) SaveToken(c *gin.Context) {
	var req dto.SaveTokenRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, "Token is required", err)
		return
	}

	shop := CurrentShop(c)
	if err := h.facade.SaveToken(c.Request.Context(), shop, req.Token); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Token saved successfully", Shop: shop})
}

// Connect handles POST /api/setup/connect.
func (h *SetupHandler) Connect(c *gin.Context) {
	var req dto.ConnectRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, "API key is required", err)
		return
	}

	shop := CurrentShop(c)
	data, err := h.facade.Connect(c.Request.Context(), shop, req.ShopName, req.APIKey)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Store connected to Rushrr", Shop: shop, Data: data})
}

// Status handles GET /api/setup/status.
func (h *SetupHandler) Status(c *gin.Context) {
	status, err := h.facade.SetupStatus(c.Request.Context(), CurrentShop(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Disconnect handles DELETE /api/setup/token.
func (h *SetupHandler) Disconnect(c *gin.Context) {
	if err := h.facade.Disconnect(c.Request.Context(), CurrentShop(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
