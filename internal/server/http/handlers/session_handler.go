package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rushrr/courier/internal/domain/model"
	"github.com/rushrr/courier/internal/server/http/dto"
)

// SessionHandler provisions shop sessions for operators.
type SessionHandler struct {
	facade SetupFacade
}

// NewSessionHandler constructs SessionHandler.
func NewSessionHandler(facade SetupFacade) *SessionHandler {
	return &SessionHandler{facade: facade}
}

// Provision handles POST /api/admin/sessions.
func (h *SessionHandler) Provision(c *gin.Context) {
	var req dto.ProvisionSessionRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, "shop and accessToken are required", err)
		return
	}

	session, token, err := h.facade.ProvisionSession(c.Request.Context(), model.ShopSession{
		Shop:        req.Shop,
		AccessToken: req.AccessToken,
		Scope:       req.Scope,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SessionResponse{
		Success:   true,
		Shop:      session.Shop,
		Token:     token,
		Scope:     session.Scope,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	})
}

// Remove handles DELETE /api/admin/sessions/:shop.
func (h *SessionHandler) Remove(c *gin.Context) {
	if err := h.facade.RemoveShop(c.Request.Context(), c.Param("shop")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
