package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	domainErrors "github.com/rushrr/courier/internal/domain/errors"
	"github.com/rushrr/courier/internal/server/http/dto"
	"github.com/rushrr/courier/internal/server/http/middleware"
)

const (
	tokenMissingMessage = "Rushrr API token not found. Please configure your token in the app settings."
	noChangesMessage    = "No changes to save."
	invalidIDsMessage   = "Invalid or missing orderIds. Expected array of order IDs."
)

var validate = validator.New()

// CurrentShop extracts the authenticated shop from context.
func CurrentShop(c *gin.Context) string {
	return middleware.CurrentShop(c)
}

// bindJSON decodes the request body into dst and validates it.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

func badRequest(c *gin.Context, message string, err error) {
	resp := dto.ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}

// writeError maps domain errors onto HTTP responses.
func writeError(c *gin.Context, err error) {
	status, message := http.StatusInternalServerError, "Internal server error"
	switch {
	case errors.Is(err, domainErrors.ErrTokenNotConfigured):
		status, message = http.StatusBadRequest, tokenMissingMessage
	case errors.Is(err, domainErrors.ErrInvalidRequest):
		status, message = http.StatusBadRequest, "Invalid request"
	case errors.Is(err, domainErrors.ErrAuthRequired):
		status, message = http.StatusUnauthorized, "Authentication required"
	case errors.Is(err, domainErrors.ErrNoChangesToSave):
		c.JSON(http.StatusOK, dto.MessageResponse{Message: noChangesMessage})
		return
	case errors.Is(err, domainErrors.ErrUpstreamFetchFailed):
		status, message = http.StatusBadGateway, err.Error()
	case errors.Is(err, domainErrors.ErrNotFound):
		status, message = http.StatusNotFound, "Not found"
	case errors.Is(err, domainErrors.ErrMalformedOrder):
		status, message = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domainErrors.ErrDownstreamRejected):
		status, message = http.StatusBadGateway, err.Error()
	}
	c.JSON(status, dto.ErrorResponse{Error: message})
}
