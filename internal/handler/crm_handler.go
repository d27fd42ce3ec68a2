package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/leads-outreach/api/internal/dto"
	"github.com/octobees/leads-outreach/api/internal/middleware"
	"github.com/octobees/leads-outreach/api/internal/service"
)

// CRMHandler hands selected contacts over to the CRM.
type CRMHandler struct {
	service *service.CRMService
}

// NewCRMHandler creates a new handler instance.
func NewCRMHandler(service *service.CRMService) *CRMHandler {
	return &CRMHandler{service: service}
}

// Forward handles POST /crm/contacts requests.
func (h *CRMHandler) Forward(c echo.Context) error {
	var req dto.CRMContactRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.ForwardContact(c.Request().Context(), req, middleware.RequestIDFromContext(c)); err != nil {
		if errors.Is(err, service.ErrForwardFailed) {
			return Error(c, http.StatusBadGateway, "failed to send contact to crm")
		}
		return Error(c, http.StatusInternalServerError, "failed to send contact to crm")
	}

	return Success(c, http.StatusOK, "contact sent to crm", map[string]bool{"success": true})
}
