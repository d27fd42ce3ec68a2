package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/leads-outreach/api/internal/dto"
	"github.com/octobees/leads-outreach/api/internal/repository"
	"github.com/octobees/leads-outreach/api/internal/service"
)

// StatusHandler updates per-company outreach status.
type StatusHandler struct {
	service *service.StatusService
}

// NewStatusHandler creates a new handler instance.
func NewStatusHandler(service *service.StatusService) *StatusHandler {
	return &StatusHandler{service: service}
}

// Update handles POST /company-status requests.
func (h *StatusHandler) Update(c echo.Context) error {
	var req dto.StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	status, err := h.service.SetContacted(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatusUpdate), errors.Is(err, repository.ErrStatusKeyRequired):
			return Error(c, http.StatusBadRequest, "missing company_key")
		default:
			return Error(c, http.StatusInternalServerError, "failed to update status")
		}
	}

	return Success(c, http.StatusOK, "status updated", status)
}
