package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/octobees/leads-outreach/api/internal/middleware"
	"github.com/octobees/leads-outreach/api/internal/service"
)

// CompaniesHandler exposes the company dashboard.
type CompaniesHandler struct {
	service *service.CompaniesService
}

// NewCompaniesHandler creates a new handler instance.
func NewCompaniesHandler(service *service.CompaniesService) *CompaniesHandler {
	return &CompaniesHandler{service: service}
}

// List handles GET /companies requests.
func (h *CompaniesHandler) List(c echo.Context) error {
	companies, err := h.service.ListCompanies(c.Request().Context())
	if err != nil {
		middleware.Logger(c).Error("list companies", zap.Error(err))
		return Error(c, http.StatusInternalServerError, "failed to fetch companies")
	}

	return SuccessList(c, http.StatusOK, "companies retrieved", companies)
}
