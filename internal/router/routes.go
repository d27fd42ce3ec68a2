package router

import (
	"github.com/labstack/echo/v4"

	"github.com/octobees/leads-outreach/api/internal/config"
	"github.com/octobees/leads-outreach/api/internal/handler"
	middlewarepkg "github.com/octobees/leads-outreach/api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Companies *handler.CompaniesHandler
	Status    *handler.StatusHandler
	CRM       *handler.CRMHandler
	Health    *handler.HealthHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", handlers.Health.Check)

	e.GET("/companies", handlers.Companies.List)
	e.POST("/company-status", handlers.Status.Update)

	if handlers.CRM != nil {
		e.POST("/crm/contacts", handlers.CRM.Forward, middlewarepkg.RateLimiter(cfg.CRM.RateLimit))
	}
}
