package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/octobees/leads-outreach/api/internal/middleware"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler answers liveness probes.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new handler instance.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles GET /healthz requests.
func (h *HealthHandler) Check(c echo.Context) error {
	if h.db != nil {
		if err := h.db.Ping(c.Request().Context()); err != nil {
			middleware.Logger(c).Warn("health check failed", zap.Error(err))
			return Error(c, http.StatusServiceUnavailable, "database unavailable")
		}
	}
	return Success(c, http.StatusOK, "ok", map[string]string{"status": "ok"})
}
