package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// APIResponse describes the standard envelope returned by the API.
type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Success sends a successful response using the shared envelope format.
func Success(c echo.Context, status int, message string, data any) error {
	return respond(c, orDefault(status, http.StatusOK), APIResponse{
		Status:  statusSuccess,
		Message: message,
		Data:    data,
	})
}

// SuccessList sends a list payload. A nil slice is sent as [] so clients
// never see a missing or null data field on list endpoints.
func SuccessList[T any](c echo.Context, status int, message string, items []T) error {
	if items == nil {
		items = []T{}
	}
	return Success(c, status, message, items)
}

// Error sends an error response using the shared envelope format.
func Error(c echo.Context, status int, message string) error {
	return respond(c, orDefault(status, http.StatusInternalServerError), APIResponse{
		Status:  statusError,
		Message: message,
	})
}

func respond(c echo.Context, status int, payload APIResponse) error {
	return c.JSON(status, payload)
}

func orDefault(status, fallback int) int {
	if status == 0 {
		return fallback
	}
	return status
}
