package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/octobees/leads-outreach/api/internal/dto"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return payload
}

func TestSuccessList(t *testing.T) {
	tests := map[string]struct {
		items    []dto.CompanyView
		expected string
	}{
		"nil slice":   {items: nil, expected: "[]"},
		"empty slice": {items: []dto.CompanyView{}, expected: "[]"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/companies", nil), rec)

			if err := SuccessList(c, 0, "companies retrieved", tt.items); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected default status 200, got %d", rec.Code)
			}
			payload := decodeEnvelope(t, rec)
			if string(payload["data"]) != tt.expected {
				t.Fatalf("expected data %s, got %s", tt.expected, payload["data"])
			}
			if string(payload["status"]) != `"success"` {
				t.Fatalf("unexpected status field: %s", payload["status"])
			}
		})
	}
}

func TestSuccessList_KeepsOrder(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/companies", nil), rec)

	items := []dto.CompanyView{{Key: "acme.com", Contacts: []dto.ContactView{}}, {Key: "beta", Contacts: []dto.ContactView{}}}
	if err := SuccessList(c, http.StatusOK, "companies retrieved", items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload struct {
		Data []dto.CompanyView `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Data) != 2 || payload.Data[0].Key != "acme.com" || payload.Data[1].Key != "beta" {
		t.Fatalf("unexpected data: %+v", payload.Data)
	}
}

func TestError_OmitsData(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/crm/contacts", nil), rec)

	if err := Error(c, http.StatusBadGateway, "failed to send contact to crm"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	payload := decodeEnvelope(t, rec)
	if _, ok := payload["data"]; ok {
		t.Fatalf("expected no data field on errors, got %s", payload["data"])
	}
	if string(payload["status"]) != `"error"` || string(payload["message"]) != `"failed to send contact to crm"` {
		t.Fatalf("unexpected envelope: %v", payload)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = Error(c, 0, "boom")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected default status 500, got %d", rec.Code)
	}
}
