package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stratford/music-platform/internal/clock"
)

func TestHealthHandler_Liveness(t *testing.T) {
	e := echo.New()
	clk := clock.NewFixed(time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC))
	h := NewHealthHandler("test", "1.2.3", clk, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	if err := h.Liveness(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp livenessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	want := livenessResponse{Status: "OK", Timestamp: "2025-05-01T12:00:00Z", Environment: "test", Version: "1.2.3"}
	if resp != want {
		t.Fatalf("expected %+v, got %+v", want, resp)
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	e := echo.New()
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	cases := []struct {
		name string
		deps map[string]PingFunc
		code int
	}{
		{"all up", map[string]PingFunc{"mongodb": ok, "redis": ok}, http.StatusOK},
		{"redis down", map[string]PingFunc{"mongodb": ok, "redis": down}, http.StatusServiceUnavailable},
		{"no deps", nil, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHealthHandler("test", "1", nil, tc.deps)
			req := httptest.NewRequest(http.MethodGet, "/api/health/ready", nil)
			rec := httptest.NewRecorder()
			if err := h.Readiness(e.NewContext(req, rec)); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
		})
	}
}
