package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/stratford/music-platform/internal/api/middleware"
	"github.com/stratford/music-platform/internal/api/respond"
	"github.com/stratford/music-platform/internal/core/domain"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	e.HTTPErrorHandler = respond.NewHTTPErrorHandler(zerolog.Nop())
	return e
}

// serve runs h with the given request and pipes any returned error through
// the envelope error handler.
func serve(e *echo.Echo, h echo.HandlerFunc, method, target string, body io.Reader, p *domain.Principal, params ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if p != nil {
		middleware.SetPrincipal(c, p)
	}
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

type envelope struct {
	Success bool                       `json:"success"`
	Data    map[string]json.RawMessage `json:"data"`
	Error   string                     `json:"error"`
	Details []respond.FieldError       `json:"details"`
	Message string                     `json:"message"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid json: %v (%s)", err, rec.Body.String())
	}
	return env
}
