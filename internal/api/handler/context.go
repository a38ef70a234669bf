package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stratford/music-platform/internal/api/middleware"
	"github.com/stratford/music-platform/internal/api/respond"
	"github.com/stratford/music-platform/internal/core/domain"
)

// principal returns the authenticated principal, or a 401 if the route was
// mounted without the auth gate.
func principal(c echo.Context) (*domain.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return p, nil
}

// bindAndValidate decodes the request into req and runs the validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return respond.Invalid("request", "Request could not be parsed")
	}
	return c.Validate(req)
}
