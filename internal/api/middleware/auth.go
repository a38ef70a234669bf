package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/stratford/music-platform/internal/api/metrics"
	"github.com/stratford/music-platform/internal/core/domain"
	"github.com/stratford/music-platform/internal/core/ports"
)

const principalKey = "principal"

// Authenticate validates the bearer token, confirms its subject still exists
// and attaches the principal asserted by the token to the request.
func Authenticate(tokens ports.TokenVerifier, users ports.UserFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Invalid token")
			}

			if _, err := users.FindByID(c.Request().Context(), claims.UserID); err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthRejectionsTotal.WithLabelValues("unknown_subject").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "User no longer exists")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "Server error").SetInternal(err)
			}

			SetPrincipal(c, &domain.Principal{UserID: claims.UserID, Email: claims.Email, Role: claims.Role})
			return next(c)
		}
	}
}

// bearerToken extracts the token from "Bearer <token>". Any other scheme
// counts as no token.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// SetPrincipal attaches p to the request.
func SetPrincipal(c echo.Context, p *domain.Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the principal attached by Authenticate.
func PrincipalFrom(c echo.Context) (*domain.Principal, bool) {
	p, ok := c.Get(principalKey).(*domain.Principal)
	return p, ok && p != nil
}
