package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stratford/music-platform/internal/api/metrics"
	"github.com/stratford/music-platform/internal/core/domain"
	"github.com/stratford/music-platform/internal/core/ports"
)

const venueKey = "venue"

// RequireVenueOwnership admits only principals that own a venue and attaches
// that venue to the request. Must run after Authenticate.
func RequireVenueOwnership(venues ports.VenueOwnerFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			venue, err := venues.FindByOwner(c.Request().Context(), p.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrVenueNotFound) {
					metrics.AuthRejectionsTotal.WithLabelValues("no_venue").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "Venue access required")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "Server error").SetInternal(err)
			}

			c.Set(venueKey, venue)
			return next(c)
		}
	}
}

// OwnedVenueFrom returns the venue attached by RequireVenueOwnership.
func OwnedVenueFrom(c echo.Context) (*domain.Venue, bool) {
	v, ok := c.Get(venueKey).(*domain.Venue)
	return v, ok && v != nil
}
