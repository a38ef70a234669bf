package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/stratford/music-platform/internal/core/domain"
)

type stubVenues struct {
	venue *domain.Venue
	err   error
}

func (s stubVenues) FindByOwner(_ context.Context, userID string) (*domain.Venue, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.venue == nil || s.venue.UserID != userID {
		return nil, domain.ErrVenueNotFound
	}
	return s.venue, nil
}

func newOwnerContext(p *domain.Principal) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if p != nil {
		SetPrincipal(c, p)
	}
	return c
}

func TestRequireVenueOwnership_AttachesVenue(t *testing.T) {
	venue := &domain.Venue{ID: "v1", UserID: "u1", Name: "Cellar"}
	c := newOwnerContext(&domain.Principal{UserID: "u1", Role: domain.RoleVenue})

	called := false
	err := RequireVenueOwnership(stubVenues{venue: venue})(func(c echo.Context) error {
		called = true
		got, ok := OwnedVenueFrom(c)
		if !ok || got.ID != "v1" {
			t.Fatalf("venue not attached: %+v", got)
		}
		return nil
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRequireVenueOwnership_Rejections(t *testing.T) {
	other := &domain.Venue{ID: "v2", UserID: "someone-else"}

	err := RequireVenueOwnership(stubVenues{venue: other})(unreachable(t))(newOwnerContext(nil))
	expectHTTPError(t, err, http.StatusUnauthorized, "")

	err = RequireVenueOwnership(stubVenues{venue: other})(unreachable(t))(newOwnerContext(&domain.Principal{UserID: "u1"}))
	expectHTTPError(t, err, http.StatusForbidden, "Venue access required")

	err = RequireVenueOwnership(stubVenues{err: errors.New("down")})(unreachable(t))(newOwnerContext(&domain.Principal{UserID: "u1"}))
	expectHTTPError(t, err, http.StatusInternalServerError, "Server error")
}
