package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/stratford/music-platform/internal/clock"
	"github.com/stratford/music-platform/internal/core/domain"
	"github.com/stratford/music-platform/internal/infrastructure/db/memory"
	"github.com/stratford/music-platform/internal/security"
)

var testNow = time.Date(2025, time.March, 14, 18, 30, 0, 0, time.UTC)

type fixture struct {
	store  *memory.Store
	clock  *clock.Fixed
	tokens *TokenService
	auth   *AuthService
	users  *UserService
	venues *VenueService
	events *EventService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	clk := clock.NewFixed(testNow)
	clean := security.NewTextSanitizer()
	log := zerolog.Nop()

	tokens, err := NewTokenService("test-secret", TokenTTL, clk)
	require.NoError(t, err)

	return &fixture{
		store:  store,
		clock:  clk,
		tokens: tokens,
		auth:   NewAuthService(store.Users(), tokens, clean, clk, log),
		users:  NewUserService(store.Users(), clean, clk, log),
		venues: NewVenueService(store.Venues(), store.Events(), store.Users(), clean, clk, log),
		events: NewEventService(store.Events(), store.Venues(), clean, clk, time.UTC, log),
	}
}

// seedUser stores an account directly, bypassing password hashing.
func (f *fixture) seedUser(t *testing.T, id, role string) *domain.Principal {
	t.Helper()
	err := f.store.Users().Create(context.Background(), &domain.User{
		ID:        id,
		Email:     id + "@example.com",
		Name:      id,
		Role:      role,
		CreatedAt: f.clock.Now(),
		UpdatedAt: f.clock.Now(),
	})
	require.NoError(t, err)
	return &domain.Principal{UserID: id, Email: id + "@example.com", Role: role}
}

func (f *fixture) seedVenue(t *testing.T, id, ownerID, name string) *domain.Venue {
	t.Helper()
	v := &domain.Venue{ID: id, UserID: ownerID, Name: name, Address: "1 High St", CreatedAt: f.clock.Now()}
	require.NoError(t, f.store.Venues().Create(context.Background(), v))
	return v
}

func (f *fixture) seedEvent(t *testing.T, id, venueID string, start time.Time, status domain.EventStatus) *domain.Event {
	t.Helper()
	e := &domain.Event{
		ID:        id,
		VenueID:   venueID,
		Title:     "Event " + id,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Category:  domain.CategoryLiveMusic,
		Status:    status,
	}
	require.NoError(t, f.store.Events().Create(context.Background(), e))
	return e
}
