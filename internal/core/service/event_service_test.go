package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratford/music-platform/internal/core/domain"
	"github.com/stratford/music-platform/internal/core/ports"
	"github.com/stratford/music-platform/internal/security"
)

func newEventInput(venueID string) ports.CreateEventInput {
	return ports.CreateEventInput{
		Title:       "Open Mic",
		Description: "Bring your own songs",
		StartTime:   testNow.Add(24 * time.Hour),
		EndTime:     testNow.Add(26 * time.Hour),
		Category:    domain.CategoryLiveMusic,
		VenueID:     venueID,
	}
}

func TestEventService_CreateOwnership(t *testing.T) {
	f := newFixture(t)
	owner := f.seedUser(t, "owner", domain.RoleVenue)
	other := f.seedUser(t, "other", domain.RoleVenue)
	admin := f.seedUser(t, "admin", domain.RoleAdmin)
	f.seedVenue(t, "v1", owner.UserID, "Cellar")

	_, err := f.events.Create(context.Background(), other, newEventInput("v1"))
	var oe *domain.OwnershipError
	require.True(t, errors.As(err, &oe), "got %v", err)
	assert.Equal(t, domain.ActionCreate, oe.Action)

	_, err = f.events.Create(context.Background(), other, newEventInput("missing"))
	require.True(t, errors.As(err, &oe), "got %v", err)

	_, err = f.events.Create(context.Background(), admin, newEventInput("missing"))
	assert.ErrorIs(t, err, domain.ErrVenueNotFound)

	got, err := f.events.Create(context.Background(), owner, newEventInput("v1"))
	require.NoError(t, err)
	assert.Equal(t, domain.EventDraft, got.Status)
	assert.Equal(t, "v1", got.Venue.ID)

	in := newEventInput("v1")
	in.Status = domain.EventPublished
	got, err = f.events.Create(context.Background(), admin, in)
	require.NoError(t, err)
	assert.Equal(t, domain.EventPublished, got.Status)
}

func TestEventService_CreateRejectsBackwardsSchedule(t *testing.T) {
	f := newFixture(t)
	owner := f.seedUser(t, "owner", domain.RoleVenue)
	f.seedVenue(t, "v1", owner.UserID, "Cellar")

	in := newEventInput("v1")
	in.EndTime = in.StartTime.Add(-time.Minute)
	_, err := f.events.Create(context.Background(), owner, in)
	assert.ErrorIs(t, err, domain.ErrInvalidSchedule)
}

func TestEventService_UpdateAndDeleteOwnership(t *testing.T) {
	f := newFixture(t)
	owner := f.seedUser(t, "owner", domain.RoleVenue)
	other := f.seedUser(t, "other", domain.RoleVenue)
	admin := f.seedUser(t, "admin", domain.RoleAdmin)
	f.seedVenue(t, "v1", owner.UserID, "Cellar")
	f.seedEvent(t, "e1", "v1", testNow.Add(time.Hour), domain.EventDraft)

	title := "Renamed"
	_, err := f.events.Update(context.Background(), other, "e1", domain.EventUpdate{Title: &title})
	var oe *domain.OwnershipError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, domain.ActionUpdate, oe.Action)

	_, err = f.events.Update(context.Background(), other, "missing", domain.EventUpdate{Title: &title})
	require.True(t, errors.As(err, &oe))

	_, err = f.events.Update(context.Background(), admin, "missing", domain.EventUpdate{Title: &title})
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	got, err := f.events.Update(context.Background(), owner, "e1", domain.EventUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)

	early := testNow
	_, err = f.events.Update(context.Background(), owner, "e1", domain.EventUpdate{EndTime: &early})
	assert.ErrorIs(t, err, domain.ErrInvalidSchedule)

	err = f.events.Delete(context.Background(), other, "e1")
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, domain.ActionDelete, oe.Action)

	require.NoError(t, f.events.Delete(context.Background(), admin, "e1"))
	_, err = f.events.Get(context.Background(), "e1")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_ListFilters(t *testing.T) {
	f := newFixture(t)
	owner := f.seedUser(t, "owner", domain.RoleVenue)
	f.seedVenue(t, "v1", owner.UserID, "Riverside Jazz Club")
	other := f.seedUser(t, "other", domain.RoleVenue)
	f.seedVenue(t, "v2", other.UserID, "Old Library")

	f.seedEvent(t, "later", "v1", testNow.Add(48*time.Hour), domain.EventPublished)
	f.seedEvent(t, "sooner", "v2", testNow.Add(time.Hour), domain.EventPublished)
	f.seedEvent(t, "draft", "v1", testNow.Add(2*time.Hour), domain.EventDraft)

	list, err := f.events.List(context.Background(), ports.ListEventsInput{Page: domain.NewPage(1, 0)})
	require.NoError(t, err)
	require.Len(t, list.Events, 2)
	assert.Equal(t, "sooner", list.Events[0].ID)
	assert.Equal(t, "later", list.Events[1].ID)
	assert.Equal(t, "Old Library", list.Events[0].Venue.Name)

	list, err = f.events.List(context.Background(), ports.ListEventsInput{Status: domain.EventDraft, Page: domain.NewPage(1, 0)})
	require.NoError(t, err)
	require.Len(t, list.Events, 1)
	assert.Equal(t, "draft", list.Events[0].ID)

	list, err = f.events.List(context.Background(), ports.ListEventsInput{Search: "jazz", Page: domain.NewPage(1, 0)})
	require.NoError(t, err)
	require.Len(t, list.Events, 1)
	assert.Equal(t, "later", list.Events[0].ID)

	day := time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC)
	list, err = f.events.List(context.Background(), ports.ListEventsInput{Date: day, Page: domain.NewPage(1, 0)})
	require.NoError(t, err)
	require.Len(t, list.Events, 1)
	assert.Equal(t, "later", list.Events[0].ID)
	assert.EqualValues(t, 1, list.Pagination.Total)
}

func TestEventService_TodayUsesConfiguredTimezone(t *testing.T) {
	f := newFixture(t)
	owner := f.seedUser(t, "owner", domain.RoleVenue)
	f.seedVenue(t, "v1", owner.UserID, "Cellar")

	// 18:30 UTC on the 14th is already the 15th in Auckland.
	f.seedEvent(t, "utc-evening", "v1", testNow.Add(time.Hour), domain.EventPublished)
	f.seedEvent(t, "nz-morning", "v1", time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), domain.EventPublished)

	today, err := f.events.Today(context.Background())
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, "utc-evening", today[0].ID)

	auckland, err := time.LoadLocation("Pacific/Auckland")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	svc := NewEventService(f.store.Events(), f.store.Venues(), security.NewTextSanitizer(), f.clock, auckland, zerolog.Nop())
	today, err = svc.Today(context.Background())
	require.NoError(t, err)
	require.Len(t, today, 2)
}
