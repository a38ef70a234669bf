package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratford/music-platform/internal/core/domain"
	"github.com/stratford/music-platform/internal/core/ports"
)

func TestVenueService_Create(t *testing.T) {
	f := newFixture(t)
	owner := f.seedUser(t, "owner", domain.RoleVenue)
	capacity := 250

	got, err := f.venues.Create(context.Background(), owner, ports.CreateVenueInput{
		Name:      " The <b>Jazz</b> Cellar ",
		Address:   "12 Market Sq",
		Capacity:  &capacity,
		Amenities: []string{"Bar", "  ", "Step-free access"},
	})
	require.NoError(t, err)
	assert.Equal(t, "The Jazz Cellar", got.Name)
	assert.Equal(t, owner.UserID, got.UserID)
	assert.Equal(t, []string{"Bar", "Step-free access"}, got.Amenities)
	require.NotNil(t, got.User)
	assert.Equal(t, "owner@example.com", got.User.Email)

	_, err = f.venues.Create(context.Background(), owner, ports.CreateVenueInput{Name: "Second", Address: "x"})
	assert.ErrorIs(t, err, domain.ErrVenueAlreadyExists)
}

func TestVenueService_UpdateRequiresOwnership(t *testing.T) {
	f := newFixture(t)
	owner := f.seedUser(t, "owner", domain.RoleVenue)
	other := f.seedUser(t, "other", domain.RoleVenue)
	admin := f.seedUser(t, "admin", domain.RoleAdmin)
	f.seedVenue(t, "v1", owner.UserID, "Cellar")
	f.seedVenue(t, "v2", other.UserID, "Attic")

	name := "Renamed"
	for _, p := range []*domain.Principal{other, admin} {
		_, err := f.venues.Update(context.Background(), p, "v1", domain.VenueUpdate{Name: &name})
		var oe *domain.OwnershipError
		require.True(t, errors.As(err, &oe), "principal %s: got %v", p.UserID, err)
		assert.Equal(t, domain.ActionUpdate, oe.Action)
		assert.ErrorIs(t, err, domain.ErrVenueNotOwned)
	}

	got, err := f.venues.Update(context.Background(), owner, "v1", domain.VenueUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
}

func TestVenueService_DeleteCascadesEvents(t *testing.T) {
	f := newFixture(t)
	owner := f.seedUser(t, "owner", domain.RoleVenue)
	f.seedVenue(t, "v1", owner.UserID, "Cellar")
	f.seedEvent(t, "e1", "v1", testNow.Add(time.Hour), domain.EventPublished)
	f.seedEvent(t, "e2", "v1", testNow.Add(2*time.Hour), domain.EventDraft)

	err := f.venues.Delete(context.Background(), &domain.Principal{UserID: "stranger", Role: domain.RoleVenue}, "v1")
	var oe *domain.OwnershipError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, domain.ActionDelete, oe.Action)

	require.NoError(t, f.venues.Delete(context.Background(), owner, "v1"))

	_, err = f.store.Venues().FindByID(context.Background(), "v1")
	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
	_, err = f.store.Events().FindByID(context.Background(), "e1")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestVenueService_ListAndGet(t *testing.T) {
	f := newFixture(t)
	a := f.seedUser(t, "a", domain.RoleVenue)
	b := f.seedUser(t, "b", domain.RoleVenue)
	f.seedVenue(t, "v1", a.UserID, "Zephyr Hall")
	f.seedVenue(t, "v2", b.UserID, "Apollo Rooms")
	f.seedEvent(t, "e1", "v1", testNow.Add(time.Hour), domain.EventPublished)
	f.seedEvent(t, "e2", "v1", testNow.Add(time.Hour), domain.EventDraft)

	list, err := f.venues.List(context.Background(), "", domain.NewPage(1, 1))
	require.NoError(t, err)
	require.Len(t, list.Venues, 1)
	assert.Equal(t, "Apollo Rooms", list.Venues[0].Name)
	assert.Equal(t, domain.Pagination{Page: 1, Limit: 1, Total: 2, Pages: 2}, list.Pagination)

	list, err = f.venues.List(context.Background(), "zephyr", domain.NewPage(1, 0))
	require.NoError(t, err)
	require.Len(t, list.Venues, 1)
	assert.EqualValues(t, 2, list.Venues[0].Count.Events)
	assert.Equal(t, "a", list.Venues[0].User.ID)

	detail, err := f.venues.Get(context.Background(), "v1")
	require.NoError(t, err)
	require.Len(t, detail.Events, 1)
	assert.Equal(t, "e1", detail.Events[0].ID)

	_, err = f.venues.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}
