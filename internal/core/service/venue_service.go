package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/stratford/music-platform/internal/clock"
	"github.com/stratford/music-platform/internal/core/domain"
	"github.com/stratford/music-platform/internal/core/ports"
)

// upcomingEventsLimit caps the events shown on a venue page.
const upcomingEventsLimit = 10

// VenueService implements the venue directory and owner-only edits.
type VenueService struct {
	venues ports.VenueRepository
	events ports.EventRepository
	users  ports.UserRepository
	clean  Sanitizer
	clock  clock.Clock
	newID  func() string
	log    zerolog.Logger
}

func NewVenueService(venues ports.VenueRepository, events ports.EventRepository, users ports.UserRepository, clean Sanitizer, clk clock.Clock, log zerolog.Logger) *VenueService {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &VenueService{
		venues: venues,
		events: events,
		users:  users,
		clean:  clean,
		clock:  clk,
		newID:  uuid.NewString,
		log:    log,
	}
}

func (s *VenueService) List(ctx context.Context, search string, page domain.Page) (*ports.VenueList, error) {
	venues, total, err := s.venues.List(ctx, domain.VenueFilter{Search: search, Page: page})
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}

	ids := make([]string, 0, len(venues))
	ownerIDs := make([]string, 0, len(venues))
	for _, v := range venues {
		ids = append(ids, v.ID)
		ownerIDs = append(ownerIDs, v.UserID)
	}

	counts, err := s.events.CountByVenue(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count venue events: %w", err)
	}
	owners, err := s.users.FindByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("load venue owners: %w", err)
	}

	items := make([]*ports.VenueListItem, 0, len(venues))
	for _, v := range venues {
		item := &ports.VenueListItem{Venue: v, User: owners[v.UserID].Summary()}
		item.Count.Events = counts[v.ID]
		items = append(items, item)
	}

	return &ports.VenueList{Venues: items, Pagination: domain.PaginationFor(page, total)}, nil
}

// Get returns a venue with its owner's contact details and its next
// published events.
func (s *VenueService) Get(ctx context.Context, id string) (*ports.VenueDetail, error) {
	venue, err := s.venues.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	events, err := s.events.Upcoming(ctx, venue.ID, upcomingEventsLimit)
	if err != nil {
		return nil, fmt.Errorf("venue events: %w", err)
	}

	var owner *domain.UserSummary
	user, err := s.users.FindByID(ctx, venue.UserID)
	switch {
	case err == nil:
		owner = user.Summary()
		owner.Phone = user.Phone
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("load venue owner: %w", err)
	}

	if events == nil {
		events = []*domain.Event{}
	}
	return &ports.VenueDetail{Venue: venue, User: owner, Events: events}, nil
}

// Create registers the principal's venue. A user owns at most one.
func (s *VenueService) Create(ctx context.Context, p *domain.Principal, in ports.CreateVenueInput) (*ports.VenueWithOwner, error) {
	if _, err := s.venues.FindByOwner(ctx, p.UserID); err == nil {
		return nil, domain.ErrVenueAlreadyExists
	} else if !errors.Is(err, domain.ErrVenueNotFound) {
		return nil, fmt.Errorf("create venue: %w", err)
	}

	now := s.clock.Now()
	venue := &domain.Venue{
		ID:          s.newID(),
		UserID:      p.UserID,
		Name:        s.clean.Clean(in.Name),
		Address:     s.clean.Clean(in.Address),
		Phone:       s.clean.Clean(in.Phone),
		Website:     in.Website,
		Description: s.clean.Clean(in.Description),
		Capacity:    in.Capacity,
		Amenities:   cleanList(s.clean, in.Amenities),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	var bad violations
	bad.required("name", "Name", &venue.Name)
	bad.required("address", "Address", &venue.Address)
	if err := bad.err(); err != nil {
		return nil, err
	}
	if err := s.venues.Create(ctx, venue); err != nil {
		return nil, err
	}

	s.log.Info().Str("venue_id", venue.ID).Str("user_id", p.UserID).Msg("venue created")

	owner, err := s.owner(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	return &ports.VenueWithOwner{Venue: venue, User: owner}, nil
}

// Update edits a venue owned by the principal. Admins get no bypass here.
func (s *VenueService) Update(ctx context.Context, p *domain.Principal, id string, upd domain.VenueUpdate) (*ports.VenueWithOwner, error) {
	if err := s.authorizeOwner(ctx, p, id, domain.ActionUpdate); err != nil {
		return nil, err
	}

	upd.Name = s.clean.CleanPtr(upd.Name)
	upd.Address = s.clean.CleanPtr(upd.Address)
	upd.Phone = s.clean.CleanPtr(upd.Phone)
	upd.Description = s.clean.CleanPtr(upd.Description)
	if upd.Amenities != nil {
		amenities := cleanList(s.clean, *upd.Amenities)
		upd.Amenities = &amenities
	}

	var bad violations
	bad.required("name", "Name", upd.Name)
	bad.required("address", "Address", upd.Address)
	if err := bad.err(); err != nil {
		return nil, err
	}
	upd.UpdatedAt = s.clock.Now()

	venue, err := s.venues.Update(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("update venue: %w", err)
	}

	owner, err := s.owner(ctx, venue.UserID)
	if err != nil {
		return nil, err
	}
	return &ports.VenueWithOwner{Venue: venue, User: owner}, nil
}

// Delete removes a venue owned by the principal together with its events.
// The venue goes first so a failed delete never leaves a live venue without
// its events. Events left behind by a later failure are logged.
func (s *VenueService) Delete(ctx context.Context, p *domain.Principal, id string) error {
	if err := s.authorizeOwner(ctx, p, id, domain.ActionDelete); err != nil {
		return err
	}

	if err := s.venues.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	removed, err := s.events.DeleteByVenue(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("venue_id", id).Msg("venue deleted but its events were not")
		return fmt.Errorf("delete venue events: %w", err)
	}

	s.log.Info().Str("venue_id", id).Int64("events_removed", removed).Msg("venue deleted")
	return nil
}

// authorizeOwner requires that the principal's own venue is the one with id.
// A missing venue is reported as an ownership failure, not a 404.
func (s *VenueService) authorizeOwner(ctx context.Context, p *domain.Principal, id string, action domain.Action) error {
	if p == nil {
		return &domain.OwnershipError{Action: action, Err: domain.ErrVenueNotOwned}
	}
	venue, err := s.venues.FindByOwner(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrVenueNotFound) {
			return &domain.OwnershipError{Action: action, Err: domain.ErrVenueNotOwned}
		}
		return fmt.Errorf("resolve venue owner: %w", err)
	}
	if venue.ID != id {
		return &domain.OwnershipError{Action: action, Err: domain.ErrVenueNotOwned}
	}
	return nil
}

func (s *VenueService) owner(ctx context.Context, userID string) (*domain.UserSummary, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load venue owner: %w", err)
	}
	return user.Summary(), nil
}
