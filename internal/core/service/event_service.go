package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/stratford/music-platform/internal/clock"
	"github.com/stratford/music-platform/internal/core/domain"
	"github.com/stratford/music-platform/internal/core/ports"
)

// EventService implements the public calendar and venue-owner edits.
type EventService struct {
	events ports.EventRepository
	venues ports.VenueRepository
	clean  Sanitizer
	clock  clock.Clock
	loc    *time.Location
	newID  func() string
	log    zerolog.Logger
}

// NewEventService builds the service. loc decides calendar-day boundaries
// for the date filter and for Today; nil means UTC.
func NewEventService(events ports.EventRepository, venues ports.VenueRepository, clean Sanitizer, clk clock.Clock, loc *time.Location, log zerolog.Logger) *EventService {
	if clk == nil {
		clk = clock.NewSystem()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &EventService{
		events: events,
		venues: venues,
		clean:  clean,
		clock:  clk,
		loc:    loc,
		newID:  uuid.NewString,
		log:    log,
	}
}

func (s *EventService) List(ctx context.Context, in ports.ListEventsInput) (*ports.EventList, error) {
	filter := domain.EventFilter{
		Category: in.Category,
		Status:   in.Status,
		VenueID:  in.VenueID,
		Search:   in.Search,
		Page:     in.Page,
	}
	if filter.Status == "" {
		filter.Status = domain.EventPublished
	}
	if !in.Date.IsZero() {
		filter.From, filter.To = s.dayBounds(in.Date.Year(), in.Date.Month(), in.Date.Day())
	}
	if in.Search != "" {
		ids, err := s.venues.MatchingName(ctx, in.Search)
		if err != nil {
			return nil, fmt.Errorf("search venues: %w", err)
		}
		filter.SearchVenueIDs = ids
	}

	events, total, err := s.events.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	items, err := s.withVenues(ctx, events)
	if err != nil {
		return nil, err
	}
	return &ports.EventList{Events: items, Pagination: domain.PaginationFor(in.Page, total)}, nil
}

// Today returns every published event starting on the current calendar day.
func (s *EventService) Today(ctx context.Context) ([]*ports.EventWithVenue, error) {
	now := s.clock.Now().In(s.loc)
	from, to := s.dayBounds(now.Year(), now.Month(), now.Day())
	events, _, err := s.events.List(ctx, domain.EventFilter{
		Status: domain.EventPublished,
		From:   from,
		To:     to,
		Page:   domain.Page{Number: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("today's events: %w", err)
	}
	return s.withVenues(ctx, events)
}

func (s *EventService) Get(ctx context.Context, id string) (*ports.EventWithVenue, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &ports.EventWithVenue{Event: event}
	venue, err := s.venues.FindByID(ctx, event.VenueID)
	switch {
	case err == nil:
		out.Venue = venue.Detail()
	case !errors.Is(err, domain.ErrVenueNotFound):
		return nil, fmt.Errorf("event venue: %w", err)
	}
	return out, nil
}

// Create schedules an event. Non-admins may only target their own venue.
func (s *EventService) Create(ctx context.Context, p *domain.Principal, in ports.CreateEventInput) (*ports.EventWithVenue, error) {
	if in.EndTime.Before(in.StartTime) {
		return nil, domain.ErrInvalidSchedule
	}

	venue, err := s.venues.FindByID(ctx, in.VenueID)
	if err != nil {
		if errors.Is(err, domain.ErrVenueNotFound) && !p.IsAdmin() {
			return nil, &domain.OwnershipError{Action: domain.ActionCreate, Err: domain.ErrEventNotOwned}
		}
		return nil, err
	}
	if !p.IsAdmin() && !venue.OwnedBy(p.UserID) {
		return nil, &domain.OwnershipError{Action: domain.ActionCreate, Err: domain.ErrEventNotOwned}
	}

	status := in.Status
	if status == "" {
		status = domain.EventDraft
	}

	now := s.clock.Now()
	event := &domain.Event{
		ID:          s.newID(),
		VenueID:     venue.ID,
		Title:       s.clean.Clean(in.Title),
		Description: s.clean.Clean(in.Description),
		StartTime:   in.StartTime.UTC(),
		EndTime:     in.EndTime.UTC(),
		Price:       in.Price,
		Category:    in.Category,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	var bad violations
	bad.required("title", "Title", &event.Title)
	bad.required("description", "Description", &event.Description)
	if err := bad.err(); err != nil {
		return nil, err
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.Info().Str("event_id", event.ID).Str("venue_id", venue.ID).Str("user_id", p.UserID).Msg("event created")
	return &ports.EventWithVenue{Event: event, Venue: venue.Summary()}, nil
}

func (s *EventService) Update(ctx context.Context, p *domain.Principal, id string, upd domain.EventUpdate) (*ports.EventWithVenue, error) {
	current, venue, err := s.authorize(ctx, p, id, domain.ActionUpdate)
	if err != nil {
		return nil, err
	}

	start, end := current.StartTime, current.EndTime
	if upd.StartTime != nil {
		t := upd.StartTime.UTC()
		upd.StartTime, start = &t, t
	}
	if upd.EndTime != nil {
		t := upd.EndTime.UTC()
		upd.EndTime, end = &t, t
	}
	if end.Before(start) {
		return nil, domain.ErrInvalidSchedule
	}
	upd.Title = s.clean.CleanPtr(upd.Title)
	upd.Description = s.clean.CleanPtr(upd.Description)

	var bad violations
	bad.required("title", "Title", upd.Title)
	bad.required("description", "Description", upd.Description)
	if err := bad.err(); err != nil {
		return nil, err
	}
	upd.UpdatedAt = s.clock.Now()

	event, err := s.events.Update(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return &ports.EventWithVenue{Event: event, Venue: venue.Summary()}, nil
}

func (s *EventService) Delete(ctx context.Context, p *domain.Principal, id string) error {
	if _, _, err := s.authorize(ctx, p, id, domain.ActionDelete); err != nil {
		return err
	}
	if err := s.events.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	s.log.Info().Str("event_id", id).Str("user_id", p.UserID).Msg("event deleted")
	return nil
}

// authorize loads an event for mutation. Admins see a missing event as not
// found; everyone else sees any miss as an ownership failure so event ids of
// other venues are not disclosed.
func (s *EventService) authorize(ctx context.Context, p *domain.Principal, id string, action domain.Action) (*domain.Event, *domain.Venue, error) {
	denied := &domain.OwnershipError{Action: action, Err: domain.ErrEventNotOwned}

	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) && !p.IsAdmin() {
			return nil, nil, denied
		}
		return nil, nil, err
	}

	venue, err := s.venues.FindByID(ctx, event.VenueID)
	if err != nil && !errors.Is(err, domain.ErrVenueNotFound) {
		return nil, nil, fmt.Errorf("event venue: %w", err)
	}
	if !p.IsAdmin() && !venue.OwnedBy(p.UserID) {
		return nil, nil, denied
	}
	return event, venue, nil
}

// dayBounds returns the half-open interval covering the given calendar day
// in the service's location.
func (s *EventService) dayBounds(year int, month time.Month, day int) (time.Time, time.Time) {
	start := time.Date(year, month, day, 0, 0, 0, 0, s.loc)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}

func (s *EventService) withVenues(ctx context.Context, events []*domain.Event) ([]*ports.EventWithVenue, error) {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.VenueID)
	}
	venues, err := s.venues.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load event venues: %w", err)
	}

	out := make([]*ports.EventWithVenue, 0, len(events))
	for _, e := range events {
		out = append(out, &ports.EventWithVenue{Event: e, Venue: venues[e.VenueID].Summary()})
	}
	return out, nil
}
