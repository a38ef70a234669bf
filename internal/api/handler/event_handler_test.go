package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stratford/music-platform/internal/core/domain"
	"github.com/stratford/music-platform/internal/core/ports"
)

type stubEventService struct {
	listFn   func(ctx context.Context, in ports.ListEventsInput) (*ports.EventList, error)
	createFn func(ctx context.Context, p *domain.Principal, in ports.CreateEventInput) (*ports.EventWithVenue, error)
	updateFn func(ctx context.Context, p *domain.Principal, id string, upd domain.EventUpdate) (*ports.EventWithVenue, error)
	deleteFn func(ctx context.Context, p *domain.Principal, id string) error
}

func (s *stubEventService) List(ctx context.Context, in ports.ListEventsInput) (*ports.EventList, error) {
	return s.listFn(ctx, in)
}

func (s *stubEventService) Today(context.Context) ([]*ports.EventWithVenue, error) {
	return []*ports.EventWithVenue{}, nil
}

func (s *stubEventService) Get(context.Context, string) (*ports.EventWithVenue, error) {
	return nil, domain.ErrEventNotFound
}

func (s *stubEventService) Create(ctx context.Context, p *domain.Principal, in ports.CreateEventInput) (*ports.EventWithVenue, error) {
	return s.createFn(ctx, p, in)
}

func (s *stubEventService) Update(ctx context.Context, p *domain.Principal, id string, upd domain.EventUpdate) (*ports.EventWithVenue, error) {
	return s.updateFn(ctx, p, id, upd)
}

func (s *stubEventService) Delete(ctx context.Context, p *domain.Principal, id string) error {
	return s.deleteFn(ctx, p, id)
}

var venueOwner = &domain.Principal{UserID: "u1", Role: domain.RoleVenue}

func TestEventHandler_List_ParsesQuery(t *testing.T) {
	e := newTestEcho()
	stub := &stubEventService{
		listFn: func(ctx context.Context, in ports.ListEventsInput) (*ports.EventList, error) {
			if in.Category != domain.CategoryTheatre || in.Search != "hamlet" {
				t.Fatalf("unexpected filter: %+v", in)
			}
			if in.Page.Number != 2 || in.Page.Limit != 5 {
				t.Fatalf("unexpected page: %+v", in.Page)
			}
			if !in.Date.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
				t.Fatalf("unexpected date: %v", in.Date)
			}
			return &ports.EventList{Events: []*ports.EventWithVenue{}, Pagination: domain.PaginationFor(in.Page, 0)}, nil
		},
	}
	h := NewEventHandler(stub)

	rec := serve(e, h.List, http.MethodGet, "/api/events?category=THEATRE&search=hamlet&page=2&limit=5&date=2025-06-01", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	env := decode(t, rec)
	if _, ok := env.Data["pagination"]; !ok {
		t.Fatalf("missing pagination: %s", rec.Body.String())
	}
}

func TestEventHandler_List_RejectsBadQuery(t *testing.T) {
	e := newTestEcho()
	h := NewEventHandler(&stubEventService{})

	for _, target := range []string{"/api/events?limit=500", "/api/events?status=LIVE", "/api/events?date=tomorrow"} {
		rec := serve(e, h.List, http.MethodGet, target, nil, nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
		if env := decode(t, rec); env.Error != "Validation failed" {
			t.Fatalf("%s: unexpected error %q", target, env.Error)
		}
	}
}

func TestEventHandler_Create(t *testing.T) {
	e := newTestEcho()
	stub := &stubEventService{
		createFn: func(ctx context.Context, p *domain.Principal, in ports.CreateEventInput) (*ports.EventWithVenue, error) {
			if in.VenueID != "v1" || in.Category != domain.CategoryLiveMusic {
				t.Fatalf("unexpected input: %+v", in)
			}
			if !in.StartTime.Equal(time.Date(2025, 7, 1, 19, 0, 0, 0, time.UTC)) {
				t.Fatalf("unexpected start: %v", in.StartTime)
			}
			return &ports.EventWithVenue{Event: &domain.Event{ID: "e1", Status: domain.EventDraft}}, nil
		},
	}
	h := NewEventHandler(stub)

	body := `{"title":"Gig","description":"Loud","startTime":"2025-07-01T20:00:00+01:00","endTime":"2025-07-01T23:00:00+01:00","category":"LIVE_MUSIC","venueId":"v1"}`
	rec := serve(e, h.Create, http.MethodPost, "/api/events", strings.NewReader(body), venueOwner)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestEventHandler_Create_Failures(t *testing.T) {
	e := newTestEcho()
	stub := &stubEventService{
		createFn: func(ctx context.Context, p *domain.Principal, in ports.CreateEventInput) (*ports.EventWithVenue, error) {
			if in.VenueID == "theirs" {
				return nil, &domain.OwnershipError{Action: domain.ActionCreate, Err: domain.ErrEventNotOwned}
			}
			return nil, domain.ErrInvalidSchedule
		},
	}
	h := NewEventHandler(stub)

	body := `{"title":"Gig","description":"Loud","startTime":"2025-07-01T20:00:00Z","endTime":"2025-07-01T23:00:00Z","category":"LIVE_MUSIC","venueId":"theirs"}`
	rec := serve(e, h.Create, http.MethodPost, "/api/events", strings.NewReader(body), venueOwner)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if env := decode(t, rec); env.Error != "You can only create events for your own venue" {
		t.Fatalf("unexpected error: %q", env.Error)
	}

	body = strings.Replace(body, "theirs", "mine", 1)
	rec = serve(e, h.Create, http.MethodPost, "/api/events", strings.NewReader(body), venueOwner)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	rec = serve(e, h.Create, http.MethodPost, "/api/events", strings.NewReader(`{"title":"Gig","startTime":"next friday"}`), venueOwner)
	env := decode(t, rec)
	if rec.Code != http.StatusBadRequest || len(env.Details) == 0 {
		t.Fatalf("expected validation details, got %d %+v", rec.Code, env)
	}
}

func TestEventHandler_UpdateAndDelete(t *testing.T) {
	e := newTestEcho()
	stub := &stubEventService{
		updateFn: func(ctx context.Context, p *domain.Principal, id string, upd domain.EventUpdate) (*ports.EventWithVenue, error) {
			if id != "e1" || upd.Status == nil || *upd.Status != domain.EventPublished {
				t.Fatalf("unexpected update %s %+v", id, upd)
			}
			return &ports.EventWithVenue{Event: &domain.Event{ID: id, Status: *upd.Status}}, nil
		},
		deleteFn: func(ctx context.Context, p *domain.Principal, id string) error {
			return &domain.OwnershipError{Action: domain.ActionDelete, Err: domain.ErrEventNotOwned}
		},
	}
	h := NewEventHandler(stub)

	rec := serve(e, h.Update, http.MethodPut, "/api/events/e1", strings.NewReader(`{"status":"PUBLISHED"}`), venueOwner, "id", "e1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = serve(e, h.Delete, http.MethodDelete, "/api/events/e1", nil, venueOwner, "id", "e1")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if env := decode(t, rec); env.Error != "You can only delete events for your own venue" {
		t.Fatalf("unexpected error: %q", env.Error)
	}
}

func TestEventHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	h := NewEventHandler(&stubEventService{})

	rec := serve(e, h.Get, http.MethodGet, "/api/events/x", nil, nil, "id", "x")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if env := decode(t, rec); env.Error != "Event not found" {
		t.Fatalf("unexpected error: %q", env.Error)
	}
}
