package ports

import (
	"context"
	"time"

	"github.com/stratford/music-platform/internal/core/domain"
)

// CreateEventInput is the validated event creation request.
type CreateEventInput struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Price       *float64
	Category    domain.EventCategory
	VenueID     string
	// Status is optional; new events are drafts unless set.
	Status domain.EventStatus
}

// ListEventsInput carries the raw listing query. Date, when non-zero, selects
// its year, month and day as a calendar day in the service's timezone.
type ListEventsInput struct {
	Category domain.EventCategory
	Status   domain.EventStatus
	Date     time.Time
	VenueID  string
	Search   string
	Page     domain.Page
}

// EventWithVenue is an event with its venue embedded.
type EventWithVenue struct {
	*domain.Event
	Venue *domain.VenueSummary `json:"venue,omitempty"`
}

// EventList is one page of the listing.
type EventList struct {
	Events     []*EventWithVenue `json:"events"`
	Pagination domain.Pagination `json:"pagination"`
}

// EventService implements the event calendar and venue-owner edits.
type EventService interface {
	List(ctx context.Context, in ListEventsInput) (*EventList, error)
	Today(ctx context.Context) ([]*EventWithVenue, error)
	Get(ctx context.Context, id string) (*EventWithVenue, error)
	Create(ctx context.Context, p *domain.Principal, in CreateEventInput) (*EventWithVenue, error)
	Update(ctx context.Context, p *domain.Principal, id string, upd domain.EventUpdate) (*EventWithVenue, error)
	Delete(ctx context.Context, p *domain.Principal, id string) error
}
