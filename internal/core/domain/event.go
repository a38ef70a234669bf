package domain

import "time"

// EventCategory classifies what kind of happening an event is.
type EventCategory string

const (
	CategoryLiveMusic       EventCategory = "LIVE_MUSIC"
	CategoryStandupComedy   EventCategory = "STANDUP_COMEDY"
	CategoryClassicalMusic  EventCategory = "CLASSICAL_MUSIC"
	CategoryTheatre         EventCategory = "THEATRE"
	CategoryArtGallery      EventCategory = "ART_GALLERY"
	CategoryLiterature      EventCategory = "LITERATURE"
	CategoryRestaurantEvent EventCategory = "RESTAURANT_EVENT"
)

// EventStatus is the publication state of an event.
type EventStatus string

const (
	EventDraft     EventStatus = "DRAFT"
	EventPublished EventStatus = "PUBLISHED"
	EventCancelled EventStatus = "CANCELLED"
)

// Event is a dated happening at a venue.
type Event struct {
	ID          string        `json:"id" bson:"_id"`
	VenueID     string        `json:"venueId" bson:"venue_id"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	StartTime   time.Time     `json:"startTime" bson:"start_time"`
	EndTime     time.Time     `json:"endTime" bson:"end_time"`
	Price       *float64      `json:"price" bson:"price"`
	Category    EventCategory `json:"category" bson:"category"`
	Status      EventStatus   `json:"status" bson:"status"`
	CreatedAt   time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updated_at"`
}

// EventUpdate carries the optional fields of an event edit.
type EventUpdate struct {
	Title       *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Price       *float64
	Category    *EventCategory
	Status      *EventStatus
	UpdatedAt   time.Time
}

// EventFilter narrows an event listing. Zero values mean "no constraint",
// except Status which callers default to EventPublished.
type EventFilter struct {
	Category EventCategory
	Status   EventStatus
	VenueID  string
	From     time.Time
	To       time.Time
	// Search matches title or description; SearchVenueIDs additionally
	// matches events held at venues whose name matched.
	Search         string
	SearchVenueIDs []string
	Page           Page
}
