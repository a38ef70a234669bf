package ports

import (
	"context"

	"github.com/stratford/music-platform/internal/core/domain"
)

// CreateVenueInput is the validated venue creation request.
type CreateVenueInput struct {
	Name        string
	Address     string
	Phone       string
	Website     string
	Description string
	Capacity    *int
	Amenities   []string
}

// VenueListItem is a venue as shown in the directory.
type VenueListItem struct {
	*domain.Venue
	User  *domain.UserSummary `json:"user,omitempty"`
	Count struct {
		Events int64 `json:"events"`
	} `json:"_count"`
}

// VenueDetail is a venue page: owner contact and upcoming events.
type VenueDetail struct {
	*domain.Venue
	User   *domain.UserSummary `json:"user,omitempty"`
	Events []*domain.Event     `json:"events"`
}

// VenueWithOwner is a venue returned after a write.
type VenueWithOwner struct {
	*domain.Venue
	User *domain.UserSummary `json:"user,omitempty"`
}

// VenueList is one page of the directory.
type VenueList struct {
	Venues     []*VenueListItem  `json:"venues"`
	Pagination domain.Pagination `json:"pagination"`
}

// VenueService implements venue browsing and owner-only edits.
type VenueService interface {
	List(ctx context.Context, search string, page domain.Page) (*VenueList, error)
	Get(ctx context.Context, id string) (*VenueDetail, error)
	Create(ctx context.Context, p *domain.Principal, in CreateVenueInput) (*VenueWithOwner, error)
	Update(ctx context.Context, p *domain.Principal, id string, upd domain.VenueUpdate) (*VenueWithOwner, error)
	Delete(ctx context.Context, p *domain.Principal, id string) error
}
